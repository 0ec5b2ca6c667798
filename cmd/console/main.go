package main

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/consoleapp/internal/actions"
	configactions "github.com/footprint-tools/consoleapp/internal/actions/config"
	"github.com/footprint-tools/consoleapp/internal/app"
	"github.com/footprint-tools/consoleapp/internal/cli"
	"github.com/footprint-tools/consoleapp/internal/config"
	"github.com/footprint-tools/consoleapp/internal/dispatchers"
	"github.com/footprint-tools/consoleapp/internal/shell"
	"github.com/footprint-tools/consoleapp/internal/ui"
	"github.com/footprint-tools/consoleapp/internal/usage"
)

const programName = "console"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := cli.NewParsedFlags(cli.ExtractFlags(args))
	commands := cli.ExtractCommands(args)

	if unknown := flags.Unknown(cli.RootFlags); len(unknown) > 0 {
		fmt.Fprintf(stderr, "unknown flag %s\n\n%s", unknown[0], cli.Usage(programName))
		return 2
	}

	opts := app.DefaultOptions()
	opts.Output = stdout
	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = ui.NewWriterTo(stdout).IsTerminal() && !flags.Has("--no-color")

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	defer func() { _ = app.Close(application) }()

	if flags.Has("--help", "-h") {
		_, _ = application.Output.Printf("%s", cli.Usage(programName))
		return 0
	}
	if flags.Has("--version", "-v") {
		out, _ := actions.ShowVersion(nil)
		_, _ = application.Output.Println(out)
		return 0
	}

	settings := config.LoadSettings(opts.StyleConfig)
	if flags.Has("--echo") {
		settings.EchoCommands = true
	}
	if prompt, ok := flags.Lookup("--prompt"); ok {
		settings.ReadPrompt = config.Unescape(prompt)
	}
	if namespaces := flags.List("--namespaces"); namespaces != nil {
		settings.Namespaces = namespaces
	}

	logger := application.Logger
	logger.Info("session %s started, namespaces %v", application.SessionID, settings.Namespaces)
	defer logger.Info("session %s ended", application.SessionID)

	registry := dispatchers.NewRegistry(logger)
	registry.Register(configactions.Namespace, configactions.Commands(configactions.DepsFrom(application.Config))...)

	sh := shell.New(registry,
		shell.WithInput(stdin),
		shell.WithOutput(application.Output),
		shell.WithPrompt(settings.ReadPrompt),
		shell.WithEcho(settings.EchoCommands),
		shell.WithNamespaces(settings.Namespaces),
		shell.WithLogger(logger),
		shell.WithStyler(application.Styler),
	)

	if err := sh.Run(cli.JoinCommandLine(commands)); err != nil {
		// Command failures were already reported by the shell.
		if usage.KindOf(err) == usage.ErrUnknown {
			fmt.Fprintln(stderr, err.Error())
		}
		return 1
	}

	return 0
}
