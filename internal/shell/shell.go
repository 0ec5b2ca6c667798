// Package shell runs the read-parse-dispatch loop.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/dispatchers"
	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/log"
	"github.com/footprint-tools/consoleapp/internal/ui"
	"github.com/footprint-tools/consoleapp/internal/ui/style"
	"github.com/footprint-tools/consoleapp/internal/usage"
)

// State is the lifecycle state of a Shell.
type State int

const (
	// Stopped means the loop will not read another line.
	Stopped State = iota
	// Running is the initial state. The loop continues while it holds.
	Running
)

func (s State) String() string {
	if s == Running {
		return "RUNNING"
	}
	return "STOPPED"
}

const (
	// DefaultPrompt is written before each line is read.
	DefaultPrompt = "\n> "
	// DefaultNamespace holds the built-in commands.
	DefaultNamespace = "default"
	exceptionPrefix  = "**Exception: "
)

// Shell reads command lines, dispatches them and reports failures.
// A Shell is driven from a single goroutine.
type Shell struct {
	in         *bufio.Reader
	out        domain.OutputWriter
	registry   *dispatchers.Registry
	dispatcher *dispatchers.Dispatcher
	logger     domain.Logger
	styler     domain.Styler

	prompt     string
	echo       bool
	namespaces []string
	state      State
}

// Option configures a Shell.
type Option func(*Shell)

// WithInput sets the reader lines are read from.
func WithInput(r io.Reader) Option {
	return func(s *Shell) { s.in = bufio.NewReader(r) }
}

// WithOutput sets the writer for prompts, results and failures.
func WithOutput(w domain.OutputWriter) Option {
	return func(s *Shell) { s.out = w }
}

// WithPrompt sets the prompt. An empty prompt writes nothing.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithEcho prints each received command before running it.
func WithEcho(enabled bool) Option {
	return func(s *Shell) { s.echo = enabled }
}

// WithNamespaces sets the namespaces to load, in dispatch order.
func WithNamespaces(namespaces []string) Option {
	return func(s *Shell) { s.namespaces = namespaces }
}

// WithLogger sets the session logger. A nil logger is ignored.
func WithLogger(logger domain.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStyler sets the styler used for failure lines. A nil styler is ignored.
func WithStyler(styler domain.Styler) Option {
	return func(s *Shell) {
		if styler != nil {
			s.styler = styler
		}
	}
}

// New registers the built-in commands in registry under the default
// namespace, loads the configured namespaces and returns a running Shell.
// Host commands must be registered before New is called, and a registry
// serves one Shell: a second New panics on the duplicate built-ins.
//
// Without options the shell reads stdin, writes stdout and loads only the
// default namespace.
func New(registry *dispatchers.Registry, opts ...Option) *Shell {
	s := &Shell{
		in:         bufio.NewReader(os.Stdin),
		out:        ui.NewWriter(),
		registry:   registry,
		logger:     log.NopLogger{},
		styler:     style.NopStyler{},
		prompt:     DefaultPrompt,
		namespaces: []string{DefaultNamespace},
		state:      Running,
	}
	for _, opt := range opts {
		opt(s)
	}

	registry.Register(DefaultNamespace, s.builtins()...)
	registry.Load(s.namespaces)

	s.dispatcher = dispatchers.NewDispatcher(registry, s.out,
		dispatchers.WithEcho(s.echo),
		dispatchers.WithLogger(s.logger),
	)

	return s
}

// Stop ends the loop after the current command. Stopping before Run keeps
// the loop from starting.
func (s *Shell) Stop() {
	s.state = Stopped
}

// Running reports whether the loop is active.
func (s *Shell) Running() bool {
	return s.state == Running
}

// State returns the current lifecycle state.
func (s *Shell) State() State {
	return s.state
}

// Run executes input once when it is not empty, returning the command's
// failure after printing it. A blank but non-empty input is still executed.
// Otherwise it reads and executes lines while the shell is running, until a
// built-in stops it or the input ends.
//
// Command failures never end the loop. Run only returns an error from the
// loop when the input cannot be read.
func (s *Shell) Run(input string) error {
	if input != "" {
		s.logger.Debug("shell: single command %q", input)
		return s.execute(input)
	}

	s.logger.Info("shell: loop started, namespaces %v", s.namespaces)
	defer s.logger.Info("shell: loop stopped")

	for s.state == Running {
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			s.state = Stopped
			return fmt.Errorf("shell: write prompt: %w", err)
		}

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			s.state = Stopped
			return fmt.Errorf("shell: read input: %w", err)
		}
		eof := err != nil

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			_ = s.execute(line)
		}

		if eof {
			s.logger.Debug("shell: end of input")
			s.state = Stopped
		}
	}

	return nil
}

// execute parses and dispatches one line, printing any failure.
func (s *Shell) execute(line string) error {
	cmd, err := dispatchers.Parse(line)
	if err == nil {
		var res dispatchers.Result
		res, err = s.dispatcher.Execute(cmd)
		if err == nil {
			s.logger.Debug("shell: %s ran in %v", cmd.Name(), res.Invoked)
		}
	}
	if err != nil {
		s.report(err)
	}
	return err
}

func (s *Shell) report(err error) {
	switch kind := usage.KindOf(err); kind {
	case usage.ErrHandlerFailure:
		s.logger.Warn("shell: %s: %v", kind, err)
	case usage.ErrUnknown:
		s.logger.Error("shell: unexpected failure: %v", err)
	default:
		s.logger.Info("shell: %s: %v", kind, err)
	}

	_, _ = s.out.Println(s.styler.Error(exceptionPrefix + err.Error()))
}
