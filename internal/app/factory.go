package app

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/footprint-tools/consoleapp/internal/config"
	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/log"
	"github.com/footprint-tools/consoleapp/internal/paths"
	"github.com/footprint-tools/consoleapp/internal/ui"
	"github.com/footprint-tools/consoleapp/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   string
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Output defaults to stdout.
	Output io.Writer
}

// DefaultOptions returns the options stored in the user's config.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()
	settings := config.LoadSettings(cfg)

	return Options{
		LogEnabled:   settings.LogEnabled,
		LogLevel:     settings.LogLevel,
		StyleEnabled: true,
		StyleConfig:  cfg,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	sessionID := uuid.NewString()

	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}

		// An unusable log file leaves logging off.
		if l, err := log.New(logPath, log.ParseLevel(opts.LogLevel)); err == nil {
			l.SetPrefix(sessionID[:8])
			log.SetDefault(l)
			logger = l
		}
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &domain.Application{
		Config:    config.NewProvider(),
		Logger:    logger,
		Output:    ui.NewWriterTo(out),
		Styler:    style.NewStyler(),
		SessionID: sessionID,
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	log.SetDefault(nil)
	return nil
}
