package dispatchers

import (
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/log"
	"github.com/footprint-tools/consoleapp/internal/usage"
)

// Result records what a successful Execute did.
type Result struct {
	// Invoked lists the namespaces whose handler ran, in order.
	Invoked []string
	// Outputs holds the non-empty handler results, in order.
	Outputs []string
}

// Dispatcher resolves parsed commands against a Registry and runs them,
// writing handler output to out.
type Dispatcher struct {
	registry *Registry
	out      io.Writer
	echo     bool
	logger   domain.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithEcho prints each received command and its arguments before running it.
func WithEcho(enabled bool) Option {
	return func(d *Dispatcher) {
		d.echo = enabled
	}
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger domain.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a Dispatcher over registry writing to out.
func NewDispatcher(registry *Registry, out io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		out:      out,
		logger:   log.NopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Execute runs cmd.
//
// The name is checked against the flat name set only, so the namespace
// prefix does not have to match. Every configured namespace exposing the
// name then runs its handler in configuration order; a name shared by two
// namespaces runs twice. The prefix is not used to narrow this either.
//
// The first handler failure stops the walk and is returned as a handler
// failure wrapping the handler's own error.
func (d *Dispatcher) Execute(cmd Command) (Result, error) {
	if !d.registry.Has(cmd.Name()) {
		d.logger.Debug("dispatch: unknown command %q", cmd.String())
		return Result{}, usage.UnknownCommand(cmd.Name())
	}

	args := cmd.Args()

	if d.echo {
		d.echoCommand(cmd.Name(), args)
	}

	var res Result
	for _, ns := range d.registry.Namespaces() {
		spec, ok := d.registry.Lookup(ns, cmd.Name())
		if !ok {
			continue
		}

		d.logger.Debug("dispatch: %s.%s %d args", ns, spec.Name, len(args))
		res.Invoked = append(res.Invoked, ns)

		out, err := invoke(spec.Handler, args)
		if err != nil {
			d.logger.Info("dispatch: %s.%s failed: %v", ns, spec.Name, err)
			return res, usage.HandlerFailure(err)
		}

		if out != "" {
			fmt.Fprintln(d.out, out)
			res.Outputs = append(res.Outputs, out)
		}
	}

	return res, nil
}

func (d *Dispatcher) echoCommand(name string, args []string) {
	fmt.Fprintf(d.out, "Received cmd %s\n", name)
	if len(args) > 0 {
		fmt.Fprintf(d.out, "  %d args:  %s\n", len(args), strings.Join(args, "    "))
	}
}

// invoke calls h, turning a panic into an error so that one broken handler
// does not take the shell down.
func invoke(h Handler, args []string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	return h(args)
}
