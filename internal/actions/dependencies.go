// Package actions holds handlers for the built-in commands that do not need
// access to shell state.
package actions

import (
	"github.com/footprint-tools/consoleapp/internal/app"
)

type actionDependencies struct {
	Version func() string
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Version: func() string { return app.Version },
	}
}
