package domain

// Application bundles the collaborators a shell session runs with.
type Application struct {
	Config    ConfigProvider
	Logger    Logger
	Output    OutputWriter
	Styler    Styler
	SessionID string
}
