package actions

func ShowVersion(args []string) (string, error) {
	return showVersion(args, defaultDeps())
}

func showVersion(_ []string, deps actionDependencies) (string, error) {
	return "console version " + deps.Version(), nil
}
