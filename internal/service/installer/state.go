package installer

// InstallState accumulates the values collected by the wizard steps.
type InstallState struct {
	Provider string
	EnvVars  map[string]string
}

func NewInstallState() *InstallState {
	return &InstallState{
		EnvVars: make(map[string]string),
	}
}
