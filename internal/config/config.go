package config

type Config interface {
	EnvConfig
	SessionConfig
	SSOConfig
}

type mainConfig struct {
	EnvVars
	Session
	SSO
}

func New() Config {
	return mainConfig{}
}
