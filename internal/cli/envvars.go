package cli

import (
	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from RPNCTL_* env vars.
type baseEnv struct {
	// ConfigPath is the rpnctl.yaml path from RPNCTL_CONFIG.
	ConfigPath string `env:"RPNCTL_CONFIG"`
	// Capacity is the operator stack capacity from RPNCTL_CAPACITY.
	Capacity int `env:"RPNCTL_CAPACITY"`
	// LogLevel is the logging level from RPNCTL_LOG_LEVEL.
	LogLevel string `env:"RPNCTL_LOG_LEVEL"`
}

// convertEnv captures RPNCTL_* inputs for the convert command.
type convertEnv struct {
	// Echo toggles the INPUT/OUTPUT banner from RPNCTL_ECHO.
	Echo bool `env:"RPNCTL_ECHO"`
}

// batchEnv captures RPNCTL_* inputs for the batch command.
type batchEnv struct {
	// KeepGoing toggles continuing past failed lines from RPNCTL_KEEP_GOING.
	KeepGoing bool `env:"RPNCTL_KEEP_GOING"`
}

// parseEnv fills target from RPNCTL_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}
