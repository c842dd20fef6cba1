package commands

import (
	"go.uber.org/zap"

	"github.com/GiuseppeBellamacina/SpazzApp/internal/config"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Logger *zap.Logger

	// ConfigPath overrides the default config file discovery when set
	ConfigPath string
}

// LoadConfig loads the configuration from the explicit path when given,
// otherwise via the default discovery (current directory, then home).
func (a *AppContext) LoadConfig() (*config.Config, error) {
	if a.ConfigPath != "" {
		return config.LoadFromPath(a.ConfigPath)
	}
	return config.Load()
}
