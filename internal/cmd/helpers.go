package cmd

import (
	"github.com/bradcypert/uppies/internal/config"
)

// loadConfig resolves and loads the Appfile using the global --config
// flag. Load failures are structural: they abort the whole invocation.
func loadConfig() (*config.Config, error) {
	path, err := config.Find(configPath)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
