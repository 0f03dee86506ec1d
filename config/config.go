// Package config loads bridge settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/progressivemobile/acquiring/types"
	"github.com/progressivemobile/acquiring/utils"
)

// Prefix of every environment variable, e.g. ACQUIRING_LANGUAGE.
const Prefix = "ACQUIRING"

// Load reads configuration from environment variables.
func Load() (*types.Config, error) {
	var cfg types.Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, &types.AcquiringError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to read environment: %v", err),
		}
	}

	if err := utils.ValidateStruct(&cfg); err != nil {
		return nil, &types.AcquiringError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("validation failed: %s", utils.ValidationMessage(err)),
		}
	}
	return &cfg, nil
}
