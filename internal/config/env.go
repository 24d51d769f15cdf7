package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Env carries the process-environment overrides the tool recognizes.
// POST_DATE is the variable the date overlay has always honored;
// VIDMAKE_SETTINGS points at a settings file when no flag is given.
type Env struct {
	PostDate     string `env:"POST_DATE"`
	SettingsPath string `env:"VIDMAKE_SETTINGS"`
}

// LoadEnv reads the recognized environment variables.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(context.Background(), &env); err != nil {
		return Env{}, fmt.Errorf("read environment: %w", err)
	}
	return env, nil
}
