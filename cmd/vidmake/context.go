package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"vidmake/internal/config"
	"vidmake/internal/logging"
)

type commandContext struct {
	settingsFlag *string
	logLevelFlag *string

	settingsOnce sync.Once
	settings     *config.Config
	settingsErr  error
	log          *slog.Logger
}

func newCommandContext(settingsFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		settingsFlag: settingsFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureSettings() (*config.Config, error) {
	c.settingsOnce.Do(func() {
		var path string
		if c.settingsFlag != nil {
			path = strings.TrimSpace(*c.settingsFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.settingsErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.settingsErr = err
			return
		}
		c.settings = cfg
		c.log = logger
	})
	return c.settings, c.settingsErr
}

func (c *commandContext) logger() *slog.Logger {
	if c.log == nil {
		return logging.NewNop()
	}
	return c.log
}

func shouldSkipSettings(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipSettingsLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
