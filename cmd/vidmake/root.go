package main

import (
	"github.com/spf13/cobra"

	"vidmake/internal/project"
)

func newRootCommand() *cobra.Command {
	var settingsFlag string
	var projectFlag string
	var logLevelFlag string

	ctx := newCommandContext(&settingsFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "vidmake",
		Short:         "Generate ffmpeg command Makefiles from clip descriptions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipSettings(cmd) {
				return nil
			}
			_, err := ctx.ensureSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(ctx, cmd, projectFlag, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Settings file path")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "config", "c", project.DefaultPath, "Clip description file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCommand(ctx, &projectFlag))
	rootCmd.AddCommand(newClipsCommand(ctx, &projectFlag))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
