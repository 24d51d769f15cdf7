package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vidmake/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample settings file",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultSettingsPath()
				if err != nil {
					return fmt.Errorf("determine default settings path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create settings directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample settings to %s\n", target)
			fmt.Fprintln(out, "Edit the file to point font_file at a font on this host before generating.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing settings if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the settings file",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if ctx.settingsFlag != nil {
				path = strings.TrimSpace(*ctx.settingsFlag)
			}
			_, resolved, exists, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings path: %s\n", resolved)
			if !exists {
				fmt.Fprintln(out, "Settings file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Settings valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			entries := settingsEntries(cfg)
			if asJSON {
				resolved := make(map[string]string, len(entries))
				for _, entry := range entries {
					resolved[entry[0]] = entry[1]
				}
				return writeJSON(cmd, resolved)
			}

			headers := []string{"SETTING", "VALUE"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, entries, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func settingsEntries(cfg *config.Config) [][]string {
	return [][]string{
		{"ffmpeg.binary", cfg.FFmpeg.Binary},
		{"ffmpeg.audio_codec", cfg.FFmpeg.AudioCodec},
		{"ffmpeg.video_codec", cfg.FFmpeg.VideoCodec},
		{"ffmpeg.scale_filter", cfg.FFmpeg.ScaleFilter},
		{"output.build_dir", cfg.Output.BuildDir},
		{"output.makefile", cfg.Output.Makefile},
		{"output.final", cfg.Output.Final},
		{"overlay.font_file", cfg.Overlay.FontFile},
		{"overlay.text", cfg.Overlay.Text},
		{"overlay.font_color", cfg.Overlay.FontColor},
		{"overlay.font_size", strconv.Itoa(cfg.Overlay.FontSize)},
		{"overlay.box", strconv.FormatBool(cfg.Overlay.Box)},
		{"overlay.box_color", cfg.Overlay.BoxColor},
		{"overlay.box_border", strconv.Itoa(cfg.Overlay.BoxBorder)},
		{"overlay.x", cfg.Overlay.X},
		{"overlay.y", cfg.Overlay.Y},
		{"logging.format", cfg.Logging.Format},
		{"logging.level", cfg.Logging.Level},
	}
}
