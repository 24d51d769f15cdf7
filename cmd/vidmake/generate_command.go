package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidmake/internal/ffmpegcmd"
	"vidmake/internal/fileutil"
	"vidmake/internal/makefile"
	"vidmake/internal/project"
)

func newGenerateCommand(ctx *commandContext, projectFlag *string) *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render ffmpeg commands and write the Makefile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(ctx, cmd, *projectFlag, toStdout)
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the Makefile instead of writing it")
	return cmd
}

func runGenerate(ctx *commandContext, cmd *cobra.Command, projectPath string, toStdout bool) error {
	cfg, err := ctx.ensureSettings()
	if err != nil {
		return err
	}
	logger := ctx.logger().With("component", "generate")

	doc, err := project.Load(projectPath)
	if err != nil {
		return err
	}
	logger.Debug("project config loaded", "path", projectPath, "clips", len(doc.Videos))

	builder := ffmpegcmd.NewBuilder(cfg)
	rendered, err := builder.Clips(doc)
	if err != nil {
		return err
	}
	aggregate := builder.Concat(rendered)
	text := makefile.Render(cfg, rendered, aggregate)

	if toStdout {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	if err := fileutil.WriteFileAtomic(cfg.Output.Makefile, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.Makefile, err)
	}
	logger.Info("makefile written",
		"path", cfg.Output.Makefile,
		"clips", len(rendered),
		"final", aggregate.Output)

	fmt.Fprintln(cmd.OutOrStdout(), "Makefile written ^_^")

	return fileutil.EnsureDir(cfg.Output.BuildDir)
}
