package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vidmake/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the generated Makefile can run on this host",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.ForConfig(cfg))
			statuses = append(statuses, deps.CheckFontFile(cfg.Overlay.FontFile))

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Host tools", colorize) {
				fmt.Fprintln(out, line)
			}

			failed := false
			for _, status := range statuses {
				kind := statusOK
				message := status.Command
				if !status.Available {
					message = status.Detail
					if status.Optional {
						kind = statusWarn
					} else {
						kind = statusError
						failed = true
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}

			if failed {
				return errors.New("missing required tools")
			}
			return nil
		},
	}
}
