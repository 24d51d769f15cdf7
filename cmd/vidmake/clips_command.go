package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vidmake/internal/ffmpegcmd"
	"vidmake/internal/jsonutil"
	"vidmake/internal/project"
)

type clipSummary struct {
	Output  string          `json:"output"`
	Input   json.RawMessage `json:"input"`
	Require string          `json:"require,omitempty"`
	Audio   bool            `json:"audio"`
	Build   bool            `json:"build"`
	Command string          `json:"command"`
}

func newClipsCommand(ctx *commandContext, projectFlag *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "clips",
		Short: "List the clips a project config describes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			doc, err := project.Load(*projectFlag)
			if err != nil {
				return err
			}
			rendered, err := ffmpegcmd.NewBuilder(cfg).Clips(doc)
			if err != nil {
				return err
			}

			if asJSON {
				summaries := make([]clipSummary, 0, len(rendered))
				for _, r := range rendered {
					summaries = append(summaries, clipSummary{
						Output:  r.Output,
						Input:   r.Clip.Input,
						Require: r.Require,
						Audio:   !r.Clip.Has(project.AttrNoAudio),
						Build:   r.Clip.Buildable(),
						Command: r.Command,
					})
				}
				return writeJSON(cmd, summaries)
			}

			rows := make([][]string, 0, len(rendered))
			for i, r := range rendered {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					r.Output,
					summarizeInput(r.Clip.Input),
					yesNo(!r.Clip.Has(project.AttrNoAudio)),
					yesNo(r.Clip.Buildable()),
					r.Require,
				})
			}
			headers := []string{"#", "OUTPUT", "INPUT", "AUDIO", "BUILD", "REQUIRES"}
			aligns := []columnAlignment{alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

// summarizeInput condenses a clip input for table display. List inputs show
// the first source path plus a count of the rest.
func summarizeInput(raw json.RawMessage) string {
	if text, ok := jsonutil.ScalarText(raw); ok {
		return text
	}
	elems, err := jsonutil.DecodeElems(raw)
	if err != nil || len(elems) == 0 {
		return ""
	}
	first := ""
	for _, elem := range elems {
		if text, ok := jsonutil.ScalarText(elem); ok {
			first = text
			break
		}
		if pairs, err := jsonutil.DecodePairs(elem); err == nil {
			for _, pair := range pairs {
				if pair.Key != "i" {
					continue
				}
				if text, ok := jsonutil.ScalarText(pair.Value); ok {
					first = text
				}
				break
			}
		}
		if first != "" {
			break
		}
	}
	if len(elems) > 1 {
		return fmt.Sprintf("%s (+%d more)", first, len(elems)-1)
	}
	return first
}
