// Package makefile renders the generated build file.
//
// The output grammar is tiny: a fixed header with the all and clean
// targets, one rule per clip, and the final assembly rule last.
// Rendering is pure string assembly; writing is left to the caller so
// nothing touches disk until every command rendered.
package makefile

import (
	"fmt"
	"path"
	"strings"

	"vidmake/internal/config"
	"vidmake/internal/ffmpegcmd"
)

// Render produces the complete build file text: header, one rule per
// clip in document order, then the final assembly rule. Clips excluded
// from the final assembly still build individually. Rendering the same
// inputs twice yields byte-identical text.
func Render(cfg *config.Config, rendered []ffmpegcmd.Rendered, agg ffmpegcmd.Aggregate) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nall: %s\n\nclean:\n\trm -fv %s\n\n", agg.Output, cleanGlob(cfg))

	for _, r := range rendered {
		fmt.Fprintf(&sb, "%s: %s\n\t%s\n\n", r.Output, r.Require, r.Command)
	}

	sb.WriteString(agg.Output + ":")
	for _, dep := range agg.Deps {
		sb.WriteString(" " + dep)
	}
	fmt.Fprintf(&sb, "\n\t%s\n\n", agg.Command)

	return sb.String()
}

func cleanGlob(cfg *config.Config) string {
	return path.Join(cfg.Output.BuildDir, "*.mp4")
}
