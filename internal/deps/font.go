package deps

import (
	"fmt"
	"os"
	"strings"
)

// CheckFontFile reports whether the drawtext overlay font exists on disk.
//
// The aggregate command embeds the font path verbatim, so a missing file only
// surfaces when make runs the final rule. Checking up front turns that into a
// doctor finding instead of a late ffmpeg error.
func CheckFontFile(path string) Status {
	status := Status{
		Name:        "Overlay font",
		Command:     strings.TrimSpace(path),
		Description: "Used by drawtext in the final concat",
	}

	if status.Command == "" {
		status.Detail = "font_file not configured"
		return status
	}

	info, err := os.Stat(status.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("font %q not found", status.Command)
		return status
	}
	if info.IsDir() {
		status.Detail = fmt.Sprintf("font %q is a directory", status.Command)
		return status
	}

	status.Available = true
	return status
}
