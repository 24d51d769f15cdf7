package ffmpegcmd

import (
	"fmt"
	"strconv"
	"strings"

	"vidmake/internal/filtergraph"
)

// Aggregate describes the final assembly: the concat command plus the
// build prerequisites it implies.
type Aggregate struct {
	Output  string
	Deps    []string
	Command string
}

// Concat renders the command that assembles every buildable clip into
// the final output. Clips marked not-a-build contribute nothing here;
// the rest are numbered by inclusion order starting at zero, so stream
// labels stay dense even when clips are skipped.
func (b *Builder) Concat(rendered []Rendered) Aggregate {
	var (
		deps     []string
		inputs   strings.Builder
		vstreams strings.Builder
		astreams strings.Builder
	)
	count := 0
	for _, r := range rendered {
		if !r.Clip.Buildable() {
			continue
		}
		deps = append(deps, r.Output)
		inputs.WriteString(" -i " + r.Output)
		fmt.Fprintf(&vstreams, "[%d:v]", count)
		fmt.Fprintf(&astreams, "[%d:a]", count)
		count++
	}

	// The video chain concatenates then stamps the date; the audio
	// chain only concatenates.
	graph := fmt.Sprintf("%sconcat=n=%d,%s[video];%sconcat=v=0:a=1:n=%d[audio]",
		vstreams.String(), count, b.overlay(), astreams.String(), count)

	command := b.cfg.FFmpeg.Binary + " -hide_banner" + inputs.String() +
		` -filter_complex "` + graph + `"` +
		" -map [video] -map [audio] -map_metadata -1" +
		" -c:v " + b.cfg.FFmpeg.VideoCodec + " -c:a " + b.cfg.FFmpeg.AudioCodec +
		" -vsync 2 -y " + b.cfg.Output.Final

	return Aggregate{
		Output:  b.cfg.Output.Final,
		Deps:    deps,
		Command: command,
	}
}

// overlay renders the drawtext date stamp, arguments in the order
// ffmpeg has always been given them.
func (b *Builder) overlay() string {
	o := b.cfg.Overlay
	box := "0"
	if o.Box {
		box = "1"
	}
	return filtergraph.FormatFunc("drawtext", []filtergraph.Arg{
		{Key: "fontfile", Value: o.FontFile},
		{Key: "text", Value: o.Text},
		{Key: "fontcolor", Value: o.FontColor},
		{Key: "fontsize", Value: strconv.Itoa(o.FontSize)},
		{Key: "box", Value: box},
		{Key: "boxcolor", Value: o.BoxColor},
		{Key: "boxborderw", Value: strconv.Itoa(o.BoxBorder)},
		{Key: "x", Value: o.X},
		{Key: "y", Value: o.Y},
	})
}
