package ffmpegcmd_test

import (
	"fmt"
	"strings"
	"testing"

	"vidmake/internal/config"
	"vidmake/internal/ffmpegcmd"
	"vidmake/internal/project"
	"vidmake/internal/testsupport"
)

const testOverlay = "drawtext=fontfile=/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf:text=2024-05-01:fontcolor=black:fontsize=28:box=1:boxcolor=white@0.8:boxborderw=10:x=w-200:y=15"

func renderAll(t *testing.T, b *ffmpegcmd.Builder, clips ...*project.Clip) []ffmpegcmd.Rendered {
	t.Helper()
	rendered, err := b.Clips(&project.Document{Videos: clips})
	if err != nil {
		t.Fatalf("Clips: %v", err)
	}
	return rendered
}

// --- Aggregate command tests ---

func TestConcat_FullCommand(t *testing.T) {
	b := newBuilder(t)
	rendered := renderAll(t, b,
		clip(`"raw/a.mp4"`, "build/a.mp4"),
		clip(`"raw/b.mp4"`, "build/b.mp4"),
	)

	agg := b.Concat(rendered)
	want := fmt.Sprintf(`ffmpeg -hide_banner -i build/a.mp4 -i build/b.mp4 -filter_complex "[0:v][1:v]concat=n=2,%s[video];[0:a][1:a]concat=v=0:a=1:n=2[audio]" -map [video] -map [audio] -map_metadata -1 -c:v h264 -c:a aac -vsync 2 -y build/final.mp4`, testOverlay)
	if agg.Command != want {
		t.Fatalf("command mismatch\n got: %s\nwant: %s", agg.Command, want)
	}
	if agg.Output != "build/final.mp4" {
		t.Fatalf("output: got %q", agg.Output)
	}
	if len(agg.Deps) != 2 || agg.Deps[0] != "build/a.mp4" || agg.Deps[1] != "build/b.mp4" {
		t.Fatalf("unexpected deps: %v", agg.Deps)
	}
}

func TestConcat_SkipsNotABuildAndRenumbers(t *testing.T) {
	b := newBuilder(t)
	skipped := clip(`"raw/b.mp4"`, "build/b.mp4")
	skipped.Attributes = []string{project.AttrNotABuild}
	rendered := renderAll(t, b,
		clip(`"raw/a.mp4"`, "build/a.mp4"),
		skipped,
		clip(`"raw/c.mp4"`, "build/c.mp4"),
	)

	agg := b.Concat(rendered)
	if strings.Contains(agg.Command, "build/b.mp4") {
		t.Fatalf("skipped clip leaked into command: %s", agg.Command)
	}
	if !strings.Contains(agg.Command, "[0:v][1:v]concat=n=2,") {
		t.Fatalf("stream labels not renumbered densely: %s", agg.Command)
	}
	if !strings.Contains(agg.Command, "[0:a][1:a]concat=v=0:a=1:n=2[audio]") {
		t.Fatalf("audio labels not renumbered densely: %s", agg.Command)
	}
	if len(agg.Deps) != 2 || agg.Deps[1] != "build/c.mp4" {
		t.Fatalf("unexpected deps: %v", agg.Deps)
	}
}

func TestConcat_EmptyDocument(t *testing.T) {
	b := newBuilder(t)
	agg := b.Concat(nil)
	if len(agg.Deps) != 0 {
		t.Fatalf("unexpected deps: %v", agg.Deps)
	}
	if !strings.Contains(agg.Command, `concat=n=0,`) || !strings.Contains(agg.Command, "concat=v=0:a=1:n=0[audio]") {
		t.Fatalf("zero-clip counts not rendered: %s", agg.Command)
	}
	if !strings.HasPrefix(agg.Command, "ffmpeg -hide_banner -filter_complex") {
		t.Fatalf("unexpected preamble with no inputs: %s", agg.Command)
	}
}

func TestConcat_OverlayDateFromEnvironment(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithPostDate("2023-12-31"))
	b := ffmpegcmd.NewBuilder(cfg)
	agg := b.Concat(nil)
	if !strings.Contains(agg.Command, "text=2023-12-31:fontcolor=black") {
		t.Fatalf("overlay text not taken from POST_DATE: %s", agg.Command)
	}
}

func TestConcat_SettingsDriveCodecsAndOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithConfig(func(c *config.Config) {
		c.FFmpeg.VideoCodec = "libx265"
		c.Output.Final = "out/final.mp4"
	}))
	b := ffmpegcmd.NewBuilder(cfg)
	agg := b.Concat(nil)
	if !strings.Contains(agg.Command, "-c:v libx265 -c:a aac") {
		t.Fatalf("settings codecs not applied: %s", agg.Command)
	}
	if !strings.HasSuffix(agg.Command, "-y out/final.mp4") {
		t.Fatalf("settings output not applied: %s", agg.Command)
	}
	if agg.Output != "out/final.mp4" {
		t.Fatalf("aggregate output: got %q", agg.Output)
	}
}
