package config

import (
	"path"
	"strings"
	"time"
)

// normalize trims user input, derives dependent values, and folds in
// environment overrides. Output paths stay unresolved: they are text
// destined for the Makefile, not paths this process opens.
func (c *Config) normalize(env Env) {
	c.normalizeFFmpeg()
	c.normalizeOutput()
	c.normalizeOverlay(env)
	c.normalizeLogging()
}

func (c *Config) normalizeFFmpeg() {
	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	c.FFmpeg.AudioCodec = strings.TrimSpace(c.FFmpeg.AudioCodec)
	c.FFmpeg.VideoCodec = strings.TrimSpace(c.FFmpeg.VideoCodec)
	c.FFmpeg.ScaleFilter = strings.TrimSpace(c.FFmpeg.ScaleFilter)
}

func (c *Config) normalizeOutput() {
	c.Output.BuildDir = strings.TrimSpace(c.Output.BuildDir)
	c.Output.Makefile = strings.TrimSpace(c.Output.Makefile)
	c.Output.Final = strings.TrimSpace(c.Output.Final)
	if c.Output.Final == "" && c.Output.BuildDir != "" {
		c.Output.Final = path.Join(c.Output.BuildDir, "final.mp4")
	}
}

func (c *Config) normalizeOverlay(env Env) {
	c.Overlay.Text = strings.TrimSpace(c.Overlay.Text)
	if c.Overlay.Text == "" {
		c.Overlay.Text = strings.TrimSpace(env.PostDate)
	}
	if c.Overlay.Text == "" {
		c.Overlay.Text = time.Now().Format("2006-01-02")
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
