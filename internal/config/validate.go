package config

import (
	"errors"
	"fmt"
)

// Validate ensures the settings are usable.
func (c *Config) Validate() error {
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateOverlay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFFmpeg() error {
	if c.FFmpeg.Binary == "" {
		return errors.New("ffmpeg.binary must be set")
	}
	if c.FFmpeg.AudioCodec == "" {
		return errors.New("ffmpeg.audio_codec must be set")
	}
	if c.FFmpeg.VideoCodec == "" {
		return errors.New("ffmpeg.video_codec must be set")
	}
	if c.FFmpeg.ScaleFilter == "" {
		return errors.New("ffmpeg.scale_filter must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.BuildDir == "" {
		return errors.New("output.build_dir must be set")
	}
	if c.Output.Makefile == "" {
		return errors.New("output.makefile must be set")
	}
	if c.Output.Final == "" {
		return errors.New("output.final must be set")
	}
	return nil
}

func (c *Config) validateOverlay() error {
	if c.Overlay.FontFile == "" {
		return errors.New("overlay.font_file must be set")
	}
	if c.Overlay.FontSize <= 0 {
		return errors.New("overlay.font_size must be positive")
	}
	if c.Overlay.BoxBorder < 0 {
		return errors.New("overlay.box_border must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
