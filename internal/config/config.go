package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// FFmpeg contains the executable name and encoding defaults used when
// a clip does not override them.
type FFmpeg struct {
	Binary      string `toml:"binary"`
	AudioCodec  string `toml:"audio_codec"`
	VideoCodec  string `toml:"video_codec"`
	ScaleFilter string `toml:"scale_filter"`
}

// Output contains the generated artifact locations. These strings pass
// verbatim into the Makefile, so they stay exactly as written and are
// never resolved against the filesystem.
type Output struct {
	BuildDir string `toml:"build_dir"`
	Makefile string `toml:"makefile"`
	Final    string `toml:"final"`
}

// Overlay configures the drawtext date stamp applied to the final
// assembly.
type Overlay struct {
	FontFile  string `toml:"font_file"`
	Text      string `toml:"text"`
	FontColor string `toml:"font_color"`
	FontSize  int    `toml:"font_size"`
	Box       bool   `toml:"box"`
	BoxColor  string `toml:"box_color"`
	BoxBorder int    `toml:"box_border"`
	X         string `toml:"x"`
	Y         string `toml:"y"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all settings for vidmake.
type Config struct {
	FFmpeg  FFmpeg  `toml:"ffmpeg"`
	Output  Output  `toml:"output"`
	Overlay Overlay `toml:"overlay"`
	Logging Logging `toml:"logging"`
}

// DefaultSettingsPath returns the absolute path to the default settings
// file location.
func DefaultSettingsPath() (string, error) {
	return expandPath("~/.config/vidmake/config.toml")
}

// Load locates, parses, and validates a settings file. A missing file
// is not an error; defaults apply. The returned path is where settings
// were (or would be) read from, and the bool reports whether the file
// existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	env, err := LoadEnv()
	if err != nil {
		return nil, "", false, err
	}
	if path == "" {
		path = env.SettingsPath
	}

	resolvedPath, exists, err := resolveSettingsPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open settings: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse settings: %w", err)
		}
	}

	cfg.normalize(env)

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveSettingsPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat settings: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultSettingsPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("vidmake.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CreateSample writes a commented sample settings file to the given
// location.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the settings path expansion rules for other
// packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
