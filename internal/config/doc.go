// Package config loads and validates the tool settings.
//
// Settings are optional: vidmake runs with built-in defaults that
// reproduce the historical command output. A TOML file can override
// the ffmpeg binary name, default codecs, output locations, the date
// overlay, and logging. Load applies defaults, decodes the file when
// present, folds in environment overrides, then validates.
//
// Settings are distinct from the project config: the project JSON
// describes what to build, the settings describe how this installation
// renders it.
package config
