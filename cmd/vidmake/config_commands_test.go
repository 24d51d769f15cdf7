package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.settingsPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Settings path: "+env.settingsPath) {
		t.Fatalf("expected resolved path in output, got %q", out)
	}
	if !strings.Contains(out, "Settings valid") {
		t.Fatalf("expected validation confirmation, got %q", out)
	}
	if strings.Contains(out, "defaults were used") {
		t.Fatalf("settings file exists, defaults line should not appear: %q", out)
	}
}

func TestCLIConfigValidateMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "missing.toml")

	out, _, err := runCLI(t, []string{"config", "validate"}, missing, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "defaults were used") {
		t.Fatalf("expected defaults notice, got %q", out)
	}
}

func TestCLIConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "fresh", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, env.settingsPath, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample settings to "+target) {
		t.Fatalf("expected confirmation, got %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample file: %v", err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.settingsPath, "")
	if err == nil {
		t.Fatal("expected error when settings file already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, env.settingsPath, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestCLIConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.settingsPath, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"ffmpeg.binary", "output.makefile", "overlay.text", "2024-05-01"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestCLIConfigShowJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show", "--json"}, env.settingsPath, "")
	if err != nil {
		t.Fatalf("config show --json: %v", err)
	}

	var resolved map[string]string
	if err := json.Unmarshal([]byte(out), &resolved); err != nil {
		t.Fatalf("unmarshal settings output: %v", err)
	}
	if resolved["ffmpeg.binary"] != "ffmpeg" {
		t.Fatalf("unexpected binary: %q", resolved["ffmpeg.binary"])
	}
	if resolved["output.makefile"] != env.makefilePath {
		t.Fatalf("unexpected makefile path: %q", resolved["output.makefile"])
	}
	if resolved["overlay.text"] != "2024-05-01" {
		t.Fatalf("unexpected overlay text: %q", resolved["overlay.text"])
	}
}
