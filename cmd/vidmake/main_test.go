package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir      string
	settingsPath string
	projectPath  string
	makefilePath string
	buildDir     string
}

const testProjectConfig = `{
  "videos": [
    {
      "input": "raw/intro.mp4",
      "output": "build/intro.mp4"
    },
    {
      "input": [{"ss": "1.5", "i": "raw/tour.mp4"}, "raw/outro.mp4"],
      "output": "build/tour.mp4",
      "filter_complex": [
        {"istream": "[0:v]", "func": {"setpts": "PTS-STARTPTS"}, "ostream": "[v0]"}
      ],
      "require": "build/intro.mp4"
    },
    {
      "input": "raw/scratch.mp4",
      "output": "build/scratch.mp4",
      "attributes": ["not-a-build", "no-audio"]
    }
  ]
}
`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("POST_DATE", "")
	t.Setenv("VIDMAKE_SETTINGS", "")

	env := &cliTestEnv{
		baseDir:      base,
		settingsPath: filepath.Join(base, "settings.toml"),
		projectPath:  filepath.Join(base, "Makefile.config.json"),
		makefilePath: filepath.Join(base, "Makefile"),
		buildDir:     filepath.Join(base, "build"),
	}

	settings := fmt.Sprintf(`[output]
build_dir = %q
makefile = %q

[overlay]
text = "2024-05-01"
`, env.buildDir, env.makefilePath)
	writeTestFile(t, env.settingsPath, settings)
	writeTestFile(t, env.projectPath, testProjectConfig)

	return env
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string, settingsPath, projectPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--settings", settingsPath}
	if projectPath != "" {
		flags = append(flags, "--config", projectPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIRootGeneratesMakefile(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.settingsPath, env.projectPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "Makefile written ^_^") {
		t.Fatalf("expected confirmation line, got %q", out)
	}

	content, err := os.ReadFile(env.makefilePath)
	if err != nil {
		t.Fatalf("read makefile: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "\nall: "+env.buildDir+"/final.mp4") {
		t.Fatalf("unexpected makefile header:\n%s", text)
	}
	if !strings.Contains(text, "build/intro.mp4: \n\tffmpeg -hide_banner -i raw/intro.mp4") {
		t.Fatalf("expected intro rule, got:\n%s", text)
	}
	if !strings.Contains(text, "build/tour.mp4: build/intro.mp4\n") {
		t.Fatalf("expected tour prerequisite, got:\n%s", text)
	}

	info, err := os.Stat(env.buildDir)
	if err != nil {
		t.Fatalf("expected build directory: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected build path to be a directory")
	}
}

func TestCLIGenerateStdoutDoesNotWrite(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"generate", "--stdout"}, env.settingsPath, env.projectPath)
	if err != nil {
		t.Fatalf("generate --stdout: %v", err)
	}
	if !strings.HasPrefix(out, "\nall: ") {
		t.Fatalf("expected makefile text on stdout, got %q", out)
	}
	if strings.Contains(out, "Makefile written") {
		t.Fatalf("confirmation line should not appear in stdout mode, got %q", out)
	}

	if _, err := os.Stat(env.makefilePath); !os.IsNotExist(err) {
		t.Fatalf("makefile should not be written in stdout mode, stat err: %v", err)
	}
}

func TestCLIGenerateIdempotent(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"generate"}, env.settingsPath, env.projectPath); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	first, err := os.ReadFile(env.makefilePath)
	if err != nil {
		t.Fatalf("read makefile: %v", err)
	}

	if _, _, err := runCLI(t, []string{"generate"}, env.settingsPath, env.projectPath); err != nil {
		t.Fatalf("second generate: %v", err)
	}
	second, err := os.ReadFile(env.makefilePath)
	if err != nil {
		t.Fatalf("read makefile: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("expected repeated generation to produce identical bytes")
	}
}

func TestCLIGenerateMissingProjectConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"generate"}, env.settingsPath, filepath.Join(env.baseDir, "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing project config")
	}
	if !strings.Contains(err.Error(), "read project config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCLIGenerateRejectsInvalidSettings(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestFile(t, env.settingsPath, "[logging]\nlevel = \"loud\"\n")

	_, _, err := runCLI(t, []string{"generate"}, env.settingsPath, env.projectPath)
	if err == nil {
		t.Fatal("expected error for invalid settings")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCLIClipsTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"clips"}, env.settingsPath, env.projectPath)
	if err != nil {
		t.Fatalf("clips: %v", err)
	}
	for _, want := range []string{"OUTPUT", "build/intro.mp4", "raw/tour.mp4 (+1 more)", "build/scratch.mp4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "no") {
		t.Fatalf("expected the excluded clip to show in the build column, got:\n%s", out)
	}
}

func TestCLIClipsJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"clips", "--json"}, env.settingsPath, env.projectPath)
	if err != nil {
		t.Fatalf("clips --json: %v", err)
	}

	var summaries []clipSummary
	if err := json.Unmarshal([]byte(out), &summaries); err != nil {
		t.Fatalf("unmarshal clips output: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 clips, got %d", len(summaries))
	}
	if summaries[0].Output != "build/intro.mp4" {
		t.Fatalf("unexpected first output: %s", summaries[0].Output)
	}
	if !strings.HasPrefix(summaries[0].Command, "ffmpeg -hide_banner -i raw/intro.mp4") {
		t.Fatalf("unexpected first command: %s", summaries[0].Command)
	}
	if summaries[2].Build {
		t.Fatal("expected scratch clip to be excluded from the build")
	}
	if summaries[2].Audio {
		t.Fatal("expected scratch clip to drop audio")
	}
}

func TestCLIVersionFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--version"}, env.settingsPath, "")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, "version dev") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
