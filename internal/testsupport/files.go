package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteProject writes a project config document under dir and returns
// its path.
func WriteProject(t testing.TB, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "Makefile.config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
	return path
}

// StubBinaries writes stub executables for the provided names and
// prepends their directory to PATH for the test's duration.
func StubBinaries(t testing.TB, names ...string) {
	t.Helper()

	binDir := t.TempDir()
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(binDir, name), script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
