package testsupport

import (
	"testing"

	"vidmake/internal/config"
)

// ConfigOption allows callers to customize the generated test settings.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t        testing.TB
	postDate string
	mutate   []func(*config.Config)
}

// NewConfig produces validated settings with the overlay date pinned so
// generated commands are deterministic under test. The test's HOME and
// settings environment are isolated.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	builder := &configBuilder{t: t, postDate: "2024-05-01"}
	for _, opt := range opts {
		opt(builder)
	}

	t.Setenv("HOME", t.TempDir())
	t.Setenv("VIDMAKE_SETTINGS", "")
	t.Setenv("POST_DATE", builder.postDate)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("load test settings: %v", err)
	}
	for _, mutate := range builder.mutate {
		mutate(cfg)
	}
	return cfg
}

// WithPostDate pins the overlay date to the given value.
func WithPostDate(date string) ConfigOption {
	return func(b *configBuilder) {
		b.postDate = date
	}
}

// WithConfig applies a mutation to the settings after loading.
func WithConfig(mutate func(*config.Config)) ConfigOption {
	return func(b *configBuilder) {
		b.mutate = append(b.mutate, mutate)
	}
}
