// Package logging assembles the structured slog loggers used by the vidmake
// CLI.
//
// It owns the console and JSON handlers, centralizes level plumbing, and keeps
// log output on stderr so generated text on stdout stays machine-consumable.
// Commands tag their lines with a component attribute that the console handler
// renders inline.
//
// Prefer these constructors over hand-rolled slog setup so every command emits
// data with the same shape.
package logging
