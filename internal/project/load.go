package project

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is the project config read when no path is given.
const DefaultPath = "Makefile.config.json"

// Load reads, decodes, and validates a project config file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project config: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("project config %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a project config document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
