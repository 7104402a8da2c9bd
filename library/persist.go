package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// indexFile is the persisted index layout. Standards and cross-references
// are stored as ordered arrays: store iteration order is observable (ranking
// tie stability, cross-reference scan order), and JSON objects would not
// round-trip it. Aliases are persisted once per record and flattened back
// out into the full index on load.
type indexFile struct {
	PDFDirectory    string            `json:"pdf_directory"`
	Standards       []*Standard       `json:"standards"`
	CrossReferences []*CrossReference `json:"cross_references"`
}

// Load reads a library index from the given path. A missing file yields an
// empty library, not an error; the caller decides whether to seed it.
func Load(path string) (*Library, error) {
	lib := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse index %s: %w", path, err)
	}

	if file.PDFDirectory != "" {
		lib.PDFDirectory = file.PDFDirectory
	}
	for _, s := range file.Standards {
		lib.AddStandard(s)
	}
	for _, x := range file.CrossReferences {
		lib.AddCrossReference(x)
	}

	return lib, nil
}

// Save writes the library index to the given path, creating parent
// directories as needed.
func (l *Library) Save(path string) error {
	file := indexFile{
		PDFDirectory:    l.PDFDirectory,
		Standards:       l.Standards(),
		CrossReferences: l.CrossReferences(),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create index directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}

	return nil
}
