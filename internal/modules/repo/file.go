package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileAdapter stores the snapshot as a pretty-printed JSON file, the same
// shape the export endpoint produces.
type FileAdapter struct {
	Path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{Path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (*Dataset, error) {
	raw, err := os.ReadFile(a.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.Path, err)
	}
	d := new(Dataset)
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", a.Path, err)
	}
	d.ensureSlices()
	return d, nil
}

func (a *FileAdapter) Save(ctx context.Context, d *Dataset) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never leaves a truncated
	// snapshot behind.
	tmp := a.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, a.Path)
}
