// Package ingest provides work-unit sources for the run coordinator.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chartpull/clinical-features/internal/entity"
)

// DirectorySource yields one work unit per JSON chart document in a
// directory. os.ReadDir returns entries sorted by filename, which gives the
// deterministic ordering resume correctness depends on.
type DirectorySource struct {
	root string
}

func NewDirectorySource(root string) *DirectorySource {
	return &DirectorySource{root: root}
}

func (s *DirectorySource) Units(ctx context.Context) ([]entity.WorkUnit, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read chart directory: %w", err)
	}

	var units []entity.WorkUnit
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(s.root, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read chart %s: %w", e.Name(), err)
		}
		units = append(units, entity.WorkUnit{
			ID:        e.Name(),
			PatientID: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Raw:       raw,
		})
	}
	return units, nil
}

// SliceSource wraps a fixed, pre-ordered unit list. Useful when units come
// from an upstream retrieval service rather than the filesystem.
type SliceSource []entity.WorkUnit

func (s SliceSource) Units(context.Context) ([]entity.WorkUnit, error) {
	return s, nil
}
