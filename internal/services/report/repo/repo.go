// Package repo provides the filesystem writer for quarterly reports
package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	perr "chronicle/internal/platform/errors"
	pstrings "chronicle/internal/platform/strings"
	"chronicle/internal/services/report/domain"
)

// FS writes reports under root as <root>/<year>/Q<n>-<year>.md
type FS struct {
	root string
}

// NewFS constructs the filesystem writer rooted at root
func NewFS(root string) *FS {
	pstrings.MustString(root, "report root dir")
	return &FS{root: root}
}

// WriteReport persists body for quarter q, creating the year directory as
// needed. An existing report for the same quarter is overwritten
func (f *FS) WriteReport(_ context.Context, q domain.Quarter, body []byte) (string, error) {
	dir := filepath.Join(f.root, strconv.Itoa(q.Year))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "create report dir %s", dir)
	}
	path := filepath.Join(dir, fmt.Sprintf("Q%d-%d.md", q.N, q.Year))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "write report %s", path)
	}
	return path, nil
}
