package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rajrishis/portfolio/internal/checksum"
	"github.com/rajrishis/portfolio/internal/models"
)

// FS implements Provider on top of an os.Root, so neither relative paths
// nor symlinks can reach outside the content directory.
type FS struct {
	dir  string
	root *os.Root
}

// NewFS opens the content directory at dir, which must already exist.
func NewFS(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: open root: %w", err)
	}
	return &FS{dir: abs, root: root}, nil
}

// Root returns the absolute content directory.
func (f *FS) Root() string {
	return f.dir
}

// Close releases the directory handle.
func (f *FS) Close() error {
	return f.root.Close()
}

// clean turns a slash-separated relative path into an fs.FS path.
func clean(rel string) (string, error) {
	if rel == "" {
		return ".", nil
	}
	p := path.Clean(filepath.ToSlash(rel))
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("storage: path escapes content root: %s", rel)
	}
	return p, nil
}

// List walks dir and returns metadata for matching files, sorted by path.
// Dot files and symlinks are skipped; a missing dir yields an empty list.
func (f *FS) List(dir string, exts ...string) ([]models.FileMeta, error) {
	base, err := clean(dir)
	if err != nil {
		return nil, err
	}
	fsys := f.root.FS()

	var out []models.FileMeta
	err = fs.WalkDir(fsys, base, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") || !matchExt(d.Name(), exts) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		out = append(out, models.FileMeta{
			Path:     p,
			Checksum: checksum.Sum(data),
			Size:     int64(len(data)),
		})
		return nil
	})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("storage: list %s: %w", dir, err)
	}
	slices.SortFunc(out, func(a, b models.FileMeta) int { return strings.Compare(a.Path, b.Path) })
	return out, nil
}

// Read returns the raw bytes of a content file.
func (f *FS) Read(rel string) ([]byte, error) {
	p, err := clean(rel)
	if err != nil {
		return nil, err
	}
	data, err := f.root.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", rel, err)
	}
	return data, nil
}

func matchExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := path.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
