// Package scanner discovers connection guide files beneath a root
// directory.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const (
	// GuideExt is the extension guides are published with.
	GuideExt = ".mdx"

	// IndexFile is the catalog index page. It is never audited, at any
	// directory level.
	IndexFile = "introduction.mdx"
)

// Collector finds guide files on a filesystem. Production code passes
// afero.NewOsFs(); tests use an in-memory filesystem.
type Collector struct {
	fs afero.Fs
}

// New creates a Collector on the given filesystem.
func New(fs afero.Fs) *Collector {
	return &Collector{fs: fs}
}

// Collect walks root recursively and returns every guide path relative
// to root, sorted. A missing or unreadable root is an error; an
// unreadable subdirectory is skipped and the walk continues.
func (c *Collector) Collect(root string) ([]string, error) {
	info, err := c.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read guides directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("guides path %s is not a directory", root)
	}

	var files []string
	err = afero.Walk(c.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		name := info.Name()
		if !strings.HasSuffix(name, GuideExt) || name == IndexFile {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan guides directory %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Read returns the content of a guide given its root-relative path.
func (c *Collector) Read(root, rel string) (string, error) {
	data, err := afero.ReadFile(c.fs, filepath.Join(root, rel))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
