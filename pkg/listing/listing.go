// Package listing enumerates the files a user can batch-rename. It produces
// the ordered path list the editable buffer starts from; the rename core
// treats that list as opaque ordered input.
package listing

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sdejongh/bulkmv/pkg/logging"
	"github.com/sdejongh/bulkmv/pkg/pathutil"
)

// Lister walks a root directory and returns relative file paths
type Lister struct {
	root    string
	exclude []string
	logger  logging.Logger
}

// New creates a lister rooted at root. Exclude patterns follow the matcher's
// glob rules and apply to every walked entry
func New(root string, exclude []string, logger logging.Logger) (*Lister, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %w", err)
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Lister{root: abs, exclude: exclude, logger: logger}, nil
}

// Root returns the absolute root directory of the lister
func (l *Lister) Root() string {
	return l.root
}

// List walks the root recursively and returns the relative paths of regular
// files in traversal order. Directories are never listed; only files whose
// full paths change can be renamed. With include patterns given, a file is
// kept when it matches at least one of them. Staging temp artifacts from an
// interrupted apply are always filtered out
func (l *Lister) List(ctx context.Context, include []string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, err := filepath.Rel(l.root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if shouldExclude(rel, l.exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if pathutil.IsTempArtifact(rel) {
			return nil
		}
		if len(include) > 0 && !matchesAny(rel, include) {
			return nil
		}

		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	l.logger.Debug(ctx, "listed files", logging.Fields{
		"root":  l.root,
		"count": len(paths),
	})

	return paths, nil
}

// matchesAny reports whether the relative path matches at least one include
// pattern. Patterns without a separator match the base name; patterns with a
// separator match the full relative path
func matchesAny(relativePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if matchPattern(relativePath, pattern) {
			return true
		}
	}
	return false
}
