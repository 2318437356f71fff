// Package scan enumerates the candidate source files of a repository.
// It walks the tree once, skipping hidden and build-output directories, and
// returns root-relative forward-slash paths for the classifier to describe.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/agentstation/semmap/pkg/errors"
	"github.com/agentstation/semmap/pkg/logging"
)

// Options controls which files a walk yields.
type Options struct {
	// IncludeExts lists the file extensions (without dot) to keep.
	IncludeExts []string

	// ExcludeDirs lists directory names skipped entirely.
	ExcludeDirs []string
}

// DefaultOptions returns the conventional extension and exclusion lists.
func DefaultOptions() Options {
	return Options{
		IncludeExts: []string{"rs", "ts", "js", "py", "go", "java", "toml", "yaml", "json"},
		ExcludeDirs: []string{".git", "target", "node_modules", "dist", "build", "__pycache__", "vendor"},
	}
}

// Files walks root and returns the relative paths of all matching files,
// sorted for deterministic output.
func Files(root string, opts Options) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, errors.WrapIO("read", root, err)
	}

	var files []string

	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		excluded[d] = struct{}{}
	}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if osPathname == root {
					return nil
				}
				if isExcludedDir(de.Name(), excluded) {
					return filepath.SkipDir
				}
				return nil
			}

			if strings.HasPrefix(de.Name(), ".") || !matchesExt(de.Name(), opts.IncludeExts) {
				return nil
			}

			rel, relErr := filepath.Rel(root, osPathname)
			if relErr != nil {
				return nil
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			logging.Debug().Str("path", osPathname).Err(err).Msg("Skipping unreadable path")
			return godirwalk.SkipNode
		},
		FollowSymbolicLinks: false,
		Unsorted:            true, // sorted below
	})
	if err != nil {
		return nil, errors.WrapIO("read", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// isExcludedDir reports whether a directory is hidden or on the exclude list.
func isExcludedDir(name string, excluded map[string]struct{}) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := excluded[name]
	return ok
}

// matchesExt reports whether the file name carries one of the wanted
// extensions.
func matchesExt(name string, exts []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}
