// Package paths translates entry paths between a document's own namespace and
// the scan root's namespace. A document living above the scan root (e.g. a
// workspace-level SEMMAP.md describing one member crate) stores prefixed
// paths; the classifier reports scan-root-relative ones.
package paths

import (
	"path/filepath"
	"strings"
)

// BuildRootPrefixRelative computes the prefix for entries given the
// document's containing directory and the scan root. An empty prefix means
// the two coincide. Separators are normalized to forward slashes.
func BuildRootPrefixRelative(docDir, root string) string {
	rel, err := filepath.Rel(docDir, root)
	if err != nil {
		return BuildRootPrefix(root)
	}

	cleaned := clean(rel)
	if cleaned == "." || cleaned == "" || strings.HasPrefix(cleaned, "..") {
		// Root not under the document directory; fall back to the raw root.
		if strings.HasPrefix(cleaned, "..") {
			return BuildRootPrefix(root)
		}
		return ""
	}
	return cleaned
}

// BuildRootPrefix normalizes a raw root path into prefix form: leading "./"
// stripped, backslashes converted, "." collapsed to empty.
func BuildRootPrefix(root string) string {
	cleaned := clean(root)
	if cleaned == "." || cleaned == "" {
		return ""
	}
	return cleaned
}

// PrefixPath prepends the prefix to a scan-root-relative path. An empty
// prefix is a no-op.
func PrefixPath(prefix, path string) string {
	if prefix == "" {
		return path
	}
	return prefix + "/" + path
}

// StripPrefixForLookup removes the prefix from a document-namespace path to
// recover the scan-root-relative form. Paths outside the prefix are returned
// unchanged.
func StripPrefixForLookup(prefix, path string) string {
	if prefix == "" {
		return path
	}
	return strings.TrimPrefix(path, prefix+"/")
}

func clean(p string) string {
	cleaned := strings.TrimPrefix(p, "./")
	cleaned = strings.TrimPrefix(cleaned, ".\\")
	return strings.ReplaceAll(cleaned, "\\", "/")
}
