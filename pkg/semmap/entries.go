package semmap

import (
	"regexp"
	"strings"
)

// Entry body markers.
const (
	exportsMarker = "→ Exports:"
	touchMarker   = "→ Touch:"
)

var (
	pathRe = regexp.MustCompile("^`([^`]+)`")
	// Legacy fallback for documents that wrote paths without backticks:
	// a bare token carrying a dot-extension.
	legacyPathRe = regexp.MustCompile(`^(\S+\.\w+)`)
)

// matchPath returns the entry path started by line, if any.
func matchPath(line string) (string, bool) {
	if m := pathRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := legacyPathRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// parseLayerEntries consumes file entries until the next layer header or a
// top-level heading.
func parseLayerEntries(lines []string, idx *int) []FileEntry {
	var entries []FileEntry

	for *idx < len(lines) {
		line := lines[*idx]

		if strings.HasPrefix(line, "## Layer") || strings.HasPrefix(line, "# ") {
			break
		}

		if path, ok := matchPath(line); ok {
			*idx++
			entries = append(entries, parseFileEntry(path, lines, idx))
		} else {
			*idx++
		}
	}

	return entries
}

// parseFileEntry consumes the body of one entry: description lines plus the
// optional exports and touch markers. The body ends at a blank line, a new
// backtick-path line, or a section heading.
func parseFileEntry(path string, lines []string, idx *int) FileEntry {
	var descParts []string
	var exports []string
	var touch string

	for *idx < len(lines) {
		trimmed := strings.TrimSpace(lines[*idx])

		if trimmed == "" || strings.HasPrefix(trimmed, "`") || strings.HasPrefix(trimmed, "## ") {
			break
		}

		switch {
		case strings.HasPrefix(trimmed, exportsMarker):
			exports = parseExports(strings.TrimPrefix(trimmed, exportsMarker))
		case strings.HasPrefix(trimmed, touchMarker):
			touch = strings.TrimSpace(strings.TrimPrefix(trimmed, touchMarker))
		default:
			descParts = append(descParts, trimmed)
		}

		*idx++
	}

	what, why := splitDescription(strings.Join(descParts, " "))

	return FileEntry{
		Path:        path,
		Description: Description{What: what, Why: why},
		Exports:     exports,
		Touch:       touch,
	}
}

// parseExports splits a comma-separated symbol list, trimming each item.
func parseExports(rest string) []string {
	parts := strings.Split(strings.TrimSpace(rest), ",")
	exports := make([]string, 0, len(parts))
	for _, p := range parts {
		exports = append(exports, strings.TrimSpace(p))
	}
	return exports
}

// splitDescription divides accumulated description text at the first ". "
// into WHAT (re-terminated with a period) and WHY. Text without a sentence
// boundary becomes WHAT in full.
func splitDescription(desc string) (what, why string) {
	if first, rest, found := strings.Cut(desc, ". "); found {
		return first + ".", rest
	}
	return desc, ""
}
