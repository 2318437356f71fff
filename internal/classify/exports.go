package classify

import (
	"regexp"
	"strings"
)

// maxExports caps how many public symbols a generated entry lists.
const maxExports = 8

var (
	rustPubRe  = regexp.MustCompile(`^\s*pub\s+(?:fn|struct|enum|trait|const|static|type)\s+([A-Za-z_][A-Za-z0-9_]*)`)
	goDeclRe   = regexp.MustCompile(`^(?:func|type)\s+([A-Z][A-Za-z0-9_]*)`)
	jsExportRe = regexp.MustCompile(`^\s*export\s+(?:default\s+)?(?:async\s+)?(?:function|class|const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	pyDefRe    = regexp.MustCompile(`^(?:def|class)\s+([A-Za-z_][A-Za-z0-9_]*)`)
)

// ExtractExports scrapes the public symbols declared in a source file.
// Returns nil when nothing public is found so the entry omits its
// exports line entirely.
func ExtractExports(path, content string) []string {
	var exports []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] || strings.HasPrefix(name, "_") {
			return
		}
		seen[name] = true
		exports = append(exports, name)
	}

	res := patternsFor(path)
	for _, line := range strings.Split(content, "\n") {
		if len(exports) >= maxExports {
			break
		}
		for _, re := range res {
			if m := re.FindStringSubmatch(line); m != nil {
				add(m[1])
				break
			}
		}
	}
	return exports
}

func patternsFor(path string) []*regexp.Regexp {
	switch {
	case strings.HasSuffix(path, ".rs"):
		return []*regexp.Regexp{rustPubRe}
	case strings.HasSuffix(path, ".go"):
		return []*regexp.Regexp{goDeclRe}
	case strings.HasSuffix(path, ".ts"), strings.HasSuffix(path, ".js"),
		strings.HasSuffix(path, ".tsx"), strings.HasSuffix(path, ".jsx"):
		return []*regexp.Regexp{jsExportRe}
	case strings.HasSuffix(path, ".py"):
		return []*regexp.Regexp{pyDefRe}
	default:
		return []*regexp.Regexp{rustPubRe, goDeclRe, jsExportRe, pyDefRe}
	}
}
