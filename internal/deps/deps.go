// Package deps builds a file-level dependency map for the files a
// document tracks, by scraping import statements from their sources.
package deps

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agentstation/semmap/pkg/logging"
	"github.com/agentstation/semmap/pkg/semmap"
)

// Kind describes how one file depends on another.
type Kind int

// Dependency kinds. Import extraction only produces KindImport today;
// the other kinds are reserved for richer analysis and keep their own
// mermaid arrow styles.
const (
	KindImport Kind = iota
	KindTrait
	KindCall
)

// Node is a tracked file together with its layer.
type Node struct {
	Path  string `json:"path" yaml:"path"`
	Layer uint8  `json:"layer" yaml:"layer"`
}

// Edge is a dependency from one tracked file to another.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Map is the dependency graph over a document's files.
type Map struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

var (
	rustUseRe  = regexp.MustCompile(`use\s+(?:crate|super|self)::(\w+)`)
	rustModRe  = regexp.MustCompile(`mod\s+(\w+);`)
	jsImportRe = regexp.MustCompile(`(?:import|from)\s+['"]([./][^'"]+)['"]`)
	jsRequire  = regexp.MustCompile(`require\(['"]([./][^'"]+)['"]\)`)
	pyFromRe   = regexp.MustCompile(`from\s+\.(\w+)\s+import`)
	pyImportRe = regexp.MustCompile(`import\s+(\w+)`)
)

// pythonStdlib holds module names excluded from python import edges.
var pythonStdlib = map[string]bool{
	"os": true, "sys": true, "re": true, "json": true,
	"typing": true, "collections": true, "pathlib": true,
}

// Analyze builds the dependency map for every file the document tracks.
// Edges point only at files the document also tracks; imports of
// anything else are dropped. Unreadable files contribute no edges.
func Analyze(root string, doc *semmap.Document) *Map {
	m := &Map{}
	layers := doc.PathToLayer()

	known := make(map[string]bool)
	for _, p := range doc.AllPaths() {
		if known[p] {
			continue
		}
		known[p] = true
		m.Nodes = append(m.Nodes, Node{Path: p, Layer: layers[p]})
	}

	for _, node := range m.Nodes {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(node.Path)))
		if err != nil {
			logging.Debug().Str("path", node.Path).Err(err).Msg("skipping unreadable source")
			continue
		}
		for _, dep := range extractImports(root, node.Path, string(content)) {
			if known[dep.target] && dep.target != node.Path {
				m.Edges = append(m.Edges, Edge{From: node.Path, To: dep.target, Kind: dep.kind})
			}
		}
	}
	return m
}

type rawDep struct {
	target string
	kind   Kind
}

func extractImports(root, sourcePath, content string) []rawDep {
	switch strings.TrimPrefix(path.Ext(sourcePath), ".") {
	case "rs":
		return extractRustImports(sourcePath, content)
	case "ts", "js":
		return extractJSImports(root, sourcePath, content)
	case "py":
		return extractPythonImports(content)
	default:
		return nil
	}
}

func extractRustImports(sourcePath, content string) []rawDep {
	baseDir := path.Dir(sourcePath)
	var deps []rawDep
	for _, re := range []*regexp.Regexp{rustUseRe, rustModRe} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			deps = append(deps, rawDep{target: resolveRustModule(baseDir, m[1]), kind: KindImport})
		}
	}
	return deps
}

func resolveRustModule(baseDir, module string) string {
	if baseDir == "." || baseDir == "" {
		return "src/" + module + ".rs"
	}
	return baseDir + "/" + module + ".rs"
}

func extractJSImports(root, sourcePath, content string) []rawDep {
	baseDir := path.Dir(sourcePath)
	var deps []rawDep
	for _, re := range []*regexp.Regexp{jsImportRe, jsRequire} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			deps = append(deps, rawDep{target: resolveJSPath(root, baseDir, m[1]), kind: KindImport})
		}
	}
	return deps
}

// resolveJSPath joins a relative import onto the importing file's
// directory, trying .ts then .js when the import has no extension.
func resolveJSPath(root, baseDir, relative string) string {
	resolved := path.Clean(path.Join(baseDir, relative))
	if path.Ext(resolved) != "" {
		return resolved
	}
	withTS := resolved + ".ts"
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(withTS))); err == nil {
		return withTS
	}
	return resolved + ".js"
}

func extractPythonImports(content string) []rawDep {
	var deps []rawDep
	for _, m := range pyFromRe.FindAllStringSubmatch(content, -1) {
		deps = append(deps, rawDep{target: m[1] + ".py", kind: KindImport})
	}
	for _, m := range pyImportRe.FindAllStringSubmatch(content, -1) {
		if !pythonStdlib[m[1]] {
			deps = append(deps, rawDep{target: m[1] + ".py", kind: KindImport})
		}
	}
	return deps
}
