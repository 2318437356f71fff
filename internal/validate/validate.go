// Package validate checks documents for structural problems and for
// drift against the codebase they describe.
package validate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentstation/semmap/internal/scan"
	"github.com/agentstation/semmap/pkg/logging"
	"github.com/agentstation/semmap/pkg/semmap"
)

// Severity ranks validation issues. Errors make a document invalid;
// warnings are advisory.
type Severity int

// Issue severities.
const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the severity label used in reports.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a single validation finding, optionally tied to a file path
// or document line.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

// String formats the issue for human-readable output.
func (i Issue) String() string {
	switch {
	case i.Path != "" && i.Line > 0:
		return fmt.Sprintf("[%s] %s:%d: %s", i.Severity, i.Path, i.Line, i.Message)
	case i.Path != "":
		return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
	case i.Line > 0:
		return fmt.Sprintf("[%s] line %d: %s", i.Severity, i.Line, i.Message)
	default:
		return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	}
}

func errorIssue(message string) Issue   { return Issue{Severity: SeverityError, Message: message} }
func warningIssue(message string) Issue { return Issue{Severity: SeverityWarning, Message: message} }

func (i Issue) forPath(p string) Issue {
	i.Path = p
	return i
}

// Result collects the issues found by a validation pass.
type Result struct {
	Issues []Issue `json:"issues" yaml:"issues"`
}

// IsValid reports whether the result contains no errors.
func (r *Result) IsValid() bool {
	return r.ErrorCount() == 0
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount returns the number of warning-severity issues.
func (r *Result) WarningCount() int {
	return r.count(SeverityWarning)
}

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Validate checks a document's internal consistency. When root is
// non-empty it additionally verifies that every tracked file exists.
func Validate(doc *semmap.Document, root string) *Result {
	var issues []Issue
	issues = checkHeader(doc, issues)
	issues = checkLayers(doc, issues)
	issues = checkEntries(doc, issues)
	issues = checkDuplicates(doc, issues)
	if root != "" {
		issues = checkFilesExist(doc, root, issues)
	}
	return &Result{Issues: issues}
}

func checkHeader(doc *semmap.Document, issues []Issue) []Issue {
	if doc.ProjectName == "" {
		issues = append(issues, errorIssue("Missing project name"))
	}
	if doc.Purpose == "" {
		issues = append(issues, warningIssue("Missing purpose statement"))
	}
	return issues
}

func checkLayers(doc *semmap.Document, issues []Issue) []Issue {
	if len(doc.Layers) == 0 {
		return append(issues, errorIssue("No layers defined"))
	}
	seen := make(map[uint8]bool)
	first := true
	var prev uint8
	for _, layer := range doc.Layers {
		if seen[layer.Number] {
			issues = append(issues, errorIssue(fmt.Sprintf("Duplicate layer: %d", layer.Number)))
		}
		seen[layer.Number] = true
		if !first && layer.Number != prev+1 {
			issues = append(issues, warningIssue(fmt.Sprintf("Layer gap after %d", prev)))
		}
		first = false
		prev = layer.Number
	}
	return issues
}

func checkEntries(doc *semmap.Document, issues []Issue) []Issue {
	for _, layer := range doc.Layers {
		for _, entry := range layer.Entries {
			if entry.Description.What == "" {
				issues = append(issues, errorIssue("Missing WHAT").forPath(entry.Path))
			}
			if isGenericDescription(entry.Description.What, entry.Path) {
				issues = append(issues, warningIssue("Add //! doc comment").forPath(entry.Path))
			}
		}
	}
	return issues
}

// isGenericDescription flags boilerplate WHAT text on source files.
// Config files get a pass since they have nowhere to carry a doc comment.
func isGenericDescription(what, entryPath string) bool {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(entryPath), ".")) {
	case "toml", "json", "yaml":
		return false
	}
	return strings.HasPrefix(what, "Implements ") || strings.Contains(what, "functionality.")
}

func checkDuplicates(doc *semmap.Document, issues []Issue) []Issue {
	seen := make(map[string]bool)
	for _, layer := range doc.Layers {
		for _, entry := range layer.Entries {
			if seen[entry.Path] {
				issues = append(issues, errorIssue("Duplicate path").forPath(entry.Path))
			}
			seen[entry.Path] = true
		}
	}
	return issues
}

func checkFilesExist(doc *semmap.Document, root string, issues []Issue) []Issue {
	for _, layer := range doc.Layers {
		for _, entry := range layer.Entries {
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(entry.Path))); err != nil {
				issues = append(issues, errorIssue("File not found").forPath(entry.Path))
			}
		}
	}
	return issues
}

// AgainstCodebase runs Validate and then warns about source files on
// disk that the document does not track.
func AgainstCodebase(doc *semmap.Document, root string) *Result {
	result := Validate(doc, root)

	documented := make(map[string]bool)
	for _, p := range doc.AllPaths() {
		documented[p] = true
	}

	files, err := scan.Files(root, sourceScanOptions())
	if err != nil {
		logging.Debug().Str("root", root).Err(err).Msg("codebase scan failed")
		return result
	}
	for _, file := range files {
		if !documented[file] {
			result.Issues = append(result.Issues, warningIssue("Not tracked").forPath(file))
		}
	}
	return result
}

func sourceScanOptions() scan.Options {
	return scan.Options{
		IncludeExts: []string{"rs", "ts", "js", "py", "go"},
		ExcludeDirs: []string{"target", "node_modules"},
	}
}
