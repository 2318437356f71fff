package output

import (
	"fmt"
	"io"
	"os"

	"github.com/agentstation/semmap/internal/deps"
	"github.com/agentstation/semmap/internal/validate"
	"github.com/agentstation/semmap/pkg/differ"
)

// MermaidFormatter renders a dependency map as mermaid flowchart text.
var MermaidFormatter Formatter = FormatterFunc(func(w io.Writer, data any) error {
	m, ok := data.(*deps.Map)
	if !ok {
		return fmt.Errorf("mermaid format requires a dependency map, got %T", data)
	}
	_, err := io.WriteString(w, m.Mermaid())
	return err
})

// FormatMermaid renders a dependency map to stdout as a mermaid diagram.
func FormatMermaid(m *deps.Map) error {
	return MermaidFormatter.Format(os.Stdout, m)
}

// FormatIssues renders a validation result in the requested format.
// Table output gets one row per issue plus a summary line.
func FormatIssues(result *validate.Result, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, "":
		data = issuesToTableData(result)
	default:
		data = result
	}
	return formatter.Format(os.Stdout, data)
}

func issuesToTableData(result *validate.Result) Data {
	rows := make([][]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		rows = append(rows, []string{issue.Severity.String(), issue.Path, issue.Message})
	}
	return Data{
		Headers: []string{"Severity", "Path", "Message"},
		Rows:    rows,
	}
}

// FormatChangeset renders an update's changeset in the requested format.
func FormatChangeset(cs *differ.Changeset, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, "":
		data = changesetToTableData(cs)
	default:
		data = cs
	}
	return formatter.Format(os.Stdout, data)
}

func changesetToTableData(cs *differ.Changeset) Data {
	var rows [][]string
	for _, p := range cs.Added {
		rows = append(rows, []string{"+", p})
	}
	for _, p := range cs.Removed {
		rows = append(rows, []string{"-", p})
	}
	return Data{
		Headers:         []string{"Change", "Path"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignLeft},
	}
}

// FormatDeps renders a dependency map in the requested format. Table
// output shows the edges; nodes without edges appear only in json/yaml.
func FormatDeps(m *deps.Map, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, "":
		data = depsToTableData(m)
	default:
		data = m
	}
	return formatter.Format(os.Stdout, data)
}

func depsToTableData(m *deps.Map) Data {
	rows := make([][]string, 0, len(m.Edges))
	for _, edge := range m.Edges {
		rows = append(rows, []string{edge.From, edge.To})
	}
	return Data{
		Headers: []string{"From", "To"},
		Rows:    rows,
	}
}

// FormatAny renders arbitrary data in the requested format.
func FormatAny(data any, format Format) error {
	return NewFormatter(format).Format(os.Stdout, data)
}

// Summary prints a one-line issue count like "2 errors, 1 warning".
func Summary(result *validate.Result) string {
	return fmt.Sprintf("%d %s, %d %s",
		result.ErrorCount(), plural("error", result.ErrorCount()),
		result.WarningCount(), plural("warning", result.WarningCount()))
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
