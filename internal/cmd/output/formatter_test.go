package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/semmap/internal/deps"
)

type sampleRow struct {
	FilePath string `json:"file_path"`
	Count    int    `json:"count"`
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatJSON).Format(&buf, sampleRow{FilePath: "src/a.rs", Count: 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"file_path": "src/a.rs"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatYAML).Format(&buf, sampleRow{FilePath: "src/a.rs", Count: 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "file_path: src/a.rs")
}

func TestTableFormatterWithData(t *testing.T) {
	var buf bytes.Buffer
	data := Data{
		Headers: []string{"Path", "Count"},
		Rows:    [][]string{{"src/a.rs", "2"}},
	}
	err := NewFormatter(FormatTable).Format(&buf, data)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "src/a.rs")
}

func TestTableFormatterReflectsStructSlice(t *testing.T) {
	var buf bytes.Buffer
	rows := []sampleRow{{FilePath: "src/a.rs", Count: 1}, {FilePath: "src/b.rs", Count: 3}}
	err := NewFormatter(FormatTable).Format(&buf, rows)
	require.NoError(t, err)
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "file path")
	assert.Contains(t, out, "src/b.rs")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatTable).Format(&buf, map[string]int{"added": 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"added": 2`)
}

func TestMermaidFormatter(t *testing.T) {
	var buf bytes.Buffer
	m := &deps.Map{
		Nodes: []deps.Node{{Path: "src/main.rs", Layer: 1}, {Path: "src/parser.rs", Layer: 2}},
		Edges: []deps.Edge{{From: "src/main.rs", To: "src/parser.rs", Kind: deps.KindImport}},
	}

	err := MermaidFormatter.Format(&buf, m)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `src_main_rs["main.rs"]`)
	assert.Contains(t, out, "src_main_rs --> src_parser_rs")
}

func TestMermaidFormatterRejectsOtherData(t *testing.T) {
	var buf bytes.Buffer
	err := MermaidFormatter.Format(&buf, "not a map")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency map")
}
