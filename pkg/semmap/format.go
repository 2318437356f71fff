package semmap

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Markdown serializes the document into its canonical text form, using the
// em-dash separators the parser treats as canonical. Layers and entries are
// emitted in their current order; the serializer never re-sorts.
func (d *Document) Markdown() string {
	var b strings.Builder

	writeHeader(&b, d)
	writeLegend(&b, d)
	writeLayers(&b, d)

	return b.String()
}

func writeHeader(b *strings.Builder, d *Document) {
	fmt.Fprintf(b, "# %s — Semantic Map\n\n", d.ProjectName)

	if d.Purpose != "" {
		fmt.Fprintf(b, "**Purpose:** %s\n\n", d.Purpose)
	}
}

func writeLegend(b *strings.Builder, d *Document) {
	if len(d.Legend) == 0 {
		return
	}

	b.WriteString("## Legend\n\n")

	for _, entry := range d.Legend {
		fmt.Fprintf(b, "`[%s]` %s\n\n", entry.Tag, entry.Definition)
	}
}

func writeLayers(b *strings.Builder, d *Document) {
	for _, layer := range d.Layers {
		fmt.Fprintf(b, "## Layer %d — %s\n\n", layer.Number, layer.Name)

		for _, entry := range layer.Entries {
			writeEntry(b, entry)
		}
	}
}

func writeEntry(b *strings.Builder, entry FileEntry) {
	fmt.Fprintf(b, "`%s`\n", entry.Path)
	fmt.Fprintf(b, "%s\n", entry.Description.Render())

	if len(entry.Exports) > 0 {
		fmt.Fprintf(b, "→ Exports: %s\n", strings.Join(entry.Exports, ", "))
	}

	if entry.Touch != "" {
		fmt.Fprintf(b, "→ Touch: %s\n", entry.Touch)
	}

	b.WriteString("\n")
}

// Render joins the WHAT and WHY parts into the single description line the
// document format uses.
func (desc Description) Render() string {
	if desc.Why == "" {
		return desc.What
	}
	return desc.What + " " + desc.Why
}

// JSON serializes the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML serializes the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.MarshalWithOptions(d,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}

// TOML serializes the document as TOML.
func (d *Document) TOML() ([]byte, error) {
	return toml.Marshal(d)
}
