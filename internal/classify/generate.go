package classify

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentstation/semmap/internal/scan"
	"github.com/agentstation/semmap/pkg/constants"
	"github.com/agentstation/semmap/pkg/logging"
	"github.com/agentstation/semmap/pkg/semmap"
)

// Config controls document generation.
type Config struct {
	// ProjectName overrides the name derived from the root directory.
	ProjectName string
	// Purpose is the document purpose line.
	Purpose string
	// Scan controls which files are considered.
	Scan scan.Options
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		Purpose: "Semantic map of the codebase.",
		Scan:    scan.DefaultOptions(),
	}
}

// defaultLegend is the tag legend every generated document starts with.
func defaultLegend() []semmap.LegendEntry {
	return []semmap.LegendEntry{
		{Tag: "ENTRY", Definition: "Application entry point"},
		{Tag: "CORE", Definition: "Core business logic"},
		{Tag: "TYPE", Definition: "Data structure definitions"},
		{Tag: "UTIL", Definition: "Utility and helper code"},
	}
}

// Generate scans root and builds a fresh document by classifying every
// discovered file. Layers with no entries are omitted.
func Generate(root string, cfg Config) (*semmap.Document, error) {
	files, err := scan.Files(root, cfg.Scan)
	if err != nil {
		return nil, err
	}

	name := cfg.ProjectName
	if name == "" {
		name = projectNameFor(root)
	}
	doc := semmap.New(name, cfg.Purpose)
	doc.Legend = defaultLegend()

	staged := make(map[uint8][]semmap.FileEntry)
	for _, rel := range files {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			logging.Debug().Str("path", rel).Err(err).Msg("skipping unreadable file")
			continue
		}
		entry, layer := classifyFile(rel, string(content))
		staged[layer] = append(staged[layer], entry)
	}

	for number := uint8(0); number < uint8(len(constants.LayerNames)); number++ {
		entries, ok := staged[number]
		if !ok {
			continue
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
		layer := semmap.NewLayer(number, constants.LayerName(number))
		layer.Entries = entries
		doc.Layers = append(doc.Layers, layer)
	}
	return doc, nil
}

// classifyFile builds a file entry and its layer from path and content.
func classifyFile(rel, content string) (semmap.FileEntry, uint8) {
	stereotype := Classify(rel, content)
	entry := semmap.NewFileEntry(rel, InferWhat(rel, content, stereotype), InferWhy(stereotype))
	entry.Exports = ExtractExports(rel, content)
	return entry, stereotype.Layer()
}

func projectNameFor(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	name := filepath.Base(abs)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "project"
	}
	return strings.TrimSpace(name)
}
