package semmap

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agentstation/semmap/pkg/errors"
)

// Patterns accept both the canonical em dash the serializer emits and the
// plain hyphen produced by hand edits or older document versions. Compiled
// once at package load.
var (
	titleRe       = regexp.MustCompile(`^#\s+(.+?)\s*[—-]\s*Semantic Map`)
	purposeBoldRe = regexp.MustCompile(`\*\*Purpose:\*\*\s*(.+)`)
	purposeBareRe = regexp.MustCompile(`Purpose:\s*(.+)`)
	legendRe      = regexp.MustCompile("`\\[([A-Z]+)\\]`\\s+(.+)")
	layerRe       = regexp.MustCompile(`^##\s+Layer\s+(\d+)\s*[—-]\s*(.+)`)
)

// Parse converts semantic map text into a Document. The only fatal condition
// is a missing title line; every other unrecognized construct degrades to an
// empty or absent value rather than an error.
func Parse(content string) (*Document, error) {
	lines := strings.Split(content, "\n")
	idx := 0

	projectName, purpose, err := parseHeader(lines, &idx)
	if err != nil {
		return nil, err
	}

	legend := parseLegend(lines, &idx)
	layers := parseLayers(lines, &idx)

	return &Document{
		ProjectName: projectName,
		Purpose:     purpose,
		Legend:      legend,
		Layers:      layers,
	}, nil
}

// parseHeader scans for the title and purpose lines. The phase ends at the
// first legend or layer header. First match wins for both fields.
func parseHeader(lines []string, idx *int) (projectName, purpose string, err error) {
	for *idx < len(lines) {
		line := lines[*idx]

		if strings.HasPrefix(line, "## Legend") || strings.HasPrefix(line, "## Layer") {
			break
		}

		if projectName == "" {
			if m := titleRe.FindStringSubmatch(line); m != nil {
				projectName = m[1]
			}
		}

		if purpose == "" {
			if m := purposeBoldRe.FindStringSubmatch(line); m != nil {
				purpose = m[1]
			} else if m := purposeBareRe.FindStringSubmatch(line); m != nil {
				purpose = m[1]
			}
		}

		*idx++
	}

	if projectName == "" {
		pe := errors.NewParseError("", 1, "missing project title (# name — Semantic Map)")
		pe.Err = errors.ErrMissingTitle
		return "", "", pe
	}

	return projectName, purpose, nil
}

// parseLegend consumes `[TAG]` definition lines until the first layer header.
// Non-matching lines are skipped, not errors.
func parseLegend(lines []string, idx *int) []LegendEntry {
	var legend []LegendEntry

	for *idx < len(lines) {
		line := lines[*idx]

		if strings.HasPrefix(line, "## Layer") {
			break
		}

		if m := legendRe.FindStringSubmatch(line); m != nil {
			legend = append(legend, LegendEntry{Tag: m[1], Definition: m[2]})
		}

		*idx++
	}

	return legend
}

// parseLayers repeatedly matches layer headers and delegates to entry parsing
// for each layer body. Lines outside any recognized layer are skipped.
func parseLayers(lines []string, idx *int) []Layer {
	var layers []Layer

	for *idx < len(lines) {
		line := lines[*idx]

		if m := layerRe.FindStringSubmatch(line); m != nil {
			number := parseLayerNumber(m[1])
			name := strings.TrimSpace(m[2])

			*idx++
			entries := parseLayerEntries(lines, idx)
			layers = append(layers, Layer{Number: number, Name: name, Entries: entries})
		} else {
			*idx++
		}
	}

	return layers
}

func parseLayerNumber(s string) uint8 {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return uint8(n)
}
