package deps

import (
	"fmt"
	"path"
	"strings"

	"github.com/agentstation/semmap/pkg/semmap"
)

// Mermaid renders the dependency map as a mermaid graph definition.
// Node labels show only the file name; ids are the sanitized full path.
func (m *Map) Mermaid() string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	for _, node := range m.Nodes {
		fmt.Fprintf(&b, "    %s[%q]\n", sanitizeID(node.Path), path.Base(node.Path))
	}
	for _, edge := range m.Edges {
		fmt.Fprintf(&b, "    %s %s %s\n", sanitizeID(edge.From), edge.Kind.arrow(), sanitizeID(edge.To))
	}
	return b.String()
}

func (k Kind) arrow() string {
	switch k {
	case KindTrait:
		return "-.->"
	case KindCall:
		return "==>"
	default:
		return "-->"
	}
}

var idSanitizer = strings.NewReplacer("/", "_", ".", "_", "-", "_")

func sanitizeID(p string) string {
	return idSanitizer.Replace(p)
}

// Violation reports an edge that points from a lower layer into a
// higher one. Lower-numbered layers must not depend on higher ones.
type Violation struct {
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
	FromLayer uint8  `json:"from_layer" yaml:"from_layer"`
	ToLayer   uint8  `json:"to_layer" yaml:"to_layer"`
}

// String formats the violation for human-readable output.
func (v Violation) String() string {
	return fmt.Sprintf("Layer violation: %s (L%d) depends on %s (L%d)", v.From, v.FromLayer, v.To, v.ToLayer)
}

// CheckLayerViolations finds edges whose target sits in a higher layer
// than their source. Edges touching untracked paths are ignored.
func (m *Map) CheckLayerViolations(doc *semmap.Document) []Violation {
	layers := doc.PathToLayer()
	var violations []Violation
	for _, edge := range m.Edges {
		from, fromOK := layers[edge.From]
		to, toOK := layers[edge.To]
		if fromOK && toOK && to > from {
			violations = append(violations, Violation{
				From:      edge.From,
				To:        edge.To,
				FromLayer: from,
				ToLayer:   to,
			})
		}
	}
	return violations
}
