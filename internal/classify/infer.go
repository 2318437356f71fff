package classify

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/semmap/pkg/constants"
)

// Layer maps a stereotype onto its layer number.
func (s Stereotype) Layer() uint8 {
	switch s {
	case StereotypeConfig:
		return constants.LayerConfig
	case StereotypeEntrypoint, StereotypeCLI:
		return constants.LayerCore
	case StereotypeUtility:
		return constants.LayerUtilities
	case StereotypeTest:
		return constants.LayerTests
	case StereotypeEntity, StereotypeService, StereotypeRepository,
		StereotypeHandler, StereotypeParser, StereotypeFormatter, StereotypeError:
		return constants.LayerDomain
	default:
		return constants.DefaultLayer
	}
}

// InferWhat derives the WHAT description for a file. A documentation
// comment wins when present; otherwise the file stem is expanded into a
// sentence, falling back to a generic line for opaque names.
func InferWhat(path, content string, s Stereotype) string {
	if doc := ExtractDocComment(content); doc != "" {
		return doc
	}
	stem := fileStem(path)
	if expanded := ExpandIdentifier(stem); expanded != "" && len(SplitIdentifier(stem)) > 1 {
		return expanded
	}
	switch s {
	case StereotypeConfig:
		return "Project configuration."
	case StereotypeEntrypoint:
		return "Application entry point."
	case StereotypeTest:
		return "Test suite."
	}
	if expanded := ExpandIdentifier(stem); expanded != "" {
		return expanded
	}
	return "Source file."
}

// InferWhy derives the WHY description from the stereotype.
func InferWhy(s Stereotype) string {
	return s.Why()
}

func fileStem(path string) string {
	base := filepath.Base(path)
	if idx := strings.Index(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}
