// Package constants provides shared constants used throughout the semmap codebase.
// This includes file names, permissions, and classification defaults that should
// be consistent across the application.
package constants

import "os"

// File constants define document file defaults
const (
	// DefaultFileName is the conventional name of the semantic map document
	DefaultFileName = "SEMMAP.md"

	// FilePermissions is the permission mode for written documents
	FilePermissions os.FileMode = 0o644

	// DirPermissions is the permission mode for created directories
	DirPermissions os.FileMode = 0o755
)

// Layer constants define the conventional layer numbering produced by the
// classifier. Documents may use any numbering; these are generation defaults.
const (
	// LayerConfig holds manifests and configuration files
	LayerConfig uint8 = 0

	// LayerCore holds entry points and CLI surfaces
	LayerCore uint8 = 1

	// LayerDomain holds business logic and data types
	LayerDomain uint8 = 2

	// LayerUtilities holds helpers and shared infrastructure
	LayerUtilities uint8 = 3

	// LayerTests holds test files
	LayerTests uint8 = 4

	// DefaultLayer is where unclassifiable files land
	DefaultLayer = LayerDomain
)

// LayerNames maps the conventional layer numbers to their display names.
var LayerNames = []string{"Config", "Core", "Domain", "Utilities", "Tests"}

// LayerName returns the display name for a conventional layer number,
// or "Other" for numbers outside the generated range.
func LayerName(number uint8) string {
	if int(number) < len(LayerNames) {
		return LayerNames[number]
	}
	return "Other"
}
