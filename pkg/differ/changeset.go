// Package differ compares an existing semantic map against a freshly
// generated one and reports which entry paths appeared or disappeared.
package differ

import (
	"fmt"
	"strings"
)

// Changeset represents the path-level difference between two documents.
// Paths are expressed in the existing document's namespace.
type Changeset struct {
	// Added holds paths present only in the fresh document.
	Added []string `json:"added" yaml:"added"`
	// Removed holds paths present only in the existing document.
	Removed []string `json:"removed" yaml:"removed"`
	// Kept holds paths present in both; never rewritten by reconciliation.
	Kept []string `json:"kept" yaml:"kept"`
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Removed) > 0
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return !c.HasChanges()
}

// Summary returns counters for the changeset.
func (c *Changeset) Summary() (added, removed, kept int) {
	return len(c.Added), len(c.Removed), len(c.Kept)
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	if len(c.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(c.Added)))
	}
	if len(c.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(c.Removed)))
	}
	return fmt.Sprintf("Files: %s", strings.Join(parts, ", "))
}
