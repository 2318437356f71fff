// Package reconcile brings an existing semantic map up to date with the
// filesystem reality captured by a freshly generated document.
//
// The engine's central invariant is preservation of human edits: an entry
// whose path exists in both documents is never rewritten, even when the
// classifier would describe that file differently today. Only additions and
// removals touch the document, and the result is sorted so repeated runs
// converge to identical output.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/agentstation/semmap/pkg/differ"
	"github.com/agentstation/semmap/pkg/logging"
	"github.com/agentstation/semmap/pkg/paths"
	"github.com/agentstation/semmap/pkg/semmap"
)

// Result carries the reconciled document together with the changeset that
// produced it.
type Result struct {
	Document  *semmap.Document
	Changeset *differ.Changeset
}

// Reconcile merges the fresh document's view of the codebase into existing.
// Fresh entry paths are scan-root-relative; prefix translates them into the
// existing document's namespace (empty prefix = no-op). The inputs are not
// mutated.
func Reconcile(existing, fresh *semmap.Document, prefix string) *Result {
	cs := differ.Compute(existing, fresh, prefix)

	doc := existing.Clone()
	removeDeleted(doc, cs.Removed)
	pruneEmptyLayers(doc)
	insertAdded(doc, fresh, cs.Added, prefix)
	normalize(doc)

	return &Result{Document: doc, Changeset: cs}
}

// removeDeleted drops every entry whose path was removed, scanning all
// layers. A path should only appear once, but removal is defensive and not
// restricted to the first match.
func removeDeleted(doc *semmap.Document, removed []string) {
	if len(removed) == 0 {
		return
	}

	removedSet := make(map[string]struct{}, len(removed))
	for _, p := range removed {
		removedSet[p] = struct{}{}
	}

	for i := range doc.Layers {
		kept := doc.Layers[i].Entries[:0]
		for _, entry := range doc.Layers[i].Entries {
			if _, gone := removedSet[entry.Path]; !gone {
				kept = append(kept, entry)
			}
		}
		doc.Layers[i].Entries = kept
	}
}

// insertAdded clones each added path's entry out of the fresh document,
// rewrites its path into the document namespace, and appends it to the layer
// matching the fresh document's layer number, creating the layer if needed.
func insertAdded(doc, fresh *semmap.Document, added []string, prefix string) {
	if len(added) == 0 {
		return
	}

	freshLayers := fresh.PathToLayer()
	staged := make(map[uint8][]semmap.FileEntry)

	for _, path := range added {
		lookup := paths.StripPrefixForLookup(prefix, path)

		entry, ok := fresh.FindEntry(lookup)
		if !ok {
			// Unreachable when the changeset was derived from fresh, but an
			// inconsistent fresh document is skipped rather than fatal.
			logging.Debug().Str("path", path).Msg("Added path missing from fresh document, skipping")
			continue
		}

		clone := entry.Clone()
		clone.Path = path
		staged[freshLayers[lookup]] = append(staged[freshLayers[lookup]], clone)
	}

	for number, entries := range staged {
		layer := findLayer(doc, number)
		if layer == nil {
			doc.Layers = append(doc.Layers, semmap.NewLayer(number, fmt.Sprintf("Layer %d", number)))
			layer = &doc.Layers[len(doc.Layers)-1]
		}
		layer.Entries = append(layer.Entries, entries...)
	}
}

// normalize sorts layers by ascending number and each layer's entries by
// path. Hash-based staging makes insertion order unspecified across runs;
// sorting is what guarantees idempotent output.
func normalize(doc *semmap.Document) {
	sort.SliceStable(doc.Layers, func(i, j int) bool {
		return doc.Layers[i].Number < doc.Layers[j].Number
	})
	for i := range doc.Layers {
		entries := doc.Layers[i].Entries
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Path < entries[b].Path
		})
	}
}

// pruneEmptyLayers removes layers with no entries. Empty layers are never
// persisted.
func pruneEmptyLayers(doc *semmap.Document) {
	kept := doc.Layers[:0]
	for _, layer := range doc.Layers {
		if len(layer.Entries) > 0 {
			kept = append(kept, layer)
		}
	}
	doc.Layers = kept
}

// findLayer returns a pointer to the layer with the given number, or nil.
func findLayer(doc *semmap.Document, number uint8) *semmap.Layer {
	for i := range doc.Layers {
		if doc.Layers[i].Number == number {
			return &doc.Layers[i]
		}
	}
	return nil
}
