package differ

import (
	"sort"

	"github.com/agentstation/semmap/pkg/paths"
	"github.com/agentstation/semmap/pkg/semmap"
)

// Compute diffs an existing document against a fresh one. Fresh paths are
// scan-root-relative and are translated into the existing document's
// namespace by prepending prefix before comparison. Result slices are sorted
// for deterministic output.
func Compute(existing, fresh *semmap.Document, prefix string) *Changeset {
	existingSet := pathSet(existing.AllPaths())

	freshSet := make(map[string]struct{})
	for _, p := range fresh.AllPaths() {
		freshSet[paths.PrefixPath(prefix, p)] = struct{}{}
	}

	cs := &Changeset{}
	for p := range freshSet {
		if _, ok := existingSet[p]; ok {
			cs.Kept = append(cs.Kept, p)
		} else {
			cs.Added = append(cs.Added, p)
		}
	}
	for p := range existingSet {
		if _, ok := freshSet[p]; !ok {
			cs.Removed = append(cs.Removed, p)
		}
	}

	sort.Strings(cs.Added)
	sort.Strings(cs.Removed)
	sort.Strings(cs.Kept)

	return cs
}

// pathSet deduplicates a path list into a set.
func pathSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, p := range list {
		set[p] = struct{}{}
	}
	return set
}
