package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/semmap/pkg/reconcile"
	"github.com/agentstation/semmap/pkg/semmap"
)

func entry(path, what, why string) semmap.FileEntry {
	return semmap.NewFileEntry(path, what, why)
}

func layer(number uint8, name string, entries ...semmap.FileEntry) semmap.Layer {
	l := semmap.NewLayer(number, name)
	l.Entries = entries
	return l
}

func document(layers ...semmap.Layer) *semmap.Document {
	doc := semmap.New("test", "Test project.")
	doc.Layers = layers
	return doc
}

func TestReconcileAddsNewFileInNewLayer(t *testing.T) {
	existing := document(layer(0, "Config", entry("Cargo.toml", "Manifest.", "Build config.")))
	fresh := document(
		layer(0, "Config", entry("Cargo.toml", "Manifest.", "Build config.")),
		layer(1, "Core", entry("lib.rs", "Library root.", "Entry point.")),
	)

	result := reconcile.Reconcile(existing, fresh, "")
	doc := result.Document

	require.Len(t, doc.Layers, 2)
	assert.Equal(t, uint8(0), doc.Layers[0].Number)
	assert.Equal(t, uint8(1), doc.Layers[1].Number)

	// Layer 0 untouched
	assert.Equal(t, "Config", doc.Layers[0].Name)
	require.Len(t, doc.Layers[0].Entries, 1)
	assert.Equal(t, "Cargo.toml", doc.Layers[0].Entries[0].Path)

	added, ok := doc.FindEntry("lib.rs")
	require.True(t, ok)
	assert.Equal(t, "Library root.", added.Description.What)

	assert.Equal(t, []string{"lib.rs"}, result.Changeset.Added)
}

func TestReconcileNewLayerGetsDefaultName(t *testing.T) {
	existing := document(layer(0, "Config", entry("a.toml", "A.", "")))
	fresh := document(
		layer(0, "Config", entry("a.toml", "A.", "")),
		layer(3, "Utilities", entry("util.rs", "Helpers.", "")),
	)

	doc := reconcile.Reconcile(existing, fresh, "").Document

	require.Len(t, doc.Layers, 2)
	assert.Equal(t, "Layer 3", doc.Layers[1].Name)
}

func TestReconcileRemovesDeletedAndPreservesDescriptions(t *testing.T) {
	existing := document(layer(2, "Domain",
		entry("keep.rs", "Custom WHAT.", "Custom WHY."),
		entry("gone.rs", "Old.", "Gone."),
	))
	fresh := document(layer(2, "Domain", entry("keep.rs", "Generated WHAT.", "Generated WHY.")))

	result := reconcile.Reconcile(existing, fresh, "")
	doc := result.Document

	_, ok := doc.FindEntry("gone.rs")
	assert.False(t, ok)

	kept, ok := doc.FindEntry("keep.rs")
	require.True(t, ok)
	assert.Equal(t, "Custom WHAT.", kept.Description.What)
	assert.Equal(t, "Custom WHY.", kept.Description.Why)

	assert.Equal(t, []string{"gone.rs"}, result.Changeset.Removed)
}

func TestReconcilePreservesExportsAndTouch(t *testing.T) {
	handEdited := entry("api.rs", "Public API.", "Stable surface.")
	handEdited.Exports = []string{"serve", "Client"}
	handEdited.Touch = "Coordinate breaking changes."

	existing := document(layer(2, "Domain", handEdited))
	regenerated := entry("api.rs", "Different.", "Different.")
	regenerated.Exports = []string{"other"}
	fresh := document(layer(2, "Domain", regenerated))

	doc := reconcile.Reconcile(existing, fresh, "").Document

	got, ok := doc.FindEntry("api.rs")
	require.True(t, ok)
	assert.Equal(t, []string{"serve", "Client"}, got.Exports)
	assert.Equal(t, "Coordinate breaking changes.", got.Touch)
	assert.Equal(t, "Public API.", got.Description.What)
}

func TestReconcilePrunesEmptiedLayers(t *testing.T) {
	existing := document(
		layer(0, "Config", entry("a.toml", "A.", "")),
		layer(2, "Domain", entry("gone.rs", "Old.", "")),
	)
	fresh := document(layer(0, "Config", entry("a.toml", "A.", "")))

	doc := reconcile.Reconcile(existing, fresh, "").Document

	require.Len(t, doc.Layers, 1)
	assert.Equal(t, uint8(0), doc.Layers[0].Number)
}

func TestReconcileWithPrefix(t *testing.T) {
	existing := document(layer(0, "Config", entry("crates/app/Cargo.toml", "Manifest.", "Build.")))
	fresh := document(
		layer(0, "Config", entry("Cargo.toml", "Manifest.", "Build.")),
		layer(1, "Core", entry("main.rs", "Entry point.", "Starts app.")),
	)

	doc := reconcile.Reconcile(existing, fresh, "crates/app").Document

	all := doc.AllPaths()
	assert.Contains(t, all, "crates/app/Cargo.toml")
	assert.Contains(t, all, "crates/app/main.rs")
	assert.NotContains(t, all, "main.rs")
}

func TestReconcilePathUniqueness(t *testing.T) {
	existing := document(layer(0, "Config", entry("a.toml", "A.", "")))
	fresh := document(
		layer(0, "Config", entry("a.toml", "A.", "")),
		layer(1, "Core", entry("b.rs", "B.", "")),
		layer(2, "Domain", entry("c.rs", "C.", "")),
	)

	doc := reconcile.Reconcile(existing, fresh, "").Document

	seen := make(map[string]int)
	for _, p := range doc.AllPaths() {
		seen[p]++
	}
	for p, n := range seen {
		assert.Equal(t, 1, n, "path %s appears %d times", p, n)
	}
}

func TestReconcileSortsLayersAndEntries(t *testing.T) {
	existing := document(
		layer(2, "Domain", entry("z.rs", "Z.", ""), entry("a.rs", "A.", "")),
		layer(0, "Config", entry("m.toml", "M.", "")),
	)
	fresh := document(
		layer(0, "Config", entry("m.toml", "M.", "")),
		layer(2, "Domain", entry("z.rs", "Z.", ""), entry("a.rs", "A.", ""), entry("k.rs", "K.", "")),
	)

	doc := reconcile.Reconcile(existing, fresh, "").Document

	require.Len(t, doc.Layers, 2)
	assert.Equal(t, uint8(0), doc.Layers[0].Number)
	assert.Equal(t, uint8(2), doc.Layers[1].Number)

	var domainPaths []string
	for _, e := range doc.Layers[1].Entries {
		domainPaths = append(domainPaths, e.Path)
	}
	assert.Equal(t, []string{"a.rs", "k.rs", "z.rs"}, domainPaths)
}

func TestReconcileIsIdempotent(t *testing.T) {
	existing := document(layer(0, "Config", entry("Cargo.toml", "Manifest.", "Build.")))
	fresh := document(
		layer(0, "Config", entry("Cargo.toml", "Manifest.", "Build.")),
		layer(1, "Core", entry("lib.rs", "Library root.", "")),
		layer(4, "Tests", entry("tests/a.rs", "Tests.", ""), entry("tests/b.rs", "Tests.", "")),
	)

	once := reconcile.Reconcile(existing, fresh, "")
	twice := reconcile.Reconcile(once.Document, fresh, "")

	assert.Equal(t, once.Document, twice.Document)
	assert.True(t, twice.Changeset.IsEmpty())
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	existing := document(layer(0, "Config", entry("a.toml", "A.", ""), entry("gone.rs", "G.", "")))
	fresh := document(layer(0, "Config", entry("a.toml", "A.", "")))

	_ = reconcile.Reconcile(existing, fresh, "")

	require.Len(t, existing.Layers, 1)
	assert.Len(t, existing.Layers[0].Entries, 2)
}

func TestReconcileEmptyFreshRemovesEverything(t *testing.T) {
	existing := document(
		layer(0, "Config", entry("a.toml", "A.", "")),
		layer(2, "Domain", entry("b.rs", "B.", "")),
	)
	fresh := semmap.New("test", "Test project.")

	doc := reconcile.Reconcile(existing, fresh, "").Document

	assert.Empty(t, doc.Layers)
	assert.Empty(t, doc.AllPaths())
}
