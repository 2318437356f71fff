package semmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/semmap/pkg/semmap"
)

func testDocument() *semmap.Document {
	doc := semmap.New("demo", "A demo project.")
	doc.Layers = []semmap.Layer{
		{
			Number: 0,
			Name:   "Config",
			Entries: []semmap.FileEntry{
				semmap.NewFileEntry("Cargo.toml", "Defines dependencies.", "Needed for build."),
			},
		},
		{
			Number: 2,
			Name:   "Domain",
			Entries: []semmap.FileEntry{
				semmap.NewFileEntry("src/lib.rs", "Library root.", "Exports the public API."),
				semmap.NewFileEntry("src/types.rs", "Defines data structures.", ""),
			},
		},
	}
	return doc
}

func TestAllPathsOrder(t *testing.T) {
	doc := testDocument()
	assert.Equal(t, []string{"Cargo.toml", "src/lib.rs", "src/types.rs"}, doc.AllPaths())
}

func TestAllPathsNoDedupe(t *testing.T) {
	doc := testDocument()
	doc.Layers[1].Entries = append(doc.Layers[1].Entries,
		semmap.NewFileEntry("Cargo.toml", "Duplicate.", ""))
	assert.Len(t, doc.AllPaths(), 4)
}

func TestFindEntry(t *testing.T) {
	doc := testDocument()

	entry, ok := doc.FindEntry("src/lib.rs")
	assert.True(t, ok)
	assert.Equal(t, "Library root.", entry.Description.What)

	_, ok = doc.FindEntry("missing.rs")
	assert.False(t, ok)
}

func TestFindEntryFirstMatchWins(t *testing.T) {
	doc := testDocument()
	doc.Layers[1].Entries = append(doc.Layers[1].Entries,
		semmap.NewFileEntry("Cargo.toml", "Shadowed duplicate.", ""))

	entry, ok := doc.FindEntry("Cargo.toml")
	assert.True(t, ok)
	assert.Equal(t, "Defines dependencies.", entry.Description.What)
}

func TestPathToLayer(t *testing.T) {
	doc := testDocument()
	m := doc.PathToLayer()

	assert.Equal(t, uint8(0), m["Cargo.toml"])
	assert.Equal(t, uint8(2), m["src/lib.rs"])
	assert.Len(t, m, 3)
}

func TestPathToLayerLastWriteWins(t *testing.T) {
	doc := testDocument()
	doc.Layers[1].Entries = append(doc.Layers[1].Entries,
		semmap.NewFileEntry("Cargo.toml", "Duplicate.", ""))

	m := doc.PathToLayer()
	assert.Equal(t, uint8(2), m["Cargo.toml"])
}

func TestEntryCount(t *testing.T) {
	assert.Equal(t, 3, testDocument().EntryCount())
	assert.Equal(t, 0, semmap.New("empty", "").EntryCount())
}
