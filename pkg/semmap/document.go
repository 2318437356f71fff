package semmap

// Document is the in-memory representation of a semantic map file.
type Document struct {
	ProjectName string        `json:"project_name" yaml:"project_name" toml:"project_name"` // Title of the mapped project (must not be empty)
	Purpose     string        `json:"purpose" yaml:"purpose" toml:"purpose"`           // One-line purpose statement (may be empty)
	Legend      []LegendEntry `json:"legend" yaml:"legend" toml:"legend"`             // Tag definitions, in document order
	Layers      []Layer       `json:"layers" yaml:"layers" toml:"layers"`             // Architectural layers, conventionally in ascending number order
}

// LegendEntry defines one tag used in entry annotations.
type LegendEntry struct {
	Tag        string `json:"tag" yaml:"tag" toml:"tag"`               // Short uppercase code
	Definition string `json:"definition" yaml:"definition" toml:"definition"` // Free-text definition
}

// Layer groups the file entries of one architectural tier.
type Layer struct {
	Number  uint8       `json:"number" yaml:"number" toml:"number"` // Layer number, conventionally 0-255
	Name    string      `json:"name" yaml:"name" toml:"name"`     // Display name
	Entries []FileEntry `json:"entries" yaml:"entries" toml:"entries"`
}

// FileEntry is the description record for one source file. Path is the
// entry's identity key and must be unique across the whole document.
type FileEntry struct {
	Path        string      `json:"path" yaml:"path" toml:"path"` // Repository-relative, forward slashes
	Description Description `json:"description" yaml:"description" toml:"description"`
	Exports     []string    `json:"exports,omitempty" yaml:"exports,omitempty" toml:"exports,omitempty"` // Exported symbols; nil means absent
	Touch       string      `json:"touch,omitempty" yaml:"touch,omitempty" toml:"touch,omitempty"`     // Caution note; empty means absent
}

// Description is the two-part WHAT/WHY text of a file entry.
type Description struct {
	What string `json:"what" yaml:"what" toml:"what"` // One normalized sentence ending in a period
	Why  string `json:"why" yaml:"why" toml:"why"`   // Zero or more trailing sentences
}

// New creates an empty document with the given title and purpose.
func New(projectName, purpose string) *Document {
	return &Document{
		ProjectName: projectName,
		Purpose:     purpose,
	}
}

// NewLayer creates an empty layer with the given number and name.
func NewLayer(number uint8, name string) Layer {
	return Layer{Number: number, Name: name}
}

// NewFileEntry creates a file entry with the given path and description parts.
func NewFileEntry(path, what, why string) FileEntry {
	return FileEntry{
		Path:        path,
		Description: Description{What: what, Why: why},
	}
}

// AllPaths returns every entry path across all layers, in layer-then-entry
// order. Paths are not deduplicated; callers needing a set must dedupe.
func (d *Document) AllPaths() []string {
	var paths []string
	for _, layer := range d.Layers {
		for _, entry := range layer.Entries {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// FindEntry returns the first entry with the given path, scanning layers in
// order. The second return value reports whether a match was found.
func (d *Document) FindEntry(path string) (*FileEntry, bool) {
	for i := range d.Layers {
		for j := range d.Layers[i].Entries {
			if d.Layers[i].Entries[j].Path == path {
				return &d.Layers[i].Entries[j], true
			}
		}
	}
	return nil, false
}

// PathToLayer maps every entry path to its layer number. If a path appears in
// more than one layer the last occurrence wins; the uniqueness violation is a
// validation concern, not resolved here.
func (d *Document) PathToLayer() map[string]uint8 {
	m := make(map[string]uint8)
	for _, layer := range d.Layers {
		for _, entry := range layer.Entries {
			m[entry.Path] = layer.Number
		}
	}
	return m
}

// EntryCount returns the total number of file entries across all layers.
func (d *Document) EntryCount() int {
	n := 0
	for _, layer := range d.Layers {
		n += len(layer.Entries)
	}
	return n
}
