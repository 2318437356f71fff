package semmap

// Clone returns a deep copy of the document. Reconciliation works on a clone
// so callers keep an unmodified view of the original.
func (d *Document) Clone() *Document {
	clone := &Document{
		ProjectName: d.ProjectName,
		Purpose:     d.Purpose,
	}

	if d.Legend != nil {
		clone.Legend = make([]LegendEntry, len(d.Legend))
		copy(clone.Legend, d.Legend)
	}

	if d.Layers != nil {
		clone.Layers = make([]Layer, len(d.Layers))
		for i, layer := range d.Layers {
			clone.Layers[i] = layer.Clone()
		}
	}

	return clone
}

// Clone returns a deep copy of the layer.
func (l Layer) Clone() Layer {
	clone := Layer{Number: l.Number, Name: l.Name}
	if l.Entries != nil {
		clone.Entries = make([]FileEntry, len(l.Entries))
		for i, entry := range l.Entries {
			clone.Entries[i] = entry.Clone()
		}
	}
	return clone
}

// Clone returns a deep copy of the file entry.
func (e FileEntry) Clone() FileEntry {
	clone := e
	if e.Exports != nil {
		clone.Exports = make([]string, len(e.Exports))
		copy(clone.Exports, e.Exports)
	}
	return clone
}
