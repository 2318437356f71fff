// Package semmap defines the semantic map document model along with its
// text parser and serializer.
//
// A semantic map is a human-editable markdown document describing the layered
// architecture of a codebase: a title, a purpose statement, an optional legend,
// and numbered layers of file entries. Each entry records a file's path, a
// two-part WHAT/WHY description, an optional export list, and an optional
// caution note.
//
// The parser is tolerant of minor formatting drift (hyphen vs. em dash
// separators, bold vs. plain purpose labels) so that hand-edited documents and
// documents written by older versions remain readable. The serializer emits
// the canonical form; re-parsing serializer output reproduces the document
// field for field.
package semmap
