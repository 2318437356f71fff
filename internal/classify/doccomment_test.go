package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDocCommentRustModuleDoc(t *testing.T) {
	content := "//! Parses markdown into documents.\n//! Second line ignored by sentence cut.\n\nuse std::fs;\n"
	assert.Equal(t, "Parses markdown into documents.", ExtractDocComment(content))
}

func TestExtractDocCommentRustItemDoc(t *testing.T) {
	content := "/// Walks the tree\npub fn walk() {}\n"
	assert.Equal(t, "Walks the tree.", ExtractDocComment(content))
}

func TestExtractDocCommentModuleDocWinsOverItemDoc(t *testing.T) {
	content := "//! Module summary.\n\n/// Item doc.\npub fn f() {}\n"
	assert.Equal(t, "Module summary.", ExtractDocComment(content))
}

func TestExtractDocCommentPythonDocstring(t *testing.T) {
	assert.Equal(t, "Loads fixtures.", ExtractDocComment(`"""Loads fixtures."""`+"\nimport os\n"))
	assert.Equal(t, "Runs the pipeline.", ExtractDocComment("\"\"\"\nRuns the pipeline.\n\"\"\"\n"))
}

func TestExtractDocCommentLeadingLineComment(t *testing.T) {
	content := "// Package scan walks directory trees. It skips hidden files.\npackage scan\n"
	assert.Equal(t, "Package scan walks directory trees.", ExtractDocComment(content))
}

func TestExtractDocCommentNone(t *testing.T) {
	assert.Equal(t, "", ExtractDocComment("fn main() {}\n"))
	assert.Equal(t, "", ExtractDocComment(""))
}

func TestExtractDocCommentShebangSkipped(t *testing.T) {
	content := "#!/usr/bin/env python\n# Entry script.\nprint('hi')\n"
	assert.Equal(t, "Entry script.", ExtractDocComment(content))
}
