// Package classify infers architectural roles for source files. Given a
// file's path and content it guesses a stereotype, a layer number, and a
// WHAT/WHY description, producing the fresh document that reconciliation
// compares against.
package classify

import (
	"path/filepath"
	"strings"
)

// Stereotype is an architectural role guessed from a file's path and content.
type Stereotype int

// Architectural stereotypes, ordered roughly by how early they are checked.
const (
	StereotypeUnknown Stereotype = iota
	StereotypeConfig
	StereotypeEntrypoint
	StereotypeEntity
	StereotypeService
	StereotypeRepository
	StereotypeHandler
	StereotypeUtility
	StereotypeParser
	StereotypeFormatter
	StereotypeError
	StereotypeCLI
	StereotypeTest
)

// String returns the stereotype name.
func (s Stereotype) String() string {
	switch s {
	case StereotypeConfig:
		return "config"
	case StereotypeEntrypoint:
		return "entrypoint"
	case StereotypeEntity:
		return "entity"
	case StereotypeService:
		return "service"
	case StereotypeRepository:
		return "repository"
	case StereotypeHandler:
		return "handler"
	case StereotypeUtility:
		return "utility"
	case StereotypeParser:
		return "parser"
	case StereotypeFormatter:
		return "formatter"
	case StereotypeError:
		return "error"
	case StereotypeCLI:
		return "cli"
	case StereotypeTest:
		return "test"
	default:
		return "unknown"
	}
}

// Classify guesses the stereotype for a file. Checks run from the most
// reliable signal (file name) to the weakest (struct density).
func Classify(path, content string) Stereotype {
	lower := strings.ToLower(path)

	if s, ok := classifyByFilename(lower, path); ok {
		return s
	}
	if s, ok := classifyByImports(content); ok {
		return s
	}
	if s, ok := classifyByNamePattern(lower, content); ok {
		return s
	}
	if isMostlyStructs(content) {
		return StereotypeEntity
	}

	return StereotypeUnknown
}

// Why returns the WHY description associated with a stereotype.
func (s Stereotype) Why() string {
	switch s {
	case StereotypeConfig:
		return "Centralizes project configuration."
	case StereotypeEntrypoint:
		return "Provides application entry point."
	case StereotypeEntity:
		return "Defines domain data structures."
	case StereotypeService:
		return "Orchestrates business logic."
	case StereotypeRepository:
		return "Handles data persistence."
	case StereotypeHandler:
		return "Handles HTTP/API requests."
	case StereotypeUtility:
		return "Provides reusable helper functions."
	case StereotypeParser:
		return "Parses input into structured data."
	case StereotypeFormatter:
		return "Formats data for output."
	case StereotypeError:
		return "Defines error types and handling."
	case StereotypeCLI:
		return "Defines command-line interface."
	case StereotypeTest:
		return "Verifies correctness."
	default:
		return "Supports application functionality."
	}
}

func classifyByFilename(lower, path string) (Stereotype, bool) {
	if isConfigFile(lower, path) {
		return StereotypeConfig, true
	}
	if strings.Contains(lower, "test") || strings.Contains(lower, "spec") {
		return StereotypeTest, true
	}
	if strings.HasSuffix(lower, "main.rs") || strings.HasSuffix(lower, "lib.rs") ||
		strings.HasSuffix(lower, "main.go") {
		return StereotypeEntrypoint, true
	}
	if strings.Contains(lower, "error") {
		return StereotypeError, true
	}
	return StereotypeUnknown, false
}

func classifyByImports(content string) (Stereotype, bool) {
	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "use clap") || strings.HasPrefix(t, "use structopt") ||
			strings.Contains(t, "spf13/cobra"):
			return StereotypeCLI, true
		case strings.HasPrefix(t, "use axum") || strings.HasPrefix(t, "use actix"):
			return StereotypeHandler, true
		case strings.HasPrefix(t, "use diesel") || strings.HasPrefix(t, "use sqlx"):
			return StereotypeRepository, true
		}
	}
	return StereotypeUnknown, false
}

func classifyByNamePattern(lower, content string) (Stereotype, bool) {
	hasRegex := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "use regex") {
			hasRegex = true
			break
		}
	}

	switch {
	case strings.Contains(lower, "parse") || hasRegex:
		return StereotypeParser, true
	case strings.Contains(lower, "format") || strings.Contains(lower, "render"):
		return StereotypeFormatter, true
	case strings.Contains(lower, "util") || strings.Contains(lower, "helper"):
		return StereotypeUtility, true
	case strings.Contains(lower, "types") || strings.Contains(lower, "model"):
		return StereotypeEntity, true
	case strings.Contains(lower, "service") || strings.Contains(lower, "command"):
		return StereotypeService, true
	}
	return StereotypeUnknown, false
}

func isConfigFile(lower, path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "toml", "yaml", "yml", "json":
		return true
	}
	return strings.Contains(lower, "config") || strings.Contains(lower, "cargo")
}

// isMostlyStructs reports whether the file is dominated by type definitions,
// the weakest entity signal.
func isMostlyStructs(content string) bool {
	structs := strings.Count(content, "pub struct ") + strings.Count(content, "type ")
	fns := strings.Count(content, "pub fn ") + strings.Count(content, "func ")
	return structs > 2 && structs > fns
}
