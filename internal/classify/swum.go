package classify

import (
	"strings"
	"unicode"
)

// verbExpansions maps common identifier verbs to their third-person form
// used at the start of a generated description.
var verbExpansions = map[string]string{
	"get":       "Gets",
	"set":       "Sets",
	"is":        "Checks whether",
	"has":       "Checks whether it has",
	"new":       "Creates a new",
	"create":    "Creates",
	"build":     "Builds",
	"make":      "Makes",
	"parse":     "Parses",
	"format":    "Formats",
	"render":    "Renders",
	"load":      "Loads",
	"save":      "Saves",
	"read":      "Reads",
	"write":     "Writes",
	"find":      "Finds",
	"update":    "Updates",
	"delete":    "Deletes",
	"remove":    "Removes",
	"add":       "Adds",
	"insert":    "Inserts",
	"validate":  "Validates",
	"check":     "Checks",
	"compute":   "Computes",
	"calculate": "Calculates",
	"run":       "Runs",
	"handle":    "Handles",
	"process":   "Processes",
	"convert":   "Converts",
	"extract":   "Extracts",
	"generate":  "Generates",
	"scan":      "Scans",
	"walk":      "Walks",
	"merge":     "Merges",
	"split":     "Splits",
	"apply":     "Applies",
	"init":      "Initializes",
	"to":        "Converts to",
}

// SplitIdentifier breaks a snake_case or camelCase identifier into
// lowercase words. Digits stay attached to the preceding word.
func SplitIdentifier(ident string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}
	for _, r := range ident {
		switch {
		case r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// ExpandIdentifier turns a function or type identifier into a short
// sentence: "get_user_profile" becomes "Gets the user profile.".
func ExpandIdentifier(ident string) string {
	words := SplitIdentifier(ident)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	if verb, ok := verbExpansions[words[0]]; ok {
		b.WriteString(verb)
		if len(words) > 1 && needsArticle(words[0]) {
			b.WriteString(" the")
		}
		words = words[1:]
	} else {
		b.WriteString(capitalize(words[0]))
		words = words[1:]
	}
	for _, w := range words {
		b.WriteByte(' ')
		b.WriteString(w)
	}
	b.WriteByte('.')
	return b.String()
}

// needsArticle reports whether the expanded verb reads better with "the"
// before its object.
func needsArticle(verb string) bool {
	switch verb {
	case "is", "has", "new", "to", "init":
		return false
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
