package classify

import "strings"

// ExtractDocComment pulls the leading documentation comment out of a
// source file. Rust module docs (`//!`), Rust/Go line docs (`///`, `//`)
// and Python docstrings are recognized; only the first sentence or line
// is returned so the result fits a one-line WHAT description.
func ExtractDocComment(content string) string {
	lines := strings.Split(content, "\n")

	if doc := extractLineDoc(lines, "//!"); doc != "" {
		return doc
	}
	if doc := extractLineDoc(lines, "///"); doc != "" {
		return doc
	}
	if doc := extractPythonDocstring(lines); doc != "" {
		return doc
	}
	return extractLeadingComment(lines)
}

// extractLineDoc collects the first contiguous block of lines starting
// with the given marker and returns its first sentence.
func extractLineDoc(lines []string, marker string) string {
	var parts []string
	started := false
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, marker) {
			started = true
			text := strings.TrimSpace(strings.TrimPrefix(t, marker))
			if text != "" {
				parts = append(parts, text)
			}
			continue
		}
		if started {
			break
		}
		if t != "" && !strings.HasPrefix(t, "//") && !strings.HasPrefix(t, "#") {
			break
		}
	}
	return firstSentence(strings.Join(parts, " "))
}

func extractPythonDocstring(lines []string) string {
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		for _, quote := range []string{`"""`, "'''"} {
			if !strings.HasPrefix(t, quote) {
				continue
			}
			body := strings.TrimPrefix(t, quote)
			if idx := strings.Index(body, quote); idx >= 0 {
				return firstSentence(strings.TrimSpace(body[:idx]))
			}
			// Multi-line docstring: first non-empty line is the summary.
			if s := strings.TrimSpace(body); s != "" {
				return firstSentence(s)
			}
			for _, next := range lines[i+1:] {
				nt := strings.TrimSpace(next)
				if strings.HasPrefix(nt, quote) {
					return ""
				}
				if nt != "" {
					return firstSentence(strings.TrimSuffix(nt, quote))
				}
			}
			return ""
		}
		return ""
	}
	return ""
}

// extractLeadingComment falls back to an ordinary `//` or `#` comment at
// the very top of the file.
func extractLeadingComment(lines []string) string {
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if strings.HasPrefix(t, "//") {
			return firstSentence(strings.TrimSpace(strings.TrimPrefix(t, "//")))
		}
		if strings.HasPrefix(t, "#!") {
			continue
		}
		if strings.HasPrefix(t, "#") {
			return firstSentence(strings.TrimSpace(strings.TrimPrefix(t, "#")))
		}
		return ""
	}
	return ""
}

// firstSentence cuts text at the first sentence boundary and makes sure
// the result ends with a period.
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if before, _, found := strings.Cut(text, ". "); found {
		return before + "."
	}
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text
}
