package org

import (
	"regexp"
	"strings"
)

var (
	headlinePattern = regexp.MustCompile(`^(\*+)[ \t]+(.*)$`)
	todoPattern     = regexp.MustCompile(`^[A-Z][A-Z0-9_]*[ \t]+`)
	tagsPattern     = regexp.MustCompile(`[ \t]+:[[:alnum:]_@#%:]+:[ \t]*$`)
)

// Headline is one headline line of an outline document.
type Headline struct {
	Line  int // index into the document's lines
	Level int
	Text  string // everything after the stars, trimmed
}

// SplitLines breaks a document into lines, dropping the empty tail a
// trailing newline produces so that splicing works on real lines only.
func SplitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.Split(doc, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines is the inverse of SplitLines: a newline-terminated document,
// or the empty string for no lines.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// FindHeadline locates the first headline whose title matches the wanted
// text. Matching is case-insensitive and ignores a leading todo keyword and
// trailing tags, so "report" finds "** TODO Report :work:".
func FindHeadline(lines []string, title string) (Headline, bool) {
	want := strings.TrimSpace(title)
	for i, line := range lines {
		h, ok := parseHeadline(i, line)
		if !ok {
			continue
		}
		if matchesTitle(h.Text, want) {
			return h, true
		}
	}
	return Headline{}, false
}

// SubtreeEnd returns the index of the first line after the subtree rooted
// at the headline on line start, which is where a sibling would begin.
func SubtreeEnd(lines []string, start, level int) int {
	for i := start + 1; i < len(lines); i++ {
		if h, ok := parseHeadline(i, lines[i]); ok && h.Level <= level {
			return i
		}
	}
	return len(lines)
}

// Splice returns a new line slice with insert placed at index at.
func Splice(lines []string, at int, insert []string) []string {
	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at:]...)
	return out
}

func parseHeadline(i int, line string) (Headline, bool) {
	m := headlinePattern.FindStringSubmatch(line)
	if m == nil {
		return Headline{}, false
	}
	return Headline{Line: i, Level: len(m[1]), Text: strings.TrimSpace(m[2])}, true
}

func matchesTitle(text, want string) bool {
	text = tagsPattern.ReplaceAllString(text, "")
	if strings.EqualFold(text, want) {
		return true
	}
	return strings.EqualFold(todoPattern.ReplaceAllString(text, ""), want)
}
