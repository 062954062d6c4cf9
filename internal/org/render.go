package org

import (
	"strings"
	"time"

	"github.com/alexanderramin/orgplant/internal/domain"
)

const timestampLayout = "2006-01-02 Mon"

// Timestamp renders t as an active org timestamp, e.g. <2024-06-14 Fri>.
func Timestamp(t time.Time) string {
	return "<" + t.Format(timestampLayout) + ">"
}

// RenderLines renders a project tree as org markup, one line per element.
// Planning lines sit on the line after their headline at column zero, and
// the property drawer follows the root's planning line.
func RenderLines(tree *domain.ProjectTree) []string {
	lines := headlineLines(tree.Root)
	if len(tree.Properties) > 0 {
		lines = append(lines, ":PROPERTIES:")
		for _, p := range tree.Properties {
			lines = append(lines, strings.TrimRight(":"+p.Key+": "+p.Value, " "))
		}
		lines = append(lines, ":END:")
	}
	for _, sub := range tree.Subtasks {
		lines = append(lines, headlineLines(sub)...)
	}
	return lines
}

// Render is RenderLines joined into a newline-terminated block.
func Render(tree *domain.ProjectTree) string {
	return strings.Join(RenderLines(tree), "\n") + "\n"
}

func headlineLines(h domain.HeadlineRecord) []string {
	parts := []string{strings.Repeat("*", h.Level)}
	if h.Todo != "" {
		parts = append(parts, h.Todo)
	}
	if h.Title != "" {
		parts = append(parts, h.Title)
	}
	lines := []string{strings.Join(parts, " ")}

	switch {
	case h.Deadline != nil:
		lines = append(lines, "DEADLINE: "+Timestamp(*h.Deadline))
	case h.Scheduled != nil:
		lines = append(lines, "SCHEDULED: "+Timestamp(*h.Scheduled))
	}
	return lines
}
