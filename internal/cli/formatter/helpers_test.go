package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var fmtNow = time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

func TestRelativeDateFrom(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", fmtNow, "Today"},
		{"tomorrow", fmtNow.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", fmtNow.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", fmtNow.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", fmtNow.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", fmtNow.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", fmtNow.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", fmtNow.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", fmtNow.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", fmtNow.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDateFrom(tt.input, fmtNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHumanDateFrom(t *testing.T) {
	past := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2022", HumanDateFrom(past, fmtNow))
	assert.Equal(t, "Today", HumanDateFrom(fmtNow, fmtNow))
	assert.Equal(t, "Yesterday", HumanDateFrom(fmtNow.AddDate(0, 0, -1), fmtNow))
}

func TestHumanTimestampFrom(t *testing.T) {
	assert.Equal(t, "Just now", HumanTimestampFrom(fmtNow.Add(-30*time.Second), fmtNow))
	assert.Equal(t, "5m ago", HumanTimestampFrom(fmtNow.Add(-5*time.Minute), fmtNow))
	assert.Equal(t, "3h ago", HumanTimestampFrom(fmtNow.Add(-3*time.Hour), fmtNow))
	assert.Equal(t, "Yesterday", HumanTimestampFrom(fmtNow.Add(-25*time.Hour), fmtNow))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "0b7fa2e1", stripANSI(TruncID("0b7fa2e1-9c44-4b1e-a2da-52c2e91a33f0")))
	assert.Equal(t, "short", stripANSI(TruncID("short")))
}

func TestRenderBox_ContainsContent(t *testing.T) {
	out := stripANSI(RenderBox("Preview", "hello"))
	assert.Contains(t, out, "PREVIEW")
	assert.Contains(t, out, "hello")
}
