package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/wahlandcase/subjectlens/internal/models"
	"github.com/wahlandcase/subjectlens/pkg/subject"
)

func TestKindLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"feat: add thing", "feat"},
		{"change!: break thing", "change!"},
		{"Release v1.0.0", "release"},
		{"Merge #12", "pr"},
		{"fixup! wip", "fixup"},
		{"Update :sub to abc123", "update"},
		{"Split 'rust/' into commit 'abc'", "split"},
		{"Remove old cruft", "remove"},
		{"Move files around", "rename"},
		{"Revert the revert", "revert"},
		{"???", "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindLabel(subject.Classify(tt.input)), "input %q", tt.input)
	}
}

func TestPlainCommit(t *testing.T) {
	e := models.NewCommitEntry("abc1234", "feat(core): add payment flow")

	line := PlainCommit(e, true)
	assert.Contains(t, line, "abc1234")
	assert.Contains(t, line, "[feat]")
	assert.Contains(t, line, "add payment flow (core)")

	glyphed := PlainCommit(e, false)
	assert.Contains(t, glyphed, e.Subject.Icon())
	assert.NotContains(t, glyphed, "[feat]")
}

// Multibyte descriptions must truncate to the same visible length as
// ASCII ones of equal rune count.
func TestRenderCommitTruncatesByRunes(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	plain := models.NewCommitEntry("abc1234", "docs: "+strings.Repeat("a", 40))
	umlaut := models.NewCommitEntry("abc1234", "docs: "+strings.Repeat("ä", 40))

	const width = 40
	got := RenderCommit(plain, false, true, width)
	gotUmlaut := RenderCommit(umlaut, false, true, width)

	assert.Contains(t, got, "…")
	assert.Contains(t, gotUmlaut, "…")
	assert.Equal(t, utf8.RuneCountInString(got), utf8.RuneCountInString(gotUmlaut))
}
