package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/subjectlens/internal/models"
	"github.com/wahlandcase/subjectlens/pkg/subject"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// KindLabel returns a short textual tag for a classified subject, used in
// the detail pane and as the ASCII stand-in for glyphs
func KindLabel(s subject.Subject) string {
	switch v := s.(type) {
	case subject.ConventionalCommit:
		if v.Breaking {
			return v.Category.String() + "!"
		}
		return v.Category.String()
	case subject.Fixup:
		return "fixup"
	case subject.PullRequest:
		return "pr"
	case subject.Release:
		return "release"
	case subject.SubtreeCommit:
		switch v.Op.Kind {
		case subject.SubtreeImport:
			return "import"
		case subject.SubtreeSplit:
			return "split"
		default:
			return "update"
		}
	case subject.Remove:
		return "remove"
	case subject.Rename:
		return "rename"
	case subject.Revert:
		return "revert"
	default:
		return "-"
	}
}

// Marker renders the leading column for a commit line: the subject glyph,
// or a bracketed label when the terminal cannot show glyphs
func Marker(s subject.Subject, ascii bool) string {
	if ascii {
		return fmt.Sprintf("%-10s", "["+KindLabel(s)+"]")
	}
	return s.Icon()
}

// RenderCommit renders one history line: marker, short hash, description
// and optional scope, truncated to width
func RenderCommit(e models.CommitEntry, selected, ascii bool, width int) string {
	hashStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	textStyle := lipgloss.NewStyle().Foreground(SubjectColor(e.Subject))
	scopeStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	cursor := "  "
	if selected {
		cursor = lipgloss.NewStyle().Foreground(ColorCyan).Render("❯ ")
		textStyle = textStyle.Bold(true)
	}

	text := e.Subject.Description()
	suffix := ""
	if scope, ok := e.Subject.Scope(); ok {
		suffix = " (" + scope + ")"
	}

	marker := Marker(e.Subject, ascii)
	plainLen := 2 + utf8.RuneCountInString(e.Hash) + 1 + utf8.RuneCountInString(marker) + 1 +
		utf8.RuneCountInString(text) + utf8.RuneCountInString(suffix)
	if width > 0 && plainLen > width {
		keep := utf8.RuneCountInString(text) - (plainLen - width) - 1
		if keep < 0 {
			keep = 0
		}
		text = truncate(text, keep) + "…"
	}

	return cursor +
		hashStyle.Render(e.Hash) + " " +
		marker + " " +
		textStyle.Render(text) +
		scopeStyle.Render(suffix)
}

// PlainCommit renders a history line without styling, for --plain output
func PlainCommit(e models.CommitEntry, ascii bool) string {
	line := e.Hash + " " + Marker(e.Subject, ascii) + " " + e.Subject.Description()
	if scope, ok := e.Subject.Scope(); ok {
		line += " (" + scope + ")"
	}
	return line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
