package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/subjectlens/pkg/subject"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// SubjectColor picks a color for a classified subject line
func SubjectColor(s subject.Subject) lipgloss.Color {
	switch v := s.(type) {
	case subject.ConventionalCommit:
		if v.Breaking {
			return ColorRed
		}
		return CategoryColor(v.Category)
	case subject.Release:
		return ColorMagenta
	case subject.PullRequest:
		return ColorBlue
	case subject.SubtreeCommit:
		return ColorPurple
	case subject.Fixup:
		return ColorDarkGray
	case subject.Remove:
		return ColorOrange
	case subject.Rename:
		return ColorCyan
	case subject.Revert:
		return ColorOrange
	default:
		return ColorWhite
	}
}

// CategoryColor maps a conventional-commit category to a color
func CategoryColor(c subject.Category) lipgloss.Color {
	switch c {
	case subject.Feat:
		return ColorGreen
	case subject.Fix, subject.Security:
		return ColorRed
	case subject.Docs, subject.Style:
		return ColorCyan
	case subject.Refactor, subject.Perf, subject.Improvement, subject.Change:
		return ColorYellow
	case subject.Build, subject.Ci, subject.Deps, subject.Chore, subject.Repo, subject.Dev:
		return ColorBlue
	case subject.Test:
		return ColorPurple
	case subject.Deprecate, subject.Archive:
		return ColorOrange
	default:
		return ColorWhite
	}
}

// AsciiOnly reports whether the terminal profile cannot render the
// Nerd-Font glyph set, in which case bracketed labels are used instead
func AsciiOnly() bool {
	return termenv.EnvColorProfile() == termenv.Ascii
}
