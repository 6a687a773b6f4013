package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/subjectlens/internal/ui"
	"github.com/wahlandcase/subjectlens/pkg/subject"
)

// detailHeight is the fixed number of lines the detail pane occupies
const detailHeight = 8

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var sections []string
	sections = append(sections, ui.SectionHeader(m.repoName, ui.ColorCyan))
	sections = append(sections, "")

	switch {
	case m.loading:
		spinner := spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
		sections = append(sections, "  "+spinner+" Reading history…")

	case m.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
		sections = append(sections, errStyle.Render("  Error: "+m.err.Error()))

	case len(m.entries) == 0:
		sections = append(sections, "  No commits found")

	default:
		sections = append(sections, m.renderList())
		if m.showDetail {
			sections = append(sections, m.renderDetail())
		}
	}

	sections = append(sections, m.renderStatus())
	return strings.Join(sections, "\n")
}

func (m Model) renderList() string {
	h := m.listHeight()
	end := m.offset + h
	if end > len(m.entries) {
		end = len(m.entries)
	}

	lines := make([]string, 0, h)
	for i := m.offset; i < end; i++ {
		lines = append(lines, ui.RenderCommit(m.entries[i], i == m.cursor, m.ascii, m.width))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	e, ok := m.Selected()
	if !ok {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	valueStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	row := func(label, value string) string {
		return "  " + labelStyle.Render(fmt.Sprintf("%-10s", label)) + valueStyle.Render(value)
	}

	lines := []string{
		ui.SectionHeader("DETAILS", ui.ColorPurple),
		row("commit", e.Hash),
		row("subject", e.SubjectLine),
		row("kind", ui.KindLabel(e.Subject)),
	}

	switch v := e.Subject.(type) {
	case subject.ConventionalCommit:
		lines = append(lines, row("breaking", fmt.Sprintf("%t", v.Breaking)))
	case subject.Release:
		lines = append(lines, row("version", v.Version))
	case subject.PullRequest:
		lines = append(lines, row("pr", "#"+v.ID))
	case subject.SubtreeCommit:
		lines = append(lines, row("ref", v.Op.GitRef))
	}

	if scope, ok := e.Subject.Scope(); ok {
		lines = append(lines, row("scope", scope))
	}

	for len(lines) < detailHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines[:detailHeight], "\n")
}

func (m Model) renderStatus() string {
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	status := keyStyle.Render("  ↑/↓ move · enter details · q quit")

	if m.updateNotice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		status += noticeStyle.Render("   update available: " + m.updateNotice)
	}

	if len(m.entries) > 0 {
		pos := keyStyle.Render(fmt.Sprintf("   %d/%d", m.cursor+1, len(m.entries)))
		status += pos
	}
	return "\n" + status
}
