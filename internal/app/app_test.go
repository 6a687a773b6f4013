package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/subjectlens/internal/config"
	"github.com/wahlandcase/subjectlens/internal/models"
)

func testModel(t *testing.T) Model {
	t.Helper()
	m := New(config.DefaultConfig(), "/tmp/demo", "dev")

	var tm tea.Model = m
	tm, _ = tm.(Model).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	tm, _ = tm.(Model).Update(historyLoadedMsg{entries: []models.CommitEntry{
		models.NewCommitEntry("aaaaaaa", "feat: first"),
		models.NewCommitEntry("bbbbbbb", "fix: second"),
		models.NewCommitEntry("ccccccc", "docs: third"),
	}})
	return tm.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHistoryLoaded(t *testing.T) {
	m := testModel(t)

	assert.False(t, m.loading)
	assert.Equal(t, 0, m.cursor)
	require.Len(t, m.entries, 3)

	view := m.View()
	assert.Contains(t, view, "aaaaaaa")
	assert.Contains(t, view, "demo")
}

func TestCursorNavigation(t *testing.T) {
	m := testModel(t)

	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = tm.(Model)
	assert.Equal(t, 1, m.cursor)

	tm, _ = m.Update(key("G"))
	m = tm.(Model)
	assert.Equal(t, 2, m.cursor)

	// Does not run past the end
	tm, _ = m.Update(key("j"))
	m = tm.(Model)
	assert.Equal(t, 2, m.cursor)

	tm, _ = m.Update(key("g"))
	m = tm.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestDetailToggle(t *testing.T) {
	m := testModel(t)

	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)
	assert.True(t, m.showDetail)
	assert.Contains(t, m.View(), "DETAILS")

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)
	assert.False(t, m.showDetail)
}

func TestQuit(t *testing.T) {
	m := testModel(t)

	tm, cmd := m.Update(key("q"))
	m = tm.(Model)
	assert.True(t, m.shouldQuit)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestUpdateNotice(t *testing.T) {
	m := testModel(t)

	tm, _ := m.Update(updateAvailableMsg{version: "v9.9.9"})
	m = tm.(Model)
	assert.Contains(t, m.View(), "v9.9.9")

	// Skipped versions stay quiet
	m2 := testModel(t)
	m2.config.Update.SkippedVersion = "v9.9.9"
	tm, _ = m2.Update(updateAvailableMsg{version: "v9.9.9"})
	m2 = tm.(Model)
	assert.NotContains(t, m2.View(), "v9.9.9")
}
