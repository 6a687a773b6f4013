package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	case historyLoadedMsg:
		m.loading = false
		m.entries = msg.entries
		m.err = msg.err
		m.cursor = 0
		m.offset = 0
		return m, nil

	case updateAvailableMsg:
		m.config.RecordUpdateCheck()
		_ = m.config.Save() // Best effort
		if msg.version != "" && msg.version != m.config.Update.SkippedVersion {
			m.updateNotice = msg.version
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.shouldQuit = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "pgup":
		m.cursor -= m.listHeight()
		if m.cursor < 0 {
			m.cursor = 0
		}

	case "pgdown":
		m.cursor += m.listHeight()
		if m.cursor > len(m.entries)-1 {
			m.cursor = max(len(m.entries)-1, 0)
		}

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		m.cursor = max(len(m.entries)-1, 0)

	case "enter", " ":
		m.showDetail = !m.showDetail
	}

	m.clampScroll()
	return m, nil
}

// listHeight is the number of history rows that fit on screen
func (m Model) listHeight() int {
	h := m.height - 4 // header, blank line, status bar
	if m.showDetail {
		h -= detailHeight
	}
	if h < 1 {
		h = 1
	}
	return h
}

// clampScroll keeps the cursor inside the visible window
func (m *Model) clampScroll() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
