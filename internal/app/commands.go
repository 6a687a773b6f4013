package app

import (
	"time"

	"github.com/wahlandcase/subjectlens/internal/git"
	"github.com/wahlandcase/subjectlens/internal/models"
	"github.com/wahlandcase/subjectlens/internal/update"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// historyLoadedMsg carries the classified history (or the load error)
type historyLoadedMsg struct {
	entries []models.CommitEntry
	err     error
}

// updateAvailableMsg carries the tag of a newer release; empty means
// nothing to announce
type updateAvailableMsg struct {
	version string
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadHistory(repoPath string, maxCommits int) tea.Cmd {
	return func() tea.Msg {
		entries, err := git.ReadHistory(repoPath, maxCommits)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func checkForUpdate(version, repo string) tea.Cmd {
	return func() tea.Msg {
		rel, err := update.CheckForUpdate(version, repo)
		if err != nil || rel == nil {
			// Update check is best effort; stay quiet on failure
			return updateAvailableMsg{}
		}
		return updateAvailableMsg{version: rel.TagName}
	}
}
