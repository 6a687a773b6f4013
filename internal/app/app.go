package app

import (
	"path/filepath"

	"github.com/wahlandcase/subjectlens/internal/config"
	"github.com/wahlandcase/subjectlens/internal/models"
	"github.com/wahlandcase/subjectlens/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the main application state
type Model struct {
	// Configuration
	config   *config.Config
	repoPath string
	repoName string
	version  string
	ascii    bool

	// Terminal
	width  int
	height int

	// Loading
	loading      bool
	spinnerFrame int
	err          error

	// History browsing
	entries    []models.CommitEntry
	cursor     int
	offset     int
	showDetail bool

	updateNotice string
	shouldQuit   bool
}

// New creates the history browser model for the given repository
func New(cfg *config.Config, repoPath, version string) Model {
	return Model{
		config:   cfg,
		repoPath: repoPath,
		repoName: filepath.Base(repoPath),
		version:  version,
		ascii:    cfg.Display.AsciiIcons || ui.AsciiOnly(),
		loading:  true,
	}
}

// Init starts the history load, spinner and (when due) the update check
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadHistory(m.repoPath, m.config.Display.MaxCommits),
		tickCmd(),
	}
	if m.config.ShouldCheckForUpdate() {
		cmds = append(cmds, checkForUpdate(m.version, m.config.Update.Repo))
	}
	return tea.Batch(cmds...)
}

// Selected returns the entry under the cursor, if any
func (m Model) Selected() (models.CommitEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return models.CommitEntry{}, false
	}
	return m.entries[m.cursor], true
}
