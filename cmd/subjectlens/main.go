package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/subjectlens/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/wahlandcase/subjectlens/internal/app"
	"github.com/wahlandcase/subjectlens/internal/config"
	"github.com/wahlandcase/subjectlens/internal/git"
	"github.com/wahlandcase/subjectlens/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

var (
	repoFlag  string
	maxFlag   int
	plainFlag bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subjectlens",
		Short: "Browse git history with classified commit subjects",
		RunE:  run,
	}

	rootCmd.Flags().StringVar(&repoFlag, "repo", ".", "Repository path (searched upwards for a git root)")
	rootCmd.Flags().IntVar(&maxFlag, "max", 0, "Maximum number of commits to load (0 = config default)")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "Print the decorated history instead of starting the TUI")

	rootCmd.AddCommand(lintCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if maxFlag > 0 {
		cfg.Display.MaxCommits = maxFlag
	}

	root, err := git.FindRepoRoot(repoFlag)
	if err != nil {
		return fmt.Errorf("no git repository at or above %q", repoFlag)
	}

	if plainFlag {
		entries, err := git.ReadHistory(root, cfg.Display.MaxCommits)
		if err != nil {
			return err
		}
		ascii := cfg.Display.AsciiIcons || ui.AsciiOnly()
		for _, e := range entries {
			fmt.Println(ui.PlainCommit(e, ascii))
		}
		return nil
	}

	model := app.New(cfg, root, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
