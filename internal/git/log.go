package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/subjectlens/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRepoRoot walks up from start until it finds a git repository
func FindRepoRoot(start string) (string, error) {
	path, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if IsGitRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", os.ErrNotExist
		}
		path = parent
	}
}

// ReadHistory reads up to max commits starting at HEAD and classifies
// each subject line. Entries come back newest first.
func ReadHistory(repoPath string, max int) ([]models.CommitEntry, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}

	var entries []models.CommitEntry
	err = iter.ForEach(func(c *object.Commit) error {
		if max > 0 && len(entries) >= max {
			return storer.ErrStop
		}
		hash := c.Hash.String()[:7]
		subjectLine := strings.Split(c.Message, "\n")[0]
		entries = append(entries, models.NewCommitEntry(hash, subjectLine))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
