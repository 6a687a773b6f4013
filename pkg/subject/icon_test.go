package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every variant must render a glyph; this is the guard that forces a new
// variant to get an Icon implementation.
func TestIconCoversAllVariants(t *testing.T) {
	variants := []Subject{
		ConventionalCommit{Category: Feat, Text: "x"},
		ConventionalCommit{Breaking: true, Category: Feat, Text: "x"},
		Fixup{Text: "x"},
		PullRequest{ID: "1", Text: "x"},
		Release{Version: "1.0", Text: "x"},
		SubtreeCommit{Op: SubtreeOperation{Kind: SubtreeImport}},
		SubtreeCommit{Op: SubtreeOperation{Kind: SubtreeSplit}},
		SubtreeCommit{Op: SubtreeOperation{Kind: SubtreeUpdate}},
		Remove{Text: "x"},
		Rename{Text: "x"},
		Revert{Text: "x"},
		Simple{Text: "x"},
	}
	for _, v := range variants {
		assert.NotEmpty(t, v.Icon(), "%T", v)
	}
}

func TestBreakingIconOverridesCategory(t *testing.T) {
	plain := ConventionalCommit{Category: Docs, Text: "x"}
	breaking := ConventionalCommit{Breaking: true, Category: Docs, Text: "x"}

	assert.NotEqual(t, BreakingIcon, plain.Icon())
	assert.Equal(t, BreakingIcon, breaking.Icon())

	// The override ignores the category entirely.
	other := ConventionalCommit{Breaking: true, Category: Perf, Text: "x"}
	assert.Equal(t, breaking.Icon(), other.Icon())
}

func TestCategoryStrings(t *testing.T) {
	cats := []Category{
		Archive, Build, Change, Chore, Ci, Deprecate, Deps, Dev, Docs,
		Feat, Fix, I18n, Improvement, Issue, Other, Perf, Refactor,
		Repo, Security, Style, Test,
	}
	seen := make(map[string]bool)
	for _, c := range cats {
		s := c.String()
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate name %q", s)
		seen[s] = true
	}
	assert.Equal(t, "other", Category(-1).String())
}

func TestSynonymTable(t *testing.T) {
	for token, want := range map[string]Category{
		"feature":      Feat,
		"hotfix":       Fix,
		"security fix": Security,
		"done":         Issue,
		"internal":     Refactor,
		"tests":        Test,
	} {
		got := Classify(token + ": x").(ConventionalCommit)
		assert.Equal(t, want, got.Category, "token %q", token)
	}
}
