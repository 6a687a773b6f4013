package subject

import (
	"regexp"
	"strings"
)

// Compiled once at package init; immutable afterwards, so concurrent
// Classify calls need no synchronization.
var (
	releaseScopedRE = regexp.MustCompile(`(?i)^(?:Release|Bump) :?(.+)@v?([0-9.]+)\b.*`)
	releaseRE       = regexp.MustCompile(`(?i)^(?:Release|Bump)\s.*?v?([0-9.]+).*`)

	// Merge subjects per hosting platform: Azure DevOps, GitHub and
	// generic remote-tracking merges, Bitbucket, bors.
	azurePRRE     = regexp.MustCompile(`^Merged PR (\d+): (.+)`)
	mergePRRE     = regexp.MustCompile(`^Merge (?:remote-tracking branch '.+/pr/(\d+)'|pull request #(\d+) from .+)$`)
	bitbucketPRRE = regexp.MustCompile(`^Merge pull request #(\d+) in .+ from .+ to .+$`)
	borsPRRE      = regexp.MustCompile(`^Merge #(\d+)`)

	updateRE = regexp.MustCompile(`^Update :?(.+) to (.+)`)
	importRE = regexp.MustCompile(`^:?(.+) Import .+⸪(.+)`)
	splitRE  = regexp.MustCompile(`^Split '(.+)/' into commit '(.+)'`)

	addRE = regexp.MustCompile(`(?i)^add:?\s*`)
	fixRE = regexp.MustCompile(`(?i)^(bug)?fix(ing|ed)?(\(.+\))?[/:\s]+`)

	conventionalRE = regexp.MustCompile(`(?i)^(SECURITY FIX!?|BREAKING CHANGE!?|[\p{L}\p{N}_]+!?)(\(.+\)!?)?[/:\s]+(.+)`)
)

// Classify maps a commit subject line to exactly one Subject. Rules are
// tried in a fixed priority order and the first match wins; the explicit
// release and merge shapes come before the broad conventional-commit
// grammar, which would otherwise consume them. Classify never fails:
// lines no rule matches come back as Simple.
func Classify(line string) Subject {
	if m := releaseScopedRE.FindStringSubmatch(line); m != nil {
		return Release{Version: m[2], ScopeName: m[1], Text: line}
	}
	if m := releaseRE.FindStringSubmatch(line); m != nil {
		return Release{Version: m[1], Text: line}
	}
	if s, ok := classifyPullRequest(line); ok {
		return s
	}
	if strings.HasPrefix(line, "fixup!") {
		return Fixup{Text: line}
	}
	if m := updateRE.FindStringSubmatch(line); m != nil {
		return SubtreeCommit{
			Op:   SubtreeOperation{Kind: SubtreeUpdate, Subtree: m[1], GitRef: m[2]},
			Text: line,
		}
	}
	if m := importRE.FindStringSubmatch(line); m != nil {
		return SubtreeCommit{
			Op:   SubtreeOperation{Kind: SubtreeImport, Subtree: m[1], GitRef: m[2]},
			Text: line,
		}
	}
	if m := splitRE.FindStringSubmatch(line); m != nil {
		return SubtreeCommit{
			Op:   SubtreeOperation{Kind: SubtreeSplit, Subtree: m[1], GitRef: m[2]},
			Text: line,
		}
	}

	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, "remove "):
		return Remove{Text: line}
	case strings.HasPrefix(lower, "rename "), strings.HasPrefix(lower, "move "):
		return Rename{Text: line}
	case strings.HasPrefix(lower, "revert "):
		return Revert{Text: line}
	}

	if addRE.MatchString(line) {
		return ConventionalCommit{Category: Feat, Text: line}
	}
	// The shorthand accepts separators the strict grammar rejects. An
	// inline scope is deliberately not extracted here; only the grammar
	// rule below unwraps scopes.
	if fixRE.MatchString(line) {
		return ConventionalCommit{Category: Fix, Text: line}
	}
	if strings.HasPrefix(lower, "deprecate ") {
		return ConventionalCommit{Category: Deprecate, Text: line}
	}

	if m := conventionalRE.FindStringSubmatch(line); m != nil {
		return parseConventional(m)
	}
	return Simple{Text: line}
}

// classifyPullRequest tries the platform-specific merge shapes in order.
// A pattern that matches structurally but yields no captured id downgrades
// to Simple so that classification stays total.
func classifyPullRequest(line string) (Subject, bool) {
	if m := azurePRRE.FindStringSubmatch(line); m != nil {
		if m[1] == "" || m[2] == "" {
			return Simple{Text: line}, true
		}
		// Azure puts the id first; rewrite to the trailing "(#id)" form
		// the other platforms use.
		return PullRequest{ID: m[1], Text: m[2] + " (#" + m[1] + ")"}, true
	}
	if m := mergePRRE.FindStringSubmatch(line); m != nil {
		id := m[1]
		if id == "" {
			id = m[2]
		}
		if id == "" {
			return Simple{Text: line}, true
		}
		return PullRequest{ID: id, Text: line}, true
	}
	if m := bitbucketPRRE.FindStringSubmatch(line); m != nil {
		if m[1] == "" {
			return Simple{Text: line}, true
		}
		return PullRequest{ID: m[1], Text: line}, true
	}
	if m := borsPRRE.FindStringSubmatch(line); m != nil {
		if m[1] == "" {
			return Simple{Text: line}, true
		}
		return PullRequest{ID: m[1], Text: line}, true
	}
	return nil, false
}

// parseConventional builds a ConventionalCommit from the grammar captures:
// m[1] type token, m[2] parenthesized scope (may be empty), m[3] remainder.
func parseConventional(m []string) Subject {
	catText, scopeText, rest := m[1], m[2], m[3]

	breaking := strings.HasSuffix(catText, "!") ||
		strings.HasSuffix(scopeText, "!") ||
		strings.EqualFold(catText, "breaking change")
	catText = strings.TrimSuffix(catText, "!")
	scopeText = strings.TrimSuffix(scopeText, "!")

	// Drop the surrounding parentheses. The capture includes them, so
	// anything shorter than "(x)" has no content to unwrap.
	if len(scopeText) >= 3 {
		scopeText = scopeText[1 : len(scopeText)-1]
	}

	category, ok := categoryByToken[strings.ToLower(catText)]
	if !ok {
		category = Other
	}
	if category == Other {
		// Keep the unrecognized prefix visible instead of truncating it.
		rest = m[0]
	}
	if breaking {
		rest = "! " + rest
	}

	return ConventionalCommit{
		Breaking:  breaking,
		Category:  category,
		ScopeName: scopeText,
		Text:      rest,
	}
}
