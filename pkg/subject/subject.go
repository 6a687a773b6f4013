// Package subject classifies the subject line of a version-control commit.
// It recognizes the Conventional Commits grammar plus a number of shorthands
// and tool-generated shapes (release bumps, pull-request merges, subtree
// operations) and reduces every input line to exactly one Subject value.
//
//	s := subject.Classify("feat(stuff): Add a new feature XYZ")
//	fmt.Println(s.Icon(), s.Description())
//
// Classification is pure and never fails: any string is a legal input, and
// lines no rule recognizes come back as Simple.
package subject

// Subject is the classification result for a single commit subject line.
// The set of implementations is closed; every variant is immutable once
// constructed and safe to share between goroutines.
type Subject interface {
	// Description returns the display text for the subject. For most
	// variants this is the original line verbatim; for ConventionalCommit
	// it is the text after the recognized type/scope prefix.
	Description() string

	// Scope returns the component name the subject refers to, if any.
	// Only ConventionalCommit, Release and SubtreeCommit carry scopes.
	Scope() (string, bool)

	// Icon returns the display glyph for the subject.
	Icon() string

	subject()
}

// SubtreeOpKind discriminates the subtree operations recorded by
// subtree-management tooling.
type SubtreeOpKind int

const (
	SubtreeImport SubtreeOpKind = iota
	SubtreeSplit
	SubtreeUpdate
)

// SubtreeOperation describes a subtree import, split or update together
// with the subtree path and the git ref it references.
type SubtreeOperation struct {
	Kind    SubtreeOpKind
	Subtree string
	GitRef  string
}

// ConventionalCommit is a subject following the Conventional Commits
// grammar or one of the recognized shorthands (add/fix/deprecate).
type ConventionalCommit struct {
	Breaking  bool
	Category  Category
	ScopeName string // empty when the subject names no scope
	Text      string
}

// Fixup is a subject starting with the literal "fixup!" marker.
type Fixup struct {
	Text string
}

// PullRequest is a merge-commit subject naming a pull or merge request
// from one of the supported hosting platforms.
type PullRequest struct {
	ID   string
	Text string
}

// Release is a release or version-bump announcement.
type Release struct {
	Version   string
	ScopeName string // component being released, empty for plain releases
	Text      string
}

// SubtreeCommit is a commit produced by subtree import/split/update tooling.
type SubtreeCommit struct {
	Op   SubtreeOperation
	Text string
}

// Remove is a subject starting with "remove ".
type Remove struct {
	Text string
}

// Rename is a subject starting with "rename " or "move ".
type Rename struct {
	Text string
}

// Revert is a subject starting with "revert ".
type Revert struct {
	Text string
}

// Simple is the fallback for lines no other rule matched.
type Simple struct {
	Text string
}

func (c ConventionalCommit) Description() string { return c.Text }
func (f Fixup) Description() string              { return f.Text }
func (p PullRequest) Description() string        { return p.Text }
func (r Release) Description() string            { return r.Text }
func (s SubtreeCommit) Description() string      { return s.Text }
func (r Remove) Description() string             { return r.Text }
func (r Rename) Description() string             { return r.Text }
func (r Revert) Description() string             { return r.Text }
func (s Simple) Description() string             { return s.Text }

func (c ConventionalCommit) Scope() (string, bool) { return c.ScopeName, c.ScopeName != "" }
func (f Fixup) Scope() (string, bool)              { return "", false }
func (p PullRequest) Scope() (string, bool)        { return "", false }
func (r Release) Scope() (string, bool)            { return r.ScopeName, r.ScopeName != "" }
func (s SubtreeCommit) Scope() (string, bool)      { return s.Op.Subtree, true }
func (r Remove) Scope() (string, bool)             { return "", false }
func (r Rename) Scope() (string, bool)             { return "", false }
func (r Revert) Scope() (string, bool)             { return "", false }
func (s Simple) Scope() (string, bool)             { return "", false }

func (ConventionalCommit) subject() {}
func (Fixup) subject()              {}
func (PullRequest) subject()        {}
func (Release) subject()            {}
func (SubtreeCommit) subject()      {}
func (Remove) subject()             {}
func (Rename) subject()             {}
func (Revert) subject()             {}
func (Simple) subject()             {}
