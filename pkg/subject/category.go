package subject

// Category is the commit type of a ConventionalCommit subject.
type Category int

const (
	Other Category = iota
	Archive
	Build
	Change
	Chore
	Ci
	Deprecate
	Deps
	Dev
	Docs
	Feat
	Fix
	I18n
	Improvement
	Issue
	Perf
	Refactor
	Repo
	Security
	Style
	Test
)

func (c Category) String() string {
	switch c {
	case Archive:
		return "archive"
	case Build:
		return "build"
	case Change:
		return "change"
	case Chore:
		return "chore"
	case Ci:
		return "ci"
	case Deprecate:
		return "deprecate"
	case Deps:
		return "deps"
	case Dev:
		return "dev"
	case Docs:
		return "docs"
	case Feat:
		return "feat"
	case Fix:
		return "fix"
	case I18n:
		return "i18n"
	case Improvement:
		return "improvement"
	case Issue:
		return "issue"
	case Perf:
		return "perf"
	case Refactor:
		return "refactor"
	case Repo:
		return "repo"
	case Security:
		return "security"
	case Style:
		return "style"
	case Test:
		return "test"
	default:
		return "other"
	}
}

// categoryByToken maps the lower-cased type token of a conventional-commit
// subject to its category. Tokens absent from the table resolve to Other.
var categoryByToken = map[string]Category{
	"archive":         Archive,
	"build":           Build,
	"breaking change": Change,
	"change":          Change,
	"chore":           Chore,
	"ci":              Ci,
	"deprecate":       Deprecate,
	"deps":            Deps,
	"dev":             Dev,
	"docs":            Docs,
	"add":             Feat,
	"feat":            Feat,
	"feature":         Feat,
	"bugfix":          Fix,
	"fix":             Fix,
	"hotfix":          Fix,
	"i18n":            I18n,
	"improvement":     Improvement,
	"gi":              Issue,
	"issue":           Issue,
	"done":            Issue,
	"perf":            Perf,
	"internal":        Refactor,
	"refactor":        Refactor,
	"repo":            Repo,
	"security":        Security,
	"security fix":    Security,
	"style":           Style,
	"test":            Test,
	"tests":           Test,
}
