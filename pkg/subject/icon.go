package subject

// Glyphs assume a Nerd-Font capable terminal; several are private-use
// codepoints. Callers that cannot render them can key off the variant
// instead (see internal/ui in the subjectlens tool).

// BreakingIcon is the glyph every breaking ConventionalCommit maps to,
// regardless of its category.
const BreakingIcon = "⚠ "

func (c ConventionalCommit) Icon() string {
	if c.Breaking {
		return BreakingIcon
	}
	return c.Category.icon()
}

func (c Category) icon() string {
	switch c {
	case Archive:
		return " "
	case Build:
		return "🔨"
	case Change, Improvement:
		return " "
	case Chore:
		return "\U0001F6A7 "
	case Ci:
		return " "
	case Deprecate:
		return " "
	case Deps:
		return " "
	case Dev:
		return "\U0001F6A9"
	case Docs:
		return "✎ "
	case Feat:
		return "\U0001F381"
	case Fix:
		return " "
	case I18n:
		return "韛"
	case Issue:
		return " "
	case Perf:
		return "龍"
	case Refactor:
		return "↺ "
	case Repo:
		return " "
	case Security:
		return " "
	case Style:
		return "♥ "
	case Test:
		return " "
	default:
		return "⁇ "
	}
}

func (f Fixup) Icon() string { return " " }

func (p PullRequest) Icon() string { return " " }

func (r Release) Icon() string { return " " }

func (s SubtreeCommit) Icon() string {
	switch s.Op.Kind {
	case SubtreeImport:
		return "⮈ "
	case SubtreeSplit:
		return " "
	default:
		return " "
	}
}

func (r Remove) Icon() string { return " " }

func (r Rename) Icon() string { return " " }

func (r Revert) Icon() string { return " " }

func (s Simple) Icon() string { return "  " }
