package markdown

import "fmt"

// Dialect selects the markdown output variant.
type Dialect int

const (
	// DialectStandard is plain CommonMark-style markdown.
	DialectStandard Dialect = iota
	// DialectGitHub is GitHub-flavored markdown. Image embeds match the
	// standard dialect.
	DialectGitHub
	// DialectObsidian uses Obsidian wiki-style image embeds.
	DialectObsidian
)

// String returns the dialect's name.
func (d Dialect) String() string {
	switch d {
	case DialectGitHub:
		return "github"
	case DialectObsidian:
		return "obsidian"
	default:
		return "standard"
	}
}

// ParseDialect maps a dialect name to its Dialect. Anything other than
// "standard", "github", or "obsidian" is rejected; unknown dialects are
// never silently defaulted.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "standard":
		return DialectStandard, nil
	case "github":
		return DialectGitHub, nil
	case "obsidian":
		return DialectObsidian, nil
	default:
		return DialectStandard, fmt.Errorf("unknown markdown dialect %q", name)
	}
}

// ImageEmbed renders an image reference in the dialect's syntax.
func (d Dialect) ImageEmbed(altText, relativePath string) string {
	if d == DialectObsidian {
		return "![[" + relativePath + "]]"
	}
	return "![" + altText + "](" + relativePath + ")"
}
