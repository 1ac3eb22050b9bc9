package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// OutlineEntry is one heading of a rendered markdown document.
type OutlineEntry struct {
	Level int
	Text  string
}

// Outline parses rendered markdown and returns its headings in document
// order. Parsing the output rather than reusing the detected structure
// keeps the outline honest: it reflects what was actually emitted.
func Outline(source []byte) []OutlineEntry {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var entries []OutlineEntry
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		entries = append(entries, OutlineEntry{
			Level: h.Level,
			Text:  string(h.Text(source)),
		})
	}
	return entries
}

// MarkdownTOC renders a nested bullet list of the document's headings,
// indented two spaces per level. It returns "" for a document with no
// headings.
func MarkdownTOC(source []byte) string {
	entries := Outline(source)
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range entries {
		level := e.Level
		if level < 1 {
			level = 1
		}
		fmt.Fprintf(&sb, "%s- %s\n", strings.Repeat("  ", level-1), e.Text)
	}
	return strings.TrimRight(sb.String(), "\n")
}
