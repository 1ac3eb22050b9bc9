package markdown

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/pagedown/images"
	"github.com/tsawler/pagedown/layout"
)

// Synthesizer turns an aggregated document structure and a set of image
// anchors into a single markdown string.
type Synthesizer struct {
	dialect Dialect
}

// NewSynthesizer creates a synthesizer for the given dialect.
func NewSynthesizer(dialect Dialect) *Synthesizer {
	return &Synthesizer{dialect: dialect}
}

// Render produces the final markdown. Pages are emitted in index order and
// separated by horizontal rules; a "## Page N" marker precedes each page
// only when the document has more than one. Pages with no structural
// elements and no images are skipped entirely; a page with only images
// still renders its image group. The output has post-processing applied.
func (s *Synthesizer) Render(structure *layout.DocumentStructure, anchors []images.Anchor) string {
	grouped := images.GroupByPage(anchors)

	indexSet := make(map[int]struct{})
	for i := range structure.PageLayouts {
		indexSet[i] = struct{}{}
	}
	for i := range grouped {
		indexSet[i] = struct{}{}
	}
	indices := make([]int, 0, len(indexSet))
	for i := range indexSet {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	multiPage := len(indices) > 1

	var chunks []string
	for _, i := range indices {
		elements := pageElements(structure.PageLayouts[i])
		imgs := grouped[i]
		if len(elements) == 0 && len(imgs) == 0 {
			continue
		}

		if len(imgs) > 0 {
			at := images.InsertionPoint(len(elements))
			elements = append(elements[:at:at], append([]string{s.imageGroup(imgs, i)}, elements[at:]...)...)
		}
		if multiPage {
			elements = append([]string{fmt.Sprintf("## Page %d", i+1)}, elements...)
		}

		chunks = append(chunks, strings.Join(elements, "\n\n"))
	}

	return Postprocess(strings.Join(chunks, "\n\n---\n\n"))
}

// pageElements renders a page's structural elements grouped by category:
// headers first, then paragraphs, then lists. Tables contribute to the
// analysis but are not rendered.
func pageElements(l *layout.PageLayout) []string {
	if l == nil {
		return nil
	}
	var elements []string
	for _, h := range l.Headers {
		elements = append(elements, h.ToMarkdown())
	}
	for _, p := range l.Paragraphs {
		elements = append(elements, p.Text)
	}
	for _, list := range l.Lists {
		elements = append(elements, FormatList(list))
	}
	return elements
}

// imageGroup renders a page's anchors as one block, in the order the
// extraction collaborator supplied them.
func (s *Synthesizer) imageGroup(anchors []images.Anchor, pageIndex int) string {
	alt := fmt.Sprintf("Image from page %d", pageIndex+1)
	lines := make([]string, 0, len(anchors))
	for _, a := range anchors {
		lines = append(lines, s.dialect.ImageEmbed(alt, a.RelativePath))
	}
	return strings.Join(lines, "\n\n")
}

var numberedPrefix = regexp.MustCompile(`^\d+\.\s`)

// FormatList renders a detected list as markdown, one item per line.
// Bullet items are normalized to "- "; numbered items keep their original
// ordinals so a list starting at "3." stays that way. Letter ordinals have
// no markdown equivalent and fall back to bullets.
func FormatList(l layout.List) string {
	lines := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		switch {
		case l.Type == layout.ListTypeBullet:
			lines = append(lines, "- "+item.Text)
		case numberedPrefix.MatchString(item.RawText):
			lines = append(lines, item.RawText)
		default:
			lines = append(lines, "- "+item.Text)
		}
	}
	return strings.Join(lines, "\n")
}
