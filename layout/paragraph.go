package layout

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pagedown/model"
)

// Paragraph is a block of running text: whatever remains of a block after
// headers, list items, and table rows are consumed. Boundaries follow the
// extraction engine's block segmentation, not sentence logic.
type Paragraph struct {
	// Text is the cleaned block text, lines joined with newlines.
	Text string

	// BBox is the bounding box of the source block.
	BBox model.BBox

	// LineCount is the number of non-blank lines in the block.
	LineCount int

	// WordCount is the number of whitespace-separated words.
	WordCount int
}

var (
	controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
	caseBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	periodCap    = regexp.MustCompile(`(\.)([A-Z])`)
	spaceRuns    = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes extracted text: NFC normalization, control
// character removal, collapsed space runs, and spacing repair for glued
// words the extraction engine sometimes produces ("wordNext", "end.Next").
// Newlines are preserved.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)
	text = controlChars.ReplaceAllString(text, "")
	text = caseBoundary.ReplaceAllString(text, "$1 $2")
	text = periodCap.ReplaceAllString(text, "$1 $2")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// AssembleParagraph builds a paragraph from a block's remaining line
// texts. The second return value is false when nothing remains.
func AssembleParagraph(lineTexts []string, bbox model.BBox) (Paragraph, bool) {
	var kept []string
	for _, line := range lineTexts {
		line = CleanText(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return Paragraph{}, false
	}

	text := strings.Join(kept, "\n")
	return Paragraph{
		Text:      text,
		BBox:      bbox,
		LineCount: len(kept),
		WordCount: len(strings.Fields(text)),
	}, true
}
