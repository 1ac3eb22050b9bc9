package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/pagedown/model"
)

// TableRow is one detected row of a table.
type TableRow struct {
	Text string
	BBox model.BBox
}

// Table is a block whose lines align into columns. Detection is a
// best-effort whitespace heuristic, so confidence is pinned at
// TableConfidence and is not adjustable.
type Table struct {
	Rows []TableRow
	BBox model.BBox

	// Confidence is always TableConfidence.
	Confidence float64
}

// TableConfidence is the fixed confidence for whitespace-heuristic table
// detection. It deliberately signals "uncertain" rather than "confirmed".
const TableConfidence = 0.5

// minTableRows is the minimum number of aligned lines for a block to
// become a table.
const minTableRows = 2

// Runs of 3+ spaces or a tab suggest column separation.
var columnGapPattern = regexp.MustCompile(`\s{3}|\t`)

// TableDetector finds blocks whose lines look like table rows.
type TableDetector struct{}

// NewTableDetector creates a table detector.
func NewTableDetector() *TableDetector {
	return &TableDetector{}
}

// DetectBlock examines one block's candidate lines (texts paired with
// bounding boxes). The second return value is false when the block does
// not qualify; its lines then fall through to paragraph handling.
func (d *TableDetector) DetectBlock(lineTexts []string, lineBoxes []model.BBox, blockBBox model.BBox) (Table, bool) {
	var rows []TableRow
	for i, text := range lineTexts {
		if IsTableRowLine(text) {
			rows = append(rows, TableRow{Text: text, BBox: lineBoxes[i]})
		}
	}
	if len(rows) < minTableRows {
		return Table{}, false
	}
	return Table{Rows: rows, BBox: blockBBox, Confidence: TableConfidence}, true
}

// IsTableRowLine reports whether a line looks like a table row: a column
// gap (3+ consecutive whitespace characters or a tab) and at least two
// whitespace-separated tokens.
func IsTableRowLine(text string) bool {
	return columnGapPattern.MatchString(text) && len(strings.Fields(text)) >= 2
}

// ToMarkdown renders the table as a markdown pipe table, splitting each
// row on column gaps. The first row becomes the header row. This is a
// helper for callers that want tables in their output; the synthesizer
// itself leaves tables out of the page flow.
func (t Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	cells := make([][]string, len(t.Rows))
	width := 0
	for i, row := range t.Rows {
		parts := columnGapPattern.Split(row.Text, -1)
		var cleaned []string
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		cells[i] = cleaned
		if len(cleaned) > width {
			width = len(cleaned)
		}
	}

	var sb strings.Builder
	for i, row := range cells {
		sb.WriteString("|")
		for c := 0; c < width; c++ {
			sb.WriteString(" ")
			if c < len(row) {
				sb.WriteString(row[c])
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
		if i == 0 {
			sb.WriteString("|")
			sb.WriteString(strings.Repeat(" --- |", width))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
