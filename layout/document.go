package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/pagedown/model"
	"github.com/tsawler/pagedown/observability"
)

// DocumentStructure aggregates per-page layouts into whole-document
// statistics with a page-index-keyed view.
type DocumentStructure struct {
	// PageLayouts maps page index to that page's layout.
	PageLayouts map[int]*PageLayout

	TotalPages       int
	TotalHeaders     int
	TotalParagraphs  int
	TotalLists       int
	TotalTables      int
	MultiColumnPages int
}

// DocumentAnalyzer lazily analyzes pages and aggregates their layouts. It
// performs no classification of its own.
type DocumentAnalyzer struct {
	analyzer *PageAnalyzer
	layouts  map[int]*PageLayout
	log      observability.Logger
}

// NewDocumentAnalyzer creates a document analyzer using the given page
// analyzer.
func NewDocumentAnalyzer(analyzer *PageAnalyzer) *DocumentAnalyzer {
	if analyzer == nil {
		analyzer = NewPageAnalyzer()
	}
	return &DocumentAnalyzer{
		analyzer: analyzer,
		layouts:  make(map[int]*PageLayout),
		log:      observability.NopLogger{},
	}
}

// SetLogger injects a logger, shared with the page analyzer.
func (d *DocumentAnalyzer) SetLogger(log observability.Logger) {
	if log != nil {
		d.log = log
		d.analyzer.SetLogger(log)
	}
}

// PageLayout returns the layout for one page, analyzing it on first use.
func (d *DocumentAnalyzer) PageLayout(p *model.Page) *PageLayout {
	if layout, ok := d.layouts[p.Index]; ok {
		return layout
	}
	layout := d.analyzer.Analyze(p)
	d.layouts[p.Index] = layout
	return layout
}

// SetPageLayout stores an externally produced layout, such as the empty
// sentinel for a failed page or a layout built from OCR text.
func (d *DocumentAnalyzer) SetPageLayout(layout *PageLayout) {
	d.layouts[layout.PageIndex] = layout
}

// Structure analyzes any not-yet-analyzed page of the document and
// returns the aggregated view.
func (d *DocumentAnalyzer) Structure(doc *model.Document) *DocumentStructure {
	for _, p := range doc.Pages {
		d.PageLayout(p)
	}

	s := &DocumentStructure{
		PageLayouts: d.layouts,
		TotalPages:  len(d.layouts),
	}
	for _, layout := range d.layouts {
		s.TotalHeaders += len(layout.Headers)
		s.TotalParagraphs += len(layout.Paragraphs)
		s.TotalLists += len(layout.Lists)
		s.TotalTables += len(layout.Tables)
		if layout.Columns.MultiColumn {
			s.MultiColumnPages++
		}
	}

	d.log.Info("document structure aggregated",
		observability.Int("pages", s.TotalPages),
		observability.Int("headers", s.TotalHeaders),
		observability.Int("paragraphs", s.TotalParagraphs),
		observability.Int("lists", s.TotalLists),
		observability.Int("tables", s.TotalTables),
		observability.Int("multi_column_pages", s.MultiColumnPages))

	return s
}

// Summary returns a human-readable summary of the aggregated structure.
func (s *DocumentStructure) Summary() string {
	var sb strings.Builder
	sb.WriteString("Layout Analysis Summary:\n")
	fmt.Fprintf(&sb, "- Total Pages: %d\n", s.TotalPages)
	fmt.Fprintf(&sb, "- Headers: %d\n", s.TotalHeaders)
	fmt.Fprintf(&sb, "- Paragraphs: %d\n", s.TotalParagraphs)
	fmt.Fprintf(&sb, "- Lists: %d\n", s.TotalLists)
	fmt.Fprintf(&sb, "- Tables: %d\n", s.TotalTables)
	fmt.Fprintf(&sb, "- Multi-column Pages: %d\n", s.MultiColumnPages)
	sb.WriteString("\nPage-by-page breakdown:\n")

	indices := make([]int, 0, len(s.PageLayouts))
	for i := range s.PageLayouts {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		l := s.PageLayouts[i]
		fmt.Fprintf(&sb, "- Page %d: %dH, %dP, %dL, %dT\n",
			i+1, len(l.Headers), len(l.Paragraphs), len(l.Lists), len(l.Tables))
	}

	return strings.TrimSpace(sb.String())
}
