package layout

import (
	"strings"

	"github.com/tsawler/pagedown/model"
	"github.com/tsawler/pagedown/observability"
)

// PageLayout is the inferred structure of one page. Element slices are in
// classifier order; ReadingOrder indexes the page's blocks spatially.
type PageLayout struct {
	PageIndex int

	// Fonts is the page's font usage profile.
	Fonts *model.FontProfile

	Headers    []Heading
	Paragraphs []Paragraph
	Lists      []List
	Tables     []Table

	// ReadingOrder assigns contiguous indices 0..N-1 to the page's blocks
	// in (top, left) scan order.
	ReadingOrder []BlockOrder

	// Columns is the result of the two-column heuristic.
	Columns ColumnInfo

	// Empty marks the sentinel layout produced for pages with no spans or
	// pages whose analysis failed. An empty layout never aborts a run.
	Empty bool
}

// EmptyPageLayout returns the sentinel layout for a page that yielded no
// structure.
func EmptyPageLayout(index int) *PageLayout {
	return &PageLayout{
		PageIndex: index,
		Fonts:     model.ProfileFonts(model.NewPage(index, 0, 0)),
		Columns:   ColumnInfo{ColumnCount: 1},
		Empty:     true,
	}
}

// ElementCount returns the number of structural elements that take part in
// the synthesized page flow: headers, paragraphs, and lists. Tables are
// analysis-only.
func (l *PageLayout) ElementCount() int {
	if l == nil {
		return 0
	}
	return len(l.Headers) + len(l.Paragraphs) + len(l.Lists)
}

// PageAnalyzer runs the per-page classification pipeline: font profiling,
// then header, list, table, and paragraph labeling under the fixed
// precedence header > list > table > paragraph, then reading order and
// column resolution.
type PageAnalyzer struct {
	headings *HeadingDetector
	tables   *TableDetector
	columns  *ColumnDetector
	log      observability.Logger
}

// PageAnalyzerConfig bundles the per-detector configurations.
type PageAnalyzerConfig struct {
	Heading HeadingConfig
	Column  ColumnConfig
}

// DefaultPageAnalyzerConfig returns the default configuration.
func DefaultPageAnalyzerConfig() PageAnalyzerConfig {
	return PageAnalyzerConfig{
		Heading: DefaultHeadingConfig(),
		Column:  DefaultColumnConfig(),
	}
}

// NewPageAnalyzer creates a page analyzer with default configuration.
func NewPageAnalyzer() *PageAnalyzer {
	return NewPageAnalyzerWithConfig(DefaultPageAnalyzerConfig())
}

// NewPageAnalyzerWithConfig creates a page analyzer with custom
// configuration.
func NewPageAnalyzerWithConfig(config PageAnalyzerConfig) *PageAnalyzer {
	return &PageAnalyzer{
		headings: NewHeadingDetectorWithConfig(config.Heading),
		tables:   NewTableDetector(),
		columns:  NewColumnDetectorWithConfig(config.Column),
		log:      observability.NopLogger{},
	}
}

// SetLogger injects a logger. The default discards everything.
func (a *PageAnalyzer) SetLogger(log observability.Logger) {
	if log != nil {
		a.log = log
	}
}

// lineRec tracks one line through the classification passes.
type lineRec struct {
	raw      string // concatenated span text, trimmed
	joined   string // stripped span texts joined with spaces
	spans    []model.Span
	bbox     model.BBox
	consumed bool
}

// Analyze classifies a page and returns its layout. It never fails: a
// page with no spans produces an empty layout.
func (a *PageAnalyzer) Analyze(p *model.Page) *PageLayout {
	layout := &PageLayout{
		PageIndex: p.Index,
		Fonts:     model.ProfileFonts(p),
	}
	bodySize := layout.Fonts.BodySize()

	lists := NewListDetector()

	for b := 0; b < p.BlockCount(); b++ {
		block := p.Block(model.BlockID(b))
		recs := make([]lineRec, 0, len(block.Lines))
		for _, lid := range block.Lines {
			line := p.Line(lid)
			spans := p.LineSpans(lid)
			recs = append(recs, lineRec{
				raw:    strings.TrimSpace(p.LineText(lid)),
				joined: joinSpanTexts(spans),
				spans:  spans,
				bbox:   line.BBox,
			})
		}

		// Headers first; a header line also breaks any open list.
		for i := range recs {
			if h, ok := a.headings.DetectLine(recs[i].joined, recs[i].spans, bodySize, recs[i].bbox); ok {
				layout.Headers = append(layout.Headers, h)
				recs[i].consumed = true
				lists.Break()
				continue
			}
			if lists.Feed(recs[i].raw, recs[i].bbox) {
				recs[i].consumed = true
			}
		}

		// Table rows from what headers and lists left behind.
		var texts []string
		var boxes []model.BBox
		var idx []int
		for i := range recs {
			if !recs[i].consumed && recs[i].raw != "" {
				texts = append(texts, recs[i].raw)
				boxes = append(boxes, recs[i].bbox)
				idx = append(idx, i)
			}
		}
		if table, ok := a.tables.DetectBlock(texts, boxes, block.BBox); ok {
			layout.Tables = append(layout.Tables, table)
			for j, i := range idx {
				if IsTableRowLine(texts[j]) {
					recs[i].consumed = true
				}
			}
		}

		// Whatever remains is paragraph text.
		var remaining []string
		for i := range recs {
			if !recs[i].consumed {
				remaining = append(remaining, recs[i].raw)
			}
		}
		if para, ok := AssembleParagraph(remaining, block.BBox); ok {
			layout.Paragraphs = append(layout.Paragraphs, para)
		}
	}

	layout.Lists = lists.Flush()
	layout.ReadingOrder = ResolveReadingOrder(p)
	layout.Columns = a.columns.Detect(p)
	layout.Empty = p.SpanCount() == 0

	a.log.Debug("page analyzed",
		observability.Int("page", p.Index),
		observability.Int("headers", len(layout.Headers)),
		observability.Int("paragraphs", len(layout.Paragraphs)),
		observability.Int("lists", len(layout.Lists)),
		observability.Int("tables", len(layout.Tables)),
		observability.Int("columns", layout.Columns.ColumnCount))

	return layout
}

// AnalyzeText classifies plain text that carries no geometry, such as OCR
// output for a page without a text layer. Only the text-shape rules of
// the classifier apply; size and bold signals are neutral.
func (a *PageAnalyzer) AnalyzeText(pageIndex int, text string) *PageLayout {
	layout := EmptyPageLayout(pageIndex)

	lists := NewListDetector()
	var para []string

	flushPara := func() {
		if p, ok := AssembleParagraph(para, model.BBox{}); ok {
			layout.Paragraphs = append(layout.Paragraphs, p)
		}
		para = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flushPara()
			lists.Break()
			continue
		}

		if h, ok := a.headings.DetectTextLine(line, 12); ok {
			flushPara()
			lists.Break()
			layout.Headers = append(layout.Headers, h)
			continue
		}

		if lists.Feed(line, model.BBox{}) {
			flushPara()
			continue
		}

		para = append(para, line)
	}
	flushPara()
	layout.Lists = lists.Flush()

	layout.Empty = layout.ElementCount() == 0
	return layout
}

// joinSpanTexts joins stripped non-empty span texts with single spaces,
// the form header detection operates on.
func joinSpanTexts(spans []model.Span) string {
	var parts []string
	for _, s := range spans {
		t := strings.TrimSpace(s.Text)
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
