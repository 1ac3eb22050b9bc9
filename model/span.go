package model

import "strings"

// Style flag bit values as emitted by the page-extraction engine. These
// match the engine's wire encoding exactly and must not be changed.
const (
	StyleItalic = 2  // bit 1
	StyleBold   = 16 // bit 4
)

// Span is the smallest text-with-formatting unit: a run of characters
// sharing one font, size, and style. Spans are immutable once added to a
// page.
type Span struct {
	Text  string
	BBox  BBox
	Font  string
	Size  float64
	Flags int
}

// IsBold reports whether the span's style flags have the bold bit set.
func (s Span) IsBold() bool {
	return s.Flags&StyleBold != 0
}

// IsItalic reports whether the span's style flags have the italic bit set.
func (s Span) IsItalic() bool {
	return s.Flags&StyleItalic != 0
}

// SpanID identifies a span within its page's arena.
type SpanID int

// LineID identifies a line within its page's arena.
type LineID int

// BlockID identifies a block within its page's arena.
type BlockID int

// Line is an ordered sequence of spans, left to right as emitted by the
// extraction engine.
type Line struct {
	BBox  BBox
	Spans []SpanID
}

// Block is an ordered sequence of lines. A block is owned by exactly one
// page.
type Block struct {
	BBox  BBox
	Lines []LineID
}

// Page owns a page's block tree through growable arenas. Blocks reference
// lines and lines reference spans by index, so the tree has no internal
// pointers and can be cloned cheaply for parallel per-page analysis.
type Page struct {
	Index  int     // 0-based page index
	Width  float64 // page width in points
	Height float64 // page height in points

	// Raster optionally holds the page rendered as an encoded image,
	// supplied by the extraction engine for pages without a text layer.
	// It is only consulted by the OCR fallback.
	Raster []byte

	blocks []Block
	lines  []Line
	spans  []Span
}

// NewPage creates an empty page with the given index and dimensions.
func NewPage(index int, width, height float64) *Page {
	return &Page{Index: index, Width: width, Height: height}
}

// AddBlock appends a block to the page and returns its ID.
func (p *Page) AddBlock(bbox BBox) BlockID {
	p.blocks = append(p.blocks, Block{BBox: bbox})
	return BlockID(len(p.blocks) - 1)
}

// AddLine appends a line to the given block and returns its ID.
func (p *Page) AddLine(block BlockID, bbox BBox) LineID {
	p.lines = append(p.lines, Line{BBox: bbox})
	id := LineID(len(p.lines) - 1)
	p.blocks[block].Lines = append(p.blocks[block].Lines, id)
	return id
}

// AddSpan appends a span to the given line and returns its ID. A
// non-positive font size defaults to 12, matching the classifier's
// tolerance for engines that omit size information.
func (p *Page) AddSpan(line LineID, span Span) SpanID {
	if span.Size <= 0 {
		span.Size = 12
	}
	p.spans = append(p.spans, span)
	id := SpanID(len(p.spans) - 1)
	p.lines[line].Spans = append(p.lines[line].Spans, id)
	return id
}

// BlockCount returns the number of blocks on the page.
func (p *Page) BlockCount() int {
	return len(p.blocks)
}

// Block returns the block with the given ID.
func (p *Page) Block(id BlockID) Block {
	return p.blocks[id]
}

// Line returns the line with the given ID.
func (p *Page) Line(id LineID) Line {
	return p.lines[id]
}

// Span returns the span with the given ID.
func (p *Page) Span(id SpanID) Span {
	return p.spans[id]
}

// SpanCount returns the number of spans on the page.
func (p *Page) SpanCount() int {
	return len(p.spans)
}

// EachSpan calls fn for every span on the page in arena order.
func (p *Page) EachSpan(fn func(Span)) {
	for _, s := range p.spans {
		fn(s)
	}
}

// LineText returns the raw concatenation of a line's span texts.
func (p *Page) LineText(id LineID) string {
	var sb strings.Builder
	for _, sid := range p.lines[id].Spans {
		sb.WriteString(p.spans[sid].Text)
	}
	return sb.String()
}

// LineSpans materializes a line's spans in order.
func (p *Page) LineSpans(id LineID) []Span {
	spans := make([]Span, 0, len(p.lines[id].Spans))
	for _, sid := range p.lines[id].Spans {
		spans = append(spans, p.spans[sid])
	}
	return spans
}

// TextLength returns the total number of bytes of span text on the page.
func (p *Page) TextLength() int {
	n := 0
	for _, s := range p.spans {
		n += len(s.Text)
	}
	return n
}

// Clone returns a deep copy of the page's arenas. The copy shares no
// mutable state with the original.
func (p *Page) Clone() *Page {
	clone := &Page{
		Index:  p.Index,
		Width:  p.Width,
		Height: p.Height,
		Raster: append([]byte(nil), p.Raster...),
		blocks: make([]Block, len(p.blocks)),
		lines:  make([]Line, len(p.lines)),
		spans:  append([]Span(nil), p.spans...),
	}
	for i, b := range p.blocks {
		clone.blocks[i] = Block{BBox: b.BBox, Lines: append([]LineID(nil), b.Lines...)}
	}
	for i, l := range p.lines {
		clone.lines[i] = Line{BBox: l.BBox, Spans: append([]SpanID(nil), l.Spans...)}
	}
	return clone
}

// ContentType classifies a page by what it carries.
type ContentType int

const (
	ContentEmpty ContentType = iota
	ContentText
	ContentImage
	ContentMixed
)

// String returns a string representation of the content type.
func (c ContentType) String() string {
	switch c {
	case ContentText:
		return "text"
	case ContentImage:
		return "image"
	case ContentMixed:
		return "mixed"
	default:
		return "empty"
	}
}

// meaningfulTextLength is the minimum number of text bytes for a page to
// count as carrying text rather than extraction noise.
const meaningfulTextLength = 50

// ContentType classifies the page given the number of images extracted
// from it. Pages with more than meaningfulTextLength bytes of span text
// count as text-bearing.
func (p *Page) ContentType(imageCount int) ContentType {
	hasText := p.TextLength() > meaningfulTextLength
	switch {
	case imageCount == 0 && hasText:
		return ContentText
	case imageCount > 0 && !hasText:
		return ContentImage
	case imageCount > 0 && hasText:
		return ContentMixed
	default:
		return ContentEmpty
	}
}

// Document is an ordered collection of pages as delivered by the
// extraction engine.
type Document struct {
	Pages []*Page
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddPage appends a page, assigning its index from its position.
func (d *Document) AddPage(p *Page) {
	p.Index = len(d.Pages)
	d.Pages = append(d.Pages, p)
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns the page with the given 0-based index, or nil.
func (d *Document) GetPage(index int) *Page {
	if index < 0 || index >= len(d.Pages) {
		return nil
	}
	return d.Pages[index]
}
