package pagedown

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/pagedown/images"
	"github.com/tsawler/pagedown/markdown"
	"github.com/tsawler/pagedown/model"
)

// textPage builds a page with one block per entry, each line holding a
// single span.
func textPage(blocks []struct {
	size  float64
	flags int
	lines []string
}) *model.Page {
	p := model.NewPage(0, 612, 792)
	y := 100.0
	for _, b := range blocks {
		bid := p.AddBlock(model.NewBBox(50, y, 550, y+float64(len(b.lines))*14))
		for i, text := range b.lines {
			lineY := y + float64(i)*14
			lid := p.AddLine(bid, model.NewBBox(50, lineY, 550, lineY+12))
			p.AddSpan(lid, model.Span{Text: text, Font: "Times", Size: b.size, Flags: b.flags})
		}
		y += float64(len(b.lines))*14 + 20
	}
	return p
}

func sampleDocument() *model.Document {
	doc := model.NewDocument()
	doc.AddPage(textPage([]struct {
		size  float64
		flags int
		lines []string
	}{
		{24, 0, []string{"Document Title"}},
		{12, 0, []string{"This is the main body paragraph of the document."}},
		{12, 0, []string{"- first entry", "- second entry"}},
	}))
	return doc
}

func TestMarkdownEndToEnd(t *testing.T) {
	md, warnings, err := FromDocument(sampleDocument()).Markdown()
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := "# Document Title\n\n" +
		"This is the main body paragraph of the document.\n\n" +
		"- first entry\n- second entry"
	if md != want {
		t.Errorf("Markdown() =\n%q\nwant\n%q", md, want)
	}

	if got := markdown.Postprocess(md); got != md {
		t.Errorf("output not stable under post-processing:\n%q", got)
	}
}

func TestMarkdownWithImages(t *testing.T) {
	md, _, err := FromDocument(sampleDocument()).
		Dialect(markdown.DialectObsidian).
		Images(images.Anchor{RelativePath: "images/fig.png", PageIndex: 0}).
		Markdown()
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}

	if !strings.Contains(md, "![[images/fig.png]]") {
		t.Errorf("obsidian embed missing from output:\n%s", md)
	}
	// The image group goes right after the first element.
	if !strings.HasPrefix(md, "# Document Title\n\n![[images/fig.png]]") {
		t.Errorf("image not placed after first element:\n%s", md)
	}
}

func TestDialectNameInvalid(t *testing.T) {
	_, _, err := FromDocument(sampleDocument()).DialectName("bogus").Markdown()
	if err == nil {
		t.Fatal("unknown dialect name did not fail the chain")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not name the bad dialect", err)
	}
}

func TestNoDocument(t *testing.T) {
	if _, _, err := FromDocument(nil).Markdown(); err == nil {
		t.Fatal("nil document did not fail")
	}
}

func TestPagesSelection(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(textPage([]struct {
		size  float64
		flags int
		lines []string
	}{{12, 0, []string{"Text that lives on the first page only."}}}))
	doc.AddPage(textPage([]struct {
		size  float64
		flags int
		lines []string
	}{{12, 0, []string{"Text that lives on the second page only."}}}))

	md, warnings, err := FromDocument(doc).Pages(2, 5).Markdown()
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}
	if strings.Contains(md, "first page") {
		t.Errorf("unselected page leaked into output:\n%s", md)
	}
	if !strings.Contains(md, "second page") {
		t.Errorf("selected page missing from output:\n%s", md)
	}
	if len(warnings) != 1 || warnings[0].Page != 5 {
		t.Errorf("warnings = %v, want one for page 5", warnings)
	}
}

type fakeSource struct {
	text string
	err  error
}

func (f fakeSource) Recognize(image []byte) (string, error) {
	return f.text, f.err
}

func TestOCRFallback(t *testing.T) {
	doc := model.NewDocument()
	p := model.NewPage(0, 612, 792)
	p.Raster = []byte{0xff}
	doc.AddPage(p)

	md, warnings, err := FromDocument(doc).
		TextSource(fakeSource{text: "INTRODUCTION\n\nRecognized paragraph text here."}).
		Markdown()
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := "### INTRODUCTION\n\nRecognized paragraph text here."
	if md != want {
		t.Errorf("Markdown() = %q, want %q", md, want)
	}
}

func TestOCRFailureDegradesToWarning(t *testing.T) {
	doc := model.NewDocument()
	p := model.NewPage(0, 612, 792)
	p.Raster = []byte{0xff}
	doc.AddPage(p)

	md, warnings, err := FromDocument(doc).
		TextSource(fakeSource{err: errors.New("tesseract exploded")}).
		Markdown()
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}
	if md != "" {
		t.Errorf("Markdown() = %q, want empty output", md)
	}
	if len(warnings) != 1 || warnings[0].Page != 1 {
		t.Fatalf("warnings = %v, want one for page 1", warnings)
	}
	if !strings.Contains(warnings[0].Message, "OCR failed") {
		t.Errorf("warning message = %q", warnings[0].Message)
	}
}

func TestConverterImmutable(t *testing.T) {
	base := FromDocument(sampleDocument())
	derived := base.Dialect(markdown.DialectObsidian).Pages(1)

	if base.options.dialect != markdown.DialectStandard {
		t.Error("Dialect mutated the base converter")
	}
	if len(base.options.pages) != 0 {
		t.Error("Pages mutated the base converter")
	}
	if derived.options.dialect != markdown.DialectObsidian || len(derived.options.pages) != 1 {
		t.Error("derived converter missing its configuration")
	}
}

func TestSummary(t *testing.T) {
	summary, _, err := FromDocument(sampleDocument()).Summary()
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	for _, want := range []string{"Total Pages: 1", "Headers: 1", "Lists: 1"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() missing %q:\n%s", want, summary)
		}
	}
}

func TestOutlineAndTOC(t *testing.T) {
	entries, _, err := FromDocument(sampleDocument()).Outline()
	if err != nil {
		t.Fatalf("Outline() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Level != 1 || entries[0].Text != "Document Title" {
		t.Errorf("Outline() = %+v, want one level-1 Document Title", entries)
	}

	toc, _, err := FromDocument(sampleDocument()).TableOfContents()
	if err != nil {
		t.Fatalf("TableOfContents() error: %v", err)
	}
	if toc != "- Document Title" {
		t.Errorf("TableOfContents() = %q", toc)
	}
}

func TestFormatWarnings(t *testing.T) {
	got := FormatWarnings([]Warning{
		{Page: 2, Message: "page analysis failed: bad block"},
		{Message: "document-level note"},
	})
	want := "page 2: page analysis failed: bad block\ndocument-level note"
	if got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
}
