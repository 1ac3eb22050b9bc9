package pagedown

import (
	"fmt"

	"github.com/tsawler/pagedown/images"
	"github.com/tsawler/pagedown/layout"
	"github.com/tsawler/pagedown/markdown"
	"github.com/tsawler/pagedown/model"
	"github.com/tsawler/pagedown/observability"
	"github.com/tsawler/pagedown/ocr"
)

// Converter provides a fluent interface for turning an extracted document
// into markdown. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method
// chaining.
type Converter struct {
	doc *model.Document

	// Configuration
	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability: each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		doc:     c.doc,
		options: c.options.clone(),
		err:     c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Dialect sets the markdown output dialect.
func (c *Converter) Dialect(d markdown.Dialect) *Converter {
	newConv := c.clone()
	newConv.options.dialect = d
	return newConv
}

// DialectName sets the output dialect from its name: "standard",
// "github", or "obsidian". An unknown name fails the chain at the
// terminal operation; it is never silently defaulted.
func (c *Converter) DialectName(name string) *Converter {
	newConv := c.clone()
	d, err := markdown.ParseDialect(name)
	if err != nil && newConv.err == nil {
		newConv.err = err
	}
	newConv.options.dialect = d
	return newConv
}

// Images supplies image anchors to interleave into the output. Multiple
// calls are cumulative; within a page, anchors keep the order they were
// supplied in.
func (c *Converter) Images(anchors ...images.Anchor) *Converter {
	newConv := c.clone()
	newConv.options.anchors = append(newConv.options.anchors, anchors...)
	return newConv
}

// TextSource enables the OCR fallback for pages that have a raster but no
// text layer. Without one, such pages render as image-only.
func (c *Converter) TextSource(source ocr.TextSource) *Converter {
	newConv := c.clone()
	newConv.options.source = source
	return newConv
}

// Pages restricts conversion to the given pages (1-indexed). Multiple
// calls are cumulative. Page numbers outside the document produce a
// warning and are skipped.
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append(newConv.options.pages, pages...)
	return newConv
}

// AnalyzerConfig overrides the layout analyzer's detector configuration.
func (c *Converter) AnalyzerConfig(config layout.PageAnalyzerConfig) *Converter {
	newConv := c.clone()
	newConv.options.analyzer = config
	return newConv
}

// Logger injects a logger. The default discards everything.
func (c *Converter) Logger(log observability.Logger) *Converter {
	newConv := c.clone()
	if log != nil {
		newConv.options.logger = log
	}
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Markdown analyzes the document and renders it in the configured
// dialect. Warnings report pages that were skipped or degraded; the
// conversion itself only fails on configuration errors or a missing
// document.
func (c *Converter) Markdown() (string, []Warning, error) {
	structure, selected, warnings, err := c.analyze()
	if err != nil {
		return "", warnings, err
	}

	anchors := c.selectedAnchors(selected)
	out := markdown.NewSynthesizer(c.options.dialect).Render(structure, anchors)
	return out, warnings, nil
}

// Structure analyzes the document and returns the inferred layout without
// rendering it.
func (c *Converter) Structure() (*layout.DocumentStructure, []Warning, error) {
	structure, _, warnings, err := c.analyze()
	return structure, warnings, err
}

// Summary returns a human-readable summary of the inferred structure.
func (c *Converter) Summary() (string, []Warning, error) {
	structure, _, warnings, err := c.analyze()
	if err != nil {
		return "", warnings, err
	}
	return structure.Summary(), warnings, nil
}

// Outline renders the document and returns the headings of the rendered
// markdown in document order.
func (c *Converter) Outline() ([]markdown.OutlineEntry, []Warning, error) {
	out, warnings, err := c.Markdown()
	if err != nil {
		return nil, warnings, err
	}
	return markdown.Outline([]byte(out)), warnings, nil
}

// TableOfContents renders the document and returns a nested bullet list
// of its headings.
func (c *Converter) TableOfContents() (string, []Warning, error) {
	out, warnings, err := c.Markdown()
	if err != nil {
		return "", warnings, err
	}
	return markdown.MarkdownTOC([]byte(out)), warnings, nil
}

// ============================================================================
// Pipeline
// ============================================================================

// analyze runs the layout pipeline over the selected pages. Pages that
// cannot be analyzed get the empty sentinel layout and a warning; the run
// never aborts over a single page.
func (c *Converter) analyze() (*layout.DocumentStructure, []*model.Page, []Warning, error) {
	if c.err != nil {
		return nil, nil, nil, c.err
	}
	if c.doc == nil {
		return nil, nil, nil, fmt.Errorf("no document specified")
	}

	selected, warnings := c.selectedPages()

	pageAnalyzer := layout.NewPageAnalyzerWithConfig(c.options.analyzer)
	docAnalyzer := layout.NewDocumentAnalyzer(pageAnalyzer)
	docAnalyzer.SetLogger(c.options.logger)

	for _, p := range selected {
		if p.SpanCount() == 0 && len(p.Raster) > 0 && c.options.source != nil {
			warnings = append(warnings, c.recognizePage(docAnalyzer, pageAnalyzer, p)...)
			continue
		}
		warnings = append(warnings, analyzePage(docAnalyzer, p)...)
	}

	structure := docAnalyzer.Structure(&model.Document{Pages: selected})
	return structure, selected, warnings, nil
}

// recognizePage runs the OCR fallback for one page and stores the
// resulting layout.
func (c *Converter) recognizePage(docAnalyzer *layout.DocumentAnalyzer, pageAnalyzer *layout.PageAnalyzer, p *model.Page) []Warning {
	text, err := c.options.source.Recognize(p.Raster)
	if err != nil {
		docAnalyzer.SetPageLayout(layout.EmptyPageLayout(p.Index))
		return []Warning{{Page: p.Index + 1, Message: fmt.Sprintf("OCR failed: %v", err)}}
	}
	if text == "" {
		docAnalyzer.SetPageLayout(layout.EmptyPageLayout(p.Index))
		return nil
	}
	docAnalyzer.SetPageLayout(pageAnalyzer.AnalyzeText(p.Index, text))
	return nil
}

// analyzePage analyzes one page, converting a panic from malformed page
// data into a warning and an empty layout.
func analyzePage(docAnalyzer *layout.DocumentAnalyzer, p *model.Page) (warnings []Warning) {
	defer func() {
		if r := recover(); r != nil {
			docAnalyzer.SetPageLayout(layout.EmptyPageLayout(p.Index))
			warnings = append(warnings, Warning{
				Page:    p.Index + 1,
				Message: fmt.Sprintf("page analysis failed: %v", r),
			})
		}
	}()
	docAnalyzer.PageLayout(p)
	return nil
}

// selectedPages resolves the page selection against the document. With no
// selection, all pages are returned.
func (c *Converter) selectedPages() ([]*model.Page, []Warning) {
	if len(c.options.pages) == 0 {
		return c.doc.Pages, nil
	}

	var selected []*model.Page
	var warnings []Warning
	seen := make(map[int]bool)
	for _, n := range c.options.pages {
		if seen[n] {
			continue
		}
		seen[n] = true
		p := c.doc.GetPage(n - 1)
		if p == nil {
			warnings = append(warnings, Warning{
				Page:    n,
				Message: fmt.Sprintf("page %d does not exist (document has %d pages)", n, c.doc.PageCount()),
			})
			continue
		}
		selected = append(selected, p)
	}
	return selected, warnings
}

// selectedAnchors filters the configured anchors down to the selected
// pages, preserving supply order.
func (c *Converter) selectedAnchors(selected []*model.Page) []images.Anchor {
	if len(c.options.pages) == 0 {
		return c.options.anchors
	}
	keep := make(map[int]bool, len(selected))
	for _, p := range selected {
		keep[p.Index] = true
	}
	var anchors []images.Anchor
	for _, a := range c.options.anchors {
		if keep[a.PageIndex] {
			anchors = append(anchors, a)
		}
	}
	return anchors
}
