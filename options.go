package pagedown

import (
	"github.com/tsawler/pagedown/images"
	"github.com/tsawler/pagedown/layout"
	"github.com/tsawler/pagedown/markdown"
	"github.com/tsawler/pagedown/observability"
	"github.com/tsawler/pagedown/ocr"
)

// convertOptions holds configuration for a conversion.
type convertOptions struct {
	// Output dialect.
	dialect markdown.Dialect

	// Image anchors to interleave, in extraction order.
	anchors []images.Anchor

	// OCR fallback for pages without a text layer. Nil disables it.
	source ocr.TextSource

	// Page selection (1-indexed in API, stored as-is; nil means all).
	pages []int

	// Per-detector analyzer configuration.
	analyzer layout.PageAnalyzerConfig

	logger observability.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		dialect:  markdown.DialectStandard,
		analyzer: layout.DefaultPageAnalyzerConfig(),
		logger:   observability.NopLogger{},
	}
}

// clone creates a deep copy of convertOptions.
func (o convertOptions) clone() convertOptions {
	newOpts := convertOptions{
		dialect:  o.dialect,
		source:   o.source,
		analyzer: o.analyzer,
		logger:   o.logger,
	}

	if o.anchors != nil {
		newOpts.anchors = make([]images.Anchor, len(o.anchors))
		copy(newOpts.anchors, o.anchors)
	}
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
