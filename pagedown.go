// Package pagedown provides a fluent API for inferring document structure
// from extracted page content and synthesizing it into markdown.
//
// The input is a model.Document built from an extraction engine's span
// output; pagedown classifies each page into headers, paragraphs, lists,
// and tables, resolves reading order and columns, and renders the result
// in a chosen markdown dialect with image anchors interleaved.
//
// Basic usage:
//
//	md, warnings, err := pagedown.FromDocument(doc).Markdown()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagedown.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := pagedown.FromDocument(doc).
//	    DialectName("obsidian").
//	    Images(anchors...).
//	    Pages(1, 2, 3).
//	    Markdown()
//
// For advanced use cases, the lower-level layout and markdown packages are
// also available.
package pagedown

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagedown/model"
)

// Warning describes a non-fatal problem encountered while converting. A
// page that cannot be analyzed produces a warning and an empty layout
// rather than aborting the run.
type Warning struct {
	// Page is the 1-based page number, or 0 when the warning is not tied
	// to a page.
	Page int

	// Message describes the problem.
	Message string
}

// String returns the warning as a single line.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a newline-separated string for
// logging.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "\n")
}

// FromDocument wraps a document in a Converter for fluent configuration.
//
// Example:
//
//	md, warnings, err := pagedown.FromDocument(doc).Markdown()
func FromDocument(doc *model.Document) *Converter {
	return &Converter{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustMarkdown is a helper that wraps a call to a terminal operation such
// as Markdown() and panics if the error is non-nil. It discards warnings
// and returns just the value.
//
// Example:
//
//	md := pagedown.MustMarkdown(pagedown.FromDocument(doc).Markdown())
func MustMarkdown[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
