// Package layout infers document structure from the span/block model:
// headers, paragraphs, lists, and tables, plus reading order and a
// two-column layout heuristic.
//
// Classification is heuristic and tolerant by design. Detectors prefer
// false negatives over false positives: an under-detected header degrades
// to a paragraph, and table detection carries a fixed 0.5 confidence to
// signal "uncertain" rather than "confirmed". Classification never fails
// destructively; a page that cannot be analyzed yields an empty layout.
//
// Precedence is fixed: a line consumed as a header is excluded from all
// other categories, list items take lines before table rows, and whatever
// remains in a block becomes paragraph text.
package layout
