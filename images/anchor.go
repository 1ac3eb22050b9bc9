// Package images integrates externally extracted image descriptors into
// the synthesized document. Anchors are opaque records: the integrator
// never validates that the referenced files exist.
package images

import "github.com/tsawler/pagedown/model"

// Anchor describes one image extracted from a page by the external image
// extraction collaborator. Filename and RelativePath are treated as
// opaque strings.
type Anchor struct {
	Filename     string
	RelativePath string

	// PageIndex is the 0-based index of the source page.
	PageIndex int

	// BBox is the image's placement on the page, zero-area when unknown.
	BBox model.BBox

	// Width and Height are pixel dimensions.
	Width  int
	Height int
}

// GroupByPage groups anchors by page index, preserving the order in which
// the extraction collaborator supplied them. Anchors are never re-sorted
// by position.
func GroupByPage(anchors []Anchor) map[int][]Anchor {
	grouped := make(map[int][]Anchor)
	for _, a := range anchors {
		grouped[a.PageIndex] = append(grouped[a.PageIndex], a)
	}
	return grouped
}

// InsertionPoint decides where a page's image group goes among the page's
// structural elements: immediately after the first element when the page
// has at least two, otherwise at the end.
//
// Images are placed as one atomic group per page rather than anchored
// individually to overlapping text blocks. This is a documented
// simplification.
func InsertionPoint(elementCount int) int {
	if elementCount > 1 {
		return 1
	}
	return elementCount
}

// AnchorAt returns the anchor at a position on a page, or false when no
// anchor's bounding box contains the point.
func AnchorAt(anchors []Anchor, pageIndex int, x, y float64) (Anchor, bool) {
	for _, a := range anchors {
		if a.PageIndex == pageIndex && a.BBox.Contains(x, y) {
			return a, true
		}
	}
	return Anchor{}, false
}
