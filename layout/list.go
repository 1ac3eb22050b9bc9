package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/pagedown/model"
)

// ListType represents the type of a detected list.
type ListType int

const (
	// ListTypeBullet covers bullet glyphs (-, •, *).
	ListTypeBullet ListType = iota
	// ListTypeNumbered covers numeric (1.) and letter (a.) ordinals.
	ListTypeNumbered
)

// String returns a string representation of the list type.
func (t ListType) String() string {
	if t == ListTypeBullet {
		return "bullet"
	}
	return "numbered"
}

// ListItem is a single item of a detected list.
type ListItem struct {
	// Text is the item content with the bullet or ordinal prefix removed.
	Text string

	// RawText is the original line text including the prefix.
	RawText string

	// BBox is the bounding box of the source line.
	BBox model.BBox
}

// List is a run of consecutive list-item lines. Type is fixed by the
// first item when the list is opened and never changes afterwards. A list
// with zero items is never materialized.
type List struct {
	Type  ListType
	Items []ListItem

	// BBox is the bounding box of the first item's line.
	BBox model.BBox
}

var (
	bulletItemPattern = regexp.MustCompile(`^[-•*]\s+(.+)`)
	numberItemPattern = regexp.MustCompile(`^\d+\.\s+(.+)`)
	letterItemPattern = regexp.MustCompile(`^[a-zA-Z]\.\s+(.+)`)
)

// ListDetector groups consecutive list-item lines into lists.
//
// The detector is fed lines one at a time in reading order via Feed; a
// blank or non-matching line closes the open list. Flush closes whatever
// remains open at the end of a page.
type ListDetector struct {
	lists   []List
	current *List
}

// NewListDetector creates a list detector.
func NewListDetector() *ListDetector {
	return &ListDetector{}
}

// Feed consumes one line. It returns true when the line was taken as a
// list item; a false return means the line closed any open list and
// belongs to another category.
func (d *ListDetector) Feed(text string, bbox model.BBox) bool {
	text = strings.TrimSpace(text)

	itemText, bullet, ok := matchListItem(text)
	if !ok {
		d.closeCurrent()
		return false
	}

	if d.current == nil {
		listType := ListTypeNumbered
		if bullet {
			listType = ListTypeBullet
		}
		d.current = &List{Type: listType, BBox: bbox}
	}
	d.current.Items = append(d.current.Items, ListItem{
		Text:    itemText,
		RawText: text,
		BBox:    bbox,
	})
	return true
}

// Break closes the open list without consuming a line. It is used when a
// line was already consumed by a higher-precedence category, such as a
// header.
func (d *ListDetector) Break() {
	d.closeCurrent()
}

// Flush closes the open list, if any, and returns all detected lists.
func (d *ListDetector) Flush() []List {
	d.closeCurrent()
	return d.lists
}

func (d *ListDetector) closeCurrent() {
	if d.current != nil && len(d.current.Items) > 0 {
		d.lists = append(d.lists, *d.current)
	}
	d.current = nil
}

// matchListItem reports whether a line is a list item, returning the item
// text without its prefix and whether the prefix was a bullet glyph.
func matchListItem(text string) (itemText string, bullet bool, ok bool) {
	if m := bulletItemPattern.FindStringSubmatch(text); m != nil {
		return m[1], true, true
	}
	if m := numberItemPattern.FindStringSubmatch(text); m != nil {
		return m[1], false, true
	}
	if m := letterItemPattern.FindStringSubmatch(text); m != nil {
		return m[1], false, true
	}
	return "", false, false
}

// IsListItemLine reports whether a line would be taken as a list item.
func IsListItemLine(text string) bool {
	_, _, ok := matchListItem(strings.TrimSpace(text))
	return ok
}
