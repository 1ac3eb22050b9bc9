package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/tsawler/pagedown/model"
)

func TestGroupByPage(t *testing.T) {
	anchors := []Anchor{
		{Filename: "a.png", PageIndex: 0},
		{Filename: "b.png", PageIndex: 1},
		{Filename: "c.png", PageIndex: 0},
	}

	grouped := GroupByPage(anchors)
	if len(grouped) != 2 {
		t.Fatalf("got %d pages, want 2", len(grouped))
	}
	page0 := grouped[0]
	if len(page0) != 2 || page0[0].Filename != "a.png" || page0[1].Filename != "c.png" {
		t.Errorf("page 0 anchors = %+v, want a.png then c.png in supply order", page0)
	}
}

func TestInsertionPoint(t *testing.T) {
	tests := []struct {
		elements int
		want     int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{5, 1},
	}
	for _, tt := range tests {
		if got := InsertionPoint(tt.elements); got != tt.want {
			t.Errorf("InsertionPoint(%d) = %d, want %d", tt.elements, got, tt.want)
		}
	}
}

func TestAnchorAt(t *testing.T) {
	anchors := []Anchor{
		{Filename: "a.png", PageIndex: 0, BBox: model.NewBBox(100, 100, 200, 200)},
		{Filename: "b.png", PageIndex: 1, BBox: model.NewBBox(100, 100, 200, 200)},
	}

	a, ok := AnchorAt(anchors, 0, 150, 150)
	if !ok || a.Filename != "a.png" {
		t.Errorf("AnchorAt(0, 150, 150) = %+v, %v", a, ok)
	}
	if _, ok := AnchorAt(anchors, 0, 500, 500); ok {
		t.Error("point outside every box matched an anchor")
	}
	if _, ok := AnchorAt(anchors, 2, 150, 150); ok {
		t.Error("wrong page matched an anchor")
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProbeDimensions(t *testing.T) {
	w, h, err := ProbeDimensions(encodePNG(t, 7, 3))
	if err != nil {
		t.Fatalf("ProbeDimensions() error: %v", err)
	}
	if w != 7 || h != 3 {
		t.Errorf("dimensions = %dx%d, want 7x3", w, h)
	}

	if _, _, err := ProbeDimensions([]byte("not an image")); err == nil {
		t.Error("garbage bytes probed without error")
	}
}

func TestNewAnchor(t *testing.T) {
	a, err := NewAnchor("img.png", "images/img.png", 2, model.BBox{}, encodePNG(t, 4, 5))
	if err != nil {
		t.Fatalf("NewAnchor() error: %v", err)
	}
	if a.Width != 4 || a.Height != 5 {
		t.Errorf("dimensions = %dx%d, want 4x5", a.Width, a.Height)
	}
	if a.PageIndex != 2 || a.RelativePath != "images/img.png" {
		t.Errorf("anchor = %+v", a)
	}
}
