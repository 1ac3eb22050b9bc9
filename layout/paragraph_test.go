package layout

import (
	"testing"

	"github.com/tsawler/pagedown/model"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"glued case boundary", "the endNext part", "the end Next part"},
		{"glued after period", "sentence ends.Next one", "sentence ends. Next one"},
		{"control characters", "ab\x00cd\x07ef", "abcdef"},
		{"space runs", "too   many\t spaces", "too many spaces"},
		{"preserves newlines", "line one\nline two", "line one\nline two"},
		{"trims edges", "  padded  ", "padded"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAssembleParagraph(t *testing.T) {
	p, ok := AssembleParagraph([]string{"first line here", "", "second line"}, model.BBox{})
	if !ok {
		t.Fatal("AssembleParagraph returned false for non-empty lines")
	}
	if p.Text != "first line here\nsecond line" {
		t.Errorf("Text = %q", p.Text)
	}
	if p.LineCount != 2 {
		t.Errorf("LineCount = %d, want 2 (blank line dropped)", p.LineCount)
	}
	if p.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", p.WordCount)
	}
}

func TestAssembleParagraphEmpty(t *testing.T) {
	if _, ok := AssembleParagraph(nil, model.BBox{}); ok {
		t.Error("nil lines produced a paragraph")
	}
	if _, ok := AssembleParagraph([]string{"", "   "}, model.BBox{}); ok {
		t.Error("blank lines produced a paragraph")
	}
}
