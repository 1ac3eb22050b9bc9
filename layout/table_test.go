package layout

import (
	"testing"

	"github.com/tsawler/pagedown/model"
)

func TestTableDetection(t *testing.T) {
	d := NewTableDetector()

	tests := []struct {
		name     string
		lines    []string
		wantRows int
		wantOK   bool
	}{
		{
			"space aligned columns",
			[]string{"Name   Age   City", "Alice   30   Oslo", "Bob   25   Lima"},
			3, true,
		},
		{
			"tab separated",
			[]string{"Name\tAge", "Alice\t30"},
			2, true,
		},
		{
			"single aligned row is not a table",
			[]string{"Name   Age", "just regular text here"},
			0, false,
		},
		{
			"prose block",
			[]string{"this is a sentence", "and another one"},
			0, false,
		},
		{
			"mixed block keeps only aligned rows",
			[]string{"intro sentence", "Name   Age", "Alice   30"},
			2, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boxes := make([]model.BBox, len(tt.lines))
			table, ok := d.DetectBlock(tt.lines, boxes, model.BBox{})
			if ok != tt.wantOK {
				t.Fatalf("DetectBlock ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if len(table.Rows) != tt.wantRows {
				t.Errorf("got %d rows, want %d", len(table.Rows), tt.wantRows)
			}
			if table.Confidence != TableConfidence {
				t.Errorf("Confidence = %v, want %v", table.Confidence, TableConfidence)
			}
		})
	}
}

func TestIsTableRowLine(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Name   Age", true},
		{"Name\tAge", true},
		{"Name Age", false},
		{"lonely   ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsTableRowLine(tt.text); got != tt.want {
			t.Errorf("IsTableRowLine(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestTableToMarkdown(t *testing.T) {
	table := Table{Rows: []TableRow{
		{Text: "Name   Age"},
		{Text: "Alice   30"},
		{Text: "Bob   25   extra"},
	}}

	want := "| Name | Age |  |\n" +
		"| --- | --- | --- |\n" +
		"| Alice | 30 |  |\n" +
		"| Bob | 25 | extra |"
	if got := table.ToMarkdown(); got != want {
		t.Errorf("ToMarkdown() =\n%q\nwant\n%q", got, want)
	}

	if got := (Table{}).ToMarkdown(); got != "" {
		t.Errorf("empty table ToMarkdown() = %q, want empty", got)
	}
}
