package markdown

import "testing"

func TestPostprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"collapses blank runs",
			"A\n\n\n\nB",
			"A\n\nB",
		},
		{
			"blank lines around headings",
			"intro\n## Section\nbody",
			"intro\n\n## Section\n\nbody",
		},
		{
			"blank lines around images",
			"before\n![alt](a.png)\nafter",
			"before\n\n![alt](a.png)\n\nafter",
		},
		{
			"wiki image embeds",
			"before\n![[a.png]]\nafter",
			"before\n\n![[a.png]]\n\nafter",
		},
		{
			"blank after list run",
			"- one\n- two\nparagraph text",
			"- one\n- two\n\nparagraph text",
		},
		{
			"numbered list kept together",
			"1. one\n2. two",
			"1. one\n2. two",
		},
		{
			"trims surrounding blanks",
			"\n\n\nA\n\n\n",
			"A",
		},
		{
			"trailing whitespace stripped",
			"A   \nB\t",
			"A\nB",
		},
		{
			"empty input",
			"",
			"",
		},
		{
			"only blanks",
			"\n\n  \n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Postprocess(tt.in)
			if got != tt.want {
				t.Errorf("Postprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPostprocessIdempotent(t *testing.T) {
	inputs := []string{
		"A\n\n\n\nB",
		"intro\n## Section\nbody\n- one\n- two\nafter",
		"# Title\n\n![alt](a.png)\n\ntext\n\n---\n\n## Page 2\n\nmore",
		"",
		"- a\n- b\n\n1. c\n2. d",
	}
	for _, in := range inputs {
		once := Postprocess(in)
		twice := Postprocess(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce  = %q\ntwice = %q", in, once, twice)
		}
	}
}
