package markdown

import "testing"

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name    string
		want    Dialect
		wantErr bool
	}{
		{"standard", DialectStandard, false},
		{"github", DialectGitHub, false},
		{"obsidian", DialectObsidian, false},
		{"commonmark", DialectStandard, true},
		{"", DialectStandard, true},
		{"Obsidian", DialectStandard, true}, // names are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDialect(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDialect(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.want {
				t.Errorf("ParseDialect(%q) = %v, want %v", tt.name, d, tt.want)
			}
		})
	}
}

func TestDialectString(t *testing.T) {
	for _, tt := range []struct {
		d    Dialect
		want string
	}{
		{DialectStandard, "standard"},
		{DialectGitHub, "github"},
		{DialectObsidian, "obsidian"},
	} {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestImageEmbed(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectStandard, "![Image from page 1](images/p1.png)"},
		{DialectGitHub, "![Image from page 1](images/p1.png)"},
		{DialectObsidian, "![[images/p1.png]]"},
	}
	for _, tt := range tests {
		if got := tt.dialect.ImageEmbed("Image from page 1", "images/p1.png"); got != tt.want {
			t.Errorf("%v.ImageEmbed() = %q, want %q", tt.dialect, got, tt.want)
		}
	}
}
