package model

// FontKey identifies a font usage bucket: one name/size/flags combination.
type FontKey struct {
	Font  string
	Size  float64
	Flags int
}

// IsBold reports whether the key's style flags have the bold bit set.
func (k FontKey) IsBold() bool {
	return k.Flags&StyleBold != 0
}

// IsItalic reports whether the key's style flags have the italic bit set.
func (k FontKey) IsItalic() bool {
	return k.Flags&StyleItalic != 0
}

// FontUsage accumulates statistics for one font key.
type FontUsage struct {
	Key        FontKey
	UsageCount int // number of spans using this key
	TotalChars int // total bytes of text carried by this key
}

// FontProfile holds a page's font usage histogram and derived size
// statistics. It is computed once per page and read-only afterwards.
//
// The body font is the key carrying the most characters, not the most
// occurrences, so many small decorative spans never outrank the font a
// paragraph is actually set in. Ties go to the first-seen key.
type FontProfile struct {
	// Usages lists every font key in first-seen order.
	Usages []FontUsage

	// AvgSize, MinSize, MaxSize are computed across span occurrences.
	// All three default to 12 when the page has no spans.
	AvgSize float64
	MinSize float64
	MaxSize float64

	bodyIndex int // index into Usages, -1 when empty
}

// ProfileFonts computes the font profile for a page.
func ProfileFonts(p *Page) *FontProfile {
	profile := &FontProfile{bodyIndex: -1}
	index := make(map[FontKey]int)

	var sum float64
	var count int

	p.EachSpan(func(s Span) {
		key := FontKey{Font: s.Font, Size: s.Size, Flags: s.Flags}
		i, ok := index[key]
		if !ok {
			i = len(profile.Usages)
			index[key] = i
			profile.Usages = append(profile.Usages, FontUsage{Key: key})
		}
		profile.Usages[i].UsageCount++
		profile.Usages[i].TotalChars += len(s.Text)

		sum += s.Size
		count++
		if count == 1 {
			profile.MinSize = s.Size
			profile.MaxSize = s.Size
		} else {
			if s.Size < profile.MinSize {
				profile.MinSize = s.Size
			}
			if s.Size > profile.MaxSize {
				profile.MaxSize = s.Size
			}
		}
	})

	if count == 0 {
		profile.AvgSize = 12
		profile.MinSize = 12
		profile.MaxSize = 12
		return profile
	}

	profile.AvgSize = sum / float64(count)

	// Largest TotalChars wins; strict > keeps the first-seen key on ties.
	best := -1
	for i, u := range profile.Usages {
		if best < 0 || u.TotalChars > profile.Usages[best].TotalChars {
			best = i
		}
	}
	profile.bodyIndex = best

	return profile
}

// FontCount returns the number of distinct font keys.
func (f *FontProfile) FontCount() int {
	return len(f.Usages)
}

// BodyFont returns the usage entry for the inferred body font. The second
// return value is false when the page has no spans.
func (f *FontProfile) BodyFont() (FontUsage, bool) {
	if f.bodyIndex < 0 {
		return FontUsage{}, false
	}
	return f.Usages[f.bodyIndex], true
}

// BodySize returns the body font's size, defaulting to 12 when the page
// has no spans or the engine reported a non-positive size.
func (f *FontProfile) BodySize() float64 {
	body, ok := f.BodyFont()
	if !ok || body.Key.Size <= 0 {
		return 12
	}
	return body.Key.Size
}
