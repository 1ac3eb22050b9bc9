package layout

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/pagedown/model"
)

// Heading represents a detected header line.
type Heading struct {
	// Text is the header text, span texts joined with single spaces.
	Text string

	// Level is the markdown heading level, 1 through 4.
	Level int

	// FontSize is the average span size of the line.
	FontSize float64

	// IsBold indicates any span in the line carries the bold flag.
	IsBold bool

	// Confidence is a heuristic score in [0, 1], not a probability.
	Confidence float64

	// BBox is the bounding box of the source line.
	BBox model.BBox
}

// HeadingConfig holds configuration for header detection.
type HeadingConfig struct {
	// SizeRatio is the minimum font size ratio over the body font for a
	// line to qualify as a header on size alone. Default: 1.1.
	SizeRatio float64

	// MaxWords is the maximum word count for the size and bold rules.
	// Default: 10.
	MaxWords int

	// ShortWords is the word count at or under which a plain header gets
	// level 3 instead of 4. Default: 3.
	ShortWords int

	// MaxLength is the maximum text length for the all-caps rule; longer
	// lines are never headers on capitalization alone. Default: 100.
	MaxLength int
}

// DefaultHeadingConfig returns the default configuration.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		SizeRatio:  1.1,
		MaxWords:   10,
		ShortWords: 3,
		MaxLength:  100,
	}
}

// Level thresholds: ratios of line size to body size.
const (
	level1Ratio = 1.8
	level2Ratio = 1.5
	level3Ratio = 1.2
)

var (
	// Leading enumeration such as "1. Introduction" or "2 Scope". The
	// following capital is required; without it every numbered list item
	// would be consumed as a header.
	enumerationPattern = regexp.MustCompile(`^\d+\.?\s+[A-Z]`)

	// Whole line in capitals, e.g. "INTRODUCTION".
	allCapsPattern = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
)

// HeadingDetector labels lines as headers using font size, weight, and
// text shape relative to the page's body font.
type HeadingDetector struct {
	config HeadingConfig
	titler cases.Caser
}

// NewHeadingDetector creates a header detector with default configuration.
func NewHeadingDetector() *HeadingDetector {
	return NewHeadingDetectorWithConfig(DefaultHeadingConfig())
}

// NewHeadingDetectorWithConfig creates a header detector with custom
// configuration.
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	return &HeadingDetector{
		config: config,
		titler: cases.Title(language.Und),
	}
}

// DetectLine decides whether a line is a header. The text must be the
// stripped, space-joined span text; spans supply size and style signals.
// bodySize is the page's body font size. The second return value is false
// when the line is not a header.
func (d *HeadingDetector) DetectLine(text string, spans []model.Span, bodySize float64, bbox model.BBox) (Heading, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len(spans) == 0 {
		return Heading{}, false
	}

	var sum float64
	bold := false
	for _, s := range spans {
		sum += s.Size
		if s.IsBold() {
			bold = true
		}
	}
	avgSize := sum / float64(len(spans))

	return d.classify(text, avgSize, bold, bodySize, bbox)
}

// DetectTextLine decides whether a plain text line is a header, for text
// without geometry such as OCR output. Size and bold signals are neutral.
func (d *HeadingDetector) DetectTextLine(text string, bodySize float64) (Heading, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Heading{}, false
	}
	return d.classify(text, bodySize, false, bodySize, model.BBox{})
}

func (d *HeadingDetector) classify(text string, avgSize float64, bold bool, bodySize float64, bbox model.BBox) (Heading, bool) {
	if bodySize <= 0 {
		bodySize = 12
	}

	words := len(strings.Fields(text))
	isLarger := avgSize > bodySize*d.config.SizeRatio
	isShort := words <= d.config.MaxWords
	isEnumerated := enumerationPattern.MatchString(text)
	isAllCaps := len(text) <= d.config.MaxLength && allCapsPattern.MatchString(text)

	if !(isLarger && isShort) && !(bold && isShort) && !isEnumerated && !isAllCaps {
		return Heading{}, false
	}

	return Heading{
		Text:       text,
		Level:      d.level(avgSize/bodySize, bold, isEnumerated, words),
		FontSize:   avgSize,
		IsBold:     bold,
		Confidence: d.confidence(avgSize/bodySize, bold, isShort, d.isTitleOrCaps(text)),
		BBox:       bbox,
	}, true
}

// level maps the size ratio and text signals to a heading level. The
// mapping is monotone in the ratio: a larger ratio never yields a deeper
// level.
func (d *HeadingDetector) level(ratio float64, bold, enumerated bool, words int) int {
	switch {
	case ratio >= level1Ratio:
		return 1
	case ratio >= level2Ratio || enumerated:
		return 2
	case ratio >= level3Ratio || bold || words <= d.config.ShortWords:
		return 3
	default:
		return 4
	}
}

// confidence scores a detected header. Weights: size 0.3, bold 0.3,
// shortness 0.2, capitalization 0.2, clipped to [0, 1].
func (d *HeadingDetector) confidence(ratio float64, bold, isShort, titleOrCaps bool) float64 {
	confidence := 0.0
	if ratio > d.config.SizeRatio {
		confidence += 0.3
	}
	if bold {
		confidence += 0.3
	}
	if isShort {
		confidence += 0.2
	}
	if titleOrCaps {
		confidence += 0.2
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.0 {
		confidence = 0.0
	}
	return confidence
}

// isTitleOrCaps reports whether the text is title-cased or fully
// upper-cased.
func (d *HeadingDetector) isTitleOrCaps(text string) bool {
	hasLetter := strings.IndexFunc(text, unicode.IsLetter) >= 0
	if !hasLetter {
		return false
	}
	if strings.ToUpper(text) == text {
		return true
	}
	return d.titler.String(strings.ToLower(text)) == text
}

// ToMarkdown returns the header as a markdown heading line.
func (h Heading) ToMarkdown() string {
	return strings.Repeat("#", h.Level) + " " + h.Text
}
