// Package ocr recognizes text in page raster images, used as a fallback
// for pages that carry no text layer.
//
// The real implementation wraps the Tesseract engine via gosseract and is
// gated behind the "ocr" build tag, since it needs Tesseract installed on
// the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag, New returns ErrOCRNotEnabled and callers fall back to
// treating the page as image-only.
package ocr

// TextSource recognizes text in an encoded raster image. The converter
// depends on this interface rather than the Tesseract client directly, so
// callers can plug in any recognizer.
type TextSource interface {
	// Recognize returns the text found in the image, trimmed of
	// surrounding whitespace. An empty string with a nil error means the
	// image contains no recognizable text.
	Recognize(image []byte) (string, error)
}
