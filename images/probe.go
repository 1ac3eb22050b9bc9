package images

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for the formats the extraction collaborator
	// produces, beyond the stdlib set.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/tsawler/pagedown/model"
)

// ProbeDimensions decodes just enough of an encoded image to report its
// pixel dimensions.
func ProbeDimensions(data []byte) (width, height int, err error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("probe image dimensions: %w", err)
	}
	return config.Width, config.Height, nil
}

// NewAnchor builds an anchor from encoded image bytes, filling the pixel
// dimensions by probing the data. The bytes themselves are not retained.
func NewAnchor(filename, relativePath string, pageIndex int, bbox model.BBox, data []byte) (Anchor, error) {
	w, h, err := ProbeDimensions(data)
	if err != nil {
		return Anchor{}, err
	}
	return Anchor{
		Filename:     filename,
		RelativePath: relativePath,
		PageIndex:    pageIndex,
		BBox:         bbox,
		Width:        w,
		Height:       h,
	}, nil
}
