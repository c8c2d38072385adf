package pixmath

import (
	"image"

	"github.com/nfnt/resize"
)

// Preview scales the buffer down to fit maxWidth×maxHeight keeping its aspect ratio.
// A buffer that already fits is returned at its own size.
func (d *DisplayBuffer) Preview(maxWidth, maxHeight uint) image.Image {
	return resize.Thumbnail(maxWidth, maxHeight, d.Image(), resize.Lanczos3)
}
