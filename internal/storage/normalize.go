package storage

import (
	"github.com/h2non/bimg"
)

// Downscale shrinks an image to maxWidth when it is wider, keeping the
// aspect ratio. Images at or under the limit pass through untouched.
func Downscale(buf []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		return buf, nil
	}
	img := bimg.NewImage(buf)
	size, err := img.Size()
	if err != nil {
		return nil, err
	}
	if size.Width <= maxWidth {
		return buf, nil
	}
	return img.Process(bimg.Options{Width: maxWidth})
}
