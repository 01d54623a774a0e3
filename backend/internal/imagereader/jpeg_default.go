//go:build !linux

package imagereader

import (
	"image"
	"image/jpeg"
	"io"
)

func decodeJpeg(reader io.Reader) (image.Image, error) {
	return jpeg.Decode(reader)
}
