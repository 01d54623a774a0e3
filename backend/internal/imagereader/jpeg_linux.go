package imagereader

import (
	"image"
	"io"

	"github.com/pixiv/go-libjpeg/jpeg"
)

func decodeJpeg(reader io.Reader) (image.Image, error) {
	return jpeg.Decode(reader, &jpeg.DecoderOptions{})
}
