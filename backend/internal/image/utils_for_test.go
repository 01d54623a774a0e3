package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	goimage "image"
	"image/color"
	"image/png"

	"github.com/quibble-tools/quibble/api/apitype"
)

// makePngDataUri renders a PNG payload of the given dimensions the
// way the panel would upload it.
func makePngDataUri(width int, height int) string {
	canvas := goimage.NewRGBA(goimage.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			canvas.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, canvas); err != nil {
		panic(err)
	}

	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(buffer.Bytes()))
}

// makeOversizedDataUri returns an image-typed payload one byte past
// the upload cap.
func makeOversizedDataUri() string {
	raw := make([]byte, apitype.MaxImageByteSize+1)
	for i := range raw {
		raw[i] = byte(i)
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(raw))
}
