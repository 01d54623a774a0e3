package imagereader

import (
	"bytes"
	"encoding/base64"
	"fmt"
	goimage "image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestParseDataUri(t *testing.T) {
	a := assert.New(t)

	t.Run("Base64 payload", func(t *testing.T) {
		mimeType, raw, err := ParseDataUri("data:image/png;base64,aGVsbG8=")
		a.Nil(err)
		a.Equal("image/png", mimeType)
		a.Equal([]byte("hello"), raw)
	})
	t.Run("Plain payload", func(t *testing.T) {
		mimeType, raw, err := ParseDataUri("data:text/plain,hello")
		a.Nil(err)
		a.Equal("text/plain", mimeType)
		a.Equal([]byte("hello"), raw)
	})
	t.Run("Missing prefix", func(t *testing.T) {
		_, _, err := ParseDataUri("image/png;base64,aGVsbG8=")
		a.Equal(ErrInvalidDataUri, err)
	})
	t.Run("Missing separator", func(t *testing.T) {
		_, _, err := ParseDataUri("data:image/png;base64")
		a.Equal(ErrInvalidDataUri, err)
	})
	t.Run("Broken base64", func(t *testing.T) {
		_, _, err := ParseDataUri("data:image/png;base64,%%%")
		a.Equal(ErrInvalidDataUri, err)
	})
}

func TestRead(t *testing.T) {
	a := assert.New(t)

	t.Run("PNG payload", func(t *testing.T) {
		data := makePngDataUri(320, 240)

		decoded, err := Read(data)
		require.Nil(t, err)

		a.Equal("image/png", decoded.MimeType)
		a.Equal(320, decoded.Width)
		a.Equal(240, decoded.Height)
		a.True(decoded.ByteSize > 0)
		a.True(decoded.Taken.IsZero())
		a.True(strings.HasPrefix(decoded.Thumbnail, "data:image/png;base64,"))
	})
	t.Run("Thumbnail keeps the aspect ratio within bounds", func(t *testing.T) {
		decoded, err := Read(makePngDataUri(400, 100))
		require.Nil(t, err)

		mimeType, raw, err := ParseDataUri(decoded.Thumbnail)
		require.Nil(t, err)
		a.Equal("image/png", mimeType)

		thumbnail, err := png.Decode(bytes.NewReader(raw))
		require.Nil(t, err)
		bounds := thumbnail.Bounds()
		a.Equal(200, bounds.Dx())
		a.Equal(50, bounds.Dy())
	})
	t.Run("Small image is not scaled up", func(t *testing.T) {
		decoded, err := Read(makePngDataUri(40, 20))
		require.Nil(t, err)

		_, raw, err := ParseDataUri(decoded.Thumbnail)
		require.Nil(t, err)

		thumbnail, err := png.Decode(bytes.NewReader(raw))
		require.Nil(t, err)
		bounds := thumbnail.Bounds()
		a.Equal(40, bounds.Dx())
		a.Equal(20, bounds.Dy())
	})
	t.Run("Non-image payload", func(t *testing.T) {
		_, err := Read("data:text/plain;base64,aGVsbG8=")
		a.NotNil(err)
	})
	t.Run("Not a data URI", func(t *testing.T) {
		_, err := Read("just some text")
		a.Equal(ErrInvalidDataUri, err)
	})
}
