package imagereader

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/quibble-tools/quibble/common/logger"
)

const (
	thumbnailMaxWidth  = 200
	thumbnailMaxHeight = 200
)

var ErrInvalidDataUri = errors.New("invalid data URI payload")

// Decoded is the result of reading an uploaded payload once: the
// metadata needed for an image record plus a list thumbnail.
type Decoded struct {
	MimeType  string
	ByteSize  int64
	Width     int
	Height    int
	Thumbnail string
	Taken     time.Time
}

// ParseDataUri splits a "data:<mime>;base64,<payload>" URI into its
// MIME type and raw bytes.
func ParseDataUri(data string) (string, []byte, error) {
	if !strings.HasPrefix(data, "data:") {
		return "", nil, ErrInvalidDataUri
	}

	meta, payload, found := strings.Cut(data[len("data:"):], ",")
	if !found {
		return "", nil, ErrInvalidDataUri
	}

	mimeType := meta
	encoded := false
	if cut, ok := strings.CutSuffix(meta, ";base64"); ok {
		mimeType = cut
		encoded = true
	}

	if !encoded {
		return mimeType, []byte(payload), nil
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidDataUri
	}
	return mimeType, raw, nil
}

// Read decodes an uploaded payload once: dimensions from the pixel
// data, capture time from EXIF when present and a scaled thumbnail
// for the image list.
func Read(data string) (*Decoded, error) {
	mimeType, raw, err := ParseDataUri(data)
	if err != nil {
		return nil, err
	}
	return ReadBytes(mimeType, raw)
}

// ReadBytes decodes an already parsed payload. Callers that need to
// validate the raw bytes first parse with ParseDataUri themselves.
func ReadBytes(mimeType string, raw []byte) (*Decoded, error) {
	start := time.Now()
	decoded, err := decodeImage(mimeType, raw)
	if err != nil {
		return nil, err
	}
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Decoded %s payload in %s", mimeType, time.Since(start))
	}

	bounds := decoded.Bounds()

	return &Decoded{
		MimeType:  mimeType,
		ByteSize:  int64(len(raw)),
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Thumbnail: renderThumbnail(decoded),
		Taken:     readTakenTime(mimeType, raw),
	}, nil
}

func decodeImage(mimeType string, raw []byte) (image.Image, error) {
	if mimeType == "image/jpeg" {
		return decodeJpeg(bytes.NewReader(raw))
	}
	return imaging.Decode(bytes.NewReader(raw))
}

func renderThumbnail(decoded image.Image) string {
	thumbnail := resize.Thumbnail(thumbnailMaxWidth, thumbnailMaxHeight, decoded, resize.Lanczos3)

	var buffer bytes.Buffer
	if err := imaging.Encode(&buffer, thumbnail, imaging.PNG); err != nil {
		logger.Warn.Print("Could not encode thumbnail ", err)
		return ""
	}

	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(buffer.Bytes()))
}
