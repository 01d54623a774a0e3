package imagereader

import (
	"bytes"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/quibble-tools/quibble/common/logger"
)

// readTakenTime extracts the capture time from EXIF data when the
// payload carries any. Returns the zero time otherwise; the caller
// falls back to the upload time.
func readTakenTime(mimeType string, raw []byte) time.Time {
	if mimeType != "image/jpeg" {
		return time.Time{}
	}

	decodedExif, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		logger.Trace.Print("No Exif data in payload ", err)
		return time.Time{}
	}

	taken, err := decodedExif.DateTime()
	if err != nil {
		return time.Time{}
	}
	return taken
}
