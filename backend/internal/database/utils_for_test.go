package database

import (
	"time"

	"github.com/quibble-tools/quibble/api/apitype"
)

func newTestImage(id string, sectionId string, width int, priority int) *apitype.ImageRecord {
	return apitype.NewImageRecord(
		apitype.ImageId(id),
		apitype.SectionId(sectionId),
		"image-"+id,
		"image/png",
		1234,
		"data:image/png;base64,AAAA",
		"data:image/png;base64,BBBB",
		width,
		width/2,
		priority,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	)
}
