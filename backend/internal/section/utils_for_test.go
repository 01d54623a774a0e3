package section

import (
	"time"

	"github.com/quibble-tools/quibble/api/apitype"
)

func newStoreImage(id string, sectionId apitype.SectionId) *apitype.ImageRecord {
	return apitype.NewImageRecord(
		apitype.ImageId(id), sectionId, "image-"+id, "image/png", 1234,
		"data:image/png;base64,AAAA", "", 320, 160, 1, time.Now())
}
