package api

import "github.com/quibble-tools/quibble/api/apitype"

type AddImageCommand struct {
	SectionId apitype.SectionId
	Name      string
	// Data is the uploaded payload as a data URI. The service decodes
	// it once to capture the pixel dimensions.
	Data     string
	Priority int

	apitype.NotThrottled
}

type ImageQuery struct {
	SectionId apitype.SectionId
	Id        apitype.ImageId

	apitype.NotThrottled
}

type RenameImageCommand struct {
	SectionId apitype.SectionId
	Id        apitype.ImageId
	Name      string

	apitype.NotThrottled
}

type SetPriorityCommand struct {
	SectionId apitype.SectionId
	Id        apitype.ImageId
	Priority  int

	apitype.NotThrottled
}

type UpdateImagesCommand struct {
	SectionId apitype.SectionId

	apitype.NotThrottled
}

// ImageService manages the image collection of a section.
type ImageService interface {
	AddImage(*AddImageCommand) (*apitype.ImageRecord, error)
	DeleteImage(*ImageQuery) error
	RenameImage(*RenameImageCommand) error
	SetPriority(*SetPriorityCommand) error
	ClearImages(*SectionQuery) error

	GetImages(apitype.SectionId) []*apitype.ImageRecord
	GetImageById(apitype.SectionId, apitype.ImageId) *apitype.ImageRecord

	// OrderedImages walks the section's images ascending by width,
	// then by priority for equal widths.
	OrderedImages(apitype.SectionId) *apitype.ImageIterator

	Close()
}
