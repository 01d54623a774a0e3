package database

import "github.com/quibble-tools/quibble/api/apitype"

func toApiSection(section *Section) *apitype.Section {
	return apitype.NewSectionWithCurrentImage(
		apitype.SectionId(section.Id),
		section.Name,
		section.Url,
		apitype.ImageId(section.CurrImageId),
	)
}

func toApiSections(sections []Section) []*apitype.Section {
	apiSections := make([]*apitype.Section, len(sections))
	for i, section := range sections {
		apiSections[i] = toApiSection(&section)
	}
	return apiSections
}

func toApiImage(image *Image) *apitype.ImageRecord {
	return apitype.NewImageRecord(
		apitype.ImageId(image.Id),
		apitype.SectionId(image.SectionId),
		image.Name,
		image.MimeType,
		image.ByteSize,
		image.Data,
		image.Thumbnail,
		image.Width,
		image.Height,
		image.Priority,
		image.CreatedTimestamp,
	)
}

func toApiImages(images []Image) []*apitype.ImageRecord {
	apiImages := make([]*apitype.ImageRecord, len(images))
	for i, image := range images {
		apiImages[i] = toApiImage(&image)
	}
	return apiImages
}

func toDbImage(image *apitype.ImageRecord) *Image {
	return &Image{
		Id:               string(image.Id()),
		SectionId:        string(image.SectionId()),
		Name:             image.Name(),
		MimeType:         image.MimeType(),
		ByteSize:         image.ByteSize(),
		Data:             image.Data(),
		Thumbnail:        image.Thumbnail(),
		Width:            image.Width(),
		Height:           image.Height(),
		Priority:         image.Priority(),
		CreatedTimestamp: image.Timestamp(),
	}
}
