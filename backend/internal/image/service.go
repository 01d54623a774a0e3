package image

import (
	"strings"
	"time"

	"github.com/quibble-tools/quibble/api"
	"github.com/quibble-tools/quibble/api/apitype"
	"github.com/quibble-tools/quibble/backend/internal/database"
	"github.com/quibble-tools/quibble/backend/internal/imagereader"
	"github.com/quibble-tools/quibble/common/logger"
)

type Service struct {
	sender       api.Sender
	imageStore   *database.ImageStore
	sectionStore *database.SectionStore

	api.ImageService
}

func NewImageService(sender api.Sender, stores *database.Stores) api.ImageService {
	return newService(sender, stores)
}

func newService(sender api.Sender, stores *database.Stores) *Service {
	return &Service{
		sender:       sender,
		imageStore:   stores.ImageStore,
		sectionStore: stores.SectionStore,
	}
}

// AddImage validates and decodes the uploaded payload, then stores it
// as a new record. Selection of the displayed image is left to the
// width matcher, which runs on the images-updated event.
func (s *Service) AddImage(command *api.AddImageCommand) (*apitype.ImageRecord, error) {
	section, err := s.sectionStore.GetSectionById(command.SectionId)
	if err != nil {
		return nil, err
	}
	if section == nil {
		logger.Warn.Printf("Upload to unknown section '%s' ignored", command.SectionId)
		return nil, nil
	}

	mimeType, raw, err := imagereader.ParseDataUri(command.Data)
	if err != nil {
		return nil, apitype.ErrInvalidImageType
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, apitype.ErrInvalidImageType
	}
	// Checked before any decode work so oversized payloads stay cheap
	if int64(len(raw)) > apitype.MaxImageByteSize {
		return nil, apitype.ErrImageTooLarge
	}

	decoded, err := imagereader.ReadBytes(mimeType, raw)
	if err != nil {
		return nil, apitype.ErrInvalidImageType
	}

	timestamp := decoded.Taken
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	record := apitype.NewImageRecord(
		apitype.ImageId(apitype.NextTimeId()),
		command.SectionId,
		command.Name,
		decoded.MimeType,
		decoded.ByteSize,
		command.Data,
		decoded.Thumbnail,
		decoded.Width,
		decoded.Height,
		command.Priority,
		timestamp,
	)

	stored, err := s.imageStore.AddImage(record)
	if err != nil {
		return nil, err
	}

	logger.Info.Printf("Added image '%s' (%dx%d) to section '%s'",
		stored.Name(), stored.Width(), stored.Height(), section.Name())
	s.notifyImagesUpdated(command.SectionId)
	return stored, nil
}

// DeleteImage removes the record. A dangling current image pointer is
// cleared right away; the matcher reassigns it from the remaining
// images on the images-updated event.
func (s *Service) DeleteImage(query *api.ImageQuery) error {
	section, err := s.sectionStore.GetSectionById(query.SectionId)
	if err != nil {
		return err
	}
	if section == nil {
		logger.Warn.Printf("Delete of image in unknown section '%s' ignored", query.SectionId)
		return nil
	}

	if err := s.imageStore.RemoveImage(query.SectionId, query.Id); err != nil {
		return err
	}

	if section.CurrentImageId() == query.Id {
		if err := s.sectionStore.ClearCurrentImage(query.SectionId); err != nil {
			return err
		}
	}

	s.notifyImagesUpdated(query.SectionId)
	return nil
}

// RenameImage is a no-op when the new name trims to empty or is
// unchanged.
func (s *Service) RenameImage(command *api.RenameImageCommand) error {
	name := strings.TrimSpace(command.Name)
	if name == "" {
		return nil
	}

	image, err := s.imageStore.GetImageById(command.SectionId, command.Id)
	if err != nil {
		return err
	}
	if image == nil {
		logger.Warn.Printf("Rename of unknown image '%s' ignored", command.Id)
		return nil
	}
	if image.Name() == name {
		return nil
	}

	if err := s.imageStore.UpdateName(command.SectionId, command.Id, name); err != nil {
		return err
	}

	s.notifyImagesUpdated(command.SectionId)
	return nil
}

func (s *Service) SetPriority(command *api.SetPriorityCommand) error {
	image, err := s.imageStore.GetImageById(command.SectionId, command.Id)
	if err != nil {
		return err
	}
	if image == nil {
		logger.Warn.Printf("Priority change of unknown image '%s' ignored", command.Id)
		return nil
	}

	if err := s.imageStore.UpdatePriority(command.SectionId, command.Id, command.Priority); err != nil {
		return err
	}

	s.notifyImagesUpdated(command.SectionId)
	return nil
}

func (s *Service) ClearImages(query *api.SectionQuery) error {
	if err := s.imageStore.RemoveImagesBySection(query.Id); err != nil {
		return err
	}
	if err := s.sectionStore.ClearCurrentImage(query.Id); err != nil {
		return err
	}

	s.notifyImagesUpdated(query.Id)
	return nil
}

func (s *Service) GetImages(sectionId apitype.SectionId) []*apitype.ImageRecord {
	images, err := s.imageStore.GetImages(sectionId)
	if err != nil {
		s.sender.SendError("Cannot get images", err)
		return nil
	}
	return images
}

func (s *Service) GetImageById(sectionId apitype.SectionId, id apitype.ImageId) *apitype.ImageRecord {
	image, err := s.imageStore.GetImageById(sectionId, id)
	if err != nil {
		s.sender.SendError("Cannot get image", err)
		return nil
	}
	return image
}

func (s *Service) OrderedImages(sectionId apitype.SectionId) *apitype.ImageIterator {
	return apitype.NewImageIterator(s.GetImages(sectionId))
}

func (s *Service) notifyImagesUpdated(sectionId apitype.SectionId) {
	s.sender.SendCommandToTopic(
		api.ImagesUpdated,
		&api.UpdateImagesCommand{SectionId: sectionId},
	)
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down image service")
}
