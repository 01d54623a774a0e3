package matcher

import (
	"github.com/quibble-tools/quibble/api"
	"github.com/quibble-tools/quibble/api/apitype"
	"github.com/quibble-tools/quibble/backend/internal/database"
	"github.com/quibble-tools/quibble/common/logger"
)

type Service struct {
	sender         api.Sender
	sectionService api.SectionService
	imageService   api.ImageService
	sectionStore   *database.SectionStore
	settingStore   *database.SettingStore

	// Last reported viewport width. Reports overwrite it; only the
	// most recent value matters.
	lastWidth int

	// Last broadcast selection, so replayed reports that change
	// nothing stay silent
	broadcastDone      bool
	broadcastSectionId apitype.SectionId
	broadcastImageId   apitype.ImageId

	api.OverlayService
}

func NewOverlayService(sender api.Sender, sectionService api.SectionService,
	imageService api.ImageService, stores *database.Stores) api.OverlayService {
	return newService(sender, sectionService, imageService, stores)
}

func newService(sender api.Sender, sectionService api.SectionService,
	imageService api.ImageService, stores *database.Stores) *Service {
	return &Service{
		sender:         sender,
		sectionService: sectionService,
		imageService:   imageService,
		sectionStore:   stores.SectionStore,
		settingStore:   stores.SettingStore,
	}
}

// OnViewportReport handles a width/URL report from the observed page.
// The URL can activate the section bound to it; the width re-runs the
// selection. A width of zero or less is ignored.
func (s *Service) OnViewportReport(command *api.ViewportReportCommand) {
	logger.Debug.Printf("Viewport report: width=%d url='%s'", command.Width, command.PageUrl)

	if command.PageUrl != "" {
		s.activateByUrl(command.PageUrl)
	}

	if command.Width > 0 {
		s.lastWidth = command.Width
	} else if command.Width < 0 {
		logger.Warn.Printf("Ignoring invalid viewport width %d", command.Width)
	}

	s.rematch()
}

func (s *Service) OnSectionActivated(*api.SectionActivatedCommand) {
	s.rematch()
}

func (s *Service) OnImagesUpdated(command *api.UpdateImagesCommand) {
	active := s.sectionService.ActiveSection()
	if active == nil || active.Id() != command.SectionId {
		return
	}
	s.rematch()
}

func (s *Service) activateByUrl(pageUrl string) {
	matched := s.sectionService.MatchByUrl(pageUrl)
	active := s.sectionService.ActiveSection()

	if matched != nil {
		if active == nil || active.Id() != matched.Id() {
			if err := s.sectionService.SetActive(&api.SectionQuery{Id: matched.Id()}); err != nil {
				s.sender.SendError("Error while activating section", err)
			}
		}
	} else if active != nil && active.Url() != apitype.NormalizeUrl(pageUrl) {
		s.sectionService.Deactivate()
	}
}

// rematch re-runs the width selection for the active section and
// updates its current image pointer. Running it twice with the same
// inputs selects the same image and the second run is a no-op.
func (s *Service) rematch() {
	active := s.sectionService.ActiveSection()
	if active == nil {
		s.broadcastImage(apitype.NoSection, nil)
		return
	}

	if s.lastWidth <= 0 {
		return
	}

	selected := MatchWidth(s.imageService.OrderedImages(active.Id()), s.lastWidth)
	if selected == nil {
		if active.HasCurrentImage() {
			if err := s.sectionStore.ClearCurrentImage(active.Id()); err != nil {
				s.sender.SendError("Error while clearing image selection", err)
				return
			}
		}
		s.broadcastImage(active.Id(), nil)
		return
	}

	if selected.Id() == active.CurrentImageId() {
		return
	}

	if err := s.sectionStore.SetCurrentImage(active.Id(), selected.Id()); err != nil {
		s.sender.SendError("Error while updating image selection", err)
		return
	}

	logger.Info.Printf("Selected image '%s' (%dpx) for width %d", selected.Name(), selected.Width(), s.lastWidth)
	s.broadcastImage(active.Id(), selected)
}

func (s *Service) broadcastImage(sectionId apitype.SectionId, image *apitype.ImageRecord) {
	imageId := apitype.NoImage
	if image != nil {
		imageId = image.Id()
	}
	if s.broadcastDone && s.broadcastSectionId == sectionId && s.broadcastImageId == imageId {
		return
	}
	s.broadcastDone = true
	s.broadcastSectionId = sectionId
	s.broadcastImageId = imageId

	s.sender.SendCommandToTopic(api.OverlayImageChanged, &api.OverlayImageCommand{
		SectionId: sectionId,
		Image:     image,
	})
}

func (s *Service) ToggleOverlay(command *api.ToggleOverlayCommand) {
	if err := s.settingStore.SetOverlayVisible(command.Visible); err != nil {
		s.sender.SendError("Error while toggling overlay", err)
		return
	}
	s.broadcastState()
}

func (s *Service) SetTransparency(command *api.TransparencyCommand) {
	if err := s.settingStore.SetOverlayTransparency(command.Transparency); err != nil {
		s.sender.SendError("Error while updating transparency", err)
		return
	}
	s.broadcastState()
}

func (s *Service) OverlayState() *api.OverlayStateCommand {
	return &api.OverlayStateCommand{
		Visible:      s.settingStore.OverlayVisible(),
		Transparency: s.settingStore.OverlayTransparency(),
	}
}

func (s *Service) LastWidth() int {
	return s.lastWidth
}

func (s *Service) broadcastState() {
	s.sender.SendCommandToTopic(api.OverlayStateChanged, s.OverlayState())
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down overlay service")
}
