package section

import (
	"strings"

	"github.com/quibble-tools/quibble/api"
	"github.com/quibble-tools/quibble/api/apitype"
	"github.com/quibble-tools/quibble/backend/internal/database"
	"github.com/quibble-tools/quibble/common/constants"
	"github.com/quibble-tools/quibble/common/logger"
)

type Service struct {
	sender       api.Sender
	sectionStore *database.SectionStore
	imageStore   *database.ImageStore
	settingStore *database.SettingStore

	api.SectionService
}

func NewSectionService(sender api.Sender, stores *database.Stores) api.SectionService {
	return newService(sender, stores)
}

func newService(sender api.Sender, stores *database.Stores) *Service {
	return &Service{
		sender:       sender,
		sectionStore: stores.SectionStore,
		imageStore:   stores.ImageStore,
		settingStore: stores.SettingStore,
	}
}

// CreateSection validates the name and URL, stores the section and
// makes it the active one. The URL is normalized before storage so
// equivalent spellings bind to the same section.
func (s *Service) CreateSection(command *api.CreateSectionCommand) (*apitype.Section, error) {
	name := strings.TrimSpace(command.Name)
	url := strings.TrimSpace(command.Url)

	if s.sectionStore.GetSectionCount() >= constants.MaxSections {
		return nil, apitype.ErrSectionLimit
	}
	if name == "" {
		return nil, apitype.ErrNameRequired
	}
	if url == "" {
		return nil, apitype.ErrUrlRequired
	}

	if existing, err := s.sectionStore.FindByName(name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apitype.ErrNameExists
	}

	if existing, err := s.sectionStore.FindByUrl(url); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apitype.ErrUrlExists
	}

	section := apitype.NewSection(apitype.SectionId(apitype.NextTimeId()), name, url)
	stored, err := s.sectionStore.AddSection(section)
	if err != nil {
		return nil, err
	}

	if err := s.settingStore.SetActiveSectionId(stored.Id()); err != nil {
		s.sender.SendError("Error while activating section", err)
	}

	logger.Info.Printf("Created section '%s' bound to '%s'", stored.Name(), stored.Url())
	s.RequestSections()
	s.sender.SendCommandToTopic(api.SectionActivated, &api.SectionActivatedCommand{Id: stored.Id()})
	return stored, nil
}

// DeleteSection removes the section and its images. The active
// section pointer is always cleared when it pointed at the deleted
// section.
func (s *Service) DeleteSection(query *api.SectionQuery) error {
	section, err := s.sectionStore.GetSectionById(query.Id)
	if err != nil {
		return err
	}
	if section == nil {
		logger.Warn.Printf("Delete of unknown section '%s' ignored", query.Id)
		return nil
	}

	if err := s.imageStore.RemoveImagesBySection(query.Id); err != nil {
		return err
	}
	if err := s.sectionStore.RemoveSection(query.Id); err != nil {
		return err
	}

	if s.settingStore.ActiveSectionId() == query.Id {
		if err := s.settingStore.ClearActiveSectionId(); err != nil {
			return err
		}
	}

	logger.Info.Printf("Deleted section '%s'", section.Name())
	s.RequestSections()
	return nil
}

func (s *Service) SetActive(query *api.SectionQuery) error {
	section, err := s.sectionStore.GetSectionById(query.Id)
	if err != nil {
		return err
	}
	if section == nil {
		logger.Warn.Printf("Activation of unknown section '%s' ignored", query.Id)
		return nil
	}

	if s.settingStore.ActiveSectionId() == query.Id {
		return nil
	}

	if err := s.settingStore.SetActiveSectionId(query.Id); err != nil {
		return err
	}

	s.sender.SendCommandToTopic(api.SectionActivated, &api.SectionActivatedCommand{Id: query.Id})
	return nil
}

func (s *Service) Deactivate() {
	if err := s.settingStore.ClearActiveSectionId(); err != nil {
		s.sender.SendError("Error while deactivating section", err)
		return
	}
	s.sender.SendCommandToTopic(api.SectionActivated, &api.SectionActivatedCommand{Id: apitype.NoSection})
}

func (s *Service) ActiveSection() *apitype.Section {
	activeId := s.settingStore.ActiveSectionId()
	if activeId == apitype.NoSection {
		return nil
	}
	return s.GetSectionById(activeId)
}

func (s *Service) MatchByUrl(url string) *apitype.Section {
	section, err := s.sectionStore.FindByUrl(url)
	if err != nil {
		s.sender.SendError("Cannot match section by URL", err)
		return nil
	}
	return section
}

func (s *Service) GetSections() []*apitype.Section {
	sections, err := s.sectionStore.GetSections()
	if err != nil {
		s.sender.SendError("Cannot get sections", err)
		return nil
	}
	return sections
}

func (s *Service) GetSectionById(id apitype.SectionId) *apitype.Section {
	section, err := s.sectionStore.GetSectionById(id)
	if err != nil {
		s.sender.SendError("Cannot get section", err)
		return nil
	}
	return section
}

func (s *Service) RequestSections() {
	s.sender.SendCommandToTopic(
		api.SectionsUpdated,
		&api.UpdateSectionsCommand{Sections: s.GetSections()},
	)
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down section service")
}
