package database

import (
	"strings"

	"github.com/upper/db/v4"

	"github.com/quibble-tools/quibble/api/apitype"
	"github.com/quibble-tools/quibble/common/logger"
)

type SectionStore struct {
	database   *Database
	collection db.Collection
}

func NewSectionStore(database *Database) *SectionStore {
	return &SectionStore{
		database: database,
	}
}

func (s *SectionStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("section")
	}
	return s.collection
}

func (s *SectionStore) AddSection(section *apitype.Section) (*apitype.Section, error) {
	logger.Debug.Printf("Storing section '%s' to DB", section.Name())
	_, err := s.getCollection().Insert(Section{
		Id:   string(section.Id()),
		Name: section.Name(),
		Url:  section.Url(),
	})

	if err != nil {
		return nil, err
	}

	return s.GetSectionById(section.Id())
}

func (s *SectionStore) GetSections() ([]*apitype.Section, error) {
	var sections []Section
	err := s.getCollection().Find().
		OrderBy("name").
		All(&sections)

	if err != nil {
		return nil, err
	}

	return toApiSections(sections), nil
}

func (s *SectionStore) GetSectionById(id apitype.SectionId) (*apitype.Section, error) {
	var section Section
	if err := s.getCollection().Find(db.Cond{"id": id}).One(&section); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return toApiSection(&section), nil
}

// FindByName resolves a section by case-insensitive name.
func (s *SectionStore) FindByName(name string) (*apitype.Section, error) {
	var section Section
	err := s.database.Session().SQL().
		SelectFrom("section").
		Where("LOWER(name) = ?", strings.ToLower(name)).
		One(&section)

	if err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return toApiSection(&section), nil
}

// FindByUrl resolves a section by its normalized URL binding.
func (s *SectionStore) FindByUrl(url string) (*apitype.Section, error) {
	var section Section
	err := s.getCollection().
		Find(db.Cond{"url": apitype.NormalizeUrl(url)}).
		One(&section)

	if err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return toApiSection(&section), nil
}

func (s *SectionStore) RemoveSection(id apitype.SectionId) error {
	return s.getCollection().Find(db.Cond{"id": id}).Delete()
}

func (s *SectionStore) SetCurrentImage(id apitype.SectionId, imageId apitype.ImageId) error {
	logger.Debug.Printf("Section %s current image -> '%s'", id, imageId)
	_, err := s.database.Session().SQL().Exec(`
		UPDATE section SET curr_image_id = ? WHERE id = ?
	`, string(imageId), string(id))
	return err
}

func (s *SectionStore) ClearCurrentImage(id apitype.SectionId) error {
	return s.SetCurrentImage(id, apitype.NoImage)
}

func (s *SectionStore) GetSectionCount() int {
	res := s.database.Session().SQL().
		Select(db.Raw("count(1) AS c")).
		From("section")

	var counter Count
	if err := res.One(&counter); err != nil {
		logger.Error.Print("Cannot resolve section count ", err)
		return 0
	}

	return counter.Count
}
