package database

import (
	"github.com/upper/db/v4"

	"github.com/quibble-tools/quibble/api/apitype"
	"github.com/quibble-tools/quibble/common/logger"
)

type ImageStore struct {
	database   *Database
	collection db.Collection
}

func NewImageStore(database *Database) *ImageStore {
	return &ImageStore{
		database: database,
	}
}

func (s *ImageStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("image")
	}
	return s.collection
}

func (s *ImageStore) AddImage(image *apitype.ImageRecord) (*apitype.ImageRecord, error) {
	logger.Debug.Printf("Storing image '%s' to DB", image.Name())
	if _, err := s.getCollection().Insert(toDbImage(image)); err != nil {
		return nil, err
	}
	return s.GetImageById(image.SectionId(), image.Id())
}

// GetImages returns the section's images in the canonical order:
// ascending width, then ascending priority.
func (s *ImageStore) GetImages(sectionId apitype.SectionId) ([]*apitype.ImageRecord, error) {
	var images []Image
	err := s.getCollection().
		Find(db.Cond{"section_id": sectionId}).
		OrderBy("width", "priority").
		All(&images)

	if err != nil {
		return nil, err
	}

	return toApiImages(images), nil
}

func (s *ImageStore) GetImageById(sectionId apitype.SectionId, id apitype.ImageId) (*apitype.ImageRecord, error) {
	var image Image
	err := s.getCollection().
		Find(db.Cond{"section_id": sectionId, "id": id}).
		One(&image)

	if err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return toApiImage(&image), nil
}

func (s *ImageStore) RemoveImage(sectionId apitype.SectionId, id apitype.ImageId) error {
	return s.getCollection().
		Find(db.Cond{"section_id": sectionId, "id": id}).
		Delete()
}

func (s *ImageStore) RemoveImagesBySection(sectionId apitype.SectionId) error {
	return s.getCollection().
		Find(db.Cond{"section_id": sectionId}).
		Delete()
}

func (s *ImageStore) UpdateName(sectionId apitype.SectionId, id apitype.ImageId, name string) error {
	_, err := s.database.Session().SQL().Exec(`
		UPDATE image SET name = ? WHERE section_id = ? AND id = ?
	`, name, string(sectionId), string(id))
	return err
}

func (s *ImageStore) UpdatePriority(sectionId apitype.SectionId, id apitype.ImageId, priority int) error {
	_, err := s.database.Session().SQL().Exec(`
		UPDATE image SET priority = ? WHERE section_id = ? AND id = ?
	`, apitype.ClampPriority(priority), string(sectionId), string(id))
	return err
}

func (s *ImageStore) GetImageCount(sectionId apitype.SectionId) int {
	res := s.database.Session().SQL().
		Select(db.Raw("count(1) AS c")).
		From("image").
		Where("section_id", string(sectionId))

	var counter Count
	if err := res.One(&counter); err != nil {
		logger.Error.Print("Cannot resolve image count ", err)
		return 0
	}

	return counter.Count
}
