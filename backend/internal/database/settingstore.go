package database

import (
	"strconv"

	"github.com/upper/db/v4"

	"github.com/quibble-tools/quibble/api/apitype"
	"github.com/quibble-tools/quibble/common/logger"
)

type SettingKey string

const (
	ActiveSectionSetting       SettingKey = "active_section_id"
	OverlayVisibleSetting      SettingKey = "overlay_visible"
	OverlayTransparencySetting SettingKey = "overlay_transparency"
)

const (
	MinTransparency     = 20
	MaxTransparency     = 100
	DefaultTransparency = 100
)

// SettingStore persists the registry level state that is not owned by
// any single section: the active section pointer and the overlay
// visibility settings.
type SettingStore struct {
	database   *Database
	collection db.Collection
}

func NewSettingStore(database *Database) *SettingStore {
	return &SettingStore{
		database: database,
	}
}

func (s *SettingStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("setting")
	}
	return s.collection
}

func (s *SettingStore) Get(key SettingKey) (string, bool) {
	var setting Setting
	if err := s.getCollection().Find(db.Cond{"key": key}).One(&setting); err != nil {
		if err != db.ErrNoMoreRows {
			logger.Error.Print("Cannot read setting ", err)
		}
		return "", false
	}
	return setting.Value, true
}

func (s *SettingStore) Set(key SettingKey, value string) error {
	logger.Debug.Printf("Updating setting %s to '%s'", key, value)
	_, err := s.database.Session().SQL().Exec(`
		INSERT INTO setting (key, value)
		VALUES(?, ?)
		ON CONFLICT(key) DO
		UPDATE SET value = ?
		WHERE key = ?
	`, string(key), value, value, string(key))
	return err
}

func (s *SettingStore) Remove(key SettingKey) error {
	return s.getCollection().Find(db.Cond{"key": key}).Delete()
}

func (s *SettingStore) ActiveSectionId() apitype.SectionId {
	if value, found := s.Get(ActiveSectionSetting); found {
		return apitype.SectionId(value)
	}
	return apitype.NoSection
}

func (s *SettingStore) SetActiveSectionId(id apitype.SectionId) error {
	return s.Set(ActiveSectionSetting, string(id))
}

func (s *SettingStore) ClearActiveSectionId() error {
	return s.Remove(ActiveSectionSetting)
}

// OverlayVisible defaults to true when never set.
func (s *SettingStore) OverlayVisible() bool {
	if value, found := s.Get(OverlayVisibleSetting); found {
		return value != "false"
	}
	return true
}

func (s *SettingStore) SetOverlayVisible(visible bool) error {
	return s.Set(OverlayVisibleSetting, strconv.FormatBool(visible))
}

// OverlayTransparency is clamped to [20, 100] and defaults to 100.
func (s *SettingStore) OverlayTransparency() int {
	if value, found := s.Get(OverlayTransparencySetting); found {
		if transparency, err := strconv.Atoi(value); err == nil {
			return ClampTransparency(transparency)
		}
	}
	return DefaultTransparency
}

func (s *SettingStore) SetOverlayTransparency(transparency int) error {
	return s.Set(OverlayTransparencySetting, strconv.Itoa(ClampTransparency(transparency)))
}

func ClampTransparency(transparency int) int {
	if transparency < MinTransparency {
		return MinTransparency
	}
	if transparency > MaxTransparency {
		return MaxTransparency
	}
	return transparency
}
