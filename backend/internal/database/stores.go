package database

// Stores bundles the three collections that together form the
// persisted registry.
type Stores struct {
	SectionStore *SectionStore
	ImageStore   *ImageStore
	SettingStore *SettingStore

	database *Database
}

func NewStores(database *Database) *Stores {
	return &Stores{
		SectionStore: NewSectionStore(database),
		ImageStore:   NewImageStore(database),
		SettingStore: NewSettingStore(database),
		database:     database,
	}
}

func NewInMemoryStores() *Stores {
	return NewStores(NewInMemoryDatabase())
}

func (s *Stores) Close() {
	s.database.Close()
}
