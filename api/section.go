package api

import "github.com/quibble-tools/quibble/api/apitype"

type CreateSectionCommand struct {
	Name string
	Url  string

	apitype.NotThrottled
}

type SectionQuery struct {
	Id apitype.SectionId

	apitype.NotThrottled
}

type UpdateSectionsCommand struct {
	Sections []*apitype.Section

	apitype.NotThrottled
}

type SectionActivatedCommand struct {
	Id apitype.SectionId

	apitype.NotThrottled
}

// SectionService owns the registry of sections: the bounded set of
// named, URL-bound image collections and the pointer to the one that
// is currently active.
type SectionService interface {
	CreateSection(*CreateSectionCommand) (*apitype.Section, error)
	DeleteSection(*SectionQuery) error

	SetActive(*SectionQuery) error
	Deactivate()
	ActiveSection() *apitype.Section

	// MatchByUrl returns the section bound to the given URL, if any.
	// The URL is normalized with the same rule used at creation time.
	MatchByUrl(url string) *apitype.Section

	GetSections() []*apitype.Section
	GetSectionById(apitype.SectionId) *apitype.Section

	RequestSections()
	Close()
}
