package apitype

import "fmt"

// Section is a named collection of reference images bound to a URL.
// The URL is stored in normalized form. Images live in the store;
// the section only carries the pointer to the selected one.
type Section struct {
	id          SectionId
	name        string
	url         string
	currImageId ImageId
}

func NewSection(id SectionId, name string, url string) *Section {
	return &Section{
		id:   id,
		name: name,
		url:  NormalizeUrl(url),
	}
}

func NewSectionWithCurrentImage(id SectionId, name string, url string, currImageId ImageId) *Section {
	section := NewSection(id, name, url)
	section.currImageId = currImageId
	return section
}

func (s *Section) Id() SectionId {
	return s.id
}

func (s *Section) Name() string {
	return s.name
}

func (s *Section) Url() string {
	return s.url
}

func (s *Section) CurrentImageId() ImageId {
	return s.currImageId
}

func (s *Section) HasCurrentImage() bool {
	return s.currImageId != NoImage
}

func (s *Section) String() string {
	return fmt.Sprintf("Section{%s:%s url=%s}", s.id, s.name, s.url)
}
