package apitype

import (
	"fmt"
	"sort"
	"time"
)

const (
	MinPriority = 1
	MaxPriority = 5

	// Matches the upload limit of the panel UI
	MaxImageByteSize = 5 * 1024 * 1024
)

// ImageRecord is one uploaded reference image. The payload is kept as
// a self-contained data URI so the record can be persisted without a
// separate blob store.
type ImageRecord struct {
	id        ImageId
	sectionId SectionId
	name      string
	mimeType  string
	byteSize  int64
	data      string
	thumbnail string
	width     int
	height    int
	priority  int
	timestamp time.Time
}

func NewImageRecord(id ImageId, sectionId SectionId, name string, mimeType string, byteSize int64,
	data string, thumbnail string, width int, height int, priority int, timestamp time.Time) *ImageRecord {
	return &ImageRecord{
		id:        id,
		sectionId: sectionId,
		name:      name,
		mimeType:  mimeType,
		byteSize:  byteSize,
		data:      data,
		thumbnail: thumbnail,
		width:     width,
		height:    height,
		priority:  ClampPriority(priority),
		timestamp: timestamp,
	}
}

func (s *ImageRecord) Id() ImageId {
	return s.id
}

func (s *ImageRecord) SectionId() SectionId {
	return s.sectionId
}

func (s *ImageRecord) Name() string {
	return s.name
}

func (s *ImageRecord) MimeType() string {
	return s.mimeType
}

func (s *ImageRecord) ByteSize() int64 {
	return s.byteSize
}

func (s *ImageRecord) Data() string {
	return s.data
}

func (s *ImageRecord) Thumbnail() string {
	return s.thumbnail
}

func (s *ImageRecord) Width() int {
	return s.width
}

func (s *ImageRecord) Height() int {
	return s.height
}

func (s *ImageRecord) Priority() int {
	return s.priority
}

func (s *ImageRecord) Timestamp() time.Time {
	return s.timestamp
}

func (s *ImageRecord) String() string {
	return fmt.Sprintf("ImageRecord{%s:%s %dx%d p%d}", s.id, s.name, s.width, s.height, s.priority)
}

func ClampPriority(priority int) int {
	if priority < MinPriority {
		return MinPriority
	}
	if priority > MaxPriority {
		return MaxPriority
	}
	return priority
}

// SortImages orders records ascending by width and, among equal
// widths, ascending by priority. This is the canonical presentation
// and matching order.
func SortImages(images []*ImageRecord) []*ImageRecord {
	sorted := make([]*ImageRecord, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].width != sorted[j].width {
			return sorted[i].width < sorted[j].width
		}
		return sorted[i].priority < sorted[j].priority
	})
	return sorted
}

// ImageIterator walks records in the canonical order. Reset restarts
// the walk from the first record.
type ImageIterator struct {
	images []*ImageRecord
	index  int
}

func NewImageIterator(images []*ImageRecord) *ImageIterator {
	return &ImageIterator{
		images: SortImages(images),
	}
}

func (s *ImageIterator) Next() (*ImageRecord, bool) {
	if s.index >= len(s.images) {
		return nil, false
	}
	image := s.images[s.index]
	s.index += 1
	return image, true
}

func (s *ImageIterator) Reset() {
	s.index = 0
}
