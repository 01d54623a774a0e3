package apitype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRecord(id string, width int, priority int) *ImageRecord {
	return NewImageRecord(
		ImageId(id), "section-1", id, "image/png", 100,
		"data:image/png;base64,", "", width, 100, priority, time.Now())
}

func TestSortImages(t *testing.T) {
	a := assert.New(t)

	t.Run("Empty", func(t *testing.T) {
		a.Equal(0, len(SortImages(nil)))
	})
	t.Run("By width then priority", func(t *testing.T) {
		sorted := SortImages([]*ImageRecord{
			testRecord("a", 1440, 3),
			testRecord("b", 768, 2),
			testRecord("c", 320, 1),
			testRecord("d", 768, 1),
		})

		a.Equal(ImageId("c"), sorted[0].Id())
		a.Equal(ImageId("d"), sorted[1].Id())
		a.Equal(ImageId("b"), sorted[2].Id())
		a.Equal(ImageId("a"), sorted[3].Id())
	})
	t.Run("Ordering is non-decreasing", func(t *testing.T) {
		sorted := SortImages([]*ImageRecord{
			testRecord("a", 500, 5),
			testRecord("b", 500, 1),
			testRecord("c", 100, 3),
			testRecord("d", 900, 2),
			testRecord("e", 100, 2),
		})

		for i := 1; i < len(sorted); i++ {
			previous, current := sorted[i-1], sorted[i]
			a.LessOrEqual(previous.Width(), current.Width())
			if previous.Width() == current.Width() {
				a.LessOrEqual(previous.Priority(), current.Priority())
			}
		}
	})
}

func TestImageIterator(t *testing.T) {
	a := assert.New(t)

	t.Run("Empty", func(t *testing.T) {
		iterator := NewImageIterator(nil)
		_, found := iterator.Next()
		a.False(found)
	})
	t.Run("Walks in canonical order", func(t *testing.T) {
		iterator := NewImageIterator([]*ImageRecord{
			testRecord("a", 768, 1),
			testRecord("b", 320, 1),
		})

		image, found := iterator.Next()
		a.True(found)
		a.Equal(ImageId("b"), image.Id())

		image, found = iterator.Next()
		a.True(found)
		a.Equal(ImageId("a"), image.Id())

		_, found = iterator.Next()
		a.False(found)
	})
	t.Run("Reset restarts", func(t *testing.T) {
		iterator := NewImageIterator([]*ImageRecord{
			testRecord("a", 768, 1),
			testRecord("b", 320, 1),
		})

		_, _ = iterator.Next()
		_, _ = iterator.Next()
		iterator.Reset()

		image, found := iterator.Next()
		a.True(found)
		a.Equal(ImageId("b"), image.Id())
	})
}

func TestClampPriority(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, ClampPriority(0))
	a.Equal(1, ClampPriority(-10))
	a.Equal(1, ClampPriority(1))
	a.Equal(3, ClampPriority(3))
	a.Equal(5, ClampPriority(5))
	a.Equal(5, ClampPriority(42))
}

func TestNextTimeId_Unique(t *testing.T) {
	a := assert.New(t)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NextTimeId()
		a.False(seen[id])
		seen[id] = true
	}
}
