package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quibble-tools/quibble/api/apitype"
)

func record(id string, width int, priority int) *apitype.ImageRecord {
	return apitype.NewImageRecord(
		apitype.ImageId(id), "1", id+".png", "image/png",
		100, "", "", width, 100, priority, time.Now())
}

func iterator(images ...*apitype.ImageRecord) *apitype.ImageIterator {
	return apitype.NewImageIterator(apitype.SortImages(images))
}

func TestMatchWidth(t *testing.T) {
	a := assert.New(t)

	images := iterator(
		record("mobile", 320, 1),
		record("tablet-alt", 768, 2),
		record("tablet", 768, 1),
		record("desktop", 1440, 3),
	)

	t.Run("Largest width not exceeding the viewport", func(t *testing.T) {
		selected := MatchWidth(images, 800)
		a.NotNil(selected)
		a.Equal(apitype.ImageId("tablet"), selected.Id())
	})
	t.Run("Equal width won by lower priority number", func(t *testing.T) {
		selected := MatchWidth(images, 768)
		a.NotNil(selected)
		a.Equal(apitype.ImageId("tablet"), selected.Id())
	})
	t.Run("Smallest image when all are too wide", func(t *testing.T) {
		selected := MatchWidth(images, 100)
		a.NotNil(selected)
		a.Equal(apitype.ImageId("mobile"), selected.Id())
	})
	t.Run("Widest image for a wide viewport", func(t *testing.T) {
		selected := MatchWidth(images, 2000)
		a.NotNil(selected)
		a.Equal(apitype.ImageId("desktop"), selected.Id())
	})
	t.Run("Exact width match", func(t *testing.T) {
		selected := MatchWidth(images, 320)
		a.NotNil(selected)
		a.Equal(apitype.ImageId("mobile"), selected.Id())
	})
	t.Run("Empty collection yields nil", func(t *testing.T) {
		a.Nil(MatchWidth(iterator(), 800))
	})
	t.Run("Repeated match selects the same image", func(t *testing.T) {
		first := MatchWidth(images, 800)
		second := MatchWidth(images, 800)
		a.Equal(first.Id(), second.Id())
	})
}

func TestMatchWidth_SingleImage(t *testing.T) {
	a := assert.New(t)

	images := iterator(record("only", 1024, 1))

	for _, width := range []int{100, 1024, 3000} {
		selected := MatchWidth(images, width)
		a.NotNil(selected)
		a.Equal(apitype.ImageId("only"), selected.Id())
	}
}
