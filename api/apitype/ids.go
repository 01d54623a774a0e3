package apitype

import (
	"strconv"
	"sync"
	"time"
)

type SectionId string

type ImageId string

const (
	NoSection = SectionId("")
	NoImage   = ImageId("")
)

var (
	idMux  sync.Mutex
	lastId int64
)

// NextTimeId returns a time-based identifier, unique within the
// process even when generated within the same millisecond.
func NextTimeId() string {
	idMux.Lock()
	defer idMux.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastId {
		id = lastId + 1
	}
	lastId = id
	return strconv.FormatInt(id, 10)
}
