package database

import "time"

type Section struct {
	Id          string `db:"id,omitempty"`
	Name        string `db:"name"`
	Url         string `db:"url"`
	CurrImageId string `db:"curr_image_id"`
}

type Image struct {
	Id               string    `db:"id,omitempty"`
	SectionId        string    `db:"section_id"`
	Name             string    `db:"name"`
	MimeType         string    `db:"mime_type"`
	ByteSize         int64     `db:"byte_size"`
	Data             string    `db:"data"`
	Thumbnail        string    `db:"thumbnail"`
	Width            int       `db:"width"`
	Height           int       `db:"height"`
	Priority         int       `db:"priority"`
	CreatedTimestamp time.Time `db:"created_timestamp"`
}

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

type Count struct {
	Count int `db:"c"`
}
