package database

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          1,
		description: "Create section, image and setting tables",
		query: `
			CREATE TABLE section (
			    id TEXT PRIMARY KEY,
			    name TEXT NOT NULL,
			    url TEXT NOT NULL,
			    curr_image_id TEXT,

			    UNIQUE (name),
			    UNIQUE (url)
			);

			CREATE TABLE image (
			    id TEXT NOT NULL,
			    section_id TEXT NOT NULL,
			    name TEXT NOT NULL,
			    mime_type TEXT NOT NULL,
			    byte_size INTEGER NOT NULL,
			    data TEXT NOT NULL,
			    thumbnail TEXT NOT NULL,
			    width INTEGER NOT NULL,
			    height INTEGER NOT NULL,
			    priority INTEGER NOT NULL,
			    created_timestamp TIMESTAMP,

			    PRIMARY KEY (section_id, id),
			    FOREIGN KEY (section_id) REFERENCES section(id) ON DELETE CASCADE
			);

			CREATE TABLE setting (
			    key TEXT PRIMARY KEY,
			    value TEXT NOT NULL
			);
		`,
	},
	{
		id:          2,
		description: "Index image table by section and width",
		query: `
			CREATE INDEX image_section_width_idx ON image(section_id, width, priority);
		`,
	},
}
