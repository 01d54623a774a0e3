package constants

const (
	QuibbleDir       = ".quibble"
	DatabaseFileName = "quibble.db"

	MaxSections = 5
)
