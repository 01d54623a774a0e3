package api

type Topic string

const (
	SectionsUpdated  Topic = "sections-updated"
	SectionActivated Topic = "section-activated"
	ImagesUpdated    Topic = "images-updated"

	ViewportChanged     Topic = "viewport-changed"
	OverlayImageChanged Topic = "overlay-image-changed"
	OverlayStateChanged Topic = "overlay-state-changed"

	ShowError Topic = "show-error"
)
