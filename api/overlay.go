package api

import "github.com/quibble-tools/quibble/api/apitype"

type ViewportReportCommand struct {
	Width   int
	PageUrl string

	apitype.NotThrottled
}

type ToggleOverlayCommand struct {
	Visible bool

	apitype.NotThrottled
}

type TransparencyCommand struct {
	Transparency int

	apitype.NotThrottled
}

type OverlayImageCommand struct {
	SectionId apitype.SectionId
	Image     *apitype.ImageRecord

	apitype.NotThrottled
}

type OverlayStateCommand struct {
	Visible      bool
	Transparency int

	apitype.NotThrottled
}

// OverlayService selects the best-fit image for the observed viewport
// width and owns the overlay visibility settings.
type OverlayService interface {
	OnViewportReport(*ViewportReportCommand)
	OnSectionActivated(*SectionActivatedCommand)
	OnImagesUpdated(*UpdateImagesCommand)

	ToggleOverlay(*ToggleOverlayCommand)
	SetTransparency(*TransparencyCommand)
	OverlayState() *OverlayStateCommand

	LastWidth() int

	Close()
}
