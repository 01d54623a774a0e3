package relay

import (
	"encoding/json"
	"fmt"
)

const (
	ActionToggleOverlay      = "toggleOverlay"
	ActionUpdateTransparency = "updateTransparency"
	ActionGetScreenWidth     = "getScreenWidth"
)

// ViewportMessage is the page's width report. It carries no action
// tag on the wire; a message without one is treated as a report.
type ViewportMessage struct {
	Width   int
	PageUrl string
}

type ToggleOverlayMessage struct {
	Visible bool
}

type TransparencyMessage struct {
	Transparency int
}

type GetScreenWidthMessage struct {
}

type UnknownActionError struct {
	Action string
}

func (s *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action '%s'", s.Action)
}

type envelope struct {
	Action       string  `json:"action,omitempty"`
	Visible      bool    `json:"visible,omitempty"`
	Transparency int     `json:"transparency,omitempty"`
	Width        float64 `json:"width,omitempty"`
	PageUrl      string  `json:"pageURL,omitempty"`
}

// DecodeMessage decodes one wire message into its typed form.
// Non-integer widths are truncated. Unrecognized action tags yield an
// UnknownActionError instead of being silently dropped.
func DecodeMessage(raw []byte) (interface{}, error) {
	var message envelope
	if err := json.Unmarshal(raw, &message); err != nil {
		return nil, err
	}

	switch message.Action {
	case "":
		return &ViewportMessage{
			Width:   int(message.Width),
			PageUrl: message.PageUrl,
		}, nil
	case ActionToggleOverlay:
		return &ToggleOverlayMessage{Visible: message.Visible}, nil
	case ActionUpdateTransparency:
		return &TransparencyMessage{Transparency: message.Transparency}, nil
	case ActionGetScreenWidth:
		return &GetScreenWidthMessage{}, nil
	}

	return nil, &UnknownActionError{Action: message.Action}
}

func EncodeViewportReport(width int, pageUrl string) ([]byte, error) {
	return json.Marshal(&envelope{Width: float64(width), PageUrl: pageUrl})
}

func EncodeToggleOverlay(visible bool) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"action":  ActionToggleOverlay,
		"visible": visible,
	})
}

func EncodeTransparency(transparency int) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"action":       ActionUpdateTransparency,
		"transparency": transparency,
	})
}

func EncodeGetScreenWidth() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"action": ActionGetScreenWidth,
	})
}
