package state

import "fmt"

type EventType string

const (
	EventLine1      EventType = "line1"
	EventLine2      EventType = "line2"
	EventLine3      EventType = "line3"
	EventBackground EventType = "background"
	EventTextColor  EventType = "text_color"
	EventOverlay    EventType = "overlay"
	EventFontLoaded EventType = "font_loaded"
)

// EventTypes lists every input event, in form order.
var EventTypes = []EventType{EventLine1, EventLine2, EventLine3, EventBackground, EventTextColor, EventOverlay, EventFontLoaded}

// Event is one input change. Value is the new control value; for color
// events it is a swatch name or hex, "" meaning no selection.
type Event struct {
	Type  EventType `json:"type"`
	Value string    `json:"value"`
}

// ErrUnknownEvent is returned for event types nothing handles.
type ErrUnknownEvent struct{ Type EventType }

func (e ErrUnknownEvent) Error() string { return fmt.Sprintf("unknown event type %q", e.Type) }
