package app

import (
	"github.com/rook-computer/platemaker/internal/plate"
	"github.com/rook-computer/platemaker/internal/state"
)

// eventHandler applies an event with the controller lock held and reports
// whether a render should follow immediately.
type eventHandler func(c *Controller, value string) bool

func setInput(fn func(in *state.Inputs, value string)) eventHandler {
	return func(c *Controller, value string) bool {
		c.Store.UpdateInputs(func(in *state.Inputs) { fn(in, value) })
		return true
	}
}

var dispatchTable = map[state.EventType]eventHandler{
	state.EventLine1: setInput(func(in *state.Inputs, v string) { in.Line1 = v }),
	state.EventLine2: setInput(func(in *state.Inputs, v string) { in.Line2 = v }),
	state.EventLine3: setInput(func(in *state.Inputs, v string) {
		in.Line3 = plate.NormalizeNumber(v)
	}),
	state.EventBackground: setInput(func(in *state.Inputs, v string) { in.Background = v }),
	state.EventTextColor:  setInput(func(in *state.Inputs, v string) { in.TextColor = v }),
	state.EventOverlay:    (*Controller).selectOverlayLocked,
	state.EventFontLoaded: func(*Controller, string) bool { return true },
}
