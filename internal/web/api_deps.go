package web

import (
	"context"
	"errors"
	"image"

	"github.com/rook-computer/platemaker/internal/plate"
	"github.com/rook-computer/platemaker/internal/share"
	"github.com/rook-computer/platemaker/internal/state"
)

// PlateController is the live plate the API edits and exports.
type PlateController interface {
	Dispatch(ev state.Event) (state.State, error)
	State() state.State
	Frame() *image.RGBA
	ExportPNG() (data []byte, filename string, err error)
}

// PlateRenderer draws a frame for arbitrary values without touching the
// live plate. Implementations serialize their own renders.
type PlateRenderer interface {
	RenderPlate(p plate.Plate) *image.RGBA
}

// OverlayCatalog lists the preset overlay ids.
type OverlayCatalog interface {
	List(ctx context.Context) ([]string, error)
}

// sysLogger matches the logging shape used by app.Logger.
type sysLogger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopSysLogger struct{}

func (noopSysLogger) Infof(string, string, ...interface{})  {}
func (noopSysLogger) Errorf(string, string, ...interface{}) {}

type APIV1Deps struct {
	Controller PlateController
	Renderer   PlateRenderer
	Overlays   OverlayCatalog
	Share      share.Link
	Logger     sysLogger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Overlays == nil {
		out.Overlays = noopCatalog{}
	}
	if out.Share.URL == "" {
		out.Share = share.DefaultLink("")
	}
	if out.Logger == nil {
		out.Logger = noopSysLogger{}
	}
	return out
}

type noopCatalog struct{}

func (noopCatalog) List(context.Context) ([]string, error) { return nil, nil }

var errNotConfigured = errors.New("not configured")
