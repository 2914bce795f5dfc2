package app

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"os"
	"sync"

	"github.com/fogleman/gg"

	"github.com/rook-computer/platemaker/internal/export"
	"github.com/rook-computer/platemaker/internal/overlay"
	"github.com/rook-computer/platemaker/internal/plate"
	"github.com/rook-computer/platemaker/internal/render"
	"github.com/rook-computer/platemaker/internal/state"
)

// Controller owns the plate inputs, the overlay cache and the drawing
// surface. Every mutation goes through Dispatch and is followed by a full,
// synchronous render; the controller lock is held for both.
type Controller struct {
	Store  *state.Store
	Cache  *state.OverlayCache
	Loader overlay.Loader
	// Catalog, when set, bounds the overlay ids that may be loaded. Ids it
	// does not list fail without reaching Loader.
	Catalog overlay.Lister
	Logger  Logger

	mu         sync.Mutex
	display    render.Display
	compositor *render.Compositor
	surface    *gg.Context
	overlay    image.Image
	frame      *image.RGBA

	ctx    context.Context
	cancel context.CancelFunc
	loads  sync.WaitGroup
}

func NewController(compositor *render.Compositor, loader overlay.Loader) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		Store:      state.NewStore(),
		Cache:      state.NewOverlayCache(),
		Loader:     loader,
		display:    render.NoopDisplay{},
		Logger:     NoopLogger{},
		compositor: compositor,
		surface:    render.NewSurface(),
		ctx:        ctx,
		cancel:     cancel,
	}
	if lister, ok := loader.(overlay.Lister); ok {
		c.Catalog = lister
	}
	c.mu.Lock()
	c.renderLocked()
	c.mu.Unlock()
	return c
}

// Dispatch applies ev and re-renders. Overlay selections that need a load
// render once the load completes instead.
func (c *Controller) Dispatch(ev state.Event) (state.State, error) {
	handler, ok := dispatchTable[ev.Type]
	if !ok {
		return c.Store.Snapshot(), state.ErrUnknownEvent{Type: ev.Type}
	}
	c.mu.Lock()
	if handler(c, ev.Value) {
		c.renderLocked()
	}
	c.mu.Unlock()
	return c.Store.Snapshot(), nil
}

// SetDisplay mirrors every following frame to d and shows the current
// inputs on it right away.
func (c *Controller) SetDisplay(d render.Display) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.display = d
	c.renderLocked()
}

// Plate resolves the current inputs into render-ready values.
func (c *Controller) Plate() plate.Plate {
	return c.Store.Snapshot().Inputs.Plate()
}

// State returns a snapshot of the inputs and render bookkeeping.
func (c *Controller) State() state.State {
	return c.Store.Snapshot()
}

// Frame returns the most recent frame. Callers must not modify it.
func (c *Controller) Frame() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// RenderPlate draws p without an overlay on a fresh surface, using the same
// fonts as the live plate. The live frame and inputs are left untouched.
func (c *Controller) RenderPlate(p plate.Plate) *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compositor.Frame(p, nil)
}

// ExportPNG encodes the current frame and names it after the plate number.
func (c *Controller) ExportPNG() (data []byte, filename string, err error) {
	frame := c.Frame()
	filename = export.Filename(c.Store.Snapshot().Inputs.Line3)
	data, err = export.EncodePNG(frame)
	if err != nil {
		c.Logger.Errorf("export", "%v", err)
		return nil, filename, err
	}
	return data, filename, nil
}

func (c *Controller) renderLocked() {
	c.compositor.Render(c.surface, c.Store.Snapshot().Inputs.Plate(), c.overlay)

	src := c.surface.Image()
	frame := image.NewRGBA(src.Bounds())
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	c.frame = frame
	c.Store.MarkRendered()

	if c.display != nil {
		c.display.Show(frame)
	}
}

// selectOverlayLocked handles EventOverlay. Every selection starts a new
// generation; a load finishing under an older generation never replaces the
// active overlay.
func (c *Controller) selectOverlayLocked(id string) bool {
	gen := c.Store.NextGeneration()
	c.Store.UpdateInputs(func(in *state.Inputs) { in.Overlay = id })

	if id == "" {
		c.overlay = nil
		c.Store.SetOverlayStatus(state.OverlayNone)
		return true
	}
	if img, ok := c.Cache.Get(id); ok {
		c.overlay = img
		c.Store.SetOverlayStatus(state.OverlayReady)
		return true
	}
	if c.Loader == nil {
		c.Logger.Errorf("overlay", "no loader configured for %q", id)
		c.overlay = nil
		c.Store.SetOverlayStatus(state.OverlayFailed)
		return true
	}
	if c.Catalog != nil {
		listed, err := overlay.Contains(c.ctx, c.Catalog, id)
		if err != nil {
			c.Logger.Errorf("overlay", "list overlay catalog: %v", err)
		}
		if !listed {
			c.Logger.Errorf("overlay", "rejecting %q: not in the overlay catalog", id)
			c.overlay = nil
			c.Store.SetOverlayStatus(state.OverlayFailed)
			return true
		}
	}

	c.Store.SetOverlayStatus(state.OverlayLoading)
	c.loads.Add(1)
	go func() {
		defer c.loads.Done()
		img, err := c.Loader.Load(c.ctx, id)
		c.finishOverlayLoad(gen, id, img, err)
	}()
	return false
}

func (c *Controller) finishOverlayLoad(gen uint64, id string, img image.Image, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil && img == nil {
		err = fmt.Errorf("%w: loader returned no image for %q", overlay.ErrNotFound, id)
	}
	if err == nil {
		c.Cache.Put(id, img)
	} else {
		c.Logger.Errorf("overlay", "load %q failed: %v", id, err)
	}
	if gen != c.Store.Snapshot().Generation {
		c.Logger.Infof("overlay", "ignoring stale load of %q (generation %d)", id, gen)
		return
	}
	if err != nil {
		c.overlay = nil
		c.Store.SetOverlayStatus(state.OverlayFailed)
	} else {
		c.overlay = img
		c.Store.SetOverlayStatus(state.OverlayReady)
	}
	c.renderLocked()
}

// LoadNumberFont parses a custom plate-number font in the background. On
// success the face is swapped in and EventFontLoaded triggers a re-render;
// on failure the bundled face stays.
func (c *Controller) LoadNumberFont(path string) {
	if path == "" {
		return
	}
	c.loads.Add(1)
	go func() {
		defer c.loads.Done()
		data, err := os.ReadFile(path)
		if err != nil {
			c.Logger.Errorf("font", "read %s: %v", path, err)
			return
		}
		face, err := render.NumberFace(data)
		if err != nil {
			c.Logger.Errorf("font", "%s: %v", path, err)
			return
		}
		if c.ctx.Err() != nil {
			return
		}
		c.mu.Lock()
		c.compositor.SetNumberFace(face)
		c.mu.Unlock()
		c.Logger.Infof("font", "loaded plate number font %s", path)
		_, _ = c.Dispatch(state.Event{Type: state.EventFontLoaded})
	}()
}

// Wait blocks until every background load has finished.
func (c *Controller) Wait() { c.loads.Wait() }

// Close cancels outstanding loads and waits for them.
func (c *Controller) Close() {
	c.cancel()
	c.loads.Wait()
}
