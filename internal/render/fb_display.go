package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/platemaker/internal/render/layout"
)

// FBDisplay shows the latest plate frame on a Linux framebuffer, letterboxed
// and centered.
type FBDisplay struct {
	Path   string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	fbDev   *fb.Device
	running atomic.Bool

	mu     sync.Mutex
	latest *image.RGBA
	// dirty wakes RunLoop when Show stores a new frame.
	dirty chan struct{}
}

func NewFBDisplay(path string) *FBDisplay {
	if path == "" {
		path = "/dev/fb0"
	}
	return &FBDisplay{Path: path, dirty: make(chan struct{}, 1)}
}

func (d *FBDisplay) Start(ctx context.Context) error {
	dev, err := fb.Open(d.Path)
	if err != nil {
		return err
	}
	d.fbDev = dev
	if d.Logger != nil {
		bounds := dev.Bounds()
		d.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", d.Path, bounds.Dx(), bounds.Dy())
	}
	d.running.Store(true)
	return nil
}

func (d *FBDisplay) Stop() error {
	d.running.Store(false)
	if d.fbDev != nil {
		d.fbDev.Close()
	}
	return nil
}

// Show keeps a private copy of frame and wakes RunLoop to blit it. It never
// touches the device, so callers holding locks are not held up by the write.
func (d *FBDisplay) Show(frame image.Image) {
	if frame == nil {
		return
	}
	copied := image.NewRGBA(frame.Bounds())
	draw.Draw(copied, copied.Bounds(), frame, frame.Bounds().Min, draw.Src)

	d.mu.Lock()
	d.latest = copied
	d.mu.Unlock()
	select {
	case d.dirty <- struct{}{}:
	default:
	}
}

// RunLoop blits each new frame as Show signals it, and re-blits the latest
// frame once per second until ctx is done so stray console output does not
// stay on screen.
func (d *FBDisplay) RunLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.dirty:
			d.blit()
		case <-ticker.C:
			d.blit()
		}
	}
}

func (d *FBDisplay) blit() {
	if !d.running.Load() || d.fbDev == nil {
		return
	}
	d.mu.Lock()
	frame := d.latest
	d.mu.Unlock()
	if frame == nil {
		return
	}
	if err := blitToFB(d.fbDev, frame); err != nil && d.Logger != nil {
		d.Logger.Errorf("fb", "blit failed: %v", err)
	}
}

// fitRect returns the largest rectangle with src's aspect ratio centered in dst.
func fitRect(src, dst image.Rectangle) image.Rectangle {
	if src.Dx() <= 0 || src.Dy() <= 0 || dst.Empty() {
		return image.Rectangle{}
	}
	scaleX := float64(dst.Dx()) / float64(src.Dx())
	scaleY := float64(dst.Dy()) / float64(src.Dy())
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	place := layout.Rect{W: float64(src.Dx()) * scale, H: float64(src.Dy()) * scale}
	place.X = float64(dst.Min.X) + (float64(dst.Dx())-place.W)/2
	place.Y = float64(dst.Min.Y) + (float64(dst.Dy())-place.H)/2
	return image.Rect(int(place.X), int(place.Y), int(place.X+place.W), int(place.Y+place.H))
}

// blitToFB writes canvas to the device with nearest-neighbor sampling,
// painting the letterbox bars black. Transparent canvas pixels become black.
func blitToFB(dev *fb.Device, canvas *image.RGBA) error {
	if dev == nil {
		return nil
	}
	bounds := dev.Bounds()
	target := fitRect(canvas.Bounds(), bounds)
	srcW := canvas.Bounds().Dx()
	srcH := canvas.Bounds().Dy()
	black := color.RGBA{A: 0xFF}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !(image.Point{X: x, Y: y}).In(target) {
				dev.Set(x, y, black)
				continue
			}
			sx := canvas.Bounds().Min.X + ((x-target.Min.X)*srcW)/target.Dx()
			sy := canvas.Bounds().Min.Y + ((y-target.Min.Y)*srcH)/target.Dy()
			pixel := canvas.RGBAAt(sx, sy)
			// Premultiplied RGBA composited over black is the channel value itself.
			dev.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
