package layout

import (
	"image"
	"math"
	"testing"
)

const eps = 1e-9

func TestCoverFullyCoversAndCenters(t *testing.T) {
	target := Rect{X: 0, Y: 0, W: 1200, H: 600}
	tests := []struct {
		name       string
		imgW, imgH float64
	}{
		{"wider image", 4000, 1000},
		{"taller image", 800, 1600},
		{"same ratio", 600, 300},
		{"square", 512, 512},
		{"tiny", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cover(tt.imgW, tt.imgH, target)
			if got.W+eps < target.W || got.H+eps < target.H {
				t.Fatalf("placement %+v does not cover %+v", got, target)
			}
			left := target.X - got.X
			right := (got.X + got.W) - (target.X + target.W)
			if math.Abs(left-right) > 1e-6 {
				t.Errorf("horizontal overflow not centered: left=%v right=%v", left, right)
			}
			top := target.Y - got.Y
			bottom := (got.Y + got.H) - (target.Y + target.H)
			if math.Abs(top-bottom) > 1e-6 {
				t.Errorf("vertical overflow not centered: top=%v bottom=%v", top, bottom)
			}
			if math.Abs(got.W/got.H-tt.imgW/tt.imgH) > 1e-6 {
				t.Errorf("aspect ratio changed: got %v want %v", got.W/got.H, tt.imgW/tt.imgH)
			}
		})
	}
}

func TestCoverWiderCropsHorizontally(t *testing.T) {
	got := Cover(400, 100, Rect{X: 10, Y: 20, W: 200, H: 100})
	want := Rect{X: -90, Y: 20, W: 400, H: 100}
	if got != want {
		t.Errorf("Cover = %+v, want %+v", got, want)
	}
}

func TestCoverTallerCropsVertically(t *testing.T) {
	got := Cover(100, 100, Rect{X: 0, Y: 0, W: 200, H: 100})
	want := Rect{X: 0, Y: -50, W: 200, H: 200}
	if got != want {
		t.Errorf("Cover = %+v, want %+v", got, want)
	}
}

func TestCoverZeroHeightImage(t *testing.T) {
	target := Rect{W: 100, H: 50}
	if got := Cover(10, 0, target); got != target {
		t.Errorf("expected target back for zero-height image, got %+v", got)
	}
}

func TestInset(t *testing.T) {
	got := Inset(FromImageRect(image.Rect(0, 0, 1200, 600)), 10)
	want := Rect{X: 10, Y: 10, W: 1180, H: 580}
	if got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}
	collapsed := Inset(Rect{W: 10, H: 10}, 8)
	if collapsed.W != 0 || collapsed.H != 0 {
		t.Errorf("expected collapsed rect, got %+v", collapsed)
	}
}
