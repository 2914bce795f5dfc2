package render

import (
	"context"
	"image"
)

// Display mirrors rendered frames onto an output device.
type Display interface {
	Start(ctx context.Context) error
	Stop() error
	Show(frame image.Image)
	RunLoop(ctx context.Context)
}

type NoopDisplay struct{}

func (NoopDisplay) Start(ctx context.Context) error { return nil }
func (NoopDisplay) Stop() error                     { return nil }
func (NoopDisplay) Show(frame image.Image)          {}
func (NoopDisplay) RunLoop(ctx context.Context)     {}
