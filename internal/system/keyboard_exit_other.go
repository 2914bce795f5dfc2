//go:build !linux

package system

import "context"

// StartExitOnF4 is a no-op off linux; there is no evdev to watch.
func StartExitOnF4(ctx context.Context, l logger, onExit func()) {
	if l != nil {
		l.Infof("input", "kiosk exit keys are only supported on linux")
	}
}
