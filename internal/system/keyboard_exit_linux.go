//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// StartExitOnF4 watches evdev devices under /dev/input/event* and calls
// onExit once when F4 or Escape is pressed. Devices that cannot be opened
// are skipped; with none available it logs and returns.
func StartExitOnF4(ctx context.Context, l logger, onExit func()) {
	if onExit == nil {
		return
	}
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found for kiosk exit")
		}
		return
	}

	var once sync.Once
	trigger := func() {
		once.Do(func() {
			if l != nil {
				l.Infof("input", "exit key pressed")
			}
			onExit()
		})
	}
	layout := newEventLayout()
	for _, path := range paths {
		go watchDevice(ctx, path, layout, trigger)
	}
}

func watchDevice(ctx context.Context, path string, layout eventLayout, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if layout.exitPressed(buf[:n]) {
			trigger()
			return
		}
	}
}

func newEventLayout() eventLayout {
	return eventLayout{timevalSize: binary.Size(unix.Timeval{})}
}
