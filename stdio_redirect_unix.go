//go:build unix

package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// redirectStdIO points fds 1 and 2 at path so panics from any goroutine are
// captured, and marks the start of this run in the file.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "--- platemaker pid %d started %s ---\n", os.Getpid(), time.Now().Format(time.RFC3339))
	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return fmt.Errorf("dup2 onto %s: %w", std.Name(), err)
		}
	}
	return nil
}
