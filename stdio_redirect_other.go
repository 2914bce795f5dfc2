//go:build !unix

package main

import (
	"fmt"
	"os"
	"time"
)

// redirectStdIO swaps os.Stdout and os.Stderr for path. Runtime panics still
// go to the process stderr.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	fmt.Fprintf(f, "--- platemaker pid %d started %s ---\n", os.Getpid(), time.Now().Format(time.RFC3339))
	os.Stdout = f
	os.Stderr = f
	return nil
}
