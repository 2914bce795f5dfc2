// Package export turns rendered frames into PNG artifacts.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rook-computer/platemaker/internal/plate"
)

const (
	FilenamePrefix = "arizona-plate-"
	DefaultSuffix  = "custom"
	RestrictedHint = "Export was blocked by the environment. Choose a writable output directory (for example: -out ./plates) or run the server and download from the browser."
	ContentTypePNG = "image/png"
	filenameSuffix = ".png"
)

var (
	// ErrEncode means the frame could not be encoded to PNG.
	ErrEncode = errors.New("could not generate PNG from plate")
	// ErrRestricted means the host refused to let the artifact be written.
	ErrRestricted = errors.New("export blocked by environment")
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Suffix derives the artifact suffix from the plate-number input: at most six
// characters, lower-cased, non-alphanumeric runs collapsed to "-", leading and
// trailing dashes trimmed, "custom" when nothing is left.
func Suffix(number string) string {
	s := strings.ToLower(plate.Truncate(number, plate.MaxNumberLen))
	s = nonAlnumRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return DefaultSuffix
	}
	return s
}

// Filename is the download name for a plate with the given number.
func Filename(number string) string {
	return FilenamePrefix + Suffix(number) + filenameSuffix
}

// WritePNG encodes frame to w. Failures wrap ErrEncode.
func WritePNG(w io.Writer, frame image.Image) error {
	if frame == nil || frame.Bounds().Empty() {
		return fmt.Errorf("%w: empty frame", ErrEncode)
	}
	if err := png.Encode(w, frame); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// EncodePNG returns the PNG bytes of frame.
func EncodePNG(frame image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, frame); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveToDir writes frame as dir/Filename(number) and returns the path.
// Permission and read-only failures wrap ErrRestricted.
func SaveToDir(dir, number string, frame image.Image) (string, error) {
	data, err := EncodePNG(frame)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, Filename(number))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		if isRestricted(err) {
			return "", fmt.Errorf("%w: %s: %v", ErrRestricted, path, err)
		}
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func isRestricted(err error) bool {
	var pathErr *fs.PathError
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	return errors.As(err, &pathErr) && strings.Contains(strings.ToLower(pathErr.Err.Error()), "read-only")
}

// Notice converts an export error into the message shown to the user.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRestricted):
		return RestrictedHint
	case errors.Is(err, ErrEncode):
		return "Could not generate PNG from plate."
	default:
		return "Download failed: " + err.Error()
	}
}
