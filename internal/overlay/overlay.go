// Package overlay loads the preset images that can be laid over a plate.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

var (
	ErrInvalidID = errors.New("invalid overlay id")
	ErrNotFound  = errors.New("overlay not found")
)

// Loader resolves an overlay id into a decoded image.
type Loader interface {
	Load(ctx context.Context, id string) (image.Image, error)
}

// Lister enumerates the overlay ids a Loader can serve.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".tif": true, ".tiff": true}

// DirLoader serves overlays from files under Root. Ids are slash-separated
// paths relative to Root.
type DirLoader struct {
	Root string
}

func (l DirLoader) resolve(id string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(id))
	if clean == "/" || strings.Contains(id, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(l.Root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (l DirLoader) Load(ctx context.Context, id string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := l.resolve(id)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Open(full, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("decode overlay %s: %w", id, err)
	}
	return img, nil
}

// List returns the image files under Root, sorted.
func (l DirLoader) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if p == l.Root && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !imageExts[strings.ToLower(filepath.Ext(p))] {
			return nil
		}
		rel, err := filepath.Rel(l.Root, p)
		if err != nil {
			return err
		}
		ids = append(ids, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list overlays in %s: %w", l.Root, err)
	}
	sort.Strings(ids)
	return ids, nil
}

// HTTPLoader fetches overlays by absolute http(s) URL.
type HTTPLoader struct {
	Client *http.Client
}

func (l HTTPLoader) Load(ctx context.Context, id string) (image.Image, error) {
	if !strings.HasPrefix(id, "http://") && !strings.HasPrefix(id, "https://") {
		return nil, fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidID, id)
	}
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, id, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch overlay %s: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch overlay %s: status %d", id, resp.StatusCode)
	}
	img, err := imaging.Decode(io.LimitReader(resp.Body, 32<<20), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode overlay %s: %w", id, err)
	}
	return img, nil
}

// MultiLoader sends URLs to HTTP and everything else to Dir. Only the URLs
// listed in URLs are fetched; with none configured, URL ids are rejected.
type MultiLoader struct {
	Dir  DirLoader
	HTTP HTTPLoader
	URLs []string
}

func isURL(id string) bool {
	return strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://")
}

func (l MultiLoader) Load(ctx context.Context, id string) (image.Image, error) {
	if isURL(id) {
		if !slices.Contains(l.URLs, id) {
			return nil, fmt.Errorf("%w: %q is not an allowed overlay URL", ErrInvalidID, id)
		}
		return l.HTTP.Load(ctx, id)
	}
	return l.Dir.Load(ctx, id)
}

// List returns the directory overlays followed by the allowed URLs.
func (l MultiLoader) List(ctx context.Context) ([]string, error) {
	ids, err := l.Dir.List(ctx)
	if err != nil {
		return nil, err
	}
	return append(ids, l.URLs...), nil
}

// Contains reports whether id is in the catalog served by lister.
func Contains(ctx context.Context, lister Lister, id string) (bool, error) {
	ids, err := lister.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}
