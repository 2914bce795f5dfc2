package web

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvListenAddr = "PLATEMAKER_LISTEN"
	EnvDevMode    = "PLATEMAKER_DEV"
	EnvOverlayDir = "PLATEMAKER_OVERLAY_DIR"
	EnvShareURL   = "PLATEMAKER_SHARE_URL"
	// EnvOverlayURLs is a comma-separated allowlist of remote overlay URLs.
	EnvOverlayURLs = "PLATEMAKER_OVERLAY_URLS"
)

// ServerConfig contains settings for running the HTTP server.
//
// The intended defaults differ per binary:
// - kiosk:   :80
// - desktop: :8080
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
	// OverlayDir holds the preset overlay images.
	OverlayDir string
	// OverlayURLs are the only remote overlays the server will fetch.
	OverlayURLs []string
	// ShareURL is the page URL offered by the share endpoints.
	ShareURL string
}

// SplitList splits a comma-separated value, dropping blank entries.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	overlayDir := os.Getenv(EnvOverlayDir)
	if overlayDir == "" {
		overlayDir = "overlays"
	}

	return ServerConfig{
		ListenAddr:  listenAddr,
		DevMode:     devMode,
		OverlayDir:  overlayDir,
		OverlayURLs: SplitList(os.Getenv(EnvOverlayURLs)),
		ShareURL:    os.Getenv(EnvShareURL),
	}, nil
}
