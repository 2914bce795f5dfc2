package web

import (
	"context"
	"net/http"
	"reflect"
	"testing"
	"time"
)

func TestHTTPServerStartStop(t *testing.T) {
	s := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"}, APIV1Deps{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + s.ListenAddr() + "/api/v1/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := s.Start(ctx); err == nil {
		t.Errorf("Start after Stop succeeded")
	}
}

func TestDefaultServerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, "")
	t.Setenv(EnvDevMode, "true")
	t.Setenv(EnvOverlayDir, "/srv/overlays")
	t.Setenv(EnvShareURL, "https://plates.example/")
	t.Setenv(EnvOverlayURLs, "https://cdn.example/a.png, ,https://cdn.example/b.png")

	cfg, err := DefaultServerConfigFromEnv(":8080")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	want := ServerConfig{
		ListenAddr:  ":8080",
		DevMode:     true,
		OverlayDir:  "/srv/overlays",
		OverlayURLs: []string{"https://cdn.example/a.png", "https://cdn.example/b.png"},
		ShareURL:    "https://plates.example/",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}

	t.Setenv(EnvDevMode, "sometimes")
	if _, err := DefaultServerConfigFromEnv(":8080"); err == nil {
		t.Errorf("invalid %s accepted", EnvDevMode)
	}
}
