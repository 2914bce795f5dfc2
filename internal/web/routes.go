package web

import (
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/rook-computer/platemaker/internal/assets"
)

// NewRouter builds the engine used by both binaries:
// - /api/v1/* for the API
// - / for the web UI
func NewRouter(cfg ServerConfig, staticDir string, deps APIV1Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.DevMode {
		r.Use(gin.Logger(), DevCORS())
	}
	RegisterAPIV1(r.Group("/api/v1"), deps)
	r.NoRoute(gin.WrapH(StaticUIHandler(staticDir)))
	return r
}

// StaticUIHandler serves either the embedded UI assets or a directory.
func StaticUIHandler(staticDir string) http.Handler {
	if staticDir == "" {
		return cleanPath(http.FileServer(http.FS(assets.WebUI)))
	}
	if st, err := os.Stat(staticDir); err != nil || !st.IsDir() {
		return http.HandlerFunc(http.NotFound)
	}
	return cleanPath(http.FileServer(http.Dir(staticDir)))
}

func cleanPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = path.Clean("/" + r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
