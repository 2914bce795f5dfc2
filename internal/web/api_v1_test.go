package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rook-computer/platemaker/internal/export"
	"github.com/rook-computer/platemaker/internal/plate"
	"github.com/rook-computer/platemaker/internal/share"
	"github.com/rook-computer/platemaker/internal/state"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeController struct {
	mu        sync.Mutex
	st        state.State
	exportErr error
}

func (f *fakeController) Dispatch(ev state.Event) (state.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch ev.Type {
	case state.EventLine1:
		f.st.Inputs.Line1 = ev.Value
	case state.EventLine3:
		f.st.Inputs.Line3 = plate.NormalizeNumber(ev.Value)
	case state.EventBackground:
		f.st.Inputs.Background = ev.Value
	default:
		return f.st, state.ErrUnknownEvent{Type: ev.Type}
	}
	f.st.Renders++
	return f.st, nil
}

func (f *fakeController) State() state.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.st
}

func (f *fakeController) Frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{R: 0x8c, G: 0x1d, B: 0x40, A: 0xff})
	return img
}

func (f *fakeController) ExportPNG() ([]byte, string, error) {
	filename := export.Filename(f.State().Inputs.Line3)
	if f.exportErr != nil {
		return nil, filename, f.exportErr
	}
	data, err := export.EncodePNG(f.Frame())
	return data, filename, err
}

type fakeRenderer struct {
	got plate.Plate
}

func (r *fakeRenderer) RenderPlate(p plate.Plate) *image.RGBA {
	r.got = p
	return image.NewRGBA(image.Rect(0, 0, 8, 4))
}

type fakeCatalog struct {
	ids []string
	err error
}

func (c fakeCatalog) List(context.Context) ([]string, error) { return c.ids, c.err }

func newTestRouter(deps APIV1Deps) *gin.Engine {
	return NewRouter(ServerConfig{}, "", deps)
}

func do(t *testing.T, h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError {
	t.Helper()
	var out apiError
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(APIV1Deps{}), http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestEventsUpdateState(t *testing.T) {
	ctrl := &fakeController{}
	r := newTestRouter(APIV1Deps{Controller: ctrl})

	rec := do(t, r, http.MethodPost, "/api/v1/events", `{"type":"line3","value":"asu123x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	do(t, r, http.MethodPost, "/api/v1/events", `{"type":"background","value":"gold"}`)

	rec = do(t, r, http.MethodGet, "/api/v1/state", "")
	var st stateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Line3 != "ASU123" {
		t.Errorf("line3 = %q", st.Line3)
	}
	if st.Background != "#FFC627" {
		t.Errorf("background = %q", st.Background)
	}
	if st.TextColor != "#000000" {
		t.Errorf("textColor = %q, want default", st.TextColor)
	}
	selected := 0
	for _, opt := range st.BackgroundOptions {
		if opt.Selected {
			selected++
			if opt.Name != "gold" {
				t.Errorf("selected option = %q", opt.Name)
			}
		}
	}
	if selected != 1 {
		t.Errorf("%d background options selected, want 1", selected)
	}
	if st.Renders != 2 {
		t.Errorf("renders = %d", st.Renders)
	}
}

func TestEventsRejectsBadInput(t *testing.T) {
	r := newTestRouter(APIV1Deps{Controller: &fakeController{}})
	tests := []struct {
		name string
		body string
		code string
	}{
		{"unknown type", `{"type":"nope","value":"x"}`, "unknown_event"},
		{"malformed", `{"type":`, "invalid_event"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, "/api/v1/events", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := decodeError(t, rec).Error; got != tt.code {
				t.Errorf("error = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestPlatePNG(t *testing.T) {
	rec := do(t, newTestRouter(APIV1Deps{Controller: &fakeController{}}), http.MethodGet, "/api/v1/plate.png", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != export.ContentTypePNG {
		t.Errorf("content type = %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestRenderPNGUsesQuery(t *testing.T) {
	renderer := &fakeRenderer{}
	r := newTestRouter(APIV1Deps{Renderer: renderer})
	rec := do(t, r, http.MethodGet, "/api/v1/render.png?line1=Sun+Devils&line3=asu123x&text=white", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if renderer.got.Line1 != "Sun Devils" || renderer.got.Number != "ASU123" {
		t.Errorf("rendered %+v", renderer.got)
	}
}

func TestRenderPNGWithoutRenderer(t *testing.T) {
	rec := do(t, newTestRouter(APIV1Deps{}), http.MethodGet, "/api/v1/render.png", "")
	if rec.Code != http.StatusNotImplemented {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestExport(t *testing.T) {
	ctrl := &fakeController{}
	ctrl.st.Inputs.Line3 = "AB12C"
	rec := do(t, newTestRouter(APIV1Deps{Controller: ctrl}), http.MethodGet, "/api/v1/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="arizona-plate-ab12c.png"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestExportFailureIsNotice(t *testing.T) {
	ctrl := &fakeController{exportErr: errors.Join(export.ErrEncode, errors.New("boom"))}
	rec := do(t, newTestRouter(APIV1Deps{Controller: ctrl}), http.MethodGet, "/api/v1/export", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body.Error != "export_failed" || body.Message == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestShare(t *testing.T) {
	r := newTestRouter(APIV1Deps{Share: share.DefaultLink("https://plates.example/")})
	rec := do(t, r, http.MethodGet, "/api/v1/share", "")
	var out shareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.URL != "https://plates.example/" || out.Title != share.DefaultTitle {
		t.Errorf("share = %+v", out)
	}
	if !strings.Contains(out.Targets["facebook"], "plates.example") {
		t.Errorf("facebook target = %q", out.Targets["facebook"])
	}

	rec = do(t, r, http.MethodGet, "/api/v1/share/qr.png?size=128", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("qr status = %d", rec.Code)
	}
	if _, err := png.Decode(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Errorf("qr png: %v", err)
	}

	rec = do(t, r, http.MethodGet, "/api/v1/share/qr.png?size=99999", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized qr status = %d", rec.Code)
	}
}

func TestOverlays(t *testing.T) {
	tests := []struct {
		name   string
		deps   APIV1Deps
		status int
		body   string
	}{
		{"none configured", APIV1Deps{}, http.StatusOK, "[]"},
		{"listed", APIV1Deps{Overlays: fakeCatalog{ids: []string{"desert.png", "sky.jpg"}}}, http.StatusOK, `["desert.png","sky.jpg"]`},
		{"failure", APIV1Deps{Overlays: fakeCatalog{err: errors.New("disk gone")}}, http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(tt.deps), http.MethodGet, "/api/v1/overlays", "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d", rec.Code)
			}
			if tt.body != "" && strings.TrimSpace(rec.Body.String()) != tt.body {
				t.Errorf("body = %s, want %s", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestControllerRoutesWithoutController(t *testing.T) {
	r := newTestRouter(APIV1Deps{})
	for _, target := range []string{"/api/v1/state", "/api/v1/plate.png", "/api/v1/export"} {
		rec := do(t, r, http.MethodGet, target, "")
		if rec.Code != http.StatusNotImplemented {
			t.Errorf("%s status = %d", target, rec.Code)
		}
	}
}

func TestDevCORS(t *testing.T) {
	r := NewRouter(ServerConfig{DevMode: true}, "", APIV1Deps{})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/events", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow origin = %q", got)
	}
}

func TestEmbeddedUI(t *testing.T) {
	rec := do(t, newTestRouter(APIV1Deps{}), http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/v1/events") {
		t.Errorf("index does not talk to the API")
	}
}
