package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rook-computer/platemaker/internal/export"
	"github.com/rook-computer/platemaker/internal/palette"
	"github.com/rook-computer/platemaker/internal/state"
)

const maxQRCodeSizePx = 1024

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type optionResponse struct {
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Selected bool   `json:"selected"`
}

type stateResponse struct {
	Line1             string           `json:"line1"`
	Line2             string           `json:"line2"`
	Line3             string           `json:"line3"`
	Background        string           `json:"background"`
	TextColor         string           `json:"textColor"`
	BackgroundOptions []optionResponse `json:"backgroundOptions"`
	TextOptions       []optionResponse `json:"textOptions"`
	Overlay           string           `json:"overlay"`
	OverlayStatus     string           `json:"overlayStatus"`
	Generation        uint64           `json:"generation"`
	Renders           uint64           `json:"renders"`
}

type shareResponse struct {
	URL         string            `json:"url"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Targets     map[string]string `json:"targets"`
}

type api struct {
	deps APIV1Deps
}

// RegisterAPIV1 registers the public API routes on g.
func RegisterAPIV1(g *gin.RouterGroup, deps APIV1Deps) {
	a := &api{deps: deps.withDefaults()}
	g.GET("/health", a.health)
	g.GET("/state", a.state)
	g.POST("/events", a.events)
	g.GET("/plate.png", a.platePNG)
	g.GET("/render.png", a.renderPNG)
	g.GET("/export", a.export)
	g.GET("/share", a.share)
	g.GET("/share/qr.png", a.shareQR)
	g.GET("/overlays", a.overlays)
}

func (a *api) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *api) state(c *gin.Context) {
	if !a.requireController(c) {
		return
	}
	c.JSON(http.StatusOK, newStateResponse(a.deps.Controller.State()))
}

func (a *api) events(c *gin.Context) {
	if !a.requireController(c) {
		return
	}
	var ev state.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		writeAPIError(c, http.StatusBadRequest, "invalid_event", err.Error())
		return
	}
	st, err := a.deps.Controller.Dispatch(ev)
	if err != nil {
		var unknown state.ErrUnknownEvent
		if errors.As(err, &unknown) {
			writeAPIError(c, http.StatusBadRequest, "unknown_event", err.Error())
			return
		}
		writeAPIError(c, http.StatusInternalServerError, "dispatch_failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, newStateResponse(st))
}

func (a *api) platePNG(c *gin.Context) {
	if !a.requireController(c) {
		return
	}
	data, err := export.EncodePNG(a.deps.Controller.Frame())
	if err != nil {
		a.deps.Logger.Errorf("web", "encode plate: %v", err)
		writeAPIError(c, http.StatusInternalServerError, "encode_failed", export.Notice(err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, export.ContentTypePNG, data)
}

// renderPNG draws the plate described by the query without touching the
// live plate. Overlays are not loaded here.
func (a *api) renderPNG(c *gin.Context) {
	if a.deps.Renderer == nil {
		writeAPIError(c, http.StatusNotImplemented, "not_implemented", "renderer "+errNotConfigured.Error())
		return
	}
	in := state.Inputs{
		Line1:      c.Query("line1"),
		Line2:      c.Query("line2"),
		Line3:      c.Query("line3"),
		Background: c.Query("background"),
		TextColor:  c.Query("text"),
	}
	frame := a.deps.Renderer.RenderPlate(in.Plate())
	data, err := export.EncodePNG(frame)
	if err != nil {
		a.deps.Logger.Errorf("web", "encode render: %v", err)
		writeAPIError(c, http.StatusInternalServerError, "encode_failed", export.Notice(err))
		return
	}
	c.Data(http.StatusOK, export.ContentTypePNG, data)
}

func (a *api) export(c *gin.Context) {
	if !a.requireController(c) {
		return
	}
	data, filename, err := a.deps.Controller.ExportPNG()
	if err != nil {
		writeAPIError(c, http.StatusInternalServerError, "export_failed", export.Notice(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentTypePNG, data)
}

func (a *api) share(c *gin.Context) {
	link := a.deps.Share
	c.JSON(http.StatusOK, shareResponse{
		URL:         link.URL,
		Title:       link.Title,
		Description: link.Description,
		Targets:     link.Targets(),
	})
}

func (a *api) shareQR(c *gin.Context) {
	size := 0
	if raw := c.Query("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > maxQRCodeSizePx {
			writeAPIError(c, http.StatusBadRequest, "invalid_size", fmt.Sprintf("size must be between 1 and %d", maxQRCodeSizePx))
			return
		}
		size = v
	}
	data, err := a.deps.Share.QRCodePNG(size)
	if err != nil {
		writeAPIError(c, http.StatusInternalServerError, "qr_failed", err.Error())
		return
	}
	c.Data(http.StatusOK, export.ContentTypePNG, data)
}

func (a *api) overlays(c *gin.Context) {
	ids, err := a.deps.Overlays.List(c.Request.Context())
	if err != nil {
		a.deps.Logger.Errorf("web", "list overlays: %v", err)
		writeAPIError(c, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, ids)
}

func (a *api) requireController(c *gin.Context) bool {
	if a.deps.Controller == nil {
		writeAPIError(c, http.StatusNotImplemented, "not_implemented", "controller "+errNotConfigured.Error())
		return false
	}
	return true
}

func newStateResponse(st state.State) stateResponse {
	in := st.Inputs
	bg := palette.OptionsFrom(palette.BackgroundSwatches, in.Background)
	text := palette.OptionsFrom(palette.TextSwatches, in.TextColor)
	p := in.Plate()
	return stateResponse{
		Line1:             in.Line1,
		Line2:             in.Line2,
		Line3:             p.Number,
		Background:        palette.Hex(p.Background),
		TextColor:         palette.Hex(p.Text),
		BackgroundOptions: optionResponses(bg),
		TextOptions:       optionResponses(text),
		Overlay:           in.Overlay,
		OverlayStatus:     st.OverlayStatus.String(),
		Generation:        st.Generation,
		Renders:           st.Renders,
	}
}

func optionResponses(options []palette.Option) []optionResponse {
	out := make([]optionResponse, 0, len(options))
	for _, opt := range options {
		out = append(out, optionResponse{Name: opt.Name, Hex: palette.Hex(opt.Color), Selected: opt.Selected})
	}
	return out
}

func writeAPIError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, apiError{Error: code, Message: message})
}
