// Command exporter renders one plate and writes it as
// arizona-plate-<number>.png without starting the web UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/platemaker/internal/app"
	"github.com/rook-computer/platemaker/internal/export"
	"github.com/rook-computer/platemaker/internal/overlay"
	"github.com/rook-computer/platemaker/internal/render"
	"github.com/rook-computer/platemaker/internal/state"
	"github.com/rook-computer/platemaker/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv("")
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	line1 := flag.String("line1", "", "top line")
	line2 := flag.String("line2", "", "bottom line")
	line3 := flag.String("line3", "", "plate number (upper-cased, at most 6 characters)")
	background := flag.String("background", "", "background swatch name or hex (default maroon)")
	textColor := flag.String("text", "", "text swatch name or hex (default black)")
	overlayID := flag.String("overlay", "", "overlay id under -overlay-dir, or an http(s) URL (fetched only for this run)")
	overlayDir := flag.String("overlay-dir", defaults.OverlayDir, "directory of preset overlay images; also configurable via "+web.EnvOverlayDir)
	plateFont := flag.String("plate-font", "", "TrueType font for the plate number")
	outDir := flag.String("out", ".", "output directory")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewFileLogger(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fonts, err := render.DefaultFonts()
	if err != nil {
		fmt.Println("font error:", err)
		os.Exit(1)
	}
	// The operator names the overlay on the command line, so a URL given
	// here is the whole allowlist.
	loader := overlay.MultiLoader{Dir: overlay.DirLoader{Root: *overlayDir}, URLs: defaults.OverlayURLs}
	if strings.HasPrefix(*overlayID, "http://") || strings.HasPrefix(*overlayID, "https://") {
		loader.URLs = append(loader.URLs, *overlayID)
	}
	controller := app.NewController(render.NewCompositor(fonts), loader)
	controller.Logger = logger
	defer controller.Close()

	controller.LoadNumberFont(*plateFont)
	events := []state.Event{
		{Type: state.EventLine1, Value: *line1},
		{Type: state.EventLine2, Value: *line2},
		{Type: state.EventLine3, Value: *line3},
		{Type: state.EventBackground, Value: *background},
		{Type: state.EventTextColor, Value: *textColor},
		{Type: state.EventOverlay, Value: *overlayID},
	}
	for _, ev := range events {
		if _, err := controller.Dispatch(ev); err != nil {
			fmt.Println("input error:", err)
			os.Exit(2)
		}
	}

	done := make(chan struct{})
	go func() {
		controller.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		fmt.Println("interrupted")
		os.Exit(1)
	}

	st := controller.State()
	if st.OverlayStatus == state.OverlayFailed {
		fmt.Printf("overlay %q could not be loaded; exporting without it\n", st.Inputs.Overlay)
	}

	path, err := export.SaveToDir(*outDir, st.Inputs.Line3, controller.Frame())
	if err != nil {
		logger.Errorf("export", "%v", err)
		fmt.Println(export.Notice(err))
		os.Exit(1)
	}
	fmt.Println(path)
}
