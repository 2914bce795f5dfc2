package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/platemaker/internal/app"
	"github.com/rook-computer/platemaker/internal/overlay"
	"github.com/rook-computer/platemaker/internal/render"
	"github.com/rook-computer/platemaker/internal/share"
	"github.com/rook-computer/platemaker/internal/web"
)

const envStdioLog = "PLATEMAKER_STDIO_LOG"

func main() {
	cfg, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags override the environment.
	listen := flag.String("listen", cfg.ListenAddr, "HTTP listen address; also configurable via "+web.EnvListenAddr)
	dev := flag.Bool("dev", cfg.DevMode, "enable request logging and permissive CORS; also configurable via "+web.EnvDevMode)
	overlayDir := flag.String("overlay-dir", cfg.OverlayDir, "directory of preset overlay images; also configurable via "+web.EnvOverlayDir)
	overlayURLs := flag.String("overlay-urls", strings.Join(cfg.OverlayURLs, ","), "comma-separated remote overlay URLs the server may fetch; also configurable via "+web.EnvOverlayURLs)
	shareURL := flag.String("share-url", cfg.ShareURL, "page URL offered for sharing; also configurable via "+web.EnvShareURL)
	staticDir := flag.String("static-dir", "", "serve the web UI from this directory instead of the embedded copy")
	debug := flag.Bool("debug", false, "enable debug logging to ./platemaker-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	fbPath := flag.String("fb", "", "mirror every rendered frame to this framebuffer device (e.g. /dev/fb0)")
	kiosk := flag.Bool("kiosk", false, "with -fb: switch the console to graphics mode and exit on F4")
	plateFont := flag.String("plate-font", "", "TrueType font for the plate number; loaded in the background")
	flag.Parse()

	cfg.ListenAddr = *listen
	cfg.DevMode = *dev
	cfg.OverlayDir = *overlayDir
	cfg.OverlayURLs = web.SplitList(*overlayURLs)
	cfg.ShareURL = *shareURL

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./platemaker-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fonts, err := render.DefaultFonts()
	if err != nil {
		fmt.Println("font error:", err)
		os.Exit(1)
	}
	loader := overlay.MultiLoader{Dir: overlay.DirLoader{Root: cfg.OverlayDir}, URLs: cfg.OverlayURLs}

	controller := app.NewController(render.NewCompositor(fonts), loader)
	controller.Logger = logger

	server := web.NewHTTPServer(cfg, web.APIV1Deps{
		Controller: controller,
		Renderer:   controller,
		Overlays:   loader,
		Share:      share.DefaultLink(cfg.ShareURL),
		Logger:     logger,
	})
	server.StaticDir = *staticDir

	var display render.Display = render.NoopDisplay{}
	if *fbPath != "" {
		fbDisplay := render.NewFBDisplay(*fbPath)
		fbDisplay.Logger = logger
		display = fbDisplay
	}

	a := app.New(controller, server, display)
	a.Logger = logger
	a.Kiosk = *kiosk && *fbPath != ""

	controller.LoadNumberFont(*plateFont)

	fmt.Printf("platemaker listening on %s\n", cfg.ListenAddr)
	runErr := a.Start(ctx)
	if err := a.Stop(); err != nil {
		fmt.Println("app stop error:", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Println("app error:", runErr)
		os.Exit(1)
	}
}
