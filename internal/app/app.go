package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rook-computer/platemaker/internal/render"
	"github.com/rook-computer/platemaker/internal/system"
	"github.com/rook-computer/platemaker/internal/web"
)

type App struct {
	Controller *Controller
	Web        web.Server
	Display    render.Display
	Logger     Logger
	// Kiosk switches the console to graphics mode while a framebuffer
	// display is active and exits on F4.
	Kiosk bool

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(controller *Controller, webServer web.Server, display render.Display) *App {
	if display == nil {
		display = render.NoopDisplay{}
	}
	return &App{Controller: controller, Web: webServer, Display: display, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start brings up the display and the web server, then blocks until ctx is
// done or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if err := app.Display.Start(ctx); err != nil {
		app.Logger.Errorf("app", "display start error: %v", err)
		return err
	}
	defer app.Display.Stop()

	if app.Kiosk {
		// Switch console to KD_GRAPHICS to suppress the hardware cursor.
		if err := system.SetGraphicsModeWithLog(app.Logger); err != nil {
			app.Logger.Errorf("tty", "set graphics mode failed: %v", err)
		}
		_ = system.HideCursorWithLog(app.Logger)
		defer func() { _ = system.ShowCursorWithLog(app.Logger); _ = system.RestoreTextModeWithLog(app.Logger) }()
		system.StartExitOnF4(ctx, app.Logger, func() { app.Exit(nil) })
	}

	// Mirror every frame to the display, starting with the current one.
	app.Controller.SetDisplay(app.Display)

	if app.Web != nil {
		if err := app.Web.Start(ctx); err != nil {
			app.Logger.Errorf("app", "web start error: %v", err)
			return err
		}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Display.RunLoop(loopCtx)
	}()

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	return err
}

// Stop shuts down the web server and waits for background loads.
func (app *App) Stop() error {
	var err error
	if app.Web != nil {
		err = app.Web.Stop()
	}
	if app.Controller != nil {
		app.Controller.Close()
	}
	return err
}
