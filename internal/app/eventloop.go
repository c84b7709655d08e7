package app

import (
	"runtime/debug"
	"strconv"

	"github.com/dshills/gesture/internal/config"
	"github.com/dshills/gesture/internal/engine/buffer"
	"github.com/dshills/gesture/internal/renderer/backend"
)

// quitRequest asks the event loop to stop.
type quitRequest struct{}

// reloadResult carries a configuration reload into the event loop.
type reloadResult struct {
	config *config.Config
	err    error
}

// Run initializes the backend and processes events until the user quits.
// It returns ErrQuit on a normal exit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &OperationError{Op: "init terminal", Err: err}
	}
	defer app.backend.Shutdown()

	app.resize(app.backend.Size())
	app.startWatcher()

	for {
		app.render()
		if err := app.dispatch(app.backend.PollEvent()); err != nil {
			app.logger.Info("event loop stopped: %v", err)
			return err
		}
	}
}

// Quit asks a running event loop to stop. It is safe to call from any
// goroutine.
func (app *Application) Quit() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	return app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
}

// dispatch handles one event. A panic in a handler is logged and the loop
// keeps going.
func (app *Application) dispatch(ev backend.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := &RecoveredPanicError{Event: ev.Type.String(), Value: r, Stack: string(debug.Stack())}
			app.logger.Error("%v", perr)
			app.setStatus("internal error: %v", r)
			err = nil
		}
	}()
	return app.handleBackendEvent(ev)
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
		app.popup.Close()
		app.backend.Sync()
		return nil
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		return app.handleMouse(ev)
	case backend.EventWheel:
		app.textArea.ScrollBy(ev.WheelDelta * wheelLines)
		return nil
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	case backend.EventClosed:
		return ErrQuit
	default:
		return nil
	}
}

func (app *Application) handleInterrupt(data any) error {
	switch d := data.(type) {
	case quitRequest:
		return ErrQuit
	case reloadResult:
		if d.err != nil {
			app.setStatus("config: %v", d.err)
			return nil
		}
		app.applyConfig(d.config)
	}
	return nil
}

// resize gives the text area every row but the status line.
func (app *Application) resize(width, height int) {
	rows := height - 1
	if rows < 1 {
		rows = height
	}
	app.textArea.SetRows(rows)
	app.logger.Debug("resized to %dx%d", width, height)
}

// textRows returns the number of rows showing text.
func (app *Application) textRows() int {
	return app.textArea.LastScreenLine() + 1
}

// startWatcher reloads the configuration file when it changes. The
// watcher goroutine only posts the result; the event loop applies it.
func (app *Application) startWatcher() {
	if app.opts.ConfigPath == "" || app.watcher != nil {
		return
	}

	w, err := config.NewWatcher(config.ExpandPath(app.opts.ConfigPath),
		func(cfg *config.Config, err error) {
			ev := backend.Event{Type: backend.EventInterrupt, Data: reloadResult{config: cfg, err: err}}
			if perr := app.backend.PostEvent(ev); perr != nil {
				app.logger.Warn("dropping config reload: %v", perr)
			}
		},
		config.WithWatchLogger(app.logger.WithComponent("config")),
	)
	if err != nil {
		app.logger.Warn("config reload disabled: %v", err)
		return
	}
	app.watcher = w
}

// applyConfig switches to a reloaded configuration. The tab size and word
// separators go through buffer properties; electric scroll applies on the
// next start.
func (app *Application) applyConfig(cfg *config.Config) {
	app.config = cfg

	ta := app.textArea
	ta.SetFeatures(cfg.Features())
	ta.SetWrapColumn(cfg.View.WrapColumn)
	ta.Buffer().SetProperty(buffer.PropNoWordSep, cfg.Words.NoWordSep)
	ta.Buffer().SetProperty(buffer.PropTabSize, strconv.Itoa(cfg.View.TabSize))
	ta.InvalidateAll()

	if app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	}
	app.interp = app.newInterpreter()

	app.metrics.RecordReload()
	app.setStatus("configuration reloaded")
	app.logger.Info("configuration reloaded, platform %s", app.interp.Platform())
}
