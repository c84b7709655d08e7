// Package app runs the gesture demo editor: a text area in the terminal
// driven by the mouse gesture interpreter.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dshills/gesture/internal/config"
	"github.com/dshills/gesture/internal/engine/buffer"
	"github.com/dshills/gesture/internal/event"
	"github.com/dshills/gesture/internal/input/mouse"
	"github.com/dshills/gesture/internal/plugin/lua"
	"github.com/dshills/gesture/internal/renderer/backend"
	"github.com/dshills/gesture/internal/textarea"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses defaults and
	// environment overrides only, and disables reloading.
	ConfigPath string

	// File is the file to edit. A missing file starts an empty buffer.
	File string

	// Script is a Lua hook script. It overrides plugin.script.
	Script string

	// LogLevel overrides log.level when set.
	LogLevel string

	// LogOutput overrides log.file when set.
	LogOutput io.Writer

	// Clipboard overrides the system clipboard.
	Clipboard Clipboard
}

// Application wires the text area, the interpreter and the terminal.
// Everything but Quit runs on the goroutine that calls Run.
type Application struct {
	opts    Options
	config  *config.Config
	logger  *Logger
	logFile *os.File
	metrics *Metrics

	bus       *event.Bus
	textArea  *textarea.TextArea
	interp    *mouse.Interpreter
	busHooks  *textarea.BusHooks
	luaHooks  *lua.Hooks
	clipboard Clipboard
	popup     *popupMenu
	watcher   *config.Watcher

	backend backend.Backend
	status  string
	running atomic.Bool
}

// New creates an application from opts. It loads the configuration, the
// file and the hook script; nothing touches the terminal until Run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &OperationError{Op: "load config", Target: opts.ConfigPath, Err: err}
	}

	app := &Application{
		opts:      opts,
		config:    cfg,
		metrics:   NewMetrics(),
		bus:       event.NewBus(),
		clipboard: opts.Clipboard,
		popup:     newPopupMenu(),
	}
	if app.clipboard == nil {
		app.clipboard = defaultClipboard()
	}

	if err := app.initLogger(); err != nil {
		return nil, err
	}
	if err := app.initTextArea(); err != nil {
		app.closeLog()
		return nil, err
	}
	if err := app.initHooks(); err != nil {
		app.closeLog()
		return nil, err
	}
	if err := app.subscribe(); err != nil {
		app.Shutdown()
		return nil, err
	}

	app.logger.Info("started with platform %s", app.interp.Platform())
	return app, nil
}

func (app *Application) initLogger() error {
	level := app.config.Log.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}

	out := app.opts.LogOutput
	if out == nil && app.config.Log.File != "" {
		f, err := OpenLogFile(config.ExpandPath(app.config.Log.File))
		if err != nil {
			return &OperationError{Op: "open log", Target: app.config.Log.File, Err: err}
		}
		app.logFile = f
		out = f
	}
	if out == nil {
		out = io.Discard
	}

	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: out,
		Prefix: "gesture",
	})
	return nil
}

func (app *Application) initTextArea() error {
	buf := buffer.NewBuffer(buffer.WithProperty(buffer.PropNoWordSep, app.config.Words.NoWordSep))

	if app.opts.File != "" {
		f, err := os.Open(app.opts.File)
		switch {
		case errors.Is(err, os.ErrNotExist):
			app.setStatus("new file %s", filepath.Base(app.opts.File))
		case err != nil:
			return &OperationError{Op: "open", Target: app.opts.File, Err: err}
		default:
			err = buf.Load(f)
			_ = f.Close()
			if err != nil {
				return &OperationError{Op: "read", Target: app.opts.File, Err: err}
			}
		}
	}

	app.textArea = textarea.New(buf,
		textarea.WithFeatures(app.config.Features()),
		textarea.WithTabSize(app.config.View.TabSize),
		textarea.WithWrapColumn(app.config.View.WrapColumn),
		textarea.WithElectricScroll(app.config.Caret.ElectricScroll),
		textarea.WithLogger(app.logger.WithComponent("textarea")),
	)
	mouse.SetFocused(app.textArea)
	return nil
}

func (app *Application) initHooks() error {
	app.busHooks = textarea.NewBusHooks(app.bus, app.logger.WithComponent("hooks"))

	script := app.config.Plugin.Script
	if app.opts.Script != "" {
		script = app.opts.Script
	}
	if script != "" {
		h, err := lua.LoadHooks(config.ExpandPath(script), app.logger.WithComponent("lua"))
		if err != nil {
			return &OperationError{Op: "load script", Target: script, Err: err}
		}
		app.luaHooks = h
		app.logger.Info("loaded hook script %s", script)
	}

	app.interp = app.newInterpreter()
	return nil
}

// newInterpreter builds an interpreter for the current configuration.
// The bus hooks run first so a script sees, and may override, the text
// area's preference.
func (app *Application) newInterpreter() *mouse.Interpreter {
	hooks := mouse.MultiHooks{app.busHooks}
	if app.luaHooks != nil {
		hooks = append(hooks, app.luaHooks)
	}
	return mouse.NewInterpreter(app.textArea,
		mouse.WithPlatform(app.config.Platform()),
		mouse.WithHooks(hooks),
	)
}

func (app *Application) subscribe() error {
	if _, err := app.bus.Subscribe(textarea.TopicPopupTrigger, event.Typed(
		func(_ context.Context, e event.Event[textarea.PopupTrigger]) error {
			app.openPopup(e.Payload.Position.X, e.Payload.Position.Y)
			return nil
		})); err != nil {
		return err
	}

	_, err := app.bus.Subscribe(textarea.TopicPositionChanging, event.Typed(
		func(_ context.Context, e event.Event[textarea.PositionChanging]) error {
			app.logger.Debug("caret leaving line %d", e.Payload.CaretLine+1)
			return nil
		}))
	return err
}

// SetBackend sets the terminal the application draws to.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// TextArea returns the edited text area.
func (app *Application) TextArea() *textarea.TextArea {
	return app.textArea
}

// Interpreter returns the gesture interpreter.
func (app *Application) Interpreter() *mouse.Interpreter {
	return app.interp
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the gesture counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Status returns the status line message.
func (app *Application) Status() string {
	return app.status
}

func (app *Application) setStatus(format string, args ...any) {
	app.status = fmt.Sprintf(format, args...)
}

// Shutdown releases the watcher, the script and the log file. It does
// not touch the backend; Run restores the terminal on exit.
func (app *Application) Shutdown() {
	var errs []error
	if app.watcher != nil {
		errs = append(errs, app.watcher.Close())
		app.watcher = nil
	}
	if app.luaHooks != nil {
		errs = append(errs, app.luaHooks.Close())
		app.luaHooks = nil
	}
	if err := errors.Join(errs...); err != nil {
		app.logger.Warn("shutdown: %v", err)
	}
	app.logger.Info("session: %s", app.metrics.Snapshot().Summary())
	app.closeLog()
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}
