package config

import (
	"errors"
	"strings"
	"time"

	"github.com/dshills/gesture/internal/input/mouse"
	"github.com/dshills/gesture/internal/textarea"
)

// Config holds every gesture setting.
type Config struct {
	Mouse  MouseConfig  `toml:"mouse" yaml:"mouse"`
	Caret  CaretConfig  `toml:"caret" yaml:"caret"`
	Words  WordsConfig  `toml:"words" yaml:"words"`
	View   ViewConfig   `toml:"view" yaml:"view"`
	Plugin PluginConfig `toml:"plugin" yaml:"plugin"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// MouseConfig controls how presses are classified and interpreted.
type MouseConfig struct {
	// Platform is "auto", "mac" or "other".
	Platform string `toml:"platform" yaml:"platform"`

	QuickCopy                   bool `toml:"quickCopy" yaml:"quickCopy"`
	DragAndDrop                 bool `toml:"dragAndDrop" yaml:"dragAndDrop"`
	MultipleSelection           bool `toml:"multipleSelection" yaml:"multipleSelection"`
	RectangularSelection        bool `toml:"rectangularSelection" yaml:"rectangularSelection"`
	CtrlForRectangularSelection bool `toml:"ctrlForRectangularSelection" yaml:"ctrlForRectangularSelection"`
	RightClickPopup             bool `toml:"rightClickPopup" yaml:"rightClickPopup"`

	// DoubleClickMs is the longest gap between presses of one multi-click.
	DoubleClickMs int `toml:"doubleClickMs" yaml:"doubleClickMs"`

	// ClickDistance is how far, in cells, a multi-click may wander.
	ClickDistance int `toml:"clickDistance" yaml:"clickDistance"`
}

// CaretConfig controls the caret.
type CaretConfig struct {
	Block          bool `toml:"block" yaml:"block"`
	Overwrite      bool `toml:"overwrite" yaml:"overwrite"`
	ElectricScroll int  `toml:"electricScroll" yaml:"electricScroll"`
}

// WordsConfig controls double-click word boundaries.
type WordsConfig struct {
	// NoWordSep lists non-alphanumeric characters that belong to words.
	NoWordSep        string `toml:"noWordSep" yaml:"noWordSep"`
	JoinNonWordChars bool   `toml:"joinNonWordChars" yaml:"joinNonWordChars"`
}

// ViewConfig controls layout.
type ViewConfig struct {
	TabSize int `toml:"tabSize" yaml:"tabSize"`

	// WrapColumn soft-wraps lines at this many cells. Zero disables
	// wrapping.
	WrapColumn int `toml:"wrapColumn" yaml:"wrapColumn"`
}

// PluginConfig locates the Lua hook script.
type PluginConfig struct {
	// Script is the path of a Lua file. Empty disables scripting.
	Script string `toml:"script" yaml:"script"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`

	// File receives the log. Empty discards it, since the terminal is
	// owned by the screen.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	f := textarea.DefaultFeatures()
	return &Config{
		Mouse: MouseConfig{
			Platform:                    "auto",
			QuickCopy:                   f.QuickCopy,
			DragAndDrop:                 f.DragAndDrop,
			MultipleSelection:           f.MultipleSelection,
			RectangularSelection:        f.RectangularSelection,
			CtrlForRectangularSelection: f.CtrlForRectangularSelection,
			RightClickPopup:             f.RightClickPopup,
			DoubleClickMs:               400,
			ClickDistance:               1,
		},
		Caret: CaretConfig{
			ElectricScroll: 3,
		},
		Words: WordsConfig{
			NoWordSep: "_",
		},
		View: ViewConfig{
			TabSize: 8,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every setting and returns all violations joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(path string, value any, msg string) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: msg})
	}

	if _, err := mouse.ParsePlatform(c.Mouse.Platform); err != nil {
		bad("mouse.platform", c.Mouse.Platform, "must be auto, mac or other")
	}
	if c.Mouse.DoubleClickMs <= 0 {
		bad("mouse.doubleClickMs", c.Mouse.DoubleClickMs, "must be positive")
	}
	if c.Mouse.ClickDistance < 0 {
		bad("mouse.clickDistance", c.Mouse.ClickDistance, "must not be negative")
	}
	if c.Caret.ElectricScroll < 0 {
		bad("caret.electricScroll", c.Caret.ElectricScroll, "must not be negative")
	}
	if c.View.TabSize < 1 || c.View.TabSize > 64 {
		bad("view.tabSize", c.View.TabSize, "must be between 1 and 64")
	}
	if c.View.WrapColumn < 0 {
		bad("view.wrapColumn", c.View.WrapColumn, "must not be negative")
	}
	if !validLevel(c.Log.Level) {
		bad("log.level", c.Log.Level, "must be debug, info, warn or error")
	}

	return errors.Join(errs...)
}

func validLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Features returns the text area preferences the settings describe.
func (c *Config) Features() textarea.Features {
	return textarea.Features{
		QuickCopy:                   c.Mouse.QuickCopy,
		DragAndDrop:                 c.Mouse.DragAndDrop,
		MultipleSelection:           c.Mouse.MultipleSelection,
		RectangularSelection:        c.Mouse.RectangularSelection,
		CtrlForRectangularSelection: c.Mouse.CtrlForRectangularSelection,
		BlockCaret:                  c.Caret.Block,
		Overwrite:                   c.Caret.Overwrite,
		JoinNonWordChars:            c.Words.JoinNonWordChars,
		RightClickPopup:             c.Mouse.RightClickPopup,
	}
}

// Platform returns the configured platform. An invalid name detects the
// running platform; Validate reports it.
func (c *Config) Platform() mouse.Platform {
	p, err := mouse.ParsePlatform(c.Mouse.Platform)
	if err != nil {
		return mouse.DetectPlatform()
	}
	return p
}

// DoubleClickInterval returns the multi-click gap as a duration.
func (c *Config) DoubleClickInterval() time.Duration {
	return time.Duration(c.Mouse.DoubleClickMs) * time.Millisecond
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
