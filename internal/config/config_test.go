package config

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/gesture/internal/input/mouse"
	"github.com/dshills/gesture/internal/textarea"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultFeaturesMatchTextArea(t *testing.T) {
	if diff := cmp.Diff(textarea.DefaultFeatures(), Default().Features()); diff != "" {
		t.Errorf("Features() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"platform", func(c *Config) { c.Mouse.Platform = "amiga" }, "mouse.platform"},
		{"double click", func(c *Config) { c.Mouse.DoubleClickMs = 0 }, "mouse.doubleClickMs"},
		{"click distance", func(c *Config) { c.Mouse.ClickDistance = -1 }, "mouse.clickDistance"},
		{"electric scroll", func(c *Config) { c.Caret.ElectricScroll = -2 }, "caret.electricScroll"},
		{"tab size zero", func(c *Config) { c.View.TabSize = 0 }, "view.tabSize"},
		{"tab size large", func(c *Config) { c.View.TabSize = 65 }, "view.tabSize"},
		{"wrap column", func(c *Config) { c.View.WrapColumn = -1 }, "view.wrapColumn"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestValidateJoinsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.View.TabSize = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate() = %T, want a joined error", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("got %d errors, want 2", n)
	}
}

func TestValidLevelIgnoresCase(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "Warn", "warning", "error"} {
		if !validLevel(level) {
			t.Errorf("validLevel(%q) = false", level)
		}
	}
}

func TestFeatures(t *testing.T) {
	cfg := Default()
	cfg.Mouse.MultipleSelection = true
	cfg.Mouse.QuickCopy = false
	cfg.Caret.Block = true
	cfg.Words.JoinNonWordChars = true

	got := cfg.Features()
	want := textarea.Features{
		DragAndDrop:                 true,
		MultipleSelection:           true,
		CtrlForRectangularSelection: true,
		BlockCaret:                  true,
		JoinNonWordChars:            true,
		RightClickPopup:             true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Features() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlatform(t *testing.T) {
	cfg := Default()

	cfg.Mouse.Platform = "mac"
	if got := cfg.Platform(); got != mouse.PlatformMac {
		t.Errorf("Platform() = %v, want mac", got)
	}

	cfg.Mouse.Platform = "linux"
	if got := cfg.Platform(); got != mouse.PlatformOther {
		t.Errorf("Platform() = %v, want other", got)
	}

	cfg.Mouse.Platform = "amiga"
	if got := cfg.Platform(); got != mouse.DetectPlatform() {
		t.Errorf("Platform() = %v, want detected platform", got)
	}
}

func TestDoubleClickInterval(t *testing.T) {
	cfg := Default()
	cfg.Mouse.DoubleClickMs = 250
	if got := cfg.DoubleClickInterval(); got != 250*time.Millisecond {
		t.Errorf("DoubleClickInterval() = %v", got)
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cp := cfg.Clone()
	cp.View.TabSize = 2
	if cfg.View.TabSize != 8 {
		t.Error("Clone should not share sections")
	}
}
