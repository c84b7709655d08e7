package mouse

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dshills/gesture/internal/input/key"
)

// Platform selects the modifier conventions used to classify clicks.
type Platform uint8

const (
	// PlatformOther covers Linux, Windows and everything that is not macOS.
	PlatformOther Platform = iota
	// PlatformMac uses macOS conventions: Command is the control key and
	// one-button mice emulate the others with Option and Control.
	PlatformMac
)

// String returns a string representation of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformMac:
		return "mac"
	default:
		return "other"
	}
}

// DetectPlatform returns the platform of the running process.
func DetectPlatform() Platform {
	if runtime.GOOS == "darwin" {
		return PlatformMac
	}
	return PlatformOther
}

// ParsePlatform parses a platform name. "auto" and "" detect the running
// platform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return DetectPlatform(), nil
	case "mac", "macos", "darwin":
		return PlatformMac, nil
	case "other", "linux", "windows", "unix":
		return PlatformOther, nil
	default:
		return PlatformOther, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}

// ControlDown reports whether the platform's control key is held: Meta
// (Command) on macOS, Ctrl elsewhere.
func (p Platform) ControlDown(m key.Modifier) bool {
	if p == PlatformMac {
		return m.HasMeta()
	}
	return m.HasCtrl()
}
