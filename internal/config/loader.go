package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DefaultEnvPrefix prefixes the environment variables that override
// settings.
const DefaultEnvPrefix = "GESTURE_"

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gesture", "config.toml")
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Loader reads settings from a file and the environment.
type Loader struct {
	envPrefix string
	environ   func() []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvPrefix sets the environment variable prefix. Empty disables
// environment overrides.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithEnviron sets the source of environment variables, in os.Environ
// form.
func WithEnviron(environ func() []string) LoaderOption {
	return func(l *Loader) {
		if environ != nil {
			l.environ = environ
		}
	}
}

// NewLoader creates a loader reading the process environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		envPrefix: DefaultEnvPrefix,
		environ:   os.Environ,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the settings with the default loader.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load returns the defaults overlaid by the file at path and then by the
// environment, validated. A missing file is not an error; an empty path
// skips the file.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		path = ExpandPath(path)
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			format, err := FormatOf(path)
			if err != nil {
				return nil, err
			}
			if err := Decode(data, format, path, cfg); err != nil {
				return nil, err
			}
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays the settings in data onto cfg. Keys that name no
// setting are errors. path labels parse errors.
func Decode(data []byte, format Format, path string, cfg *Config) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return tomlParseError(path, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to io.EOF
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return yamlParseError(path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

// Encode writes cfg in format.
func Encode(w io.Writer, cfg *Config, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func tomlParseError(path string, err error) error {
	var missing *toml.StrictMissingError
	if errors.As(err, &missing) && len(missing.Errors) > 0 {
		first := missing.Errors[0]
		row, col := first.Position()
		return &ParseError{
			Path:    path,
			Line:    row,
			Column:  col,
			Message: "unknown key " + strings.Join(first.Key(), "."),
			Err:     err,
		}
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return &ParseError{
			Path:    path,
			Line:    row,
			Column:  col,
			Message: decodeErr.Error(),
			Err:     err,
		}
	}

	return &ParseError{Path: path, Message: err.Error(), Err: err}
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func yamlParseError(path string, err error) error {
	msg := strings.TrimPrefix(err.Error(), "yaml: ")

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}

	pe := &ParseError{Path: path, Message: msg, Err: err}
	if m := yamlLine.FindStringSubmatch(msg); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}
