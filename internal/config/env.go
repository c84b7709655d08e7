package config

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// applyEnv overlays prefixed environment variables onto cfg. Each value
// is parsed as the type of the setting it names.
func (l *Loader) applyEnv(cfg *Config) error {
	if l.envPrefix == "" {
		return nil
	}

	kinds, err := settingKinds()
	if err != nil {
		return err
	}

	overrides := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.envPrefix) {
			continue
		}

		section, key := l.envToPath(name)
		fields, ok := kinds[section].(map[string]any)
		if !ok || key == "" {
			// not a setting, e.g. GESTURE_CONFIG
			continue
		}
		like, ok := fields[key]
		if !ok {
			return &ParseError{Path: name, Message: fmt.Sprintf("unknown setting %s.%s", section, key)}
		}

		v, err := parseValue(value, like)
		if err != nil {
			return &ParseError{Path: name, Message: err.Error(), Err: err}
		}
		setByPath(overrides, section+"."+key, v)
	}

	if len(overrides) == 0 {
		return nil
	}

	data, err := toml.Marshal(overrides)
	if err != nil {
		return err
	}
	return Decode(data, FormatTOML, "environment", cfg)
}

// EnvNames returns the environment variable for every setting, sorted.
func (l *Loader) EnvNames() []string {
	kinds, err := settingKinds()
	if err != nil {
		return nil
	}

	var names []string
	for section, fields := range kinds {
		m, ok := fields.(map[string]any)
		if !ok {
			continue
		}
		for key := range m {
			names = append(names, l.envPrefix+strings.ToUpper(section)+"_"+camelToSnake(key))
		}
	}
	sort.Strings(names)
	return names
}

// settingKinds returns the defaults as a section -> key -> value map.
// The values carry the type each setting decodes as.
func settingKinds() (map[string]any, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return nil, err
	}
	kinds := make(map[string]any)
	if err := toml.Unmarshal(buf.Bytes(), &kinds); err != nil {
		return nil, err
	}
	return kinds, nil
}

// envToPath converts GESTURE_MOUSE_QUICK_COPY to ("mouse", "quickCopy").
func (l *Loader) envToPath(env string) (string, string) {
	name := strings.TrimPrefix(env, l.envPrefix)
	parts := strings.Split(name, "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section, ""
	}

	key := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			key += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section, key
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// parseValue parses s as the type of like.
func parseValue(s string, like any) (any, error) {
	switch like.(type) {
	case bool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0", "":
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", s)
	case int64:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return i, nil
	default:
		return s, nil
	}
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
