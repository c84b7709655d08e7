// Package config loads the gesture settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. Environment variables with the GESTURE_ prefix
//
// Environment variable names map onto setting paths by section and
// camel-cased key, so GESTURE_MOUSE_QUICK_COPY sets mouse.quickCopy.
//
// # Basic Usage
//
//	cfg, err := config.Load("~/.config/gesture/config.toml")
//	if err != nil {
//	    return err
//	}
//	features := cfg.Features()
//
// # Live Reload
//
// Watcher reloads the file when it changes and hands the result to a
// callback:
//
//	w, err := config.NewWatcher(path, func(cfg *config.Config, err error) {
//	    ...
//	})
//	defer w.Close()
package config
