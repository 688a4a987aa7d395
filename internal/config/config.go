package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	Debug  bool  `toml:"debug"`
	Mouse  *bool `toml:"mouse"`
	Keypad *bool `toml:"keypad"`
}

// MouseEnabled reports whether mouse reporting is on (default true).
func (o EditorOptions) MouseEnabled() bool {
	return o.Mouse == nil || *o.Mouse
}

// KeypadEnabled reports whether function keys are decoded (default true).
func (o EditorOptions) KeypadEnabled() bool {
	return o.Keypad == nil || *o.Keypad
}

type Theme struct {
	Foreground      string `toml:"foreground"`
	Background      string `toml:"background"`
	DebugForeground string `toml:"debug-foreground"`
	DebugBackground string `toml:"debug-background"`
}

// Keymap maps key names ("ctrl+q", "left", "x") to action names ("quit").
type Keymap map[string]string

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	Keymap Keymap        `toml:"keymap"`
}

func Default() Config {
	return Config{
		Theme: Theme{
			Foreground:      "#B3B1AD",
			Background:      "#0A0E14",
			DebugForeground: "#0A0E14",
			DebugBackground: "#E6B450",
		},
		Keymap: Keymap{},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.Debug {
		cfg.Editor.Debug = true
	}
	if userCfg.Editor.Mouse != nil {
		cfg.Editor.Mouse = userCfg.Editor.Mouse
	}
	if userCfg.Editor.Keypad != nil {
		cfg.Editor.Keypad = userCfg.Editor.Keypad
	}
	if userCfg.Theme.Foreground != "" {
		cfg.Theme.Foreground = userCfg.Theme.Foreground
	}
	if userCfg.Theme.Background != "" {
		cfg.Theme.Background = userCfg.Theme.Background
	}
	if userCfg.Theme.DebugForeground != "" {
		cfg.Theme.DebugForeground = userCfg.Theme.DebugForeground
	}
	if userCfg.Theme.DebugBackground != "" {
		cfg.Theme.DebugBackground = userCfg.Theme.DebugBackground
	}
	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("PADEDIT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "padedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "padedit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
