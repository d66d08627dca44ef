// Package config loads the YAML settings shared by hooktui programs and
// converts them to app options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	tui "github.com/grindlemire/hooktui"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/hooktui"
	configFileName = "config.yaml"
)

// Config is the on-disk configuration.
type Config struct {
	Fullscreen  bool     `yaml:"fullscreen"`
	Mouse       bool     `yaml:"mouse"`
	NoTrim      bool     `yaml:"no_trim"`
	Tick        Duration `yaml:"tick"`
	PollTimeout Duration `yaml:"poll_timeout"`
	// ExitKey is "ctrl+<letter>", "esc", or "none". Empty keeps Ctrl+C.
	ExitKey  string `yaml:"exit_key"`
	DebugLog string `yaml:"debug_log"`
	Theme    Theme  `yaml:"theme"`
}

// Theme holds the colors demo views draw with, in any form tui.ParseColor
// accepts.
type Theme struct {
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Border string `yaml:"border"`
}

// Duration is a time.Duration written as "250ms" or "1s" in YAML.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", node.Line, err)
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ExitKey: "ctrl+c",
		Theme: Theme{
			Accent: "cyan",
			Muted:  "gray",
			Border: "blue",
		},
	}
}

// Load layers the user file (~/.config/hooktui/config.yaml) and then path,
// if non-empty, over the defaults. A missing user file is not an error; a
// missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	userPath, err := UserConfigPath()
	if err == nil {
		if _, statErr := os.Stat(userPath); statErr == nil {
			user, err := loadFile(userPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
			}
			cfg = merge(cfg, user)
		}
	}

	if path != "" {
		explicit, err := loadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		cfg = merge(cfg, explicit)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

// overlay is what a file may set; nil pointers mean "not present".
type overlay struct {
	Fullscreen  *bool     `yaml:"fullscreen"`
	Mouse       *bool     `yaml:"mouse"`
	NoTrim      *bool     `yaml:"no_trim"`
	Tick        *Duration `yaml:"tick"`
	PollTimeout *Duration `yaml:"poll_timeout"`
	ExitKey     *string   `yaml:"exit_key"`
	DebugLog    *string   `yaml:"debug_log"`
	Theme       Theme     `yaml:"theme"`
}

func loadFile(path string) (overlay, error) {
	var o overlay
	data, err := os.ReadFile(path)
	if err != nil {
		return overlay{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return overlay{}, err
	}
	return o, nil
}

// merge applies the fields o sets over base.
func merge(base Config, o overlay) Config {
	out := base
	if o.Fullscreen != nil {
		out.Fullscreen = *o.Fullscreen
	}
	if o.Mouse != nil {
		out.Mouse = *o.Mouse
	}
	if o.NoTrim != nil {
		out.NoTrim = *o.NoTrim
	}
	if o.Tick != nil {
		out.Tick = *o.Tick
	}
	if o.PollTimeout != nil {
		out.PollTimeout = *o.PollTimeout
	}
	if o.ExitKey != nil {
		out.ExitKey = *o.ExitKey
	}
	if o.DebugLog != nil {
		out.DebugLog = *o.DebugLog
	}
	if o.Theme.Accent != "" {
		out.Theme.Accent = o.Theme.Accent
	}
	if o.Theme.Muted != "" {
		out.Theme.Muted = o.Theme.Muted
	}
	if o.Theme.Border != "" {
		out.Theme.Border = o.Theme.Border
	}
	return out
}

// Validate checks values that YAML decoding alone cannot.
func (c Config) Validate() error {
	if c.Tick < 0 {
		return fmt.Errorf("tick must not be negative, got %v", time.Duration(c.Tick))
	}
	if c.PollTimeout < 0 {
		return fmt.Errorf("poll_timeout must not be negative, got %v", time.Duration(c.PollTimeout))
	}
	if _, _, err := ParseExitKey(c.ExitKey); err != nil {
		return err
	}
	for name, s := range map[string]string{"accent": c.Theme.Accent, "muted": c.Theme.Muted, "border": c.Theme.Border} {
		if _, err := tui.ParseColor(s); err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
	}
	return nil
}

// ParseExitKey turns an exit_key value into a pattern. ok is false for
// "none", meaning no exit key.
func ParseExitKey(s string) (p tui.KeyPattern, ok bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "ctrl+c":
		return tui.KeyPattern{Rune: 'c', Mod: tui.ModCtrl}, true, nil
	case "none":
		return tui.KeyPattern{}, false, nil
	case "esc", "escape":
		return tui.KeyPattern{Key: tui.KeyEscape}, true, nil
	}
	if rest, found := strings.CutPrefix(s, "ctrl+"); found && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		if r >= 'a' && r <= 'z' {
			return tui.KeyPattern{Rune: r, Mod: tui.ModCtrl}, true, nil
		}
	}
	return tui.KeyPattern{}, false, fmt.Errorf("exit_key %q: want ctrl+<letter>, esc, or none", s)
}

// Options converts the config to app options.
func (c Config) Options() []tui.AppOption {
	var opts []tui.AppOption
	if c.Fullscreen {
		opts = append(opts, tui.WithFullscreen())
	}
	if c.Mouse {
		opts = append(opts, tui.WithMouse())
	}
	if c.NoTrim {
		opts = append(opts, tui.WithNoTrim())
	}
	if c.Tick > 0 {
		opts = append(opts, tui.WithTick(time.Duration(c.Tick)))
	}
	if c.PollTimeout > 0 {
		opts = append(opts, tui.WithPollTimeout(time.Duration(c.PollTimeout)))
	}
	if p, ok, err := ParseExitKey(c.ExitKey); err == nil {
		if ok {
			opts = append(opts, tui.WithExitKey(p))
		} else {
			opts = append(opts, tui.WithoutExitKey())
		}
	}
	return opts
}

// Color resolves a theme color, falling back to the terminal default.
func Color(s string) tui.Color {
	c, err := tui.ParseColor(s)
	if err != nil {
		return tui.DefaultColor()
	}
	return c
}
