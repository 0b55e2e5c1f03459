package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/ini.v1"

	"github.com/otov4its/pysnake/history"
	"github.com/otov4its/pysnake/rules"
	"github.com/otov4its/pysnake/zoom"
)

// ConfigName is the file looked up next to the executable.
const ConfigName = "snake.ini"

// ConfigEnv overrides the config file location.
const ConfigEnv = "SNAKE_CONFIG"

// '#' and ';' are valid glyphs, so they never start a comment mid-line.
var iniOptions = ini.LoadOptions{IgnoreInlineComment: true}

type GameConfig struct {
	InitDelay float64 `ini:"InitDelay"` // seconds
	MinDelay  float64 `ini:"MinDelay"`  // seconds
	Growth    int     `ini:"Growth"`
	Rewinds   int     `ini:"Rewinds"`
	Seed      uint64  `ini:"Seed"` // 0 seeds from the clock
}

type ZoomConfig struct {
	Factor   float64 `ini:"Factor"`
	AutoBase float64 `ini:"AutoBase"`
}

// KeysConfig lists the characters bound to each action.
type KeysConfig struct {
	Quit     string `ini:"Quit"`
	NewGame  string `ini:"NewGame"`
	Pause    string `ini:"Pause"`
	ZoomIn   string `ini:"ZoomIn"`
	ZoomOut  string `ini:"ZoomOut"`
	AutoZoom string `ini:"AutoZoom"`
	Rewind   string `ini:"Rewind"`
}

type GlyphsConfig struct {
	Snake  string `ini:"Snake"`
	Food   string `ini:"Food"`
	Empty  string `ini:"Empty"`
	Border string `ini:"Border"`
}

type LogConfig struct {
	File string `ini:"File"`
}

// Config is the contents of snake.ini.
type Config struct {
	Game   GameConfig   `ini:"Game"`
	Zoom   ZoomConfig   `ini:"Zoom"`
	Keys   KeysConfig   `ini:"Keys"`
	Glyphs GlyphsConfig `ini:"Glyphs"`
	Log    LogConfig    `ini:"Log"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			InitDelay: rules.DefaultInitDelay.Seconds(),
			MinDelay:  rules.DefaultMinDelay.Seconds(),
			Growth:    rules.DefaultGrowth,
			Rewinds:   history.DefaultDepth,
		},
		Zoom: ZoomConfig{
			Factor:   zoom.DefaultFactor,
			AutoBase: zoom.DefaultBase,
		},
		Keys: KeysConfig{
			Quit:     "qQ",
			NewGame:  "nN",
			Pause:    "pP",
			ZoomIn:   "+",
			ZoomOut:  "-",
			AutoZoom: "aA",
			Rewind:   "rR",
		},
		Glyphs: GlyphsConfig{
			Snake:  "O",
			Food:   "@",
			Empty:  " ",
			Border: "#",
		},
	}
}

// ConfigPath returns $SNAKE_CONFIG if set, otherwise snake.ini in the
// executable's directory.
func ConfigPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ConfigName
	}
	return filepath.Join(filepath.Dir(exe), ConfigName)
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	f, err := ini.LoadSources(iniOptions, path)
	if err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if err := f.MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	// MapTo skips empty values, which would silently keep the default keys.
	for _, k := range f.Section("Keys").Keys() {
		if strings.TrimSpace(k.String()) == "" {
			return cfg, fmt.Errorf("%s: Keys.%s has no key bound", path, k.Name())
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and key bindings.
func (c Config) Validate() error {
	switch {
	case c.Game.InitDelay <= 0:
		return fmt.Errorf("Game.InitDelay must be positive, got %v", c.Game.InitDelay)
	case c.Game.MinDelay <= 0:
		return fmt.Errorf("Game.MinDelay must be positive, got %v", c.Game.MinDelay)
	case c.Game.MinDelay > c.Game.InitDelay:
		return fmt.Errorf("Game.MinDelay %v exceeds Game.InitDelay %v", c.Game.MinDelay, c.Game.InitDelay)
	case c.Game.Growth < 0:
		return fmt.Errorf("Game.Growth must not be negative, got %d", c.Game.Growth)
	case c.Game.Rewinds < 1:
		return fmt.Errorf("Game.Rewinds must be at least 1, got %d", c.Game.Rewinds)
	case c.Zoom.Factor <= 0:
		return fmt.Errorf("Zoom.Factor must be positive, got %v", c.Zoom.Factor)
	case c.Zoom.AutoBase <= 0:
		return fmt.Errorf("Zoom.AutoBase must be positive, got %v", c.Zoom.AutoBase)
	}
	for name, g := range map[string]string{
		"Snake":  c.Glyphs.Snake,
		"Food":   c.Glyphs.Food,
		"Empty":  c.Glyphs.Empty,
		"Border": c.Glyphs.Border,
	} {
		if utf8.RuneCountInString(g) > 1 {
			return fmt.Errorf("Glyphs.%s must be a single character, got %q", name, g)
		}
	}
	_, err := NewBindings(c.Keys)
	return err
}

func (c Config) initDelay() time.Duration { return seconds(c.Game.InitDelay) }
func (c Config) minDelay() time.Duration  { return seconds(c.Game.MinDelay) }

func seconds(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }

// glyph returns the first character of s, a blank for an empty string.
func glyph(s string) rune {
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
