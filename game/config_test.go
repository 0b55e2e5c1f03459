package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[Game]
InitDelay = 0.25
Growth = 5
Seed = 42

[Keys]
Quit = x

[Glyphs]
Snake = *
Food = #
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 0.25, cfg.Game.InitDelay)
	require.Equal(t, 250*time.Millisecond, cfg.initDelay())
	require.Equal(t, 5, cfg.Game.Growth)
	require.Equal(t, uint64(42), cfg.Game.Seed)
	require.Equal(t, "x", cfg.Keys.Quit)
	require.Equal(t, '*', glyph(cfg.Glyphs.Snake))
	require.Equal(t, '#', glyph(cfg.Glyphs.Food))

	// Untouched keys and sections keep their defaults.
	def := DefaultConfig()
	require.Equal(t, def.Game.MinDelay, cfg.Game.MinDelay)
	require.Equal(t, def.Keys.Pause, cfg.Keys.Pause)
	require.Equal(t, def.Zoom, cfg.Zoom)
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"negative delay": "[Game]\nInitDelay = -1\n",
		"min over init":  "[Game]\nInitDelay = 0.1\nMinDelay = 0.2\n",
		"no rewinds":     "[Game]\nRewinds = 0\n",
		"bad zoom":       "[Zoom]\nFactor = 0\n",
		"long glyph":     "[Glyphs]\nFood = ab\n",
		"duplicate key":  "[Keys]\nPause = n\n",
		"unbound action": "[Keys]\nRewind =\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigEmptyKeyBinding(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[Keys]\nQuit = x\nRewind =\n"))
	require.ErrorContains(t, err, "Keys.Rewind has no key bound")

	_, err = LoadConfig(writeConfig(t, "[Keys]\nPause =   \n"))
	require.ErrorContains(t, err, "Keys.Pause")
}

func TestGlyph(t *testing.T) {
	require.Equal(t, ' ', glyph(""))
	require.Equal(t, '@', glyph("@"))
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv(ConfigEnv, "/tmp/other.ini")
	require.Equal(t, "/tmp/other.ini", ConfigPath())
}

func TestBindings(t *testing.T) {
	b, err := NewBindings(DefaultConfig().Keys)
	require.NoError(t, err)

	require.Equal(t, ActionQuit, b.Action(RuneKey('q')))
	require.Equal(t, ActionQuit, b.Action(RuneKey('Q')))
	require.Equal(t, ActionQuit, b.Action(Key{Code: KeyEscape}))
	require.Equal(t, ActionQuit, b.Action(Key{Code: KeyCtrlC}))
	require.Equal(t, ActionZoomIn, b.Action(RuneKey('+')))
	require.Equal(t, ActionUp, b.Action(Key{Code: KeyUp}))
	require.Equal(t, ActionResize, b.Action(Key{Code: KeyResize}))
	require.Equal(t, ActionNone, b.Action(RuneKey('z')))
	require.Equal(t, ActionNone, b.Action(Key{Code: KeyOther}))
	require.Equal(t, 'r', b.Rune(ActionRewind))
}
