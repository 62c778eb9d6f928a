package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"emoji-solitaire/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLayoutEmptyPathIsDefault(t *testing.T) {
	l, err := LoadLayout("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout(), l)
	assert.NoError(t, l.Validate())
}

func TestParseLayoutOverridesSomeFields(t *testing.T) {
	src := []byte(`
card {
  width = 8
}
tableau {
  y                = 9
  face_up_y_offset = 3
}
foundation_start_x = 40
`)
	l, err := ParseLayout(src, "test.hcl")
	require.NoError(t, err)

	want := DefaultLayout()
	want.CardWidth = 8
	want.TableauStartY = 9
	want.FaceUpYOffset = 3
	want.FoundationStartX = 40
	assert.Equal(t, want, l)
}

func TestParseLayoutRejectsBadValues(t *testing.T) {
	_, err := ParseLayout([]byte("card {\n  width = 1\n}\n"), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card_width")
}

func TestParseLayoutRejectsUnknownAttribute(t *testing.T) {
	_, err := ParseLayout([]byte("colour = \"red\"\n"), "bad.hcl")
	assert.Error(t, err)
}

func TestLoadLayoutFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.hcl")
	require.NoError(t, os.WriteFile(path, []byte("stock {\n  x = 3\n  y = 2\n}\n"), 0o600))

	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, l.StockX)
	assert.Equal(t, 2.0, l.StockY)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestStackOrigin(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, component.Position{X: 1, Y: 1}, l.StackOrigin(component.Stock))
	assert.Equal(t, component.Position{X: 9, Y: 1}, l.StackOrigin(component.Waste))
	assert.Equal(t, component.Position{X: 41, Y: 1}, l.StackOrigin(component.Foundation(2)))
	assert.Equal(t, component.Position{X: 25, Y: 6}, l.StackOrigin(component.Tableau(3)))
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Setenv("SOLITAIRE_PORT", "2300")
	t.Setenv("SOLITAIRE_LOG_LEVEL", "debug")
	t.Setenv("SOLITAIRE_SEED", "42")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, 2300, cfg.Port)
	assert.Equal(t, "server_host_key", cfg.HostKey)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadServerBadPort(t *testing.T) {
	t.Setenv("SOLITAIRE_PORT", "not-a-number")
	_, err := LoadServer()
	assert.Error(t, err)
}
