package config_test

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scenekit/config"
)

func TestDefault(t *testing.T) {
	s := config.Default()

	assert.Equal(t, float32(20), s.ViewportWidth)
	assert.Equal(t, float32(12), s.ViewportHeight)
	assert.Equal(t, float32(32), s.PixelsPerUnit)
	assert.Equal(t, float32(67), s.CameraFieldOfView)
	assert.Equal(t, float32(1), s.CameraNear)
	assert.Equal(t, float32(300), s.CameraFar)
	assert.False(t, s.DebugRender)
	assert.NoError(t, s.Validate())
}

func TestParse(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		s, err := config.Parse([]byte("viewportWidth: 40\ndebugRender: true\n"))
		require.NoError(t, err)

		assert.Equal(t, float32(40), s.ViewportWidth)
		assert.Equal(t, float32(12), s.ViewportHeight)
		assert.True(t, s.DebugRender)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Parse([]byte("viewportWidth: [oops"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Parse([]byte("pixelsPerUnit: 0\nlogLevel: loud\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pixelsPerUnit")
		assert.Contains(t, err.Error(), "log level")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	want := config.Default()
	want.BackgroundColor = "#ff000080"
	want.LogLevel = "debug"
	data, err := want.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, color.RGBA{R: 255, A: 128}, got.Background())
	assert.Equal(t, slog.LevelDebug, got.Level())

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read settings file")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#000000", want: color.RGBA{A: 255}},
		{in: "#ff8000", want: color.RGBA{R: 255, G: 128, A: 255}},
		{in: "0a0b0c0d", want: color.RGBA{R: 10, G: 11, B: 12, A: 13}},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := config.ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: "scenekit_test_store"})
	require.NoError(t, err)

	st := config.NewStore(manager, nil)
	assert.True(t, st.Persistent())
	assert.Equal(t, config.Default(), st.Settings())

	s := st.Settings()
	s.ViewportWidth = 64
	s.WindowTitle = "persisted"
	require.NoError(t, st.Update(s))
	require.NoError(t, st.Save())

	reopened := config.NewStore(manager, nil)
	assert.Equal(t, float32(64), reopened.Settings().ViewportWidth)
	assert.Equal(t, "persisted", reopened.Settings().WindowTitle)

	bad := s
	bad.CameraFar = 0
	assert.Error(t, st.Update(bad))
	assert.Equal(t, float32(64), st.Settings().ViewportWidth)
}

func TestStoreWithoutManager(t *testing.T) {
	st := config.NewStore(nil, nil)

	assert.False(t, st.Persistent())
	assert.NoError(t, st.Save())
	assert.NoError(t, st.Load())
	assert.Equal(t, config.Default(), st.Settings())
}
