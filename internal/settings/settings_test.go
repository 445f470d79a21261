package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope", "settings.json"))
	require.NoError(t, err)
	require.Equal(t, Settings{}, s)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quran-wbw", "settings.json")
	want := Settings{Theme: "dracula", HideWords: true, TimeoutSeconds: 5, CacheTTLSeconds: 600}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 5*time.Second, got.Timeout())
	require.Equal(t, 10*time.Minute, got.CacheTTL())
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{theme:"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("HOME", "/tmp/home")

	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, "settings.json", filepath.Base(path))
	require.Equal(t, "quran-wbw", filepath.Base(filepath.Dir(path)))
}
