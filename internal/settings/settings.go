package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/Laisky/errors/v2"
)

type Settings struct {
	Theme           string `json:"theme"`
	HideWords       bool   `json:"hide_words"`
	BaseURL         string `json:"base_url,omitempty"`
	TimeoutSeconds  int    `json:"timeout_seconds,omitempty"`
	CacheTTLSeconds int    `json:"cache_ttl_seconds,omitempty"` // 0 disables the response cache
}

// Timeout returns the HTTP timeout, zero meaning the client default.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long API responses are reused.
func (s Settings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

// DefaultPath returns settings.json under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "user config dir")
	}

	return filepath.Join(configDir, "quran-wbw", "settings.json"), nil
}

// Load reads the settings at path. A missing file yields the zero Settings.
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		// No config = just return zero value, no error
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, "read %s", path)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrapf(err, "parse %s", path)
	}

	return s, nil
}

func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create settings dir")
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(os.WriteFile(path, data, 0o644))
}
