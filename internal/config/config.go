// Package config persists the client's preferences: backend base URL, the
// dark-mode flag, and the placeholder login flag. Everything lives in one
// JSON file under the user's home directory; resource data is never cached
// on disk and is refetched each session.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"syscall"

	"github.com/marcus/rd/internal/models"
)

const configDir = ".rd"
const configFile = "config.json"
const lockFile = "config.json.lock"

// Dir returns the config directory under baseDir (normally the home dir).
func Dir(baseDir string) string {
	return filepath.Join(baseDir, configDir)
}

// Load reads the config from disk. A missing file yields a zero config.
func Load(baseDir string) (*models.Config, error) {
	data, err := os.ReadFile(filepath.Join(Dir(baseDir), configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *models.Config) error {
	dir := Dir(baseDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(dir, configFile))
}

// withConfigLock serializes read-modify-write cycles using flock
func withConfigLock(baseDir string, fn func() error) error {
	lockPath := filepath.Join(Dir(baseDir), lockFile)

	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return err
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

// mutate applies fn to the loaded config and saves it, under the file lock.
func mutate(baseDir string, fn func(*models.Config)) error {
	return withConfigLock(baseDir, func() error {
		cfg, err := Load(baseDir)
		if err != nil {
			return err
		}
		fn(cfg)
		return Save(baseDir, cfg)
	})
}

// BaseURL returns the configured backend URL, or "" when unset.
func BaseURL(baseDir string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return cfg.BaseURL, nil
}

// SetBaseURL persists the backend URL.
func SetBaseURL(baseDir, url string) error {
	return mutate(baseDir, func(cfg *models.Config) { cfg.BaseURL = url })
}

// DarkMode returns the persisted dark-mode preference.
func DarkMode(baseDir string) (bool, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return false, err
	}
	return cfg.DarkMode, nil
}

// SetDarkMode persists the dark-mode preference.
func SetDarkMode(baseDir string, dark bool) error {
	return mutate(baseDir, func(cfg *models.Config) { cfg.DarkMode = dark })
}

// LoggedIn reports whether the placeholder login gate has been passed and,
// if so, as whom.
func LoggedIn(baseDir string) (bool, string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return false, "", err
	}
	return cfg.LoggedIn, cfg.Username, nil
}

// SetLoggedIn persists the login flag and username.
func SetLoggedIn(baseDir string, loggedIn bool, username string) error {
	return mutate(baseDir, func(cfg *models.Config) {
		cfg.LoggedIn = loggedIn
		cfg.Username = username
	})
}
