package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ytget/yt-grabber/internal/platform"
)

// DefaultSettingsFile is the settings file name used when none is configured
const DefaultSettingsFile = "settings.json"

// File permissions for the settings file
const (
	settingsFileMode = 0o644
	settingsDirMode  = 0o755
)

// Settings holds persisted user preferences
type Settings struct {
	DefaultDirectory string `json:"default_directory"`
}

// Store loads and saves settings
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// FileStore keeps settings in a JSON file. A missing file loads as empty
// settings; saves replace the file atomically.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultSettingsFile
	}
	return &FileStore{path: path}
}

// Path returns the settings file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the settings file
func (s *FileStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings Settings
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}
	return settings, nil
}

// Save writes settings through a temp file renamed over the target
func (s *FileStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, settingsDirMode); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Chmod(settingsFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

// ResolveDownloadDirectory returns the configured default directory, or the
// user's Downloads folder when none is set
func ResolveDownloadDirectory(store Store) (string, error) {
	settings, err := store.Load()
	if err != nil {
		return "", err
	}
	if settings.DefaultDirectory != "" {
		return settings.DefaultDirectory, nil
	}
	return platform.GetHomeDownloadsDir()
}

// SetDefaultDirectory persists dir as the default download directory. A
// relative dir is made absolute; an empty one clears the setting.
func SetDefaultDirectory(store Store, dir string) error {
	dir = strings.TrimSpace(dir)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve directory %s: %w", dir, err)
		}
		dir = abs
	}

	settings, err := store.Load()
	if err != nil {
		return err
	}
	settings.DefaultDirectory = dir
	return store.Save(settings)
}
