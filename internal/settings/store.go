// Package settings persists user-facing overlay preferences between runs.
// The core never requires persisted state; this is the optional settings
// collaborator that theme, font and window position are handed to.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nakamotosai/jp/internal/domain"
)

// unplaced marks a window that has never been dragged; the frontend
// centres it on screen.
const unplaced = -1

// Settings are the persisted overlay preferences.
type Settings struct {
	Theme      domain.Theme      `json:"theme"`
	FontFamily domain.FontFamily `json:"fontFamily"`
	WindowX    int               `json:"windowX"`
	WindowY    int               `json:"windowY"`
	Scale      float64           `json:"scale"`
}

// Defaults returns settings for a fresh installation.
func Defaults() Settings {
	return Settings{
		Theme:      domain.ThemeDark,
		FontFamily: domain.FontSans,
		WindowX:    unplaced,
		WindowY:    unplaced,
		Scale:      1.0,
	}
}

// Placed reports whether a window position has ever been recorded.
func (s Settings) Placed() bool {
	return s.WindowX != unplaced || s.WindowY != unplaced
}

// Position returns the persisted window origin.
func (s Settings) Position() domain.Position {
	return domain.Position{X: s.WindowX, Y: s.WindowY}
}

// Store reads and writes the settings file.
type Store struct {
	mu   sync.Mutex
	path string
}

// DefaultPath resolves the settings file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(dir, "jp", "settings.json"), nil
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the settings file. A missing file yields defaults; a corrupt
// file is an error so the caller can decide whether to overwrite it.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings: %w", err)
	}

	loaded := Defaults()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings: %w", err)
	}

	if loaded.Theme != domain.ThemeLight && loaded.Theme != domain.ThemeDark {
		loaded.Theme = domain.ThemeDark
	}
	if loaded.FontFamily != domain.FontSans && loaded.FontFamily != domain.FontSerif {
		loaded.FontFamily = domain.FontSans
	}
	if loaded.Scale <= 0 {
		loaded.Scale = 1.0
	}
	return loaded, nil
}

// Save writes the settings atomically: temp file in the same directory,
// then rename over the target.
func (s *Store) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close settings file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}
