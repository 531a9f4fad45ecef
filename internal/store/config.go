package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type GlobalConfig struct {
	// APIBaseURL is the callboard server base URL (e.g. "http://localhost:3000/api").
	APIBaseURL string `json:"apiBaseUrl,omitempty"`

	// DefaultOutput is the default output format for non-interactive commands ("json" or "table").
	DefaultOutput string `json:"defaultOutput,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set (e.g. "unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// ShowSidebar controls whether the template catalog sidebar starts open.
	ShowSidebar *bool `json:"showSidebar,omitempty"`
}

const DefaultAPIBaseURL = "http://localhost:3000/api"

// BaseURL returns the configured API base URL, falling back to the default.
func (c *GlobalConfig) BaseURL() string {
	if c != nil {
		if v := strings.TrimSpace(c.APIBaseURL); v != "" {
			return v
		}
	}
	return DefaultAPIBaseURL
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.callboard).
	if v := strings.TrimSpace(os.Getenv("CALLBOARD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".callboard"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Best-effort safety net: keep a copy of the previous config to make recovery from
	// accidental overwrites easier. Ignore errors to avoid blocking normal usage.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	// Unique temp file name + atomic rename avoids cross-process clobbering when
	// multiple callboard processes write config concurrently (CLI + TUI).
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
