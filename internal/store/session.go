package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"callboard-cli/internal/model"
)

const sessionFileName = "session.json"

// ErrNotLoggedIn is returned when no stored auth session exists.
var ErrNotLoggedIn = errors.New("not logged in (run: callboard auth login)")

func sessionPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFileName), nil
}

// LoadSession reads the stored auth session. A missing file is ErrNotLoggedIn.
func LoadSession() (*model.AuthSession, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	var sess model.AuthSession
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, ErrNotLoggedIn
	}
	return &sess, nil
}

// SaveSession persists the auth session with owner-only permissions (it holds the token).
func SaveSession(sess *model.AuthSession) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "session.json.*.tmp", path, b, 0o600)
}

// ClearSession removes the stored session. Missing file is not an error.
func ClearSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
