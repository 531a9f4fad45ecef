package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"callboard-cli/internal/model"
)

const (
	stateFileName = "state.sqlite"
	draftsKey     = "campaignDrafts"
)

func statePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

func openState(ctx context.Context) (*sql.DB, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage.
	// WAL enables one writer + many readers; busy_timeout helps avoid "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func loadStateValue(ctx context.Context, db *sql.DB, key string) ([]byte, bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM state WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func saveStateValue(ctx context.Context, db *sql.DB, key string, v []byte) error {
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO state(k, v) VALUES(?, ?)`, key, string(v))
	return err
}

// LoadDrafts reads the full campaign draft list. The whole list is stored as a
// single JSON entry and read/written wholesale.
func LoadDrafts(ctx context.Context) ([]model.CampaignDraft, error) {
	db, err := openState(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	b, ok, err := loadStateValue(ctx, db, draftsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.CampaignDraft{}, nil
	}
	var drafts []model.CampaignDraft
	if err := json.Unmarshal(b, &drafts); err != nil {
		// Best-effort; if corrupted, treat as empty rather than wedging the CLI.
		return []model.CampaignDraft{}, nil
	}
	if drafts == nil {
		drafts = []model.CampaignDraft{}
	}
	return drafts, nil
}

// SaveDrafts replaces the stored campaign draft list.
func SaveDrafts(ctx context.Context, drafts []model.CampaignDraft) error {
	db, err := openState(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if drafts == nil {
		drafts = []model.CampaignDraft{}
	}
	b, err := json.Marshal(drafts)
	if err != nil {
		return err
	}
	return saveStateValue(ctx, db, draftsKey, b)
}

// UpsertDraft adds the draft, or replaces the stored draft with the same id.
func UpsertDraft(ctx context.Context, draft model.CampaignDraft) error {
	drafts, err := LoadDrafts(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range drafts {
		if drafts[i].ID == draft.ID {
			drafts[i] = draft
			replaced = true
			break
		}
	}
	if !replaced {
		drafts = append(drafts, draft)
	}
	return SaveDrafts(ctx, drafts)
}

// RemoveDraft deletes the draft with the given id. Unknown ids are a no-op.
func RemoveDraft(ctx context.Context, id string) error {
	drafts, err := LoadDrafts(ctx)
	if err != nil {
		return err
	}
	out := drafts[:0]
	for _, d := range drafts {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return SaveDrafts(ctx, out)
}
