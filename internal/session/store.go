package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pmateja/padmin/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const (
	keyToken  = "token"
	keyUserID = "user_id"
	keyRole   = "role"
)

// Session is the stored credential set. The three fields are written
// together: a present token always comes with the user id and role behind it.
type Session struct {
	Token  string
	UserID int64
	Role   models.Role
}

// Store persists the session across runs, backed by SQLite in the user's
// data directory. There is no expiry or refresh handling; a stale token is
// only discovered when the API rejects a request.
type Store struct {
	db *sql.DB
}

// Open creates or opens the session database. dataDir overrides the default
// location when non-empty (tests use a temp dir).
func Open(dataDir string) (*Store, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, "padmin.db"))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func resolveDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		// Use XDG data directory or fallback to home directory
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".local", "share")
		}
		dataDir = filepath.Join(base, "padmin")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	return dataDir, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Current returns the stored session, or false when none is stored
func (s *Store) Current() (Session, bool) {
	token, err := s.get(keyToken)
	if err != nil || token == "" {
		return Session{}, false
	}
	idStr, err := s.get(keyUserID)
	if err != nil {
		return Session{}, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return Session{}, false
	}
	role, err := s.get(keyRole)
	if err != nil {
		return Session{}, false
	}
	return Session{Token: token, UserID: id, Role: models.Role(role)}, true
}

// Token implements api.TokenSource
func (s *Store) Token() (string, bool) {
	sess, ok := s.Current()
	return sess.Token, ok
}

// Save stores the session in a single transaction
func (s *Store) Save(sess Session) error {
	if sess.Token == "" {
		return fmt.Errorf("refusing to save session without a token")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		keyToken:  sess.Token,
		keyUserID: strconv.FormatInt(sess.UserID, 10),
		keyRole:   string(sess.Role),
	} {
		if _, err := tx.Exec(`
			INSERT INTO session (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Clear removes the stored session (logout)
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM session")
	return err
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
