// Package session holds the authenticated identity and persists it across
// restarts in a sqlite database under the user's data directory. All reads
// and writes go through the Store; login and logout are the only mutators.
package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/internal/types"
)

const dbFileName = "client.db"

// Store is the application session service. It keeps the current identity in
// memory, mirrors it to sqlite, and notifies subscribers synchronously on
// every change.
type Store struct {
	conn *sql.DB

	mu      sync.Mutex
	current *types.Session
	subs    []func(*types.Session)
}

// Open connects to the session database in dir, creating it if needed, and
// rehydrates the persisted session. A persisted row missing either the token
// or a decodable user is treated as no session and cleared rather than
// repaired.
func Open(dir string) (*Store, error) {
	conn, err := sql.Open("sqlite3", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	query := `
    CREATE TABLE IF NOT EXISTS session (
        id INTEGER PRIMARY KEY CHECK (id = 1),
        token TEXT NOT NULL,
        user_json TEXT NOT NULL,
        tenant_id TEXT NOT NULL
    )`
	if _, err := conn.Exec(query); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init session db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.rehydrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) rehydrate() error {
	var token, userJSON, tenantID string
	err := s.conn.QueryRow(`SELECT token, user_json, tenant_id FROM session WHERE id = 1`).
		Scan(&token, &userJSON, &tenantID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	var user types.User
	if token == "" || userJSON == "" || json.Unmarshal([]byte(userJSON), &user) != nil {
		logrus.Warn("discarding partial persisted session")
		_, err := s.conn.Exec(`DELETE FROM session WHERE id = 1`)
		return err
	}

	s.current = &types.Session{Token: token, User: user, TenantID: tenantID}
	return nil
}

// Current returns the active session, or nil when not authenticated.
func (s *Store) Current() *types.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the bearer token of the active session, or "".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// TenantID returns the tenant identifier of the active session, or "".
func (s *Store) TenantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.TenantID
}

// Login persists the session atomically and publishes the new identity.
func (s *Store) Login(sess types.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin session write: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM session WHERE id = 1`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear session: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO session (id, token, user_json, tenant_id) VALUES (1, ?, ?, ?)`,
		sess.Token, string(userJSON), sess.TenantID,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}

	s.mu.Lock()
	s.current = &sess
	subs := append([]func(*types.Session){}, s.subs...)
	s.mu.Unlock()

	logrus.WithField("user", sess.User.Email).Info("session established")
	for _, fn := range subs {
		fn(&sess)
	}
	return nil
}

// Logout clears all persisted state and publishes "no identity". It is safe
// to call when no session exists.
func (s *Store) Logout() error {
	if _, err := s.conn.Exec(`DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	had := s.current != nil
	s.current = nil
	subs := append([]func(*types.Session){}, s.subs...)
	s.mu.Unlock()

	if had {
		logrus.Info("session cleared")
	}
	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

// Subscribe registers fn to be called synchronously after every login and
// logout. Subscribers cannot be removed; they live as long as the store.
func (s *Store) Subscribe(fn func(*types.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) Close() error {
	return s.conn.Close()
}
