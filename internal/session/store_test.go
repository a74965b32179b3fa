package session_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/sirinethikonda/saas-core-project/internal/session"
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

func testSession() types.Session {
	return types.Session{
		Token: "t1",
		User: types.User{
			ID:       "u1",
			FullName: "A",
			Email:    "a@b.com",
			Role:     types.RoleUser,
			TenantID: "9",
		},
		TenantID: "9",
	}
}

func TestLoginPersistsAndRehydrates(t *testing.T) {
	dir := t.TempDir()

	s, err := session.Open(dir)
	require.NoError(t, err)
	require.Nil(t, s.Current())

	require.NoError(t, s.Login(testSession()))
	require.Equal(t, "t1", s.Token())
	require.Equal(t, "9", s.TenantID())
	require.NoError(t, s.Close())

	// A fresh store over the same directory sees the same identity.
	s2, err := session.Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	cur := s2.Current()
	require.NotNil(t, cur)
	require.Equal(t, "t1", cur.Token)
	require.Equal(t, "a@b.com", cur.User.Email)
	require.Equal(t, "9", cur.TenantID)
}

func TestLogoutClearsEverything(t *testing.T) {
	dir := t.TempDir()

	s, err := session.Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Login(testSession()))
	require.NoError(t, s.Logout())
	require.Nil(t, s.Current())
	require.Empty(t, s.Token())
	require.NoError(t, s.Close())

	s2, err := session.Open(dir)
	require.NoError(t, err)
	defer s2.Close()
	require.Nil(t, s2.Current())
}

func TestPartialStateIsDiscarded(t *testing.T) {
	dir := t.TempDir()

	// Write a row with a token but no user, bypassing the store.
	conn, err := sql.Open("sqlite3", filepath.Join(dir, "client.db"))
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE TABLE session (
        id INTEGER PRIMARY KEY CHECK (id = 1),
        token TEXT NOT NULL,
        user_json TEXT NOT NULL,
        tenant_id TEXT NOT NULL
    )`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO session (id, token, user_json, tenant_id) VALUES (1, 'orphan', '', '')`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	s, err := session.Open(dir)
	require.NoError(t, err)
	defer s.Close()
	require.Nil(t, s.Current())

	// The broken row is gone, not repaired.
	conn, err = sql.Open("sqlite3", filepath.Join(dir, "client.db"))
	require.NoError(t, err)
	defer conn.Close()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	require.Zero(t, n)
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	s, err := session.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	var seen []*types.Session
	s.Subscribe(func(sess *types.Session) { seen = append(seen, sess) })

	require.NoError(t, s.Login(testSession()))
	require.NoError(t, s.Logout())

	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	require.Equal(t, "t1", seen[0].Token)
	require.Nil(t, seen[1])
}
