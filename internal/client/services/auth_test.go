package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alii-alqassab/graphql/internal/client/repositories/session"
	"github.com/alii-alqassab/graphql/internal/common"
	"github.com/alii-alqassab/graphql/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

var setupDBSeq atomic.Int64

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:authsvc_"+t.Name()+"_"+strconv.FormatInt(setupDBSeq.Add(1), 10)+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newAuthService(t *testing.T, url string, db *sql.DB) (AuthService, session.Repository) {
	t.Helper()
	repo := session.NewSQLiteRepository(db)
	return NewAuthService(url, 5*time.Second, repo, testLogger()), repo
}

const validToken = "aaaaaaaaaa.bbbbbbbbbb.cccccccccc"

// ---- Login ----

func TestLogin_EmptyFieldsFailBeforeNetwork(t *testing.T) {
	requested := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer ts.Close()

	svc, _ := newAuthService(t, ts.URL, setupDB(t))

	for _, tc := range []struct {
		identifier string
		password   []byte
	}{
		{"", []byte("secret")},
		{"alice", nil},
		{"alice", []byte{}},
		{"", nil},
	} {
		_, err := svc.Login(context.Background(), tc.identifier, tc.password)
		require.ErrorIs(t, err, common.ErrValidation)
		require.Contains(t, err.Error(), "Please fill in both fields.")
	}
	require.False(t, requested)
}

func TestLogin_SendsBasicAuthHeaderWithoutBody(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(validToken))
	}))
	defer ts.Close()

	svc, _ := newAuthService(t, ts.URL, setupDB(t))

	_, err := svc.Login(context.Background(), "alice", []byte("secret"))
	require.NoError(t, err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:secret"))
	require.Equal(t, want, gotAuth)
	require.Empty(t, gotBody)
}

func TestLogin_EncodesUTF8Credentials(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(validToken))
	}))
	defer ts.Close()

	svc, _ := newAuthService(t, ts.URL, setupDB(t))

	_, err := svc.Login(context.Background(), "алиса", []byte("pässwörd"))
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(gotAuth, "Basic "))
	require.NoError(t, err)
	require.Equal(t, "алиса:pässwörd", string(decoded))
}

func TestLogin_RejectedCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		svc, repo := newAuthService(t, ts.URL, setupDB(t))
		_, err := svc.Login(context.Background(), "alice", []byte("wrong"))
		ts.Close()

		require.ErrorIs(t, err, common.ErrAuth)
		require.Contains(t, err.Error(), "Invalid username/email or password.")

		stored, getErr := repo.Get(context.Background(), common.SessionTokenKey)
		require.NoError(t, getErr)
		require.Empty(t, stored, "rejected login must not persist a token")
	}
}

func TestLogin_OtherStatusIncludesCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc, _ := newAuthService(t, ts.URL, setupDB(t))
	_, err := svc.Login(context.Background(), "alice", []byte("secret"))

	require.ErrorIs(t, err, common.ErrAuth)
	require.Contains(t, err.Error(), "Login failed (status 500).")
}

func TestLogin_SanitizesAndValidatesToken(t *testing.T) {
	t.Run("quoted padded token is cleaned and stored", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(` "` + validToken + `" `))
		}))
		defer ts.Close()

		svc, repo := newAuthService(t, ts.URL, setupDB(t))
		token, err := svc.Login(context.Background(), "alice", []byte("secret"))
		require.NoError(t, err)
		require.Equal(t, validToken, token)

		stored, err := repo.Get(context.Background(), common.SessionTokenKey)
		require.NoError(t, err)
		require.Equal(t, validToken, stored)
	})

	for name, body := range map[string]string{
		"empty body":     "",
		"too short":      "a.b.c",
		"two segments":   strings.Repeat("a", 15) + "." + strings.Repeat("b", 15),
		"not token-like": `{"error":"use the token endpoint"}`,
	} {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer ts.Close()

			svc, repo := newAuthService(t, ts.URL, setupDB(t))
			_, err := svc.Login(context.Background(), "alice", []byte("secret"))
			require.ErrorIs(t, err, common.ErrProtocol)
			require.Contains(t, err.Error(), "Could not find token in the server response.")

			stored, getErr := repo.Get(context.Background(), common.SessionTokenKey)
			require.NoError(t, getErr)
			require.Empty(t, stored, "invalid token must never be persisted")
		})
	}
}

// ---- Resume ----

func makeClaimToken(t *testing.T, payload string) string {
	t.Helper()
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + enc.EncodeToString([]byte(payload)) + ".signature"
}

func TestResume_NoStoredToken(t *testing.T) {
	svc, _ := newAuthService(t, "http://unused", setupDB(t))

	_, _, err := svc.Resume(context.Background())
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestResume_RecoversTokenAndUserID(t *testing.T) {
	db := setupDB(t)
	svc, repo := newAuthService(t, "http://unused", db)
	token := makeClaimToken(t, `{"sub":42}`)
	require.NoError(t, repo.Set(context.Background(), common.SessionTokenKey, " \""+token+"\" "))

	gotToken, userID, err := svc.Resume(context.Background())
	require.NoError(t, err)
	require.Equal(t, token, gotToken)
	require.Equal(t, 42.0, userID)
}

func TestResume_MissingClaimClearsSession(t *testing.T) {
	db := setupDB(t)
	svc, repo := newAuthService(t, "http://unused", db)
	require.NoError(t, repo.Set(context.Background(), common.SessionTokenKey, makeClaimToken(t, `{"login":"alice"}`)))

	_, _, err := svc.Resume(context.Background())
	require.ErrorIs(t, err, common.ErrSession)

	stored, getErr := repo.Get(context.Background(), common.SessionTokenKey)
	require.NoError(t, getErr)
	require.Empty(t, stored, "unusable token must be cleared")
}

func TestResume_MalformedTokenTreatedAsMissingClaim(t *testing.T) {
	db := setupDB(t)
	svc, repo := newAuthService(t, "http://unused", db)
	require.NoError(t, repo.Set(context.Background(), common.SessionTokenKey, "garbage-token"))

	_, _, err := svc.Resume(context.Background())
	require.ErrorIs(t, err, common.ErrSession)
}

// ---- Logout ----

func TestLogout_ClearsSession(t *testing.T) {
	db := setupDB(t)
	svc, repo := newAuthService(t, "http://unused", db)
	require.NoError(t, repo.Set(context.Background(), common.SessionTokenKey, validToken))

	require.NoError(t, svc.Logout(context.Background()))

	stored, err := repo.Get(context.Background(), common.SessionTokenKey)
	require.NoError(t, err)
	require.Empty(t, stored)
}
