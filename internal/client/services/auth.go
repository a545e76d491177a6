// Package services contains the application services for the dashboard
// client. This file defines the authentication service: the Basic-Auth
// credential exchange, resumption of a persisted session, and logout.
package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alii-alqassab/graphql/internal/client/repositories/session"
	"github.com/alii-alqassab/graphql/internal/common"
	"github.com/alii-alqassab/graphql/internal/logging"
	"github.com/alii-alqassab/graphql/internal/tokenx"
)

// AuthService defines the session lifecycle operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a bearer token and persist it.
//   - Resume: recover (token, user id) from the persisted session.
//   - Logout: clear the persisted session.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, identifier string, password []byte) (string, error)
	Resume(ctx context.Context) (string, float64, error)
	Logout(ctx context.Context) error
}

// authService is the concrete AuthService backed by the login endpoint and
// the local session store.
type authService struct {
	authURL string
	httpc   *http.Client
	store   session.Repository
	log     logging.Logger
}

// NewAuthService constructs an AuthService against the given login
// endpoint. The timeout bounds each exchange request.
func NewAuthService(authURL string, timeout time.Duration, store session.Repository, log logging.Logger) AuthService {
	return &authService{
		authURL: authURL,
		httpc:   &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// Login performs the Basic-Auth exchange: POST to the login endpoint with
// Authorization: Basic base64(identifier:password) and no body, expecting
// the raw token as the response text.
//
// The credential pair is encoded from its UTF-8 bytes, following RFC 7617
// practice, so non-Latin1 credentials never fail client-side.
//
// The returned token has been sanitized, validated (three segments, at
// least 20 characters) and persisted in the session store.
func (a *authService) Login(ctx context.Context, identifier string, password []byte) (string, error) {
	if identifier == "" || len(password) == 0 {
		return "", fmt.Errorf("%w: Please fill in both fields.", common.ErrValidation)
	}

	credentials := make([]byte, 0, len(identifier)+1+len(password))
	credentials = append(credentials, identifier...)
	credentials = append(credentials, ':')
	credentials = append(credentials, password...)
	basic := base64.StdEncoding.EncodeToString(credentials)
	common.WipeByteArray(credentials)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.authURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := a.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return "", fmt.Errorf("%w: Invalid username/email or password.", common.ErrAuth)
		}
		return "", fmt.Errorf("%w: Login failed (status %d).", common.ErrAuth, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}

	token := tokenx.Sanitize(string(raw))
	if !tokenx.LooksLikeToken(token) {
		return "", fmt.Errorf("%w: Could not find token in the server response.", common.ErrProtocol)
	}

	if err := a.store.Replace(ctx, common.SessionTokenKey, token); err != nil {
		return "", fmt.Errorf("saving session token: %w", err)
	}

	a.log.Info(ctx, "login successful", "identifier", identifier)
	return token, nil
}

// Resume sanitizes the persisted token and decodes its user id claim.
// With no persisted token it returns common.ErrNoSession and the caller
// falls back to the login flow. A token whose claims cannot produce a
// user id clears the session (logout) and returns common.ErrSession.
func (a *authService) Resume(ctx context.Context) (string, float64, error) {
	stored, err := a.store.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return "", 0, fmt.Errorf("reading session token: %w", err)
	}

	token := tokenx.Sanitize(stored)
	if token == "" {
		return "", 0, common.ErrNoSession
	}

	userID, err := tokenx.UserID(token)
	if err != nil {
		a.log.Warn(ctx, "stored token unusable, clearing session", "err", err)
		if clearErr := a.store.Clear(ctx); clearErr != nil {
			a.log.Error(ctx, "clearing session failed", "err", clearErr)
		}
		return "", 0, err
	}

	return token, userID, nil
}

// Logout wipes the persisted session state.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
