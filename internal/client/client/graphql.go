package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alii-alqassab/graphql/internal/client/models"
	"github.com/alii-alqassab/graphql/internal/common"
	"github.com/alii-alqassab/graphql/internal/netx"
	"github.com/alii-alqassab/graphql/internal/tokenx"
)

// DefaultGraphQLURL is used when no endpoint is configured.
const DefaultGraphQLURL = "https://learn.reboot01.com/api/graphql-engine/v1/graphql"

// Options configures an HTTPClient. Zero values fall back to defaults;
// Store may be nil when no persisted session should be consulted.
type Options struct {
	APIURL       string
	Token        string
	CookieHeader string
	Store        TokenStore
	Timeout      time.Duration
}

// HTTPClient executes the fixed query set over HTTP. It is safe for
// sequential use from the REPL loop; it holds no per-call state beyond
// the configured token.
type HTTPClient struct {
	apiURL       string
	token        string
	cookieHeader string
	store        TokenStore
	httpc        *http.Client
}

// NewHTTPClient builds a client for the given options. The configured
// token is sanitized up front; structural validation happens per call.
func NewHTTPClient(opts Options) *HTTPClient {
	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultGraphQLURL
	}
	return &HTTPClient{
		apiURL:       apiURL,
		token:        tokenx.Sanitize(opts.Token),
		cookieHeader: opts.CookieHeader,
		store:        opts.Store,
		httpc:        &http.Client{Timeout: opts.Timeout},
	}
}

// SetToken replaces the explicitly configured token.
func (c *HTTPClient) SetToken(token string) {
	c.token = tokenx.Sanitize(token)
}

// bearerToken resolves the token to use for a call: auth cookie first,
// then the configured token, then the persisted session token. Each
// candidate must survive sanitation and the three-segment check; a
// candidate failing it is skipped entirely, never partially used.
func (c *HTTPClient) bearerToken(ctx context.Context) string {
	if cookie := tokenx.Sanitize(netx.CookieValue(c.cookieHeader, common.AuthCookieName)); tokenx.IsWellFormed(cookie) {
		return cookie
	}

	if tokenx.IsWellFormed(c.token) {
		return c.token
	}

	if c.store != nil {
		stored, err := c.store.Token(ctx)
		if err == nil {
			if stored = tokenx.Sanitize(stored); tokenx.IsWellFormed(stored) {
				return stored
			}
		}
	}

	return ""
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// fetch executes one query and returns the raw data payload. All failure
// modes come back as sentinel-wrapped errors; fetch never panics and
// makes no network request without a structurally valid token.
func (c *HTTPClient) fetch(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	jwt := c.bearerToken(ctx)
	if jwt == "" {
		return nil, fmt.Errorf("%w: Invalid token", common.ErrAuth)
	}

	if variables == nil {
		variables = map[string]any{}
	}
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	req.Header.Set("Authorization", "Bearer "+jwt)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: Failed to fetch data.", common.ErrProtocol)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}

	var env graphQLEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}

	if len(env.Errors) > 0 {
		messages := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			if e.Message != "" {
				messages = append(messages, e.Message)
			}
		}
		return nil, fmt.Errorf("%w: GraphQL Errors: %s", common.ErrProtocol, strings.Join(messages, ", "))
	}

	return env.Data, nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w: '%s' key not in response", common.ErrProtocol, key)
}

// GetUserInfo returns the first (and only) row of the user collection.
func (c *HTTPClient) GetUserInfo(ctx context.Context) (*models.UserRecord, error) {
	data, err := c.fetch(ctx, getUserInfo, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		User *[]models.UserRecord `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	if payload.User == nil || len(*payload.User) == 0 {
		return nil, missingKey("user")
	}
	return &(*payload.User)[0], nil
}

// GetAuditRatio returns the user's audit counters. An empty user array is
// not an error here: it maps to nil data, which the aggregator defaults.
func (c *HTTPClient) GetAuditRatio(ctx context.Context) (*models.UserRecord, error) {
	data, err := c.fetch(ctx, getAuditRatio, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		User *[]models.UserRecord `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	if payload.User == nil {
		// Reported under the query's alias name, not the raw key.
		return nil, missingKey("user_audit_ratio")
	}
	if len(*payload.User) == 0 {
		return nil, nil
	}
	return &(*payload.User)[0], nil
}

// GetXpAmount returns the aggregate XP sum. A present-but-null aggregate
// maps to nil data rather than an error.
func (c *HTTPClient) GetXpAmount(ctx context.Context) (*models.XPAggregate, error) {
	data, err := c.fetch(ctx, getXpAmount, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		TransactionAggregate json.RawMessage `json:"transaction_aggregate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	if payload.TransactionAggregate == nil {
		return nil, missingKey("transaction_aggregate")
	}
	if string(payload.TransactionAggregate) == "null" {
		return nil, nil
	}

	var agg models.XPAggregate
	if err := json.Unmarshal(payload.TransactionAggregate, &agg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	return &agg, nil
}

// GetUserLevel returns the single highest-amount level transaction, or nil
// when the user has none yet.
func (c *HTTPClient) GetUserLevel(ctx context.Context) (*models.Transaction, error) {
	data, err := c.fetch(ctx, getUserLevel, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Transaction *[]models.Transaction `json:"transaction"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	if payload.Transaction == nil {
		return nil, missingKey("transaction")
	}
	if len(*payload.Transaction) == 0 {
		return nil, nil
	}
	return &(*payload.Transaction)[0], nil
}

// GetUserProjectXp returns every project XP transaction, oldest first.
func (c *HTTPClient) GetUserProjectXp(ctx context.Context) ([]models.Transaction, error) {
	data, err := c.fetch(ctx, getUserProjectXp, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Transaction *[]models.Transaction `json:"transaction"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	if payload.Transaction == nil {
		return nil, missingKey("transaction")
	}
	return *payload.Transaction, nil
}

// GetUserSkills returns every skill transaction, highest amount first.
func (c *HTTPClient) GetUserSkills(ctx context.Context) ([]models.Transaction, error) {
	data, err := c.fetch(ctx, getUserSkills, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Transaction *[]models.Transaction `json:"transaction"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProtocol, err)
	}
	if payload.Transaction == nil {
		return nil, missingKey("transaction")
	}
	return *payload.Transaction, nil
}
