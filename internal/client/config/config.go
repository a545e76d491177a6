package config

import "time"

// DefaultGraphQLURL is the hardcoded endpoint fallback used when neither
// environment, JSON nor flags supply one.
const DefaultGraphQLURL = "https://learn.reboot01.com/api/graphql-engine/v1/graphql"

// DefaultAuthURL is the matching Basic-Auth signin endpoint.
const DefaultAuthURL = "https://learn.reboot01.com/api/auth/signin"

// Config holds runtime settings for the dashboard CLI.
//
// Fields:
//   - AuthURL: Basic-Auth login endpoint.
//   - GraphQLURL: GraphQL endpoint for the six profile queries.
//   - CookieHeader: optional raw Cookie header copied from a browser
//     session; its auth_token cookie takes precedence over stored tokens.
//   - RequestTimeout: per-request HTTP timeout for both endpoints.
//   - DatabasePath: sqlite file holding the persisted session token.
type Config struct {
	AuthURL        string
	GraphQLURL     string
	CookieHeader   string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthURL = DefaultAuthURL
	c.GraphQLURL = DefaultGraphQLURL
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file when present), a JSON file
// (if configured) and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
