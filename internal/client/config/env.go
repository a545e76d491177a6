package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment values. A .env file in the
// working directory is loaded first (existing process variables win, per
// godotenv semantics); a missing file is not an error.
//
// Recognized variables:
//
//	AUTH_URL              login endpoint
//	GRAPHQL_ENDPOINT_URL  GraphQL endpoint (preferred name)
//	GRAPHQL_URL           GraphQL endpoint (legacy alias)
//	AUTH_COOKIE           raw Cookie header carrying auth_token
//	REQUEST_TIMEOUT       Go duration string, e.g. "15s"
//	SESSION_DB            sqlite database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("AUTH_URL"); v != "" {
		cfg.AuthURL = v
	}
	if v := os.Getenv("GRAPHQL_ENDPOINT_URL"); v != "" {
		cfg.GraphQLURL = v
	} else if v := os.Getenv("GRAPHQL_URL"); v != "" {
		cfg.GraphQLURL = v
	}
	if v := os.Getenv("AUTH_COOKIE"); v != "" {
		cfg.CookieHeader = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SESSION_DB"); v != "" {
		cfg.DatabasePath = v
	}
}
