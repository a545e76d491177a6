package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	old := os.Args
	os.Args = []string{"cli"}
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, DefaultAuthURL, cfg.AuthURL)
	require.Equal(t, DefaultGraphQLURL, cfg.GraphQLURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "session.db", cfg.DatabasePath)
	require.Equal(t, "", cfg.CookieHeader)
}

func TestParseEnv_Overrides(t *testing.T) {
	resetArgs(t)
	t.Setenv("AUTH_URL", "https://example.test/signin")
	t.Setenv("GRAPHQL_ENDPOINT_URL", "https://example.test/graphql")
	t.Setenv("AUTH_COOKIE", "auth_token=a.b.c")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("SESSION_DB", "/tmp/x.db")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	require.Equal(t, "https://example.test/signin", cfg.AuthURL)
	require.Equal(t, "https://example.test/graphql", cfg.GraphQLURL)
	require.Equal(t, "auth_token=a.b.c", cfg.CookieHeader)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath)
}

func TestParseEnv_LegacyGraphQLAlias(t *testing.T) {
	resetArgs(t)
	t.Setenv("GRAPHQL_URL", "https://legacy.test/graphql")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	require.Equal(t, "https://legacy.test/graphql", cfg.GraphQLURL)
}

func TestParseEnv_PreferredNameWinsOverAlias(t *testing.T) {
	resetArgs(t)
	t.Setenv("GRAPHQL_ENDPOINT_URL", "https://preferred.test/graphql")
	t.Setenv("GRAPHQL_URL", "https://legacy.test/graphql")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	require.Equal(t, "https://preferred.test/graphql", cfg.GraphQLURL)
}

func TestParseEnv_BadTimeoutIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_Overrides(t *testing.T) {
	old := os.Args
	os.Args = []string{"cli", "-a", "https://flags.test/signin", "-t", "60", "-d", "alt.db"}
	t.Cleanup(func() { os.Args = old })

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "https://flags.test/signin", cfg.AuthURL)
	require.Equal(t, 60*time.Second, cfg.RequestTimeout)
	require.Equal(t, "alt.db", cfg.DatabasePath)
	require.Equal(t, DefaultGraphQLURL, cfg.GraphQLURL)
}
