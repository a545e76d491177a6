package config

import (
	"encoding/json"
	"os"

	"github.com/alii-alqassab/graphql/internal/flagx"
	"github.com/alii-alqassab/graphql/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "15s"
// or as integer nanoseconds. After parsing, set values are copied into the
// runtime Config.
type JsonConfig struct {
	AuthURL        string         `json:"auth_url"`
	GraphQLURL     string         `json:"graphql_url"`
	CookieHeader   string         `json:"cookie_header"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. No flag, no JSON layer. Read or
// unmarshal errors panic; the chain runs before any user session exists,
// so failing loudly at startup is the intended behavior.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthURL != "" {
		cfg.AuthURL = jc.AuthURL
	}
	if jc.GraphQLURL != "" {
		cfg.GraphQLURL = jc.GraphQLURL
	}
	if jc.CookieHeader != "" {
		cfg.CookieHeader = jc.CookieHeader
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
