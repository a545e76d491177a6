package config

import (
	"flag"
	"os"
	"time"

	"github.com/alii-alqassab/graphql/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   login (Basic-Auth) endpoint URL
//	-g string   GraphQL endpoint URL
//	-k string   raw Cookie header carrying auth_token
//	-t int      request timeout in seconds
//	-d string   sqlite session database path
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-k", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthURL, "a", cfg.AuthURL, "login endpoint URL")
	fs.StringVar(&cfg.GraphQLURL, "g", cfg.GraphQLURL, "GraphQL endpoint URL")
	fs.StringVar(&cfg.CookieHeader, "k", cfg.CookieHeader, "raw Cookie header carrying auth_token")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
