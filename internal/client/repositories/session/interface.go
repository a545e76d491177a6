// Package session persists the client's session state, chiefly the single
// bearer-token slot, in a local key/value table.
//
// The slot is read-then-written without any lock: the CLI is the only
// writer within a process, and a concurrent write from a second process is
// an accepted last-writer-wins hazard.
package session

import "context"

// Repository is a small key/value store scoped to session state.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	// Replace atomically drops all existing session state and stores
	// key/value as the only entry.
	Replace(ctx context.Context, key string, value string) error
}
