// Package common defines shared constants and sentinel errors used across
// the dashboard client. Callers should use errors.Is to match these values;
// human-readable detail is attached at the call site with fmt.Errorf and %w.
package common

import "errors"

var (
	// ErrValidation marks bad caller input that never reaches the network
	// (empty credentials, missing token, non-finite user id).
	ErrValidation = errors.New("validation error")

	// ErrAuth marks credential rejection or a missing/structurally
	// invalid bearer token.
	ErrAuth = errors.New("authentication error")

	// ErrProtocol marks a malformed or error-carrying server response,
	// including a missing expected key in GraphQL data.
	ErrProtocol = errors.New("protocol error")

	// ErrSession marks a persisted token whose claims cannot be decoded
	// or carry no usable user id.
	ErrSession = errors.New("session error")

	// ErrNoSession is returned when no token is persisted at all. It is
	// not a failure: the caller should fall back to the login flow.
	ErrNoSession = errors.New("no session")
)
