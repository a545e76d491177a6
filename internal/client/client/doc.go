// Package client implements the bearer-authenticated GraphQL client for
// the learning-platform API.
//
// The client exposes six fixed, named queries. Every query method returns
// a (value, error) pair and never panics across the package boundary;
// transport failures, non-2xx responses, GraphQL error payloads and
// missing expected keys are all converted into sentinel-wrapped errors
// from internal/common.
//
// The bearer token for each call is resolved with a fixed precedence:
// an auth cookie from the configured cookie header, then the explicitly
// set token, then the token persisted in the session store. A token is
// only ever used after sanitation and the three-segment structural check.
package client
