package common

// SessionTokenKey is the session-store key holding the persisted bearer
// token.
const SessionTokenKey = "jwt"

// AuthCookieName is the cookie carrying an alternate auth token. It is
// read-only from this client's perspective.
const AuthCookieName = "auth_token"
