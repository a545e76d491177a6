// Package netx holds small networking helpers shared by the client.
package netx

import (
	"net/http"
	"net/url"
	"strings"
)

// CookieValue extracts the value of the named cookie from a raw Cookie
// header string (as copied from a browser session, e.g. "a=1; auth_token=x").
// The value is URL-unescaped, mirroring how browsers surface document.cookie.
// Returns "" when the header is empty or the cookie is absent.
func CookieValue(header, name string) string {
	if header == "" || name == "" {
		return ""
	}

	req := http.Request{Header: http.Header{"Cookie": {header}}}
	cookie, err := req.Cookie(name)
	if err != nil {
		return ""
	}

	value := strings.TrimSpace(cookie.Value)
	if unescaped, err := url.QueryUnescape(value); err == nil {
		return unescaped
	}
	return value
}
