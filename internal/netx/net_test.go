package netx

import "testing"

func TestCookieValue(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"single cookie", "auth_token=abc.def.ghi", "auth_token", "abc.def.ghi"},
		{"among others", "theme=dark; auth_token=abc.def.ghi; lang=en", "auth_token", "abc.def.ghi"},
		{"url-escaped value", "auth_token=abc%2Edef%2Eghi", "auth_token", "abc.def.ghi"},
		{"absent cookie", "theme=dark", "auth_token", ""},
		{"empty header", "", "auth_token", ""},
		{"empty name", "auth_token=x", "", ""},
		{"name is a prefix of another", "auth_token_v2=nope; auth_token=yes", "auth_token", "yes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CookieValue(tt.header, tt.cookie); got != tt.want {
				t.Fatalf("CookieValue(%q, %q) = %q, want %q", tt.header, tt.cookie, got, tt.want)
			}
		})
	}
}
