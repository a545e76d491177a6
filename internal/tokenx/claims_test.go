package tokenx

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alii-alqassab/graphql/internal/common"
	"github.com/stretchr/testify/require"
)

// makeToken builds an unsigned three-segment token carrying the given
// payload claims. The signature segment is junk on purpose: UserID must
// never verify it.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]any{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + ".signature"
}

func TestUserID(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]any
		want   float64
	}{
		{"sub numeric", map[string]any{"sub": 42}, 42},
		{"sub numeric string", map[string]any{"sub": "42"}, 42},
		{"userId fallback", map[string]any{"userId": 7}, 7},
		{"id fallback", map[string]any{"id": 99}, 99},
		{"zero sub falls through", map[string]any{"sub": 0, "id": 5}, 5},
		{"non-numeric sub falls through", map[string]any{"sub": "alice", "userId": 3}, 3},
		{"preference order", map[string]any{"sub": 1, "userId": 2, "id": 3}, 1},
		{"negative id accepted", map[string]any{"sub": -8}, -8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserID(makeToken(t, tt.claims))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUserID_MissingClaim(t *testing.T) {
	_, err := UserID(makeToken(t, map[string]any{"login": "alice"}))
	require.ErrorIs(t, err, common.ErrSession)
	require.Contains(t, err.Error(), "JWT is missing the user id claim.")
}

func TestUserID_MalformedToken(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b", "!!!.@@@.###"} {
		_, err := UserID(token)
		require.Error(t, err, "token %q", token)
		require.True(t, errors.Is(err, common.ErrSession))
	}
}

func TestToNumber(t *testing.T) {
	id, ok := toNumber(json.Number("12.5"))
	require.True(t, ok)
	require.Equal(t, 12.5, id)

	_, ok = toNumber(json.Number("not-a-number"))
	require.False(t, ok)

	_, ok = toNumber([]any{1})
	require.False(t, ok)
}
