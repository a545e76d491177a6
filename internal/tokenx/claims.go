package tokenx

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/alii-alqassab/graphql/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// userIDClaims are tried in fixed preference order when extracting the
// numeric user id from a decoded payload.
var userIDClaims = [...]string{"sub", "userId", "id"}

// UserID decodes the token's payload segment without verifying its
// signature and returns the first of the `sub`, `userId` and `id` claims
// that yields a non-zero finite number. A malformed token and a payload
// with no usable id claim fail identically with common.ErrSession.
func UserID(token string) (float64, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("%w: JWT is missing the user id claim.", common.ErrSession)
	}

	for _, name := range userIDClaims {
		value, ok := claims[name]
		if !ok {
			continue
		}
		if id, ok := toNumber(value); ok && id != 0 {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: JWT is missing the user id claim.", common.ErrSession)
}

// toNumber coerces the dynamic claim types produced by JSON decoding into
// a finite float64.
func toNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case int64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
