package client

import (
	"context"

	"github.com/alii-alqassab/graphql/internal/client/models"
)

// Client is the query surface the profile aggregator drives. The real
// HTTPClient satisfies it; tests substitute a fake.
type Client interface {
	// SetToken replaces the explicitly configured token (sanitized).
	SetToken(token string)

	// GetUserInfo returns the authenticated user's record.
	GetUserInfo(ctx context.Context) (*models.UserRecord, error)

	// GetAuditRatio returns the user's audit counters, or nil when the
	// server has none for this user.
	GetAuditRatio(ctx context.Context) (*models.UserRecord, error)

	// GetXpAmount returns the server-computed XP sum, or nil when absent.
	GetXpAmount(ctx context.Context) (*models.XPAggregate, error)

	// GetUserLevel returns the single highest level transaction, or nil.
	GetUserLevel(ctx context.Context) (*models.Transaction, error)

	// GetUserProjectXp returns project XP transactions in ascending
	// createdAt order.
	GetUserProjectXp(ctx context.Context) ([]models.Transaction, error)

	// GetUserSkills returns skill transactions in descending amount order.
	GetUserSkills(ctx context.Context) ([]models.Transaction, error)
}

// TokenStore yields the persisted session token, the lowest-precedence
// token source. Implemented by the session repository.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
}
