// Package models holds the raw GraphQL records consumed by the client and
// the derived view model produced by the profile aggregator.
package models

import "encoding/json"

// UserRecord is one row of the `user` collection as returned by GetUserInfo
// and GetAuditRatio. Attrs is a freeform JSON mapping; depending on the
// server it arrives as an object or as a JSON-encoded string, so it is kept
// raw until ParseAttrs.
type UserRecord struct {
	ID         int64           `json:"id"`
	Login      string          `json:"login"`
	Campus     string          `json:"campus"`
	Email      string          `json:"email"`
	Attrs      json.RawMessage `json:"attrs"`
	AuditRatio *float64        `json:"auditRatio"`
	TotalUp    float64         `json:"totalUp"`
	TotalDown  float64         `json:"totalDown"`
}

// ParseAttrs decodes the raw attrs payload into a generic mapping. Both the
// object form and the string-wrapped form are accepted; anything else
// yields nil. Attrs feed display fallbacks only, so a bad payload degrades
// instead of failing the fetch.
func (u *UserRecord) ParseAttrs() map[string]any {
	raw := u.Attrs
	if len(raw) == 0 {
		return nil
	}

	// String-wrapped form: unwrap once, then decode the inner document.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(s)
	}

	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil
	}
	return attrs
}

// TransactionObject is the object a transaction is attached to. Only the
// name is selected by the project-XP query; the id participates in the
// project-label fallback chain.
type TransactionObject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Transaction is a ledger record of an XP, level or skill event. Fields not
// selected by a given query simply stay zero-valued.
type Transaction struct {
	ID        int64              `json:"id"`
	Type      string             `json:"type"`
	Amount    float64            `json:"amount"`
	CreatedAt string             `json:"createdAt"`
	Path      string             `json:"path"`
	ObjectID  int64              `json:"objectId"`
	Object    *TransactionObject `json:"object"`
}

// XPAggregate is the server-computed XP sum returned by GetXpAmount.
// The innermost amount is nil when the user has no matching transactions.
type XPAggregate struct {
	Aggregate struct {
		Sum struct {
			Amount *float64 `json:"amount"`
		} `json:"sum"`
	} `json:"aggregate"`
}

// Sum returns the aggregate amount, or 0 when the server reported none.
func (a *XPAggregate) Sum() float64 {
	if a == nil || a.Aggregate.Sum.Amount == nil {
		return 0
	}
	return *a.Aggregate.Sum.Amount
}
