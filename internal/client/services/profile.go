package services

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/alii-alqassab/graphql/internal/client/client"
	"github.com/alii-alqassab/graphql/internal/client/models"
	"github.com/alii-alqassab/graphql/internal/client/repositories/session"
	"github.com/alii-alqassab/graphql/internal/common"
	"github.com/alii-alqassab/graphql/internal/logging"
	"github.com/alii-alqassab/graphql/internal/tokenx"
)

// ProfileService aggregates the six profile queries into one view model.
type ProfileService interface {
	Fetch(ctx context.Context, token string, userID float64) (*models.ProfileData, error)
}

type profileService struct {
	client client.Client
	log    logging.Logger
}

// NewProfileService constructs a ProfileService driving the given client.
func NewProfileService(c client.Client, log logging.Logger) ProfileService {
	return &profileService{client: c, log: log}
}

// SessionTokenStore adapts the session repository to client.TokenStore.
type SessionTokenStore struct {
	Repo session.Repository
}

func (s SessionTokenStore) Token(ctx context.Context) (string, error) {
	return s.Repo.Get(ctx, common.SessionTokenKey)
}

// result is one query's (data, error) outcome. Queries never panic across
// the client boundary, so a slot is always one of the two.
type result[T any] struct {
	data T
	err  error
}

// Fetch validates its inputs, issues all six queries concurrently, then
// joins and validates the results in a fixed order before running the
// pure transform steps.
//
// Two policies apply at the join: a query ERROR always aborts the whole
// aggregation (errors are never swallowed), while missing data is only
// fatal for the required queries (user info, project XP); the optional
// ones (audit ratio, XP amount, user level, skills) default downstream.
// No partial view model is ever returned.
func (s *profileService) Fetch(ctx context.Context, token string, userID float64) (*models.ProfileData, error) {
	sanitized := tokenx.Sanitize(token)
	if sanitized == "" {
		return nil, fmt.Errorf("%w: Missing authentication token.", common.ErrValidation)
	}
	if math.IsNaN(userID) || math.IsInf(userID, 0) {
		return nil, fmt.Errorf("%w: Cannot determine the authenticated user.", common.ErrValidation)
	}

	s.client.SetToken(sanitized)

	var (
		userRes     result[*models.UserRecord]
		auditRes    result[*models.UserRecord]
		xpRes       result[*models.XPAggregate]
		levelRes    result[*models.Transaction]
		projectsRes result[[]models.Transaction]
		skillsRes   result[[]models.Transaction]
	)

	// Fire all six, await all. Completion order is unspecified; only the
	// validation order below is deterministic.
	var wg sync.WaitGroup
	wg.Add(6)
	go func() { defer wg.Done(); userRes.data, userRes.err = s.client.GetUserInfo(ctx) }()
	go func() { defer wg.Done(); auditRes.data, auditRes.err = s.client.GetAuditRatio(ctx) }()
	go func() { defer wg.Done(); xpRes.data, xpRes.err = s.client.GetXpAmount(ctx) }()
	go func() { defer wg.Done(); levelRes.data, levelRes.err = s.client.GetUserLevel(ctx) }()
	go func() { defer wg.Done(); projectsRes.data, projectsRes.err = s.client.GetUserProjectXp(ctx) }()
	go func() { defer wg.Done(); skillsRes.data, skillsRes.err = s.client.GetUserSkills(ctx) }()
	wg.Wait()

	rawUser, err := requireData(userRes, "user info")
	if err != nil {
		return nil, err
	}
	xpAggregate, err := optionalData(xpRes)
	if err != nil {
		return nil, err
	}
	levelEntry, err := optionalData(levelRes)
	if err != nil {
		return nil, err
	}
	projectTransactions, err := requireData(projectsRes, "project XP")
	if err != nil {
		return nil, err
	}
	skillTransactions, err := optionalData(skillsRes)
	if err != nil {
		return nil, err
	}
	auditData, err := optionalData(auditRes)
	if err != nil {
		return nil, err
	}

	totalXP := xpAggregate.Sum()
	if totalXP == 0 {
		totalXP = sumXP(projectTransactions)
	}

	var level float64
	if levelEntry != nil {
		level = levelEntry.Amount
	}

	var auditsGiven, auditsReceived float64
	var serverRatio *float64
	if auditData != nil {
		auditsGiven = auditData.TotalUp
		auditsReceived = auditData.TotalDown
		serverRatio = auditData.AuditRatio
	}
	ratio := auditRatio(serverRatio, auditsGiven, auditsReceived)

	data := &models.ProfileData{
		Profile: normalizeUser(rawUser),
		Summary: models.Summary{
			TotalXP:        totalXP,
			AuditRatio:     ratio,
			AuditsGiven:    auditsGiven,
			AuditsReceived: auditsReceived,
			Level:          level,
		},
		XPTimeline:  buildXPTimeline(projectTransactions),
		XPByProject: buildXPByProject(projectTransactions),
		SkillRadar:  buildSkillRadar(skillTransactions),
	}

	s.log.Info(ctx, "profile aggregated",
		"projects", len(data.XPByProject),
		"timeline_points", len(data.XPTimeline),
		"total_xp", data.Summary.TotalXP,
	)
	return data, nil
}

// requireData unwraps a required query result: any error propagates, and
// missing data is itself an error. T is always a pointer or slice type,
// so the zero comparison is a nil check.
func requireData[T any](r result[T], label string) (T, error) {
	var zero T
	if r.err != nil {
		return zero, r.err
	}
	if isNil(r.data) {
		return zero, fmt.Errorf("%w: %s is not available.", common.ErrProtocol, label)
	}
	return r.data, nil
}

// optionalData unwraps an optional query result: errors still propagate,
// missing data is tolerated.
func optionalData[T any](r result[T]) (T, error) {
	var zero T
	if r.err != nil {
		return zero, r.err
	}
	return r.data, nil
}

func isNil(v any) bool {
	switch value := v.(type) {
	case *models.UserRecord:
		return value == nil
	case *models.XPAggregate:
		return value == nil
	case *models.Transaction:
		return value == nil
	case []models.Transaction:
		return value == nil
	default:
		return v == nil
	}
}

// auditRatio prefers the server-supplied ratio; otherwise it is computed
// from the counters, with zero received audits yielding 0, not a division
// blow-up.
func auditRatio(serverRatio *float64, given, received float64) float64 {
	if serverRatio != nil {
		return *serverRatio
	}
	if received == 0 {
		return 0
	}
	return given / math.Max(1, received)
}
