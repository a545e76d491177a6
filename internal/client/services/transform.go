package services

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alii-alqassab/graphql/internal/client/models"
	"github.com/google/uuid"
)

// The transform steps below are pure and independent of each other; the
// aggregator runs them over fully joined query results only.

// normalizeUser builds the profile card from one raw user record. The
// display name joins firstName and lastName from attrs, falling back to
// the login when neither is present.
func normalizeUser(user *models.UserRecord) *models.Profile {
	if user == nil {
		return nil
	}

	attrs := user.ParseAttrs()

	var nameParts []string
	for _, key := range []string{"firstName", "lastName"} {
		if s, ok := attrs[key].(string); ok && s != "" {
			nameParts = append(nameParts, s)
		}
	}
	name := strings.Join(nameParts, " ")
	if name == "" {
		name = user.Login
	}

	return &models.Profile{
		ID:     user.ID,
		Login:  user.Login,
		Name:   name,
		Campus: user.Campus,
		Email:  user.Email,
		Attrs:  attrs,
	}
}

// timelineDateLayout renders createdAt as a short en-US date
// (month/day/year, no zero padding).
const timelineDateLayout = "1/2/2006"

// buildXPTimeline folds the time-ordered project transactions into a
// running cumulative sum, one point per transaction. Transactions without
// a usable id get a generated one so chart consumers can key on it.
func buildXPTimeline(transactions []models.Transaction) []models.TimelinePoint {
	points := make([]models.TimelinePoint, 0, len(transactions))

	running := 0.0
	for _, tx := range transactions {
		running += tx.Amount

		id := strconv.FormatInt(tx.ID, 10)
		if tx.ID == 0 {
			id = uuid.NewString()
		}

		label := time.Now().Format(timelineDateLayout)
		if t, err := time.Parse(time.RFC3339, tx.CreatedAt); err == nil {
			label = t.Format(timelineDateLayout)
		}

		points = append(points, models.TimelinePoint{ID: id, Label: label, Value: running})
	}

	return points
}

// buildXPByProject groups project transactions by resolved project name and
// sums their amounts, sorted by descending total. Ties keep their first
// encounter order.
func buildXPByProject(transactions []models.Transaction) []models.ProjectXP {
	totals := make(map[string]float64, len(transactions))
	order := make([]string, 0, len(transactions))

	for _, tx := range transactions {
		name := resolveProjectName(tx)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += tx.Amount
	}

	entries := make([]models.ProjectXP, 0, len(order))
	for _, name := range order {
		entries = append(entries, models.ProjectXP{Label: name, Value: totals[name]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

// resolveProjectName prefers the attached object name, then the last
// non-empty path segment, then an id-based placeholder.
func resolveProjectName(tx models.Transaction) string {
	if tx.Object != nil && tx.Object.Name != "" {
		return tx.Object.Name
	}

	if tx.Path != "" {
		segments := strings.Split(tx.Path, "/")
		for i := len(segments) - 1; i >= 0; i-- {
			if segments[i] != "" {
				return segments[i]
			}
		}
	}

	id := tx.ID
	if tx.Object != nil && tx.Object.ID != 0 {
		id = tx.Object.ID
	} else if tx.ObjectID != 0 {
		id = tx.ObjectID
	}
	return fmt.Sprintf("#%d", id)
}

var skillSeparators = regexp.MustCompile(`[_\s]+`)

// normalizeSkillKey maps a transaction type like "skill_sys_admin" to the
// catalog key form ("sys-admin"). Types without the skill_ prefix
// (case-insensitive) yield "".
func normalizeSkillKey(txType string) string {
	lowered := strings.ToLower(txType)
	if !strings.HasPrefix(lowered, "skill_") {
		return ""
	}
	return skillSeparators.ReplaceAllString(strings.TrimPrefix(lowered, "skill_"), "-")
}

// roundSkillValue rounds to one decimal place.
func roundSkillValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

// buildSkillRadar reduces skill transactions to the maximum observed
// amount per normalized key (proficiency is a high-water mark, not a sum)
// and projects the maxima through the two fixed skill catalogs. Axis order
// is the catalog's, never the data's; entries rounding to ≤ 0 are dropped.
func buildSkillRadar(transactions []models.Transaction) models.SkillRadar {
	maxima := make(map[string]float64)

	for _, tx := range transactions {
		key := normalizeSkillKey(tx.Type)
		if key == "" {
			continue
		}
		value := math.Max(tx.Amount, 0)
		if value > maxima[key] {
			maxima[key] = value
		}
	}

	toRadar := func(catalog []skillCatalogEntry) []models.SkillValue {
		values := make([]models.SkillValue, 0, len(catalog))
		for _, entry := range catalog {
			value := roundSkillValue(maxima[entry.key])
			if value > 0 {
				values = append(values, models.SkillValue{Label: entry.label, Value: value})
			}
		}
		return values
	}

	return models.SkillRadar{
		Technical:    toRadar(technicalSkills),
		Technologies: toRadar(technologySkills),
	}
}

// sumXP totals the amounts of the given transactions; used as the
// fallback when the server-side aggregate is absent.
func sumXP(transactions []models.Transaction) float64 {
	total := 0.0
	for _, tx := range transactions {
		total += tx.Amount
	}
	return total
}
