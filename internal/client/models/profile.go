package models

// Profile is the normalized user card shown at the top of the dashboard.
// Name is the space-joined firstName+lastName from attrs, falling back to
// the login when neither is present.
type Profile struct {
	ID     int64
	Login  string
	Name   string
	Campus string
	Email  string
	Attrs  map[string]any
}

// Summary carries the headline numbers. Every field defaults to 0 when the
// corresponding source data is absent.
type Summary struct {
	TotalXP        float64
	AuditRatio     float64
	AuditsGiven    float64
	AuditsReceived float64
	Level          float64
}

// TimelinePoint is one step of the cumulative XP timeline: Value is the
// running sum after the underlying transaction, Label a formatted date.
type TimelinePoint struct {
	ID    string
	Label string
	Value float64
}

// ProjectXP is the summed XP for one distinct project.
type ProjectXP struct {
	Label string
	Value float64
}

// SkillValue is one axis of a skill radar.
type SkillValue struct {
	Label string
	Value float64
}

// SkillRadar groups the two fixed-axis proficiency charts. Axis order
// follows the curated skill catalogs, not the input data.
type SkillRadar struct {
	Technical    []SkillValue
	Technologies []SkillValue
}

// ProfileData is the complete view model produced by one aggregation pass.
// It is recomputed whole on every fetch, never incrementally mutated.
type ProfileData struct {
	Profile     *Profile
	Summary     Summary
	XPTimeline  []TimelinePoint
	XPByProject []ProjectXP
	SkillRadar  SkillRadar
}
