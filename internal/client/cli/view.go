package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/alii-alqassab/graphql/internal/client/services"
)

// loadProfile runs one full aggregation pass and replaces the view model.
func (a *App) loadProfile(ctx context.Context) error {
	data, err := a.profileService.Fetch(ctx, a.token, a.userID)
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		return err
	}
	a.data = data
	return a.ShowProfile(ctx)
}

// Refresh re-fetches the profile. On failure the previous view model, if
// any, stays on screen; without one the user is told how to recover.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	data, err := a.profileService.Fetch(ctx, a.token, a.userID)
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		if a.data != nil {
			fmt.Fprintln(a.out, "Showing previously loaded data.")
			return nil
		}
		fmt.Fprintln(a.out, "No data loaded; try 'refresh' again or 'logout'.")
		return err
	}

	a.data = data
	return a.ShowProfile(ctx)
}

// requireData gates the display commands on a loaded view model.
func (a *App) requireData() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return false
	}
	if a.data == nil {
		fmt.Fprintln(a.out, "No data loaded; try 'refresh'.")
		return false
	}
	return true
}

// ShowProfile prints the summary card: identity line plus the headline
// numbers.
func (a *App) ShowProfile(ctx context.Context) error {
	if !a.requireData() {
		return nil
	}

	d := a.data
	if d.Profile != nil {
		fmt.Fprintf(a.out, "[%s] %s (%s)\n", services.Initials(d.Profile.Name), d.Profile.Name, d.Profile.Login)
		if d.Profile.Campus != "" {
			fmt.Fprintf(a.out, "Campus: %s\n", d.Profile.Campus)
		}
		if d.Profile.Email != "" {
			fmt.Fprintf(a.out, "Email: %s\n", d.Profile.Email)
		}
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total XP\t%s\n", services.FormatXP(d.Summary.TotalXP))
	fmt.Fprintf(w, "Level\t%.0f\n", d.Summary.Level)
	fmt.Fprintf(w, "Audit ratio\t%.1f\n", d.Summary.AuditRatio)
	fmt.Fprintf(w, "Audits given\t%s\n", services.FormatXP(d.Summary.AuditsGiven))
	fmt.Fprintf(w, "Audits received\t%s\n", services.FormatXP(d.Summary.AuditsReceived))
	return w.Flush()
}

// ShowXP prints the cumulative XP timeline.
func (a *App) ShowXP(ctx context.Context) error {
	if !a.requireData() {
		return nil
	}

	if len(a.data.XPTimeline) == 0 {
		fmt.Fprintln(a.out, "XP data not available yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, point := range a.data.XPTimeline {
		fmt.Fprintf(w, "%s\t%s\n", point.Label, services.FormatXP(point.Value))
	}
	return w.Flush()
}

// ShowProjects prints XP grouped by project, highest first.
func (a *App) ShowProjects(ctx context.Context) error {
	if !a.requireData() {
		return nil
	}

	if len(a.data.XPByProject) == 0 {
		fmt.Fprintln(a.out, "XP data not available yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, project := range a.data.XPByProject {
		fmt.Fprintf(w, "%s\t%s\n", project.Label, services.FormatXP(project.Value))
	}
	return w.Flush()
}

// ShowSkills prints the two proficiency collections.
func (a *App) ShowSkills(ctx context.Context) error {
	if !a.requireData() {
		return nil
	}

	radar := a.data.SkillRadar
	if len(radar.Technical) == 0 && len(radar.Technologies) == 0 {
		fmt.Fprintln(a.out, "Skill data not available yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if len(radar.Technical) > 0 {
		fmt.Fprintln(w, "Technical skills")
		for _, skill := range radar.Technical {
			fmt.Fprintf(w, "  %s\t%.1f\n", skill.Label, skill.Value)
		}
	}
	if len(radar.Technologies) > 0 {
		fmt.Fprintln(w, "Technologies")
		for _, skill := range radar.Technologies {
			fmt.Fprintf(w, "  %s\t%.1f\n", skill.Label, skill.Value)
		}
	}
	return w.Flush()
}
