package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alii-alqassab/graphql/internal/common"
)

func (a *App) getStatus() string {
	if a.data != nil && a.data.Profile != nil && a.data.Profile.Login != "" {
		return fmt.Sprintf(" (%s)", a.data.Profile.Login)
	}
	if a.isLoggedIn() {
		return " (authenticated)"
	}
	return ""
}

// Root resumes any persisted session, then hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Profile dashboard (type 'help' for commands)")

	if err := a.resume(ctx); err != nil && !errors.Is(err, common.ErrNoSession) {
		fmt.Fprintf(a.out, "Stored session unusable: %v\n", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// resume recovers a persisted token and, when one is found, loads the
// profile straight away.
func (a *App) resume(ctx context.Context) error {
	token, userID, err := a.authService.Resume(ctx)
	if err != nil {
		return err
	}

	a.token = token
	a.userID = userID
	fmt.Fprintln(a.out, "Resumed stored session.")

	return a.loadProfile(ctx)
}
