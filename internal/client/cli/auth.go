package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alii-alqassab/graphql/internal/common"
	"github.com/alii-alqassab/graphql/internal/tokenx"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, exchanges them for a bearer token and
// loads the profile. The password byte slice is securely wiped before
// returning; both prompt values may be empty, in which case the service
// rejects the attempt before touching the network.
//
// A login that succeeds but whose first profile fetch fails keeps the
// session; the user can retry with 'refresh'.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.authService.Login(ctx, identifier, password)
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		return err
	}

	userID, err := tokenx.UserID(token)
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		return err
	}

	a.token = token
	a.userID = userID
	fmt.Fprintln(a.out, "Logged in.")

	if err := a.loadProfile(ctx); err != nil {
		fmt.Fprintln(a.out, "Profile not loaded yet; try 'refresh'.")
	}
	return nil
}

// Logout discards the persisted token and the in-memory view model.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	a.clearSession()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// errorMessage strips the sentinel prefix added by fmt.Errorf wrapping, so
// the user sees a plain sentence.
func errorMessage(err error) string {
	for _, sentinel := range []error{
		common.ErrValidation, common.ErrAuth, common.ErrProtocol,
		common.ErrSession, common.ErrNoSession,
	} {
		prefix := sentinel.Error() + ": "
		if msg, ok := strings.CutPrefix(err.Error(), prefix); ok {
			return msg
		}
	}
	return err.Error()
}
