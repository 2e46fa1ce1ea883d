package cli

import (
	"context"
	"os"
	"strings"
)

// maybeFirstLogin runs the one-time onboarding choice: right after a live
// login (never after a restore), users who have not completed it yet pick
// between adopting and managing a shelter. Either choice marks the flag on
// the backend; "manage" additionally walks into shelter creation.
func (a *App) maybeFirstLogin(ctx context.Context) error {
	if !a.session.JustLoggedIn() {
		return nil
	}
	defer a.session.ClearJustLoggedIn()

	u := a.session.CurrentUser()
	if u == nil || u.FirstLoginCompleted {
		return nil
	}

	choice, err := getSimpleText(a.reader, "What brings you here? (adopt / manage)", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.users.CompleteFirstLogin(ctx)
	if err != nil {
		return err
	}
	if err := a.session.UpdateCurrentUser(ctx, updated); err != nil {
		return err
	}

	if strings.EqualFold(choice, "manage") {
		printlnFn("Let's set up your shelter.")
		return a.CreateShelter(ctx)
	}

	printlnFn("Happy browsing! Try the 'animals' command.")
	return nil
}
