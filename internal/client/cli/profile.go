package cli

import (
	"context"
	"errors"
	"os"

	"github.com/littlerefugees/refugio-cli/internal/client/models"
	"github.com/littlerefugees/refugio-cli/internal/client/services"
	"github.com/littlerefugees/refugio-cli/internal/client/validate"
)

var errNotLoggedIn = errors.New("log in first")

// Profile edits the current user's name and email. The backend asks for the
// current password to authorize the change.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		return errNotLoggedIn
	}

	fullName, err := GetOptionalText(a.reader, "Full name ["+u.FullName+"]", u.FullName, os.Stdout)
	if err != nil {
		return err
	}
	if err := validate.FullName(fullName); err != nil {
		return err
	}

	email, err := GetOptionalText(a.reader, "Email ["+u.Email+"]", u.Email, os.Stdout)
	if err != nil {
		return err
	}
	if err := validate.Email(email); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}

	updated, err := a.users.UpdateMyProfile(ctx, services.ProfileUpdate{
		FullName:        fullName,
		Email:           email,
		CurrentPassword: password,
	})
	if err != nil {
		return err
	}

	if err := a.session.UpdateCurrentUser(ctx, updated); err != nil {
		return err
	}
	a.notifier.Success("", "Profile updated.")
	return nil
}

// ChangePassword sets a new password and then deliberately terminates the
// session, so the user logs back in with the fresh credentials. This is a
// designed post-success action, not error handling.
func (a *App) ChangePassword(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		return errNotLoggedIn
	}

	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}

	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	if err := validate.Password(newPassword); err != nil {
		return err
	}

	confirmation, err := getPassword(os.Stdout, "Repeat new password")
	if err != nil {
		return err
	}
	if err := validate.PasswordsMatch(newPassword, confirmation); err != nil {
		return err
	}

	if _, err := a.users.ChangePassword(ctx, u.FullName, u.Email, current, newPassword); err != nil {
		return err
	}

	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.router.NavigateTo("/auth/login")
	a.notifier.Success("", "Password changed. Please log in again.")
	return nil
}

// DeleteAccount removes the account after a password confirmation and logs
// out.
func (a *App) DeleteAccount(ctx context.Context) error {
	if a.session.CurrentUser() == nil {
		return errNotLoggedIn
	}

	confirmation, err := getSimpleText(a.reader, "Type DELETE to remove your account", os.Stdout)
	if err != nil {
		return err
	}
	if confirmation != "DELETE" {
		printlnFn("Aborted.")
		return nil
	}

	password, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}

	if err := a.users.DeleteMyAccount(ctx, password); err != nil {
		return err
	}

	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.router.NavigateTo("/")
	a.notifier.Info("", "Account deleted.")
	return nil
}

// CreateShelter registers a new shelter owned by the current user.
func (a *App) CreateShelter(ctx context.Context) error {
	if a.session.CurrentUser() == nil {
		return errNotLoggedIn
	}

	name, err := getSimpleText(a.reader, "Shelter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Contact email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validate.Email(email); err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetOptionalText(a.reader, "Phone (optional)", "", os.Stdout)
	if err != nil {
		return err
	}

	payload := models.ShelterCreate{Name: name, Email: email, Address: address}
	if phone != "" {
		payload.Phone = &phone
	}

	if err := a.shelters.Create(ctx, payload); err != nil {
		return err
	}
	a.notifier.Success("", "Shelter created. Log in again to refresh your role.")
	return nil
}
