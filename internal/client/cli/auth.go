package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/littlerefugees/refugio-cli/internal/client/models"
	"github.com/littlerefugees/refugio-cli/internal/client/validate"
)

// Input seams, swappable in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the account details, validates them locally and
// creates the account. The user logs in separately afterwards.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	if err := validate.FullName(fullName); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validate.Email(email); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}
	if err := validate.Password(password); err != nil {
		return err
	}

	confirmation, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	if err := validate.PasswordsMatch(password, confirmation); err != nil {
		return err
	}

	req := models.RegisterRequest{FullName: fullName, Email: email, Password: password}
	if err := a.auth.Register(ctx, req); err != nil {
		return err
	}

	printlnFn("Account created. You can log in now.")
	return nil
}

// Login authenticates and installs the session. A fresh interactive login
// triggers the one-time first-login choice for accounts that have not made
// it yet.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validate.Email(email); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}

	res, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.session.SetSession(ctx, res.Token, &res.User); err != nil {
		return err
	}

	printlnFn("Welcome, " + res.User.FullName + "!")

	return a.maybeFirstLogin(ctx)
}

// Logout clears the session and returns to the root screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.router.NavigateTo("/")
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current user and, when the stored bearer token is a
// JWT, its expiry claim. The claim is decoded without verification and is
// informational only: session validity is always discovered reactively
// through failed requests, never decided from the clock.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> role=%s", u.FullName, u.Email, u.Role))
	if u.ShelterID != nil {
		owner := ""
		if u.IsAdminOwner {
			owner = " (owner)"
		}
		printlnFn(fmt.Sprintf("shelter #%d%s", *u.ShelterID, owner))
	}

	token, err := a.store.Token(ctx)
	if err != nil || token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		printlnFn("token expires " + exp.Format(time.RFC3339))
	}
	return nil
}
