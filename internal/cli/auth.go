package cli

import (
	"context"
	"os"

	"github.com/evizor/console/internal/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// Login prompts for credentials and authenticates. Accounts gated behind
// two-factor get a follow-up code prompt before the session is established.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in as", a.sess.User().Email)
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	rememberMe, err := getYesNo(a.reader, "Remember me on this device?", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.auth.Login(ctx, email, password, rememberMe)
	if err != nil {
		printlnFn(api.MessageFor(err))
		return err
	}

	if res.TwoFARequired {
		code, err := getSimpleText(a.reader, "Enter the 6-digit code from your authenticator", os.Stdout)
		if err != nil {
			return err
		}
		res, err = a.auth.VerifyTwoFA(ctx, res.Email, code, rememberMe)
		if err != nil {
			printlnFn(api.MessageFor(err))
			return err
		}
	}

	printlnFn("Logged in as", res.User.Email, string(res.User.Role))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.sess.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(u.FullName(), "<"+u.Email+">", string(u.Role))
	if !a.sess.ProfileCompleted() {
		printlnFn("Profile incomplete: some features may be unavailable.")
	}
	return nil
}

// ForgotPassword triggers the backend password-reset email.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		printlnFn(api.MessageFor(err))
		return err
	}
	printlnFn("If the account exists, a reset email is on its way.")
	return nil
}
