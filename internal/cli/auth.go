package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkrasnovs/launchboard/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, and password and creates an account.
// Registration signs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignUp(ctx, name, email, string(password)); err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Println("Success! You are now signed in.")
	return nil
}

// Login prompts for email and password and signs the user in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	fmt.Println("Login successful")
	return nil
}

// Logout clears the session. Safe to call when already signed out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	fmt.Println("Signed out")
	return nil
}
