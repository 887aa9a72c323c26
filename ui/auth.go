// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/danielhkuo/alize-cli/api"
)

// AuthView drives every pre-login flow plus logout.
type AuthView struct {
	out     io.Writer
	in      *bufio.Reader
	client  *api.Client
	palette *Palette
}

func NewAuthView(out io.Writer, in io.Reader, client *api.Client, palette *Palette) *AuthView {
	return &AuthView{out: out, in: bufio.NewReader(in), client: client, palette: palette}
}

// Login prompts for credentials when they were not given as arguments,
// exchanges them for a token, and confirms.
func (v *AuthView) Login(ctx context.Context, email, password string) error {
	var err error
	if email == "" {
		if email, err = promptLine(v.out, v.in, "Email: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = promptLine(v.out, v.in, "Password: "); err != nil {
			return err
		}
	}

	if _, err := v.client.Login(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(v.out, v.palette.Good("Logged in as "+email+"."))
	return nil
}

// Register creates an account and logs the new user in.
func (v *AuthView) Register(ctx context.Context, email, password string) error {
	var err error
	if email == "" {
		if email, err = promptLine(v.out, v.in, "Email: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = promptLine(v.out, v.in, "Password: "); err != nil {
			return err
		}
	}

	if _, err := v.client.Register(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(v.out, v.palette.Good("Account created. You are logged in."))
	fmt.Fprintln(v.out, v.palette.Dim("Run 'alize verify-email request' to verify your address."))
	return nil
}

// Logout clears the local session.
func (v *AuthView) Logout() error {
	if err := v.client.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(v.out, "Logged out.")
	return nil
}

// OAuth lists the configured providers and prints the Google entry URL.
// The user finishes in a browser and pastes the resulting token back via
// the token argument on a second invocation.
func (v *AuthView) OAuth(ctx context.Context, token string) error {
	if token != "" {
		if err := v.client.CompleteOAuth(token); err != nil {
			return err
		}
		fmt.Fprintln(v.out, v.palette.Good("Logged in via OAuth."))
		return nil
	}

	providers, err := v.client.OAuthProviders(ctx)
	if err != nil {
		return err
	}
	if len(providers.Providers) == 0 {
		fmt.Fprintln(v.out, "No OAuth providers configured.")
		return nil
	}
	fmt.Fprintf(v.out, "Providers: %v\n", providers.Providers)
	fmt.Fprintln(v.out, "Open in a browser:")
	fmt.Fprintln(v.out, v.palette.Accent("  "+v.client.OAuthGoogleURL()))
	fmt.Fprintln(v.out, v.palette.Dim("Then run: alize oauth <token>"))
	return nil
}

// RequestPasswordReset asks the backend to email a reset token.
func (v *AuthView) RequestPasswordReset(ctx context.Context, email string) error {
	var err error
	if email == "" {
		if email, err = promptLine(v.out, v.in, "Email: "); err != nil {
			return err
		}
	}
	if err := v.client.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(v.out, "If that address exists, a reset email is on its way.")
	return nil
}

// ConfirmPasswordReset redeems an emailed token for a new password.
func (v *AuthView) ConfirmPasswordReset(ctx context.Context, token string) error {
	var err error
	if token == "" {
		if token, err = promptLine(v.out, v.in, "Reset token: "); err != nil {
			return err
		}
	}
	password, err := promptLine(v.out, v.in, "New password: ")
	if err != nil {
		return err
	}
	if err := v.client.ConfirmPasswordReset(ctx, token, password); err != nil {
		return err
	}
	fmt.Fprintln(v.out, v.palette.Good("Password updated. Log in with the new one."))
	return nil
}

// RequestEmailVerification sends the verification email (requires login).
func (v *AuthView) RequestEmailVerification(ctx context.Context) error {
	if err := v.client.RequestEmailVerification(ctx); err != nil {
		return err
	}
	fmt.Fprintln(v.out, "Verification email sent.")
	return nil
}

// ConfirmEmailVerification redeems an emailed verification token.
func (v *AuthView) ConfirmEmailVerification(ctx context.Context, token string) error {
	var err error
	if token == "" {
		if token, err = promptLine(v.out, v.in, "Verification token: "); err != nil {
			return err
		}
	}
	if err := v.client.ConfirmEmailVerification(ctx, token); err != nil {
		return err
	}
	fmt.Fprintln(v.out, v.palette.Good("Email verified."))
	return nil
}
