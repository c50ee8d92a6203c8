package cmd

import (
	"context"
	"fmt"

	"carrego/internal/domain"
)

// RegisterCmd creates an account from the terminal
type RegisterCmd struct {
	FirstName string `help:"First name" required:""`
	LastName  string `help:"Last name" required:""`
	Email     string `help:"Email address" required:""`
	Phone     string `help:"Phone number" required:""`
	Password  string `help:"Password" required:""`
}

// Run executes the register command
func (r *RegisterCmd) Run(cli *CLI) error {
	user, err := cli.Container.AuthService.Register(context.Background(), domain.Registration{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Account created for %s. Check %s for the verification code, then run:\n", user.FullName(), user.Email)
	fmt.Printf("  carrego verify --email %s --code <code>\n", user.Email)
	return nil
}

// VerifyCmd confirms the email one-time code and signs in
type VerifyCmd struct {
	Email  string `help:"Email address" required:""`
	Code   string `help:"One-time verification code"`
	Resend bool   `help:"Request a new code instead of verifying"`
}

// Run executes the verify command
func (v *VerifyCmd) Run(cli *CLI) error {
	ctx := context.Background()
	if v.Resend {
		if err := cli.Container.AuthService.ResendOTP(ctx, v.Email); err != nil {
			return err
		}
		fmt.Printf("New verification code sent to %s\n", v.Email)
		return nil
	}
	if v.Code == "" {
		return fmt.Errorf("either --code or --resend is required")
	}
	session, err := cli.Container.AuthService.VerifyOTP(ctx, v.Email, v.Code)
	if err != nil {
		return err
	}
	fmt.Printf("Email verified. Signed in as %s\n", session.User.FullName())
	return nil
}

// LoginCmd signs in and persists the session
type LoginCmd struct {
	Email    string `help:"Email address" required:""`
	Password string `help:"Password" required:""`
}

// Run executes the login command
func (l *LoginCmd) Run(cli *CLI) error {
	session, err := cli.Container.AuthService.Login(context.Background(), domain.Credentials{
		Email:    l.Email,
		Password: l.Password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", session.User.FullName())
	return nil
}

// ResetPasswordCmd sets a new password using the token emailed by the backend
type ResetPasswordCmd struct {
	Token    string `help:"Reset token from the password-reset email" required:""`
	Password string `help:"New password" required:""`
}

// Run executes the reset-password command
func (r *ResetPasswordCmd) Run(cli *CLI) error {
	if err := cli.Container.AuthService.ResetPassword(context.Background(), r.Token, r.Password); err != nil {
		return err
	}
	fmt.Println("Password updated. Sign in again with `carrego login`.")
	return nil
}

// LogoutCmd clears the persisted session
type LogoutCmd struct{}

// Run executes the logout command
func (l *LogoutCmd) Run(cli *CLI) error {
	if err := cli.Container.AuthService.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

// WhoamiCmd shows the signed-in user from the persisted session
type WhoamiCmd struct{}

// Run executes the whoami command
func (w *WhoamiCmd) Run(cli *CLI) error {
	session, err := restoreSession(cli)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", session.User.FullName(), session.User.Email)
	if session.User.KYCComplete {
		fmt.Println("Profile: complete")
	} else {
		fmt.Println("Profile: incomplete (run `carrego profile complete`)")
	}
	return nil
}

// restoreSession loads the persisted session and arms the API token slot.
// Commands that talk to authenticated endpoints call this first.
func restoreSession(cli *CLI) (*domain.AuthSession, error) {
	session, err := cli.Container.AuthService.Restore(context.Background())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return session, nil
}
