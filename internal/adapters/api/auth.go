package api

import (
	"context"

	"carrego/internal/domain"
	"carrego/internal/ports"
)

// Verify interface compliance at compile time
var (
	_ ports.AuthGateway = (*Client)(nil)
	_ ports.TokenHolder = (*Client)(nil)
)

// SignUp registers a new account. The account stays unverified until the
// OTP sent to the user's email is confirmed.
func (c *Client) SignUp(ctx context.Context, reg domain.Registration) (*domain.UserSummary, error) {
	var user domain.UserSummary
	if err := c.Post(ctx, "/auth/sign-up", reg, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignIn authenticates and returns the user together with a bearer token
func (c *Client) SignIn(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	var session domain.AuthSession
	if err := c.Post(ctx, "/auth/sign-in", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// VerifyOTP confirms a one-time code and returns an authenticated session
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthSession, error) {
	payload := struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}{Email: email, Code: code}

	var session domain.AuthSession
	if err := c.Post(ctx, "/auth/verify-otp", payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ResendOTP reissues the one-time code
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.Post(ctx, "/auth/resend-otp", payload, nil)
}

// ResetPassword sets a new password using a reset token from email
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload := struct {
		Password string `json:"password"`
	}{Password: newPassword}
	return c.Post(ctx, "/auth/reset-password/"+token, payload, nil)
}
