package services

import (
	"context"
	"fmt"

	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ports"
)

// AuthService coordinates account operations, the credential store, and the
// HTTP adapter's token slot.
type AuthService struct {
	gateway ports.AuthGateway
	creds   ports.CredentialStore
	tokens  ports.TokenHolder
}

// NewAuthService creates a new AuthService
func NewAuthService(gateway ports.AuthGateway, creds ports.CredentialStore, tokens ports.TokenHolder) *AuthService {
	return &AuthService{
		gateway: gateway,
		creds:   creds,
		tokens:  tokens,
	}
}

// Register creates a new account. The user must verify the emailed OTP
// before signing in.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.UserSummary, error) {
	logging.Logger.Info("Registering account", "email", reg.Email)

	user, err := s.gateway.SignUp(ctx, reg)
	if err != nil {
		logging.Logger.Error("Registration failed", "email", reg.Email, "error", err)
		return nil, err
	}

	logging.Logger.Info("Account registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates, persists the session blob, and arms the token slot
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	logging.Logger.Info("Signing in", "email", creds.Email)

	session, err := s.gateway.SignIn(ctx, creds)
	if err != nil {
		logging.Logger.Error("Sign-in failed", "email", creds.Email, "error", err)
		return nil, err
	}

	s.adopt(*session)
	return session, nil
}

// VerifyOTP confirms the one-time code and adopts the returned session
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthSession, error) {
	logging.Logger.Info("Verifying OTP", "email", email)

	session, err := s.gateway.VerifyOTP(ctx, email, code)
	if err != nil {
		logging.Logger.Error("OTP verification failed", "email", email, "error", err)
		return nil, err
	}

	s.adopt(*session)
	return session, nil
}

// ResendOTP reissues the one-time code
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	logging.Logger.Info("Resending OTP", "email", email)
	return s.gateway.ResendOTP(ctx, email)
}

// ResetPassword sets a new password using a reset token
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	logging.Logger.Info("Resetting password")
	return s.gateway.ResetPassword(ctx, token, newPassword)
}

// Restore loads the persisted session at process start and arms the token
// slot when one exists. Returns (nil, nil) on a cold start.
func (s *AuthService) Restore(ctx context.Context) (*domain.AuthSession, error) {
	session, err := s.creds.Restore()
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if session == nil {
		logging.Logger.Debug("No persisted session found")
		return nil, nil
	}

	s.tokens.SetAuthToken(session.Token)
	logging.Logger.Info("Session restored", "user", session.User.Email)
	return session, nil
}

// Logout clears the session blob and disarms the token slot
func (s *AuthService) Logout() error {
	logging.Logger.Info("Logging out")
	s.tokens.SetAuthToken("")
	if err := s.creds.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// adopt persists a fresh session and arms the token slot. Persist failure is
// logged but does not fail the sign-in; the in-memory session still works.
func (s *AuthService) adopt(session domain.AuthSession) {
	s.tokens.SetAuthToken(session.Token)
	if err := s.creds.Persist(session); err != nil {
		logging.Logger.Warn("Failed to persist session", "error", err)
	}
	logging.Logger.Info("Signed in", "user", session.User.Email)
}
