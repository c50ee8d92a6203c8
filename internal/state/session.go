package state

import "carrego/internal/domain"

// SessionStore is the auth/session container. The invariant "token is
// non-empty iff authenticated" holds because the only mutations are the
// Authenticate/Reset pair.
type SessionStore struct {
	Request

	// Resend tracks OTP reissue separately so it never blocks the main
	// login/verify lifecycle
	Resend Request

	authenticated bool
	user          *domain.UserSummary
	token         string
	profile       *domain.Profile

	hasLaunched bool
	restoring   bool
	restoreDone bool
}

// NewSessionStore creates a SessionStore in the initial restoring phase
func NewSessionStore() *SessionStore {
	return &SessionStore{restoring: true}
}

// Authenticate records a successful login/OTP-verify/restore
func (s *SessionStore) Authenticate(user domain.UserSummary, token string) {
	s.Succeed()
	u := user
	s.user = &u
	s.token = token
	s.authenticated = token != ""
}

// FinishRestore completes the initial session-load phase. It runs exactly
// once; later calls only apply the session, never re-enter restoring.
func (s *SessionStore) FinishRestore(session *domain.AuthSession) {
	if session != nil {
		s.Authenticate(session.User, session.Token)
	} else {
		s.Succeed()
	}
	if !s.restoreDone {
		s.restoring = false
		s.restoreDone = true
	}
}

// Reset returns the container to its unauthenticated defaults (logout)
func (s *SessionStore) Reset() {
	s.Succeed()
	s.authenticated = false
	s.user = nil
	s.token = ""
	s.profile = nil
}

// SetProfile stores the latest KYC profile snapshot
func (s *SessionStore) SetProfile(profile *domain.Profile) {
	s.profile = profile
}

// MarkLaunched records that the first screen has been shown
func (s *SessionStore) MarkLaunched() {
	s.hasLaunched = true
}

// IsAuthenticated reports whether a session is active
func (s *SessionStore) IsAuthenticated() bool { return s.authenticated }

// Token returns the bearer token, empty when unauthenticated
func (s *SessionStore) Token() string { return s.token }

// User returns the authenticated user, nil when unauthenticated
func (s *SessionStore) User() *domain.UserSummary { return s.user }

// Profile returns the latest profile snapshot, may be nil
func (s *SessionStore) Profile() *domain.Profile { return s.profile }

// IsRestoring reports whether the initial session load is still running
func (s *SessionStore) IsRestoring() bool { return s.restoring }

// HasLaunched reports whether the first screen has been shown
func (s *SessionStore) HasLaunched() bool { return s.hasLaunched }
