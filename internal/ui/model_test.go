package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrego/internal/domain"
)

// newTestModel builds a model without running Init; tests drive Update with
// result messages directly, so the services are never reached.
func newTestModel() *Model {
	return NewModel(Dependencies{DefaultMode: domain.ModeAir})
}

func TestRestoreRoutesToLoginOnColdStart(t *testing.T) {
	m := newTestModel()

	_, _ = m.Update(sessionRestoredMsg{session: nil})

	assert.Equal(t, stateLogin, m.state)
	assert.False(t, m.session.IsRestoring())
	assert.False(t, m.session.IsAuthenticated())
	require.NotNil(t, m.loginForm)
}

func TestRestoreRoutesToMenuWhenSessionExists(t *testing.T) {
	m := newTestModel()

	_, _ = m.Update(sessionRestoredMsg{session: &domain.AuthSession{
		User:  domain.UserSummary{ID: "u1", Email: "ana@example.com"},
		Token: "tok-123",
	}})

	assert.Equal(t, stateMenu, m.state)
	assert.True(t, m.session.IsAuthenticated())
	assert.Equal(t, "tok-123", m.session.Token())
}

func TestRestoreErrorSurfacesAndRoutesToLogin(t *testing.T) {
	m := newTestModel()

	_, _ = m.Update(sessionRestoredMsg{err: &domain.APIError{Code: 0, Message: "Network error"}})

	assert.Equal(t, stateLogin, m.state)
	assert.False(t, m.session.IsAuthenticated())
	require.True(t, m.errors.HasError())
	assert.Contains(t, m.errors.GetError().Error(), "Network error")
}

func TestLoginFailureShowsErrorAndStaysOnLogin(t *testing.T) {
	m := newTestModel()
	m.session.Begin()

	_, _ = m.Update(loginResultMsg{err: &domain.APIError{Code: 401, Message: "Invalid credentials"}})

	assert.Equal(t, stateLogin, m.state)
	assert.False(t, m.session.IsAuthenticated())
	require.True(t, m.errors.HasError())
	assert.Contains(t, m.errors.GetError().Error(), "Invalid credentials")
	require.NotNil(t, m.session.Err())
	assert.Equal(t, 401, m.session.Err().Code)
}

func TestLoginSuccessEntersMenu(t *testing.T) {
	m := newTestModel()
	m.session.Begin()

	_, _ = m.Update(loginResultMsg{session: &domain.AuthSession{
		User:  domain.UserSummary{ID: "u1"},
		Token: "tok-123",
	}})

	assert.Equal(t, stateMenu, m.state)
	assert.True(t, m.session.IsAuthenticated())
	assert.False(t, m.errors.HasError())
}

func TestLogoutResetsSessionAndReturnsToLogin(t *testing.T) {
	m := newTestModel()
	m.session.Authenticate(domain.UserSummary{ID: "u1"}, "tok-123")

	_, _ = m.Update(loggedOutMsg{})

	assert.Equal(t, stateLogin, m.state)
	assert.False(t, m.session.IsAuthenticated())
	assert.Empty(t, m.session.Token())
}

func TestStaleTripsResultIsDroppedAndRefreshRedispatched(t *testing.T) {
	m := newTestModel()

	// Air fetch goes out, then the user switches modes while it is in
	// flight; the switch-time refresh is refused by the in-flight guard.
	require.True(t, m.tripsState.Fetch.Begin())
	m.tripsState.SetMode(domain.ModeGround)
	assert.Nil(t, m.refreshTrips(), "guard refuses a second fetch while one is pending")

	// The air result lands after the switch
	_, cmd := m.Update(tripsLoadedMsg{mode: domain.ModeAir, trips: []domain.Trip{{ID: "air1"}}})

	assert.Empty(t, m.tripsState.Trips(), "stale listing never reaches the snapshot")
	assert.NotNil(t, cmd, "a fetch for the current mode is dispatched")
	assert.True(t, m.tripsState.Fetch.Loading(), "the dispatched fetch is now the pending one")

	// The current mode's result completes the new fetch normally
	_, _ = m.Update(tripsLoadedMsg{mode: domain.ModeGround, trips: []domain.Trip{{ID: "g1"}}})

	assert.False(t, m.tripsState.Fetch.Loading())
	require.Len(t, m.tripsState.Trips(), 1)
	assert.Equal(t, "g1", m.tripsState.Trips()[0].ID)
}

func TestTripsResultForCurrentModeApplies(t *testing.T) {
	m := newTestModel()
	m.tripsState.Fetch.Begin()

	_, _ = m.Update(tripsLoadedMsg{mode: domain.ModeAir, trips: []domain.Trip{{ID: "t1"}}})

	assert.Len(t, m.tripsState.Trips(), 1)
	assert.False(t, m.tripsState.Fetch.Loading())
}

func TestVehicleDeleteResultRemovesFromFleet(t *testing.T) {
	m := newTestModel()
	m.vehiclesState.Fetch.Begin()
	m.vehiclesState.FinishFetch([]domain.Vehicle{{ID: "v1"}, {ID: "v2"}}, nil)
	m.vehicleIndex = 1
	m.vehiclesState.Delete.Begin()

	_, _ = m.Update(vehicleDeletedMsg{id: "v2"})

	vehicles := m.vehiclesState.Vehicles()
	require.Len(t, vehicles, 1)
	assert.Equal(t, "v1", vehicles[0].ID)
	assert.Equal(t, 0, m.vehicleIndex, "selection clamps to the shrunk list")
}

func TestReportSubmitNavigatesBackWithoutLocalAppend(t *testing.T) {
	m := newTestModel()
	m.state = stateReportForm
	m.reportsState.Submit.Begin()

	_, cmd := m.Update(reportSubmittedMsg{report: &domain.Report{ID: "r1"}})

	assert.Equal(t, stateReports, m.state)
	assert.Empty(t, m.reportsState.Reports(), "the pending list refreshes from the server instead")
	assert.NotNil(t, cmd, "a refresh is dispatched")
	assert.True(t, m.reportsState.Fetch.Loading())
}

func TestDocumentUploadMergesURLIntoDraft(t *testing.T) {
	m := newTestModel()
	m.profileState.Upload.Begin()

	_, _ = m.Update(documentUploadedMsg{which: "id", url: "https://cdn.example.com/id.png"})

	assert.Equal(t, "https://cdn.example.com/id.png", m.profileState.Draft().IDDocumentURL)
	assert.False(t, m.profileState.Upload.Loading())
}

func TestDeferredProfileSubmitWaitsForUploads(t *testing.T) {
	m := newTestModel()
	m.profileState.Upload.Begin()
	m.submitPending = true

	_, cmd := m.Update(documentUploadedMsg{which: "selfie", url: "https://cdn.example.com/selfie.png"})

	assert.NotNil(t, cmd, "the queued submit fires once uploads drain")
	assert.True(t, m.profileState.Submit.Loading())
	assert.False(t, m.submitPending)
}

func TestProfileCompletedClearsDraftAndEntersMenu(t *testing.T) {
	m := newTestModel()
	m.state = stateProfile
	m.profileState.ApplyPatch(domain.ProfilePatch{FirstName: ptr("Ana")})
	m.profileState.Submit.Begin()

	_, _ = m.Update(profileCompletedMsg{profile: &domain.Profile{UserID: "u1", FirstName: "Ana"}})

	assert.Equal(t, stateMenu, m.state)
	assert.Empty(t, m.profileState.Draft().FirstName)
	require.NotNil(t, m.session.Profile())
	assert.Equal(t, "u1", m.session.Profile().UserID)
}

func ptr(s string) *string { return &s }
