package ui

import "carrego/internal/domain"

// Result messages complete the three-phase request lifecycle: the dispatching
// screen marks the store pending via Begin, the command runs the request off
// the update loop, and the message below applies fulfilled or rejected back
// on the update loop. Every err is an *domain.APIError after normalization.

// sessionRestoredMsg completes the initial session load
type sessionRestoredMsg struct {
	session *domain.AuthSession
	err     error
}

// loginResultMsg completes a sign-in attempt
type loginResultMsg struct {
	session *domain.AuthSession
	err     error
}

// registerResultMsg completes a sign-up attempt
type registerResultMsg struct {
	user *domain.UserSummary
	err  error
}

// otpVerifiedMsg completes an OTP confirmation
type otpVerifiedMsg struct {
	session *domain.AuthSession
	err     error
}

// otpResentMsg completes an OTP reissue
type otpResentMsg struct {
	err error
}

// loggedOutMsg completes a logout
type loggedOutMsg struct {
	err error
}

// tripsLoadedMsg completes a list-trips fetch
type tripsLoadedMsg struct {
	mode  domain.TripMode
	trips []domain.Trip
	err   error
}

// cachedTripsMsg seeds the trip list from the offline cache
type cachedTripsMsg struct {
	mode  domain.TripMode
	trips []domain.Trip
}

// tripSavedMsg completes a save-trip attempt
type tripSavedMsg struct {
	trip *domain.Trip
	err  error
}

// airportsFoundMsg completes an airport lookup
type airportsFoundMsg struct {
	airports []domain.Airport
	err      error
}

// marineReferenceMsg completes the parallel seaport/operator prefetch
type marineReferenceMsg struct {
	seaports  []domain.Seaport
	operators []domain.VesselOperator
	err       error
}

// vehiclesLoadedMsg completes a fleet fetch
type vehiclesLoadedMsg struct {
	vehicles []domain.Vehicle
	err      error
}

// cachedVehiclesMsg seeds the fleet from the offline cache
type cachedVehiclesMsg struct {
	vehicles []domain.Vehicle
}

// vehicleAddedMsg completes an add-vehicle attempt
type vehicleAddedMsg struct {
	vehicle *domain.Vehicle
	err     error
}

// vehicleDeletedMsg completes a delete-vehicle attempt
type vehicleDeletedMsg struct {
	id  string
	err error
}

// reportsLoadedMsg completes a pending-reports fetch
type reportsLoadedMsg struct {
	reports []domain.Report
	err     error
}

// cachedReportsMsg seeds the report list from the offline cache
type cachedReportsMsg struct {
	reports []domain.Report
}

// reportSubmittedMsg completes a submit-report attempt
type reportSubmittedMsg struct {
	report *domain.Report
	err    error
}

// profileCompletedMsg completes a complete-profile submission
type profileCompletedMsg struct {
	profile *domain.Profile
	err     error
}

// documentUploadedMsg completes a document upload; which is the wizard field
// the URL belongs to ("id" or "selfie")
type documentUploadedMsg struct {
	which string
	url   string
	err   error
}
