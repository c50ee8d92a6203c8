package state

import "carrego/internal/domain"

// TripsStore is the trip-posting container for one transport mode. The
// submitted list only grows through successful saves; failed attempts leave
// it untouched.
type TripsStore struct {
	Fetch  Request
	Save   Request
	Lookup Request

	mode      domain.TripMode
	trips     []domain.Trip
	airports  []domain.Airport
	seaports  []domain.Seaport
	operators []domain.VesselOperator
}

// NewTripsStore creates a TripsStore for the given transport mode
func NewTripsStore(mode domain.TripMode) *TripsStore {
	return &TripsStore{mode: mode}
}

// Mode returns the container's transport mode
func (s *TripsStore) Mode() domain.TripMode { return s.mode }

// SetMode switches the container to another transport mode and drops the
// mode-specific snapshot.
func (s *TripsStore) SetMode(mode domain.TripMode) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.trips = nil
	s.airports = nil
	s.seaports = nil
	s.operators = nil
}

// FinishFetch applies a list-trips result: full-list replace on success
func (s *TripsStore) FinishFetch(trips []domain.Trip, err *domain.APIError) {
	s.Fetch.finish(err, func() {
		s.trips = trips
	})
}

// FinishSave applies a save-trip result: append on success
func (s *TripsStore) FinishSave(trip *domain.Trip, err *domain.APIError) {
	s.Save.finish(err, func() {
		if trip != nil {
			s.trips = append(s.trips, *trip)
		}
	})
}

// FinishAirportSearch applies an airport lookup result
func (s *TripsStore) FinishAirportSearch(airports []domain.Airport, err *domain.APIError) {
	s.Lookup.finish(err, func() {
		s.airports = airports
	})
}

// FinishPortSearch applies a seaport lookup result
func (s *TripsStore) FinishPortSearch(seaports []domain.Seaport, err *domain.APIError) {
	s.Lookup.finish(err, func() {
		s.seaports = seaports
	})
}

// FinishOperators applies a vessel operator listing result
func (s *TripsStore) FinishOperators(operators []domain.VesselOperator, err *domain.APIError) {
	s.Lookup.finish(err, func() {
		s.operators = operators
	})
}

// SetCached seeds the snapshot from the offline cache without touching the
// request lifecycle; a live fetch will replace it.
func (s *TripsStore) SetCached(trips []domain.Trip) {
	if len(s.trips) == 0 {
		s.trips = trips
	}
}

// Trips returns the current trip snapshot
func (s *TripsStore) Trips() []domain.Trip { return s.trips }

// Airports returns the last airport lookup result
func (s *TripsStore) Airports() []domain.Airport { return s.airports }

// Seaports returns the last seaport lookup result
func (s *TripsStore) Seaports() []domain.Seaport { return s.seaports }

// Operators returns the last vessel operator listing
func (s *TripsStore) Operators() []domain.VesselOperator { return s.operators }
