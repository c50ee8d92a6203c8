package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ports"
)

// TripService coordinates trip posting, listing, and reference-data lookups,
// keeping the offline cache in sync with successful fetches.
type TripService struct {
	gateway ports.TripGateway
	cache   ports.ListingCache
}

// NewTripService creates a new TripService
func NewTripService(gateway ports.TripGateway, cache ports.ListingCache) *TripService {
	return &TripService{
		gateway: gateway,
		cache:   cache,
	}
}

// SaveTrip posts a new trip
func (s *TripService) SaveTrip(ctx context.Context, trip domain.NewTrip) (*domain.Trip, error) {
	logging.Logger.Info("Saving trip",
		"mode", trip.Mode,
		"origin", trip.Origin,
		"destination", trip.Destination)

	saved, err := s.gateway.SaveTrip(ctx, trip)
	if err != nil {
		logging.Logger.Error("Failed to save trip", "mode", trip.Mode, "error", err)
		return nil, err
	}

	logging.Logger.Info("Trip saved", "trip_id", saved.ID)
	return saved, nil
}

// ListTrips fetches the caller's trips for one mode and refreshes the cache
// on success.
func (s *TripService) ListTrips(ctx context.Context, mode domain.TripMode) ([]domain.Trip, error) {
	trips, err := s.gateway.ListTrips(ctx, mode)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.PutTrips(ctx, mode, trips); cacheErr != nil {
		// Cache refresh failure never fails the fetch
		logging.Logger.Warn("Failed to cache trips", "mode", mode, "error", cacheErr)
	}
	return trips, nil
}

// CachedTrips returns the last successfully fetched listing for one mode
func (s *TripService) CachedTrips(ctx context.Context, mode domain.TripMode) ([]domain.Trip, error) {
	return s.cache.Trips(ctx, mode)
}

// SearchAirports looks up airports by city
func (s *TripService) SearchAirports(ctx context.Context, city string) ([]domain.Airport, error) {
	return s.gateway.SearchAirports(ctx, city)
}

// MarineReference fetches the seaport matches and the vessel operator list
// in parallel before showing the marine trip form.
func (s *TripService) MarineReference(ctx context.Context, portQuery string) ([]domain.Seaport, []domain.VesselOperator, error) {
	var (
		seaports  []domain.Seaport
		operators []domain.VesselOperator
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		seaports, err = s.gateway.SearchPorts(gctx, portQuery)
		return err
	})
	g.Go(func() error {
		var err error
		operators, err = s.gateway.VesselOperators(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return seaports, operators, nil
}
