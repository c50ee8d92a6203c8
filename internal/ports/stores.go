package ports

import (
	"context"

	"carrego/internal/domain"
)

// CredentialStore persists the authenticated session as a single local blob.
// Restore returns (nil, nil) when nothing usable is stored.
type CredentialStore interface {
	Persist(session domain.AuthSession) error
	Restore() (*domain.AuthSession, error)
	Clear() error
}

// ListingCache keeps the last successfully fetched listings for offline
// display. Put replaces the whole listing; Get returns an empty slice when
// nothing is cached.
type ListingCache interface {
	PutTrips(ctx context.Context, mode domain.TripMode, trips []domain.Trip) error
	Trips(ctx context.Context, mode domain.TripMode) ([]domain.Trip, error)
	PutVehicles(ctx context.Context, vehicles []domain.Vehicle) error
	Vehicles(ctx context.Context) ([]domain.Vehicle, error)
	PutReports(ctx context.Context, reports []domain.Report) error
	Reports(ctx context.Context) ([]domain.Report, error)
	Close() error
}
