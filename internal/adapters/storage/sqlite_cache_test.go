package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrego/internal/domain"
)

func testCache(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCacheTripsRoundtrip(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	departure := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	trips := []domain.Trip{
		{
			ID:            "t1",
			Mode:          domain.ModeAir,
			Origin:        "LIS",
			Destination:   "GRU",
			DepartureDate: departure,
			ArrivalDate:   departure.Add(12 * time.Hour),
			CapacityKg:    15,
			PricePerKg:    8.5,
			FlightNumber:  "TP83",
			Status:        "active",
		},
	}
	require.NoError(t, cache.PutTrips(ctx, domain.ModeAir, trips))

	got, err := cache.Trips(ctx, domain.ModeAir)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "TP83", got[0].FlightNumber)
	assert.Equal(t, 8.5, got[0].PricePerKg)
	assert.True(t, departure.Equal(got[0].DepartureDate))
}

func TestCacheTripsAreScopedByMode(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutTrips(ctx, domain.ModeAir, []domain.Trip{{ID: "air1", Mode: domain.ModeAir}}))
	require.NoError(t, cache.PutTrips(ctx, domain.ModeMarine, []domain.Trip{{ID: "sea1", Mode: domain.ModeMarine}}))

	air, err := cache.Trips(ctx, domain.ModeAir)
	require.NoError(t, err)
	require.Len(t, air, 1)
	assert.Equal(t, "air1", air[0].ID)

	ground, err := cache.Trips(ctx, domain.ModeGround)
	require.NoError(t, err)
	assert.Empty(t, ground)
}

func TestCachePutReplacesWholeListing(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutTrips(ctx, domain.ModeAir, []domain.Trip{
		{ID: "old1", Mode: domain.ModeAir},
		{ID: "old2", Mode: domain.ModeAir},
	}))
	require.NoError(t, cache.PutTrips(ctx, domain.ModeAir, []domain.Trip{
		{ID: "new1", Mode: domain.ModeAir},
	}))

	got, err := cache.Trips(ctx, domain.ModeAir)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new1", got[0].ID)

	// Replacing with another mode's listing doesn't disturb this one
	require.NoError(t, cache.PutTrips(ctx, domain.ModeMarine, nil))
	got, err = cache.Trips(ctx, domain.ModeAir)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCacheVehiclesKeepDocuments(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	vehicles := []domain.Vehicle{
		{
			ID:           "v1",
			Make:         "Toyota",
			Model:        "Hilux",
			Year:         2021,
			LicensePlate: "AA-12-BB",
			Status:       domain.VehicleApproved,
			Documents: []domain.VehicleDocument{
				{Name: "registration", Document: "https://cdn.example.com/reg.pdf", Status: domain.DocumentApproved},
				{Name: "insurance", Document: "https://cdn.example.com/ins.pdf", Status: domain.DocumentPending},
			},
		},
	}
	require.NoError(t, cache.PutVehicles(ctx, vehicles))

	got, err := cache.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.VehicleApproved, got[0].Status)
	require.Len(t, got[0].Documents, 2)
	assert.Equal(t, domain.DocumentPending, got[0].Documents[1].Status)
}

func TestCacheReportsRoundtrip(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutReports(ctx, []domain.Report{
		{ID: "r1", ReportType: "damaged-package", Description: "Box arrived crushed", Status: domain.ReportPending},
	}))

	got, err := cache.Reports(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ReportPending, got[0].Status)
}

func TestCacheEmptyListings(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	trips, err := cache.Trips(ctx, domain.ModeAir)
	require.NoError(t, err)
	assert.Empty(t, trips)

	vehicles, err := cache.Vehicles(ctx)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}
