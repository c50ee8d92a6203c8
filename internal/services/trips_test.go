package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrego/internal/adapters/api"
	"carrego/internal/adapters/storage"
	"carrego/internal/domain"
)

func newTripFixture(t *testing.T, handler http.Handler) *TripService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cache, err := storage.NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	return NewTripService(api.NewClient(server.URL), cache)
}

func TestListTripsRefreshesCache(t *testing.T) {
	svc := newTripFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trip/flights", r.URL.Path)
		w.Write([]byte(`{"data": [{"id": "t1", "mode": "air", "origin": "LIS", "destination": "GRU"}]}`))
	}))
	ctx := context.Background()

	trips, err := svc.ListTrips(ctx, domain.ModeAir)
	require.NoError(t, err)
	require.Len(t, trips, 1)

	cached, err := svc.CachedTrips(ctx, domain.ModeAir)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "t1", cached[0].ID)
}

func TestListTripsFailureLeavesCacheUntouched(t *testing.T) {
	var fail atomic.Bool
	svc := newTripFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "boom"}`))
			return
		}
		w.Write([]byte(`{"data": [{"id": "t1", "mode": "air"}]}`))
	}))
	ctx := context.Background()

	_, err := svc.ListTrips(ctx, domain.ModeAir)
	require.NoError(t, err)

	fail.Store(true)
	_, err = svc.ListTrips(ctx, domain.ModeAir)
	require.Error(t, err)

	cached, err := svc.CachedTrips(ctx, domain.ModeAir)
	require.NoError(t, err)
	assert.Len(t, cached, 1, "the last good listing survives a failed fetch")
}

func TestMarineReferenceFetchesInParallel(t *testing.T) {
	var calls atomic.Int32
	svc := newTripFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/trip/port/search":
			assert.Equal(t, "lisbon", r.URL.Query().Get("port"))
			w.Write([]byte(`{"data": [{"code": "PTLIS", "name": "Port of Lisbon", "country": "PT"}]}`))
		case "/trip/vessel/operators":
			w.Write([]byte(`{"data": [{"id": "op1", "name": "Atlantic Lines"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	seaports, operators, err := svc.MarineReference(context.Background(), "lisbon")

	require.NoError(t, err)
	require.Len(t, seaports, 1)
	assert.Equal(t, "PTLIS", seaports[0].Code)
	require.Len(t, operators, 1)
	assert.Equal(t, "Atlantic Lines", operators[0].Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMarineReferenceFailsWhole(t *testing.T) {
	svc := newTripFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/trip/vessel/operators" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "boom"}`))
			return
		}
		w.Write([]byte(`{"data": []}`))
	}))

	_, _, err := svc.MarineReference(context.Background(), "lisbon")

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Code)
}

func TestSaveTripModePaths(t *testing.T) {
	var gotPath string
	svc := newTripFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data": {"id": "t1", "mode": "ground"}}`))
	}))

	_, err := svc.SaveTrip(context.Background(), domain.NewTrip{Mode: domain.ModeGround, Origin: "Lisboa", Destination: "Porto"})

	require.NoError(t, err)
	assert.Equal(t, "/trip/ground", gotPath)
}
