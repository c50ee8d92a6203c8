package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carrego/internal/domain"
)

func TestTripsFetchReplacesSnapshot(t *testing.T) {
	s := NewTripsStore(domain.ModeAir)

	s.Fetch.Begin()
	s.FinishFetch([]domain.Trip{{ID: "t1"}, {ID: "t2"}}, nil)
	assert.Len(t, s.Trips(), 2)

	s.Fetch.Begin()
	s.FinishFetch([]domain.Trip{{ID: "t3"}}, nil)
	assert.Len(t, s.Trips(), 1, "fetch is a full-list replace, not a merge")
}

func TestTripsFailedFetchKeepsSnapshot(t *testing.T) {
	s := NewTripsStore(domain.ModeAir)
	s.Fetch.Begin()
	s.FinishFetch([]domain.Trip{{ID: "t1"}}, nil)

	s.Fetch.Begin()
	s.FinishFetch(nil, &domain.APIError{Code: 500, Message: "boom"})

	assert.Len(t, s.Trips(), 1, "rejected fetch must not drop the previous list")
	assert.Equal(t, 500, s.Fetch.Err().Code)
}

func TestTripsSaveAppends(t *testing.T) {
	s := NewTripsStore(domain.ModeAir)
	s.Fetch.Begin()
	s.FinishFetch([]domain.Trip{{ID: "t1"}}, nil)

	s.Save.Begin()
	s.FinishSave(&domain.Trip{ID: "t2"}, nil)
	assert.Len(t, s.Trips(), 2)

	s.Save.Begin()
	s.FinishSave(nil, domain.NewNetworkError())
	assert.Len(t, s.Trips(), 2, "failed save must not touch the list")
}

func TestTripsSetModeDropsSnapshots(t *testing.T) {
	s := NewTripsStore(domain.ModeAir)
	s.Fetch.Begin()
	s.FinishFetch([]domain.Trip{{ID: "t1", Mode: domain.ModeAir}}, nil)
	s.Lookup.Begin()
	s.FinishAirportSearch([]domain.Airport{{Code: "LIS"}}, nil)

	s.SetMode(domain.ModeMarine)

	assert.Equal(t, domain.ModeMarine, s.Mode())
	assert.Empty(t, s.Trips())
	assert.Empty(t, s.Airports())

	// Same mode is a no-op
	s.SetCached([]domain.Trip{{ID: "t9"}})
	s.SetMode(domain.ModeMarine)
	assert.Len(t, s.Trips(), 1)
}

func TestTripsSetCachedNeverOverwritesLiveData(t *testing.T) {
	s := NewTripsStore(domain.ModeAir)

	s.SetCached([]domain.Trip{{ID: "cached"}})
	assert.Len(t, s.Trips(), 1)

	s.Fetch.Begin()
	s.FinishFetch([]domain.Trip{{ID: "live1"}, {ID: "live2"}}, nil)

	s.SetCached([]domain.Trip{{ID: "cached"}})
	assert.Len(t, s.Trips(), 2, "stale cache must not replace live data")
}

func TestTripsMarineLookup(t *testing.T) {
	s := NewTripsStore(domain.ModeMarine)

	s.Lookup.Begin()
	s.FinishPortSearch([]domain.Seaport{{Code: "PTLIS"}}, nil)
	s.FinishOperators([]domain.VesselOperator{{ID: "op1"}}, nil)

	assert.Len(t, s.Seaports(), 1)
	assert.Len(t, s.Operators(), 1)
	assert.False(t, s.Lookup.Loading())
}
