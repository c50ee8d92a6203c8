package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carrego/internal/domain"
)

func TestVehiclesDeleteRemovesExactlyMatchingID(t *testing.T) {
	s := NewVehiclesStore()
	s.Fetch.Begin()
	s.FinishFetch([]domain.Vehicle{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}}, nil)

	s.Delete.Begin()
	s.FinishDelete("v2", nil)

	vehicles := s.Vehicles()
	assert.Len(t, vehicles, 2)
	assert.Equal(t, "v1", vehicles[0].ID)
	assert.Equal(t, "v3", vehicles[1].ID)
}

func TestVehiclesDeleteUnknownIDIsNoop(t *testing.T) {
	s := NewVehiclesStore()
	s.Fetch.Begin()
	s.FinishFetch([]domain.Vehicle{{ID: "v1"}}, nil)

	s.Delete.Begin()
	s.FinishDelete("missing", nil)

	assert.Len(t, s.Vehicles(), 1)
}

func TestVehiclesFailedDeleteKeepsFleet(t *testing.T) {
	s := NewVehiclesStore()
	s.Fetch.Begin()
	s.FinishFetch([]domain.Vehicle{{ID: "v1"}, {ID: "v2"}}, nil)

	s.Delete.Begin()
	s.FinishDelete("v1", &domain.APIError{Code: 403, Message: "Forbidden"})

	assert.Len(t, s.Vehicles(), 2, "rejected delete must not remove the vehicle")
	assert.Equal(t, 403, s.Delete.Err().Code)
}

func TestVehiclesAddAppends(t *testing.T) {
	s := NewVehiclesStore()

	s.Add.Begin()
	s.FinishAdd(&domain.Vehicle{ID: "v1", Status: domain.VehiclePending}, nil)

	assert.Len(t, s.Vehicles(), 1)
	assert.Equal(t, domain.VehiclePending, s.Vehicles()[0].Status)
}
