package state

import "carrego/internal/domain"

// VehiclesStore is the vehicle-fleet container
type VehiclesStore struct {
	Fetch  Request
	Add    Request
	Delete Request

	vehicles []domain.Vehicle
}

// NewVehiclesStore creates an empty VehiclesStore
func NewVehiclesStore() *VehiclesStore {
	return &VehiclesStore{}
}

// FinishFetch applies a list result: full-list replace on success
func (s *VehiclesStore) FinishFetch(vehicles []domain.Vehicle, err *domain.APIError) {
	s.Fetch.finish(err, func() {
		s.vehicles = vehicles
	})
}

// FinishAdd applies an add result: append on success
func (s *VehiclesStore) FinishAdd(vehicle *domain.Vehicle, err *domain.APIError) {
	s.Add.finish(err, func() {
		if vehicle != nil {
			s.vehicles = append(s.vehicles, *vehicle)
		}
	})
}

// FinishDelete applies a delete result: optimistic removal of exactly the
// matching id, not re-fetch-confirmed.
func (s *VehiclesStore) FinishDelete(id string, err *domain.APIError) {
	s.Delete.finish(err, func() {
		kept := s.vehicles[:0]
		for _, v := range s.vehicles {
			if v.ID != id {
				kept = append(kept, v)
			}
		}
		s.vehicles = kept
	})
}

// SetCached seeds the snapshot from the offline cache
func (s *VehiclesStore) SetCached(vehicles []domain.Vehicle) {
	if len(s.vehicles) == 0 {
		s.vehicles = vehicles
	}
}

// Vehicles returns the current fleet snapshot
func (s *VehiclesStore) Vehicles() []domain.Vehicle { return s.vehicles }
