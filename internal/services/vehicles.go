package services

import (
	"context"

	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ports"
)

// VehicleService coordinates fleet operations and the offline cache
type VehicleService struct {
	gateway ports.VehicleGateway
	cache   ports.ListingCache
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(gateway ports.VehicleGateway, cache ports.ListingCache) *VehicleService {
	return &VehicleService{
		gateway: gateway,
		cache:   cache,
	}
}

// AddVehicle registers a vehicle
func (s *VehicleService) AddVehicle(ctx context.Context, vehicle domain.NewVehicle) (*domain.Vehicle, error) {
	logging.Logger.Info("Adding vehicle",
		"make", vehicle.Make,
		"model", vehicle.Model,
		"plate", vehicle.LicensePlate)

	added, err := s.gateway.AddVehicle(ctx, vehicle)
	if err != nil {
		logging.Logger.Error("Failed to add vehicle", "plate", vehicle.LicensePlate, "error", err)
		return nil, err
	}

	logging.Logger.Info("Vehicle added", "vehicle_id", added.ID, "status", added.Status)
	return added, nil
}

// ListVehicles fetches the fleet and refreshes the cache on success
func (s *VehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.gateway.MyVehicles(ctx)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.PutVehicles(ctx, vehicles); cacheErr != nil {
		logging.Logger.Warn("Failed to cache vehicles", "error", cacheErr)
	}
	return vehicles, nil
}

// CachedVehicles returns the last successfully fetched fleet listing
func (s *VehicleService) CachedVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.cache.Vehicles(ctx)
}

// DeleteVehicle removes a vehicle by id. The caller removes it from local
// state optimistically; there is no confirming re-fetch.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	logging.Logger.Info("Deleting vehicle", "vehicle_id", id)

	if err := s.gateway.DeleteVehicle(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete vehicle", "vehicle_id", id, "error", err)
		return err
	}
	return nil
}
