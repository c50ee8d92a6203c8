package api

import (
	"context"

	"carrego/internal/domain"
	"carrego/internal/ports"
)

var _ ports.VehicleGateway = (*Client)(nil)

// AddVehicle registers a vehicle; it starts in the pending review status
func (c *Client) AddVehicle(ctx context.Context, vehicle domain.NewVehicle) (*domain.Vehicle, error) {
	var added domain.Vehicle
	if err := c.Post(ctx, "/trip/add-vehicle", vehicle, &added); err != nil {
		return nil, err
	}
	return &added, nil
}

// MyVehicles lists the caller's registered vehicles
func (c *Client) MyVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	if err := c.Get(ctx, "/trip/my-vehicles", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// DeleteVehicle removes a vehicle by id
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.Delete(ctx, "/trip/delete-vehicle/"+id, nil)
}
