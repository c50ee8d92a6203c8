package api

import (
	"context"
	"net/url"

	"carrego/internal/domain"
	"carrego/internal/ports"
)

var _ ports.TripGateway = (*Client)(nil)

// tripPath maps a transport mode to its collection endpoint
func tripPath(mode domain.TripMode) string {
	switch mode {
	case domain.ModeGround:
		return "/trip/ground"
	case domain.ModeMarine:
		return "/trip/marine"
	default:
		return "/trip/flights"
	}
}

// SearchAirports looks up airports by city for air trip forms
func (c *Client) SearchAirports(ctx context.Context, city string) ([]domain.Airport, error) {
	var airports []domain.Airport
	path := "/trip/airports/search?city=" + url.QueryEscape(city)
	if err := c.Get(ctx, path, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

// SearchPorts looks up seaports by name for marine trip forms
func (c *Client) SearchPorts(ctx context.Context, port string) ([]domain.Seaport, error) {
	var seaports []domain.Seaport
	path := "/trip/port/search?port=" + url.QueryEscape(port)
	if err := c.Get(ctx, path, &seaports); err != nil {
		return nil, err
	}
	return seaports, nil
}

// VesselOperators lists the marine carriers accepted by the platform
func (c *Client) VesselOperators(ctx context.Context) ([]domain.VesselOperator, error) {
	var operators []domain.VesselOperator
	if err := c.Get(ctx, "/trip/vessel/operators", &operators); err != nil {
		return nil, err
	}
	return operators, nil
}

// SaveTrip posts a new trip for the trip's transport mode
func (c *Client) SaveTrip(ctx context.Context, trip domain.NewTrip) (*domain.Trip, error) {
	var saved domain.Trip
	if err := c.Post(ctx, tripPath(trip.Mode), trip, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListTrips lists the caller's trips for one transport mode
func (c *Client) ListTrips(ctx context.Context, mode domain.TripMode) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := c.Get(ctx, tripPath(mode), &trips); err != nil {
		return nil, err
	}
	return trips, nil
}
