package cmd

import (
	"carrego/internal/adapters/api"
	"carrego/internal/adapters/storage"
	"carrego/internal/config"
	"carrego/internal/ports"
	"carrego/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	AuthService    *services.AuthService
	ProfileService *services.ProfileService
	ReportService  *services.ReportService
	TripService    *services.TripService
	VehicleService *services.VehicleService

	// Internal - for cleanup only
	cache ports.ListingCache
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(baseURL string) (*Container, error) {
	// The API client doubles as every gateway and as the token holder
	client := api.NewClient(baseURL)

	sessions := storage.NewSessionFile(config.GetSessionPath())
	cache, err := storage.NewSQLiteCache(config.GetCacheDBPath())
	if err != nil {
		return nil, err
	}

	return &Container{
		AuthService:    services.NewAuthService(client, sessions, client),
		ProfileService: services.NewProfileService(client, client),
		ReportService:  services.NewReportService(client, cache),
		TripService:    services.NewTripService(client, cache),
		VehicleService: services.NewVehicleService(client, cache),
		cache:          cache,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.cache != nil {
		return c.cache.Close()
	}
	return nil
}
