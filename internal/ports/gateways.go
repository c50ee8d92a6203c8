package ports

import (
	"context"
	"io"

	"carrego/internal/domain"
)

// TokenHolder carries the mutable bearer token slot of the HTTP adapter
type TokenHolder interface {
	SetAuthToken(token string)
}

// AuthGateway performs account and session operations against the backend
type AuthGateway interface {
	SignUp(ctx context.Context, reg domain.Registration) (*domain.UserSummary, error)
	SignIn(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)
	VerifyOTP(ctx context.Context, email, code string) (*domain.AuthSession, error)
	ResendOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// TripReferenceGateway looks up reference data for trip forms
type TripReferenceGateway interface {
	SearchAirports(ctx context.Context, city string) ([]domain.Airport, error)
	SearchPorts(ctx context.Context, port string) ([]domain.Seaport, error)
	VesselOperators(ctx context.Context) ([]domain.VesselOperator, error)
}

// TripGateway creates and lists trips
type TripGateway interface {
	TripReferenceGateway
	SaveTrip(ctx context.Context, trip domain.NewTrip) (*domain.Trip, error)
	ListTrips(ctx context.Context, mode domain.TripMode) ([]domain.Trip, error)
}

// VehicleGateway manages the vehicle fleet
type VehicleGateway interface {
	AddVehicle(ctx context.Context, vehicle domain.NewVehicle) (*domain.Vehicle, error)
	MyVehicles(ctx context.Context) ([]domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

// ReportGateway files and lists issue reports
type ReportGateway interface {
	SubmitReport(ctx context.Context, report domain.NewReport) (*domain.Report, error)
	PendingReports(ctx context.Context) ([]domain.Report, error)
}

// ProfileGateway finalizes the KYC profile
type ProfileGateway interface {
	CompleteProfile(ctx context.Context, profile domain.CompleteProfile) (*domain.Profile, error)
}

// Uploader sends a document or image to storage and returns its URL
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}
