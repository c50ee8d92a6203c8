package domain

import "time"

// VehicleStatus is the review state of a registered vehicle
type VehicleStatus string

const (
	VehiclePending  VehicleStatus = "pending"
	VehicleApproved VehicleStatus = "approved"
	VehicleDisabled VehicleStatus = "disabled"
)

// DocumentStatus is the review state of a single vehicle document
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Vehicle is a registered ground-transport vehicle
type Vehicle struct {
	ID           string            `json:"id"`
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Year         int               `json:"year"`
	LicensePlate string            `json:"licensePlate"`
	Status       VehicleStatus     `json:"status"`
	Documents    []VehicleDocument `json:"documents"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// VehicleDocument is an uploaded vehicle document with its own review status
type VehicleDocument struct {
	Name     string         `json:"name"`
	Document string         `json:"document"` // storage URL
	Status   DocumentStatus `json:"status"`
}

// NewVehicle is the add-vehicle payload
type NewVehicle struct {
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Year         int               `json:"year"`
	LicensePlate string            `json:"licensePlate"`
	Documents    []VehicleDocument `json:"documents,omitempty"`
}
