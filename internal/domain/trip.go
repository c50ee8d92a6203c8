package domain

import "time"

// TripMode identifies the transport mode of a trip
type TripMode string

const (
	ModeAir    TripMode = "air"
	ModeGround TripMode = "ground"
	ModeMarine TripMode = "marine"
)

// ValidMode reports whether the string names a known transport mode
func ValidMode(s string) bool {
	switch TripMode(s) {
	case ModeAir, ModeGround, ModeMarine:
		return true
	}
	return false
}

// Trip is a posted crowdshipping trip. Mode-specific fields are empty for
// other modes (FlightNumber for air, VesselOperator/VesselName for marine,
// VehicleID for ground).
type Trip struct {
	ID             string    `json:"id"`
	Mode           TripMode  `json:"mode"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureDate  time.Time `json:"departureDate"`
	ArrivalDate    time.Time `json:"arrivalDate"`
	CapacityKg     float64   `json:"capacityKg"`
	PricePerKg     float64   `json:"pricePerKg"`
	FlightNumber   string    `json:"flightNumber,omitempty"`
	VesselOperator string    `json:"vesselOperator,omitempty"`
	VesselName     string    `json:"vesselName,omitempty"`
	VehicleID      string    `json:"vehicleId,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewTrip is the create-trip payload
type NewTrip struct {
	Mode           TripMode  `json:"mode"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureDate  time.Time `json:"departureDate"`
	ArrivalDate    time.Time `json:"arrivalDate"`
	CapacityKg     float64   `json:"capacityKg"`
	PricePerKg     float64   `json:"pricePerKg"`
	FlightNumber   string    `json:"flightNumber,omitempty"`
	VesselOperator string    `json:"vesselOperator,omitempty"`
	VesselName     string    `json:"vesselName,omitempty"`
	VehicleID      string    `json:"vehicleId,omitempty"`
}

// Airport is an air trip origin/destination as returned by airport search
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Seaport is a marine trip origin/destination as returned by port search
type Seaport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// VesselOperator is a marine carrier
type VesselOperator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
