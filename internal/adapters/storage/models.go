package storage

import "time"

// TripModel is the GORM model for cached trips
type TripModel struct {
	ArrivalDate    time.Time
	CapacityKg     float64
	CreatedAt      time.Time
	DepartureDate  time.Time
	Destination    string `gorm:"default:''"`
	FlightNumber   string `gorm:"default:''"`
	ID             string `gorm:"primaryKey"`
	Mode           string `gorm:"not null;index:idx_trip_mode;check:mode IN ('air','ground','marine')"`
	Origin         string `gorm:"default:''"`
	PricePerKg     float64
	Status         string `gorm:"default:''"`
	TripCreatedAt  time.Time
	UpdatedAt      time.Time
	VehicleID      string `gorm:"default:''"`
	VesselName     string `gorm:"default:''"`
	VesselOperator string `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (TripModel) TableName() string { return "cached_trips" }

// VehicleModel is the GORM model for cached vehicles. Documents are stored
// as a JSON column since they are only ever read back whole.
type VehicleModel struct {
	CreatedAt        time.Time
	Documents        string `gorm:"default:'[]'"`
	ID               string `gorm:"primaryKey"`
	LicensePlate     string `gorm:"default:''"`
	Make             string `gorm:"default:''"`
	Model            string `gorm:"default:''"`
	Status           string `gorm:"not null;default:'pending';check:status IN ('pending','approved','disabled')"`
	UpdatedAt        time.Time
	VehicleCreatedAt time.Time
	Year             int
}

// TableName specifies the table name for GORM
func (VehicleModel) TableName() string { return "cached_vehicles" }

// ReportModel is the GORM model for cached reports
type ReportModel struct {
	CreatedAt       time.Time
	Description     string `gorm:"default:''"`
	Evidence        string `gorm:"default:''"`
	ID              string `gorm:"primaryKey"`
	ReportCreatedAt time.Time
	ReportType      string `gorm:"default:''"`
	Status          string `gorm:"not null;default:'pending';check:status IN ('pending','resolved')"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (ReportModel) TableName() string { return "cached_reports" }
