package storage

import (
	"encoding/json"

	"carrego/internal/domain"
	"carrego/internal/logging"
)

// tripModelToDomain converts a TripModel (GORM) to domain.Trip
func tripModelToDomain(m TripModel) domain.Trip {
	return domain.Trip{
		ID:             m.ID,
		Mode:           domain.TripMode(m.Mode),
		Origin:         m.Origin,
		Destination:    m.Destination,
		DepartureDate:  m.DepartureDate,
		ArrivalDate:    m.ArrivalDate,
		CapacityKg:     m.CapacityKg,
		PricePerKg:     m.PricePerKg,
		FlightNumber:   m.FlightNumber,
		VesselOperator: m.VesselOperator,
		VesselName:     m.VesselName,
		VehicleID:      m.VehicleID,
		Status:         m.Status,
		CreatedAt:      m.TripCreatedAt,
	}
}

// domainToTripModel converts a domain.Trip to TripModel (GORM)
func domainToTripModel(t domain.Trip) TripModel {
	return TripModel{
		ID:             t.ID,
		Mode:           string(t.Mode),
		Origin:         t.Origin,
		Destination:    t.Destination,
		DepartureDate:  t.DepartureDate,
		ArrivalDate:    t.ArrivalDate,
		CapacityKg:     t.CapacityKg,
		PricePerKg:     t.PricePerKg,
		FlightNumber:   t.FlightNumber,
		VesselOperator: t.VesselOperator,
		VesselName:     t.VesselName,
		VehicleID:      t.VehicleID,
		Status:         t.Status,
		TripCreatedAt:  t.CreatedAt,
	}
}

// vehicleModelToDomain converts a VehicleModel (GORM) to domain.Vehicle
func vehicleModelToDomain(m VehicleModel) domain.Vehicle {
	var documents []domain.VehicleDocument
	if m.Documents != "" {
		if err := json.Unmarshal([]byte(m.Documents), &documents); err != nil {
			logging.Logger.Warn("Discarding unreadable cached vehicle documents",
				"vehicle", m.ID, "error", err)
			documents = nil
		}
	}
	return domain.Vehicle{
		ID:           m.ID,
		Make:         m.Make,
		Model:        m.Model,
		Year:         m.Year,
		LicensePlate: m.LicensePlate,
		Status:       domain.VehicleStatus(m.Status),
		Documents:    documents,
		CreatedAt:    m.VehicleCreatedAt,
	}
}

// domainToVehicleModel converts a domain.Vehicle to VehicleModel (GORM)
func domainToVehicleModel(v domain.Vehicle) VehicleModel {
	documents := "[]"
	if len(v.Documents) > 0 {
		if data, err := json.Marshal(v.Documents); err == nil {
			documents = string(data)
		}
	}
	return VehicleModel{
		ID:               v.ID,
		Make:             v.Make,
		Model:            v.Model,
		Year:             v.Year,
		LicensePlate:     v.LicensePlate,
		Status:           string(v.Status),
		Documents:        documents,
		VehicleCreatedAt: v.CreatedAt,
	}
}

// reportModelToDomain converts a ReportModel (GORM) to domain.Report
func reportModelToDomain(m ReportModel) domain.Report {
	return domain.Report{
		ID:          m.ID,
		ReportType:  m.ReportType,
		Description: m.Description,
		Status:      domain.ReportStatus(m.Status),
		Evidence:    m.Evidence,
		CreatedAt:   m.ReportCreatedAt,
	}
}

// domainToReportModel converts a domain.Report to ReportModel (GORM)
func domainToReportModel(r domain.Report) ReportModel {
	return ReportModel{
		ID:              r.ID,
		ReportType:      r.ReportType,
		Description:     r.Description,
		Status:          string(r.Status),
		Evidence:        r.Evidence,
		ReportCreatedAt: r.CreatedAt,
	}
}
