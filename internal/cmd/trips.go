package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"carrego/internal/domain"
)

// TripsCmd groups the trip subcommands
type TripsCmd struct {
	List TripsListCmd `cmd:"list" help:"List my trips" default:"1"`
	Add  TripsAddCmd  `cmd:"add" help:"Post a new trip"`
}

// TripsListCmd lists the signed-in user's trips for one mode
type TripsListCmd struct {
	Mode   string `help:"Trip mode" default:"air" enum:"air,ground,marine"`
	Cached bool   `help:"Read the offline cache instead of the API"`
}

// Run executes trips list
func (t *TripsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	mode := domain.TripMode(t.Mode)

	var trips []domain.Trip
	var err error
	if t.Cached {
		trips, err = cli.Container.TripService.CachedTrips(ctx, mode)
	} else {
		if _, err = restoreSession(cli); err != nil {
			return err
		}
		trips, err = cli.Container.TripService.ListTrips(ctx, mode)
	}
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Printf("No %s trips\n", mode)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tDEPARTURE\tCAPACITY\tPRICE/KG\tSTATUS")
	for _, trip := range trips {
		fmt.Fprintf(w, "%s → %s\t%s\t%.0fkg\t%.2f\t%s\n",
			trip.Origin, trip.Destination,
			trip.DepartureDate.Format("2006-01-02"),
			trip.CapacityKg, trip.PricePerKg, trip.Status)
	}
	return w.Flush()
}

// TripsAddCmd posts a new trip
type TripsAddCmd struct {
	Mode        string  `help:"Trip mode" default:"air" enum:"air,ground,marine"`
	Origin      string  `help:"Origin (airport code, city or port)" required:""`
	Destination string  `help:"Destination (airport code, city or port)" required:""`
	Departure   string  `help:"Departure date (YYYY-MM-DD)" required:""`
	Arrival     string  `help:"Arrival date (YYYY-MM-DD)" required:""`
	Capacity    float64 `help:"Spare capacity in kg" required:""`
	Price       float64 `help:"Price per kg" required:""`

	Flight         string `help:"Flight number (air)"`
	VesselOperator string `help:"Vessel operator (marine)"`
	VesselName     string `help:"Vessel name (marine)"`
	VehicleID      string `help:"Vehicle ID (ground)"`
}

// Run executes trips add
func (t *TripsAddCmd) Run(cli *CLI) error {
	departure, err := time.Parse("2006-01-02", t.Departure)
	if err != nil {
		return fmt.Errorf("invalid departure date: %w", err)
	}
	arrival, err := time.Parse("2006-01-02", t.Arrival)
	if err != nil {
		return fmt.Errorf("invalid arrival date: %w", err)
	}
	if arrival.Before(departure) {
		return fmt.Errorf("arrival date is before departure")
	}

	if _, err := restoreSession(cli); err != nil {
		return err
	}
	trip, err := cli.Container.TripService.SaveTrip(context.Background(), domain.NewTrip{
		Mode:           domain.TripMode(t.Mode),
		Origin:         t.Origin,
		Destination:    t.Destination,
		DepartureDate:  departure,
		ArrivalDate:    arrival,
		CapacityKg:     t.Capacity,
		PricePerKg:     t.Price,
		FlightNumber:   t.Flight,
		VesselOperator: t.VesselOperator,
		VesselName:     t.VesselName,
		VehicleID:      t.VehicleID,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Trip posted: %s → %s (%s)\n", trip.Origin, trip.Destination, trip.ID)
	return nil
}
