package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"carrego/internal/domain"
)

// VehiclesCmd groups the vehicle subcommands
type VehiclesCmd struct {
	List VehiclesListCmd `cmd:"list" help:"List my vehicles" default:"1"`
	Add  VehiclesAddCmd  `cmd:"add" help:"Register a vehicle"`
	Del  VehiclesDelCmd  `cmd:"del" help:"Remove a vehicle"`
}

// VehiclesListCmd lists the signed-in user's vehicles
type VehiclesListCmd struct {
	Cached bool `help:"Read the offline cache instead of the API"`
}

// Run executes vehicles list
func (v *VehiclesListCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var vehicles []domain.Vehicle
	var err error
	if v.Cached {
		vehicles, err = cli.Container.VehicleService.CachedVehicles(ctx)
	} else {
		if _, err = restoreSession(cli); err != nil {
			return err
		}
		vehicles, err = cli.Container.VehicleService.ListVehicles(ctx)
	}
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		fmt.Println("No vehicles")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tPLATE\tSTATUS\tDOCS")
	for _, vehicle := range vehicles {
		fmt.Fprintf(w, "%s\t%s %s %d\t%s\t%s\t%d\n",
			vehicle.ID, vehicle.Make, vehicle.Model, vehicle.Year,
			vehicle.LicensePlate, vehicle.Status, len(vehicle.Documents))
	}
	return w.Flush()
}

// VehiclesAddCmd registers a vehicle
type VehiclesAddCmd struct {
	Make  string `help:"Manufacturer" required:""`
	Model string `help:"Model" required:""`
	Year  int    `help:"Model year" required:""`
	Plate string `help:"License plate" required:""`
}

// Run executes vehicles add
func (v *VehiclesAddCmd) Run(cli *CLI) error {
	if _, err := restoreSession(cli); err != nil {
		return err
	}
	vehicle, err := cli.Container.VehicleService.AddVehicle(context.Background(), domain.NewVehicle{
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.Plate,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Vehicle registered: %s %s (%s), status %s\n",
		vehicle.Make, vehicle.Model, vehicle.ID, vehicle.Status)
	return nil
}

// VehiclesDelCmd removes a vehicle
type VehiclesDelCmd struct {
	ID string `arg:"" help:"Vehicle ID"`
}

// Run executes vehicles del
func (v *VehiclesDelCmd) Run(cli *CLI) error {
	if _, err := restoreSession(cli); err != nil {
		return err
	}
	if err := cli.Container.VehicleService.DeleteVehicle(context.Background(), v.ID); err != nil {
		return err
	}
	fmt.Printf("Vehicle %s removed\n", v.ID)
	return nil
}
