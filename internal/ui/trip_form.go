package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"carrego/internal/domain"
)

const tripDateLayout = "2006-01-02"

// TripForm collects a new trip posting. Air and marine trips run in two
// phases: a lookup query first (airport city / seaport name), then the trip
// details built from the lookup results. Ground trips go straight to details.
type TripForm struct {
	Completed   bool
	Cancelled   bool
	LookupReady bool // lookup query submitted, reference data not yet injected

	mode  domain.TripMode
	phase int
	form  *huh.Form

	query          string
	origin         string
	destination    string
	departure      string
	arrival        string
	capacity       string
	price          string
	flightNumber   string
	vesselName     string
	vesselOperator string
	vehicleID      string

	vehicles []domain.Vehicle
}

// NewTripForm creates a trip posting form for the given mode. vehicles backs
// the ground form's vehicle selection and is ignored for other modes.
func NewTripForm(mode domain.TripMode, vehicles []domain.Vehicle) *TripForm {
	tf := &TripForm{mode: mode, vehicles: vehicles}

	switch mode {
	case domain.ModeAir:
		tf.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Departure city").
				Description("Used to look up airports").
				Value(&tf.query).
				Validate(required("city")),
		))
	case domain.ModeMarine:
		tf.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Port name").
				Description("Used to look up seaports and vessel operators").
				Value(&tf.query).
				Validate(required("port")),
		))
	default:
		tf.phase = 1
		tf.form = tf.detailsForm(nil, nil, nil)
	}

	return tf
}

// SetAirports injects airport lookup results and advances to the details phase
func (tf *TripForm) SetAirports(airports []domain.Airport) {
	tf.LookupReady = false
	tf.phase = 1
	tf.form = tf.detailsForm(airports, nil, nil)
}

// SetMarine injects seaport/operator lookup results and advances to details
func (tf *TripForm) SetMarine(seaports []domain.Seaport, operators []domain.VesselOperator) {
	tf.LookupReady = false
	tf.phase = 1
	tf.form = tf.detailsForm(nil, seaports, operators)
}

func (tf *TripForm) detailsForm(airports []domain.Airport, seaports []domain.Seaport, operators []domain.VesselOperator) *huh.Form {
	var fields []huh.Field

	switch tf.mode {
	case domain.ModeAir:
		options := make([]huh.Option[string], 0, len(airports))
		for _, a := range airports {
			label := fmt.Sprintf("%s — %s (%s)", a.Code, a.Name, a.City)
			options = append(options, huh.NewOption(label, a.Code))
		}
		if len(options) > 0 {
			fields = append(fields,
				huh.NewSelect[string]().Title("Origin airport").Options(options...).Value(&tf.origin),
			)
		} else {
			fields = append(fields,
				huh.NewInput().Title("Origin airport code").Value(&tf.origin).Validate(required("origin")),
			)
		}
		fields = append(fields,
			huh.NewInput().Title("Destination airport code").Value(&tf.destination).Validate(required("destination")),
			huh.NewInput().Title("Flight number").Placeholder("AC123").Value(&tf.flightNumber).Validate(required("flight number")),
		)
	case domain.ModeMarine:
		portOptions := make([]huh.Option[string], 0, len(seaports))
		for _, p := range seaports {
			label := fmt.Sprintf("%s — %s (%s)", p.Code, p.Name, p.Country)
			portOptions = append(portOptions, huh.NewOption(label, p.Code))
		}
		if len(portOptions) > 0 {
			fields = append(fields,
				huh.NewSelect[string]().Title("Origin port").Options(portOptions...).Value(&tf.origin),
			)
		} else {
			fields = append(fields,
				huh.NewInput().Title("Origin port code").Value(&tf.origin).Validate(required("origin")),
			)
		}
		fields = append(fields,
			huh.NewInput().Title("Destination port code").Value(&tf.destination).Validate(required("destination")),
		)
		operatorOptions := make([]huh.Option[string], 0, len(operators))
		for _, o := range operators {
			operatorOptions = append(operatorOptions, huh.NewOption(o.Name, o.ID))
		}
		if len(operatorOptions) > 0 {
			fields = append(fields,
				huh.NewSelect[string]().Title("Vessel operator").Options(operatorOptions...).Value(&tf.vesselOperator),
			)
		} else {
			fields = append(fields,
				huh.NewInput().Title("Vessel operator").Value(&tf.vesselOperator).Validate(required("operator")),
			)
		}
		fields = append(fields,
			huh.NewInput().Title("Vessel name").Value(&tf.vesselName).Validate(required("vessel name")),
		)
	default:
		vehicleOptions := make([]huh.Option[string], 0, len(tf.vehicles))
		for _, v := range tf.vehicles {
			label := fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.LicensePlate)
			vehicleOptions = append(vehicleOptions, huh.NewOption(label, v.ID))
		}
		if len(vehicleOptions) > 0 {
			fields = append(fields,
				huh.NewSelect[string]().Title("Vehicle").Options(vehicleOptions...).Value(&tf.vehicleID),
			)
		} else {
			fields = append(fields,
				huh.NewInput().Title("Vehicle id").Description("Register a vehicle first to pick from a list").Value(&tf.vehicleID).Validate(required("vehicle")),
			)
		}
		fields = append(fields,
			huh.NewInput().Title("Origin city").Value(&tf.origin).Validate(required("origin")),
			huh.NewInput().Title("Destination city").Value(&tf.destination).Validate(required("destination")),
		)
	}

	fields = append(fields,
		huh.NewInput().Title("Departure date").Placeholder(tripDateLayout).Value(&tf.departure).Validate(validateDate),
		huh.NewInput().Title("Arrival date").Placeholder(tripDateLayout).Value(&tf.arrival).Validate(validateDate),
		huh.NewInput().Title("Capacity (kg)").Value(&tf.capacity).Validate(validatePositiveNumber),
		huh.NewInput().Title("Price per kg").Value(&tf.price).Validate(validatePositiveNumber),
	)

	return huh.NewForm(huh.NewGroup(fields...))
}

func (tf *TripForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TripForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			tf.Completed = true
			tf.Cancelled = true
			return nil
		}
	}

	if tf.LookupReady {
		// Waiting for reference data, swallow input
		return nil
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		if tf.phase == 0 {
			tf.LookupReady = true
		} else {
			tf.Completed = true
		}
	}
	return cmd
}

func (tf *TripForm) View() string {
	return tf.form.View()
}

// Mode returns the form's transport mode
func (tf *TripForm) Mode() domain.TripMode { return tf.mode }

// Query returns the lookup query entered in the first phase
func (tf *TripForm) Query() string { return strings.TrimSpace(tf.query) }

// Trip assembles the collected fields into the create-trip payload.
// Validators guarantee the parses succeed.
func (tf *TripForm) Trip() domain.NewTrip {
	departure, _ := time.Parse(tripDateLayout, strings.TrimSpace(tf.departure))
	arrival, _ := time.Parse(tripDateLayout, strings.TrimSpace(tf.arrival))
	capacity, _ := strconv.ParseFloat(strings.TrimSpace(tf.capacity), 64)
	price, _ := strconv.ParseFloat(strings.TrimSpace(tf.price), 64)

	return domain.NewTrip{
		Mode:           tf.mode,
		Origin:         strings.TrimSpace(tf.origin),
		Destination:    strings.TrimSpace(tf.destination),
		DepartureDate:  departure,
		ArrivalDate:    arrival,
		CapacityKg:     capacity,
		PricePerKg:     price,
		FlightNumber:   strings.TrimSpace(tf.flightNumber),
		VesselOperator: strings.TrimSpace(tf.vesselOperator),
		VesselName:     strings.TrimSpace(tf.vesselName),
		VehicleID:      strings.TrimSpace(tf.vehicleID),
	}
}

// validateDate accepts YYYY-MM-DD
func validateDate(s string) error {
	if _, err := time.Parse(tripDateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use %s", tripDateLayout)
	}
	return nil
}

// validatePositiveNumber accepts a positive decimal
func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
