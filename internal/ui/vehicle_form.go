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

// VehicleForm collects a new vehicle registration
type VehicleForm struct {
	Completed bool
	Cancelled bool

	form  *huh.Form
	make  string
	model string
	year  string
	plate string
}

// NewVehicleForm creates the add-vehicle form
func NewVehicleForm() *VehicleForm {
	vf := &VehicleForm{}

	vf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Make").
			Placeholder("Toyota").
			Value(&vf.make).
			Validate(required("make")),
		huh.NewInput().
			Title("Model").
			Placeholder("Hiace").
			Value(&vf.model).
			Validate(required("model")),
		huh.NewInput().
			Title("Year").
			Value(&vf.year).
			Validate(func(s string) error {
				year, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("must be a year")
				}
				if year < 1950 || year > time.Now().Year()+1 {
					return fmt.Errorf("year out of range")
				}
				return nil
			}),
		huh.NewInput().
			Title("License plate").
			Value(&vf.plate).
			Validate(required("license plate")),
	))

	return vf
}

func (vf *VehicleForm) Init() tea.Cmd {
	return vf.form.Init()
}

func (vf *VehicleForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			vf.Completed = true
			vf.Cancelled = true
			return nil
		}
	}

	form, cmd := vf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		vf.form = f
	}
	if vf.form.State == huh.StateCompleted {
		vf.Completed = true
	}
	return cmd
}

func (vf *VehicleForm) View() string {
	return vf.form.View()
}

// Vehicle returns the collected add-vehicle payload
func (vf *VehicleForm) Vehicle() domain.NewVehicle {
	year, _ := strconv.Atoi(strings.TrimSpace(vf.year))
	return domain.NewVehicle{
		Make:         strings.TrimSpace(vf.make),
		Model:        strings.TrimSpace(vf.model),
		Year:         year,
		LicensePlate: strings.TrimSpace(vf.plate),
	}
}
