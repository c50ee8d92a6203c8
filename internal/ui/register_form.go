package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"carrego/internal/domain"
)

// RegisterForm collects the sign-up payload
type RegisterForm struct {
	Completed bool
	Cancelled bool

	form      *huh.Form
	firstName string
	lastName  string
	email     string
	phone     string
	password  string
	confirm   string
}

// NewRegisterForm creates the sign-up form
func NewRegisterForm() *RegisterForm {
	rf := &RegisterForm{}

	rf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("First name").
			Value(&rf.firstName).
			Validate(required("first name")),
		huh.NewInput().
			Title("Last name").
			Value(&rf.lastName).
			Validate(required("last name")),
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&rf.email).
			Validate(validateEmail),
		huh.NewInput().
			Title("Phone").
			Placeholder("+15550001111").
			Value(&rf.phone).
			Validate(required("phone")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&rf.password).
			Validate(func(s string) error {
				if len(s) < 8 {
					return fmt.Errorf("password must be at least 8 characters")
				}
				return nil
			}),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Value(&rf.confirm).
			Validate(func(s string) error {
				if s != rf.password {
					return fmt.Errorf("passwords do not match")
				}
				return nil
			}),
	))

	return rf
}

func (rf *RegisterForm) Init() tea.Cmd {
	return rf.form.Init()
}

func (rf *RegisterForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			rf.Completed = true
			rf.Cancelled = true
			return nil
		}
	}

	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}
	if rf.form.State == huh.StateCompleted {
		rf.Completed = true
	}
	return cmd
}

func (rf *RegisterForm) View() string {
	return rf.form.View()
}

// Registration returns the collected sign-up payload
func (rf *RegisterForm) Registration() domain.Registration {
	return domain.Registration{
		FirstName: strings.TrimSpace(rf.firstName),
		LastName:  strings.TrimSpace(rf.lastName),
		Email:     strings.TrimSpace(rf.email),
		Phone:     strings.TrimSpace(rf.phone),
		Password:  rf.password,
	}
}

// required builds a non-empty validator with a field name in the message
func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s required", name)
		}
		return nil
	}
}
