package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// OTPForm collects the one-time code sent to the user's email. ctrl+r
// requests a resend (handled by the model, not the form).
type OTPForm struct {
	Completed    bool
	Cancelled    bool
	ResendWanted bool

	form  *huh.Form
	email string
	code  string
}

// NewOTPForm creates the OTP confirmation form
func NewOTPForm(email string) *OTPForm {
	of := &OTPForm{email: email}

	of.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Verification code").
			Description(fmt.Sprintf("Sent to %s. Press ctrl+r to resend.", email)).
			Value(&of.code).
			Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if len(s) < 4 {
					return fmt.Errorf("code too short")
				}
				return nil
			}),
	))

	return of
}

func (of *OTPForm) Init() tea.Cmd {
	return of.form.Init()
}

func (of *OTPForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			of.Completed = true
			of.Cancelled = true
			return nil
		case "ctrl+r":
			of.ResendWanted = true
			return nil
		}
	}

	form, cmd := of.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		of.form = f
	}
	if of.form.State == huh.StateCompleted {
		of.Completed = true
	}
	return cmd
}

func (of *OTPForm) View() string {
	return of.form.View()
}

// Email returns the address being verified
func (of *OTPForm) Email() string { return of.email }

// Code returns the entered one-time code
func (of *OTPForm) Code() string { return strings.TrimSpace(of.code) }
