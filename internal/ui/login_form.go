package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"carrego/internal/domain"
)

// LoginForm collects sign-in credentials
type LoginForm struct {
	Completed bool
	Cancelled bool

	form     *huh.Form
	email    string
	password string
}

// NewLoginForm creates the sign-in form
func NewLoginForm() *LoginForm {
	lf := &LoginForm{}

	lf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&lf.email).
			Validate(validateEmail),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&lf.password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password required")
				}
				return nil
			}),
	))

	return lf
}

func (lf *LoginForm) Init() tea.Cmd {
	return lf.form.Init()
}

func (lf *LoginForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			lf.Completed = true
			lf.Cancelled = true
			return nil
		}
	}

	form, cmd := lf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		lf.form = f
	}
	if lf.form.State == huh.StateCompleted {
		lf.Completed = true
	}
	return cmd
}

func (lf *LoginForm) View() string {
	return lf.form.View()
}

// Credentials returns the collected sign-in payload
func (lf *LoginForm) Credentials() domain.Credentials {
	return domain.Credentials{
		Email:    strings.TrimSpace(lf.email),
		Password: lf.password,
	}
}

// validateEmail is the minimal shape check shared by auth forms
func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
