package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"carrego/internal/domain"
)

// wizardStep identifies one screen of the edit-profile flow
type wizardStep int

const (
	stepPersonal wizardStep = iota
	stepDocuments
	stepPayment
	stepFinished
)

// ProfileWizard runs the three sequential edit-profile screens (personal
// info, documents, payment). Each finished step yields a ProfilePatch the
// model merges into the draft, so earlier answers survive later steps.
type ProfileWizard struct {
	Cancelled bool
	StepDone  bool // current step's form completed, patch not yet consumed

	step wizardStep
	form *huh.Form

	firstName string
	lastName  string
	dob       string
	gender    string
	address   string
	city      string
	country   string

	idType     string
	idNumber   string
	idDocument string
	selfie     string

	bankName      string
	accountNumber string
	accountName   string
}

// NewProfileWizard creates the wizard, prefilled from a previous draft so
// re-entering the flow keeps accumulated answers.
func NewProfileWizard(draft domain.ProfileDraft) *ProfileWizard {
	w := &ProfileWizard{
		firstName:     draft.FirstName,
		lastName:      draft.LastName,
		dob:           draft.DateOfBirth,
		gender:        draft.Gender,
		idType:        draft.IDType,
		idNumber:      draft.IDNumber,
		idDocument:    draft.IDDocumentURL,
		selfie:        draft.SelfieURL,
		bankName:      draft.BankName,
		accountNumber: draft.AccountNumber,
		accountName:   draft.AccountName,
	}
	if draft.Location != nil {
		w.address = draft.Location.Address
		w.city = draft.Location.City
		w.country = draft.Location.Country
	}
	w.form = w.buildForm()
	return w
}

func (w *ProfileWizard) buildForm() *huh.Form {
	switch w.step {
	case stepPersonal:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("First name").Value(&w.firstName).Validate(required("first name")),
			huh.NewInput().Title("Last name").Value(&w.lastName).Validate(required("last name")),
			huh.NewInput().Title("Date of birth").Placeholder("1990-04-21").Value(&w.dob).Validate(validateDate),
			huh.NewSelect[string]().Title("Gender").
				Options(
					huh.NewOption("Female", "female"),
					huh.NewOption("Male", "male"),
					huh.NewOption("Prefer not to say", "unspecified"),
				).
				Value(&w.gender),
			huh.NewInput().Title("Address").Value(&w.address).Validate(required("address")),
			huh.NewInput().Title("City").Value(&w.city).Validate(required("city")),
			huh.NewInput().Title("Country").Value(&w.country).Validate(required("country")),
		))
	case stepDocuments:
		return huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().Title("ID type").
				Options(
					huh.NewOption("Passport", "passport"),
					huh.NewOption("National ID", "national-id"),
					huh.NewOption("Driver's license", "drivers-license"),
				).
				Value(&w.idType),
			huh.NewInput().Title("ID number").Value(&w.idNumber).Validate(required("ID number")),
			huh.NewInput().Title("ID document").
				Description("Local file path (uploaded for you) or an existing URL").
				Value(&w.idDocument).Validate(required("ID document")),
			huh.NewInput().Title("Selfie").
				Description("Local file path (uploaded for you) or an existing URL; optional").
				Value(&w.selfie),
		))
	default:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Bank name").Value(&w.bankName).Validate(required("bank name")),
			huh.NewInput().Title("Account number").Value(&w.accountNumber).Validate(required("account number")),
			huh.NewInput().Title("Account name").Value(&w.accountName).Validate(required("account name")),
		))
	}
}

func (w *ProfileWizard) Init() tea.Cmd {
	return w.form.Init()
}

func (w *ProfileWizard) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			w.Cancelled = true
			return nil
		}
	}

	if w.StepDone || w.step == stepFinished {
		return nil
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}
	if w.form.State == huh.StateCompleted {
		w.StepDone = true
	}
	return cmd
}

func (w *ProfileWizard) View() string {
	return w.form.View()
}

// Patch returns the just-finished step's fields as a draft patch
func (w *ProfileWizard) Patch() domain.ProfilePatch {
	switch w.step {
	case stepPersonal:
		return domain.ProfilePatch{
			FirstName:   strptr(w.firstName),
			LastName:    strptr(w.lastName),
			DateOfBirth: strptr(w.dob),
			Gender:      strptr(w.gender),
			Location: &domain.Location{
				Address: strings.TrimSpace(w.address),
				City:    strings.TrimSpace(w.city),
				Country: strings.TrimSpace(w.country),
			},
		}
	case stepDocuments:
		patch := domain.ProfilePatch{
			IDType:   strptr(w.idType),
			IDNumber: strptr(w.idNumber),
		}
		// URLs merge now; local paths merge after their upload finishes
		if isRemoteURL(w.idDocument) {
			patch.IDDocumentURL = strptr(w.idDocument)
		}
		if isRemoteURL(w.selfie) {
			patch.SelfieURL = strptr(w.selfie)
		}
		return patch
	default:
		return domain.ProfilePatch{
			BankName:      strptr(w.bankName),
			AccountNumber: strptr(w.accountNumber),
			AccountName:   strptr(w.accountName),
		}
	}
}

// PendingUploads returns the local file paths that still need uploading,
// keyed by the draft field they belong to.
func (w *ProfileWizard) PendingUploads() map[string]string {
	uploads := make(map[string]string)
	if w.step != stepDocuments {
		return uploads
	}
	if path := strings.TrimSpace(w.idDocument); path != "" && !isRemoteURL(path) {
		uploads["id"] = path
	}
	if path := strings.TrimSpace(w.selfie); path != "" && !isRemoteURL(path) {
		uploads["selfie"] = path
	}
	return uploads
}

// Advance consumes the finished step and builds the next form.
// Returns false once every step is finished.
func (w *ProfileWizard) Advance() bool {
	w.StepDone = false
	w.step++
	if w.step >= stepFinished {
		w.step = stepFinished
		return false
	}
	w.form = w.buildForm()
	return true
}

// Step returns a short label for the header
func (w *ProfileWizard) Step() string {
	switch w.step {
	case stepPersonal:
		return "1/3 Personal"
	case stepDocuments:
		return "2/3 Documents"
	case stepPayment:
		return "3/3 Payment"
	default:
		return "done"
	}
}

func isRemoteURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func strptr(s string) *string {
	trimmed := strings.TrimSpace(s)
	return &trimmed
}
