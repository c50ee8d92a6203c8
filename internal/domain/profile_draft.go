package domain

import (
	"fmt"
	"strings"
)

// ProfileDraft accumulates the multi-step KYC profile form (personal info,
// documents, payment) before a single complete-profile submission. Fields set
// in an earlier step survive later merges.
type ProfileDraft struct {
	FirstName     string
	LastName      string
	DateOfBirth   string
	Gender        string
	Location      *Location
	IDType        string
	IDNumber      string
	IDDocumentURL string
	SelfieURL     string
	BankName      string
	AccountNumber string
	AccountName   string
}

// ProfilePatch is a partial update to a ProfileDraft. Nil fields are absent
// and leave the draft untouched; Location is replaced wholesale when present.
type ProfilePatch struct {
	FirstName     *string
	LastName      *string
	DateOfBirth   *string
	Gender        *string
	Location      *Location
	IDType        *string
	IDNumber      *string
	IDDocumentURL *string
	SelfieURL     *string
	BankName      *string
	AccountNumber *string
	AccountName   *string
}

// Merge returns a new draft with the patch's present fields applied on top of
// the receiver. Shallow merge only.
func (d ProfileDraft) Merge(p ProfilePatch) ProfileDraft {
	out := d
	if p.FirstName != nil {
		out.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		out.LastName = *p.LastName
	}
	if p.DateOfBirth != nil {
		out.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		out.Gender = *p.Gender
	}
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	if p.IDType != nil {
		out.IDType = *p.IDType
	}
	if p.IDNumber != nil {
		out.IDNumber = *p.IDNumber
	}
	if p.IDDocumentURL != nil {
		out.IDDocumentURL = *p.IDDocumentURL
	}
	if p.SelfieURL != nil {
		out.SelfieURL = *p.SelfieURL
	}
	if p.BankName != nil {
		out.BankName = *p.BankName
	}
	if p.AccountNumber != nil {
		out.AccountNumber = *p.AccountNumber
	}
	if p.AccountName != nil {
		out.AccountName = *p.AccountName
	}
	return out
}

// CompleteProfile is the finalized complete-profile submission payload
type CompleteProfile struct {
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	DateOfBirth   string    `json:"dateOfBirth"`
	Gender        string    `json:"gender"`
	Location      *Location `json:"location,omitempty"`
	IDType        string    `json:"idType"`
	IDNumber      string    `json:"idNumber"`
	IDDocumentURL string    `json:"idDocumentUrl"`
	SelfieURL     string    `json:"selfieUrl"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	AccountName   string    `json:"accountName"`
}

// ValidationError lists the draft fields still missing at finalization
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// Finalize validates the accumulated draft and yields the submission payload
func (d ProfileDraft) Finalize() (CompleteProfile, error) {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"first name", d.FirstName},
		{"last name", d.LastName},
		{"date of birth", d.DateOfBirth},
		{"ID type", d.IDType},
		{"ID number", d.IDNumber},
		{"ID document", d.IDDocumentURL},
		{"bank name", d.BankName},
		{"account number", d.AccountNumber},
		{"account name", d.AccountName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return CompleteProfile{}, &ValidationError{Missing: missing}
	}

	return CompleteProfile{
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		DateOfBirth:   d.DateOfBirth,
		Gender:        d.Gender,
		Location:      d.Location,
		IDType:        d.IDType,
		IDNumber:      d.IDNumber,
		IDDocumentURL: d.IDDocumentURL,
		SelfieURL:     d.SelfieURL,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		AccountName:   d.AccountName,
	}, nil
}
