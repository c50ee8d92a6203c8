package cmd

import (
	"context"
	"fmt"

	"carrego/internal/domain"
)

// ProfileCmd groups the KYC profile subcommands
type ProfileCmd struct {
	Complete ProfileCompleteCmd `cmd:"complete" help:"Submit the full KYC profile" default:"1"`
}

// ProfileCompleteCmd submits the full KYC profile in one shot. Local file
// paths given for the documents are uploaded first.
type ProfileCompleteCmd struct {
	FirstName   string `help:"First name" required:""`
	LastName    string `help:"Last name" required:""`
	DateOfBirth string `help:"Date of birth (YYYY-MM-DD)" required:""`
	Gender      string `help:"Gender"`
	Address     string `help:"Street address"`
	City        string `help:"City"`
	Country     string `help:"Country"`

	IDType     string `help:"ID type (passport, national-id, drivers-license)" required:""`
	IDNumber   string `help:"ID number" required:""`
	IDDocument string `help:"ID document: local file path or URL" required:""`
	Selfie     string `help:"Selfie: local file path or URL"`

	BankName      string `help:"Bank name" required:""`
	AccountNumber string `help:"Bank account number" required:""`
	AccountName   string `help:"Bank account holder name" required:""`
}

// Run executes profile complete
func (p *ProfileCompleteCmd) Run(cli *CLI) error {
	ctx := context.Background()
	if _, err := restoreSession(cli); err != nil {
		return err
	}

	idDocument, err := resolveDocument(ctx, cli, p.IDDocument)
	if err != nil {
		return fmt.Errorf("ID document: %w", err)
	}
	selfie := p.Selfie
	if selfie != "" {
		selfie, err = resolveDocument(ctx, cli, p.Selfie)
		if err != nil {
			return fmt.Errorf("selfie: %w", err)
		}
	}

	draft := domain.ProfileDraft{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		DateOfBirth:   p.DateOfBirth,
		Gender:        p.Gender,
		IDType:        p.IDType,
		IDNumber:      p.IDNumber,
		IDDocumentURL: idDocument,
		SelfieURL:     selfie,
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		AccountName:   p.AccountName,
	}
	if p.Address != "" || p.City != "" || p.Country != "" {
		draft.Location = &domain.Location{
			Address: p.Address,
			City:    p.City,
			Country: p.Country,
		}
	}

	profile, err := cli.Container.ProfileService.Complete(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Profile completed for %s %s\n", profile.FirstName, profile.LastName)
	return nil
}

// resolveDocument uploads local paths and passes URLs through untouched
func resolveDocument(ctx context.Context, cli *CLI, ref string) (string, error) {
	if isURL(ref) {
		return ref, nil
	}
	return cli.Container.ProfileService.UploadDocument(ctx, ref)
}
