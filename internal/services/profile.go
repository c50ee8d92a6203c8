package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ports"
)

// ProfileService finalizes the KYC profile draft and uploads documents
type ProfileService struct {
	gateway  ports.ProfileGateway
	uploader ports.Uploader
}

// NewProfileService creates a new ProfileService
func NewProfileService(gateway ports.ProfileGateway, uploader ports.Uploader) *ProfileService {
	return &ProfileService{
		gateway:  gateway,
		uploader: uploader,
	}
}

// Complete finalizes the accumulated draft and submits it. Validation
// failures surface before any network call.
func (s *ProfileService) Complete(ctx context.Context, draft domain.ProfileDraft) (*domain.Profile, error) {
	payload, err := draft.Finalize()
	if err != nil {
		logging.Logger.Warn("Profile draft incomplete", "error", err)
		return nil, err
	}

	logging.Logger.Info("Submitting complete profile")
	profile, err := s.gateway.CompleteProfile(ctx, payload)
	if err != nil {
		logging.Logger.Error("Failed to complete profile", "error", err)
		return nil, err
	}

	logging.Logger.Info("Profile completed", "user_id", profile.UserID)
	return profile, nil
}

// UploadDocument uploads a local file and returns its storage URL
func (s *ProfileService) UploadDocument(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	url, err := s.uploader.Upload(ctx, filepath.Base(path), file)
	if err != nil {
		logging.Logger.Error("Failed to upload document", "path", path, "error", err)
		return "", err
	}

	logging.Logger.Info("Document uploaded", "path", path, "url", url)
	return url, nil
}
