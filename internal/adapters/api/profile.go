package api

import (
	"context"

	"carrego/internal/domain"
	"carrego/internal/ports"
)

var (
	_ ports.ProfileGateway = (*Client)(nil)
	_ ports.Uploader       = (*Client)(nil)
)

// CompleteProfile submits the finalized KYC profile
func (c *Client) CompleteProfile(ctx context.Context, profile domain.CompleteProfile) (*domain.Profile, error) {
	var updated domain.Profile
	if err := c.Patch(ctx, "/user/complete-profile", profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
