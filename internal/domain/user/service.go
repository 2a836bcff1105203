package user

import "context"

// ProfileService defines business logic for the caller's own user record.
type ProfileService interface {
	// GetProfile retrieves the authenticated user's record minus credentials
	GetProfile(ctx context.Context) (ProfileResponse, error)

	// UpdateProfile overwrites the phone, address, and profile picture fields
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
}
