package profile

import (
	"context"
	"time"

	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/identity"
)

type profileService struct {
	userRepo user.UserRepository
}

func NewProfileService(userRepo user.UserRepository) user.ProfileService {
	return &profileService{userRepo: userRepo}
}

// GetProfile implements user.ProfileService.
func (s *profileService) GetProfile(ctx context.Context) (user.ProfileResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, ident.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return toProfileResponse(u), nil
}

// UpdateProfile implements user.ProfileService. Only contact fields are
// writable; email, role, and credentials stay untouched.
func (s *profileService) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.userRepo.UpdateProfile(ctx, ident.UserID, req.Phone, req.Address, req.ProfilePictureURL)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return toProfileResponse(updated), nil
}

func toProfileResponse(u user.User) user.ProfileResponse {
	return user.ProfileResponse{
		ID:                u.ID,
		Email:             u.Email,
		Role:              string(u.Role),
		Phone:             u.Phone,
		Address:           u.Address,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         u.UpdatedAt.Format(time.RFC3339),
	}
}
