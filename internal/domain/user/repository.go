package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	// UpdateProfile overwrites exactly the phone, address, and profile picture
	// fields of the user's own record.
	UpdateProfile(ctx context.Context, id string, phone, address, profilePictureURL *string) (User, error)
}
