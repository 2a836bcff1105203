package user

// ProfileResponse is the caller's own user record minus credential fields.
type ProfileResponse struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}
