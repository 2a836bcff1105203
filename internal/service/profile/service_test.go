package profile

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/identity"
	"github.com/kerjahub/hrm-backend-go/internal/repository/memory"
)

func authCtx(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   userID + "@example.com",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func seedUser(t *testing.T, repo *memory.UserRepository, id string) user.User {
	t.Helper()

	hash := "$2a$10$fakehash"
	created, err := repo.Create(context.Background(), user.User{
		ID:           id,
		Email:        id + "@example.com",
		PasswordHash: &hash,
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return created
}

func TestGetProfile_OmitsCredentials(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewProfileService(repo)
	seedUser(t, repo, "user-1")

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	resp, err := svc.GetProfile(ctx)

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)
	assert.Equal(t, "user-1@example.com", resp.Email)
	assert.Equal(t, string(user.RoleEmployee), resp.Role)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewProfileService(repo)

	ctx := authCtx(t, "ghost", user.RoleEmployee)
	_, err := svc.GetProfile(ctx)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewProfileService(repo)

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, identity.ErrNoIdentity)
}

func TestUpdateProfile(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewProfileService(repo)
	seedUser(t, repo, "user-1")

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	phone := "+62-812-0000-1111"
	address := "Jl. Merdeka 1, Jakarta"
	resp, err := svc.UpdateProfile(ctx, user.UpdateProfileRequest{
		Phone:   &phone,
		Address: &address,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, phone, *resp.Phone)
	require.NotNil(t, resp.Address)
	assert.Equal(t, address, *resp.Address)
	assert.Equal(t, "user-1@example.com", resp.Email)
}

func TestUpdateProfile_ClearsUnsetFields(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewProfileService(repo)
	seedUser(t, repo, "user-1")

	ctx := authCtx(t, "user-1", user.RoleEmployee)
	phone := "+62-812-0000-1111"
	_, err := svc.UpdateProfile(ctx, user.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)

	resp, err := svc.UpdateProfile(ctx, user.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.Phone)
}
