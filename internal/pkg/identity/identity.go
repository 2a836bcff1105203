package identity

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
)

var ErrNoIdentity = errors.New("no identity in request context")

// Identity is the resolved (user id, role) pair derived from request credentials.
type Identity struct {
	UserID string
	Role   user.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}

// FromContext extracts the caller's identity from the verified JWT claims.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrNoIdentity
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrNoIdentity
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Identity{}, ErrNoIdentity
	}

	return Identity{UserID: userID, Role: user.Role(roleStr)}, nil
}

// RequireRole is the single authorization predicate for role-gated operations.
func RequireRole(ctx context.Context, required user.Role) (Identity, error) {
	ident, err := FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}
	if ident.Role != required {
		return Identity{}, user.ErrAdminPrivilegeRequired
	}
	return ident, nil
}
