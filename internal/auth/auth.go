// Package auth resolves bearer tokens to users through an external identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

// ErrUnauthorized is returned for invalid or expired tokens and for provider failures.
var ErrUnauthorized = errors.New("unauthorized")

// Validator checks a bearer token and returns the user it belongs to.
type Validator interface {
	ValidateToken(ctx context.Context, token string) (*model.User, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, token string) (*model.User, error)

func (f ValidatorFunc) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	return f(ctx, token)
}

// TokenFromHeader returns the second space-separated field of an Authorization header,
// or "" when there is none.
func TokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// RequireRole wraps a Validator so only users carrying role are accepted.
// An empty role returns next unchanged.
func RequireRole(next Validator, role string) Validator {
	if role == "" {
		return next
	}
	return ValidatorFunc(func(ctx context.Context, token string) (*model.User, error) {
		user, err := next.ValidateToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if user.Role != role {
			return nil, fmt.Errorf("%w: role %q is not allowed", ErrUnauthorized, user.Role)
		}
		return user, nil
	})
}
