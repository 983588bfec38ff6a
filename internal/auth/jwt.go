package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

// JWTValidator verifies HS256 access tokens signed with the identity provider's JWT secret.
type JWTValidator struct {
	secret []byte
}

var _ Validator = (*JWTValidator)(nil)

func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

// ValidateToken parses the token, requiring a valid signature, an exp claim and a string sub claim.
func (v *JWTValidator) ValidateToken(_ context.Context, tokenString string) (*model.User, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: empty token", ErrUnauthorized)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid claims", ErrUnauthorized)
	}
	if _, ok := claims["exp"].(float64); !ok {
		return nil, fmt.Errorf("%w: missing exp claim", ErrUnauthorized)
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: invalid sub claim", ErrUnauthorized)
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &model.User{ID: sub, Email: email, Role: role}, nil
}

// GenerateJWT signs a token for user that expires after ttl.
func GenerateJWT(user model.User, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
