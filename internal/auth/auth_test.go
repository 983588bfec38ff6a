package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

const testSecret = "supersecret"

func TestTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", TokenFromHeader("Bearer abc"))
	assert.Equal(t, "", TokenFromHeader("Bearer"))
	assert.Equal(t, "", TokenFromHeader("abc"))
	assert.Equal(t, "abc", TokenFromHeader("Token abc extra"))
}

func TestJWTValidator(t *testing.T) {
	v := NewJWTValidator(testSecret)
	ctx := context.Background()
	user := model.User{ID: "8c5f7f0e-8e1b-4d1a-9a55-0e6c6f0d1a11", Email: "setter@cragline.app", Role: "authenticated"}

	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateJWT(user, testSecret, time.Hour)
		require.NoError(t, err)

		got, err := v.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user, *got)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateJWT(user, testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = v.ValidateToken(ctx, token)
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(user, "other", time.Hour)
		require.NoError(t, err)

		_, err = v.ValidateToken(ctx, token)
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("missing exp", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": user.ID}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = v.ValidateToken(ctx, token)
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.ValidateToken(ctx, "not-a-jwt")
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})
}

func TestGoTrueValidator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","email":"climber@cragline.app","role":"authenticated"}`))
	}))
	defer srv.Close()

	v := NewGoTrueValidator(srv.URL+"/", "anon-key", srv.Client())
	ctx := context.Background()

	user, err := v.ValidateToken(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "climber@cragline.app", user.Email)

	_, err = v.ValidateToken(ctx, "bad")
	assert.True(t, errors.Is(err, ErrUnauthorized))

	_, err = v.ValidateToken(ctx, "")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestGoTrueValidatorProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewGoTrueValidator(url, "", nil).ValidateToken(context.Background(), "token")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestRequireRole(t *testing.T) {
	base := ValidatorFunc(func(_ context.Context, token string) (*model.User, error) {
		return &model.User{ID: "u", Role: token}, nil
	})

	open := RequireRole(base, "")
	_, err := open.ValidateToken(context.Background(), "authenticated")
	assert.NoError(t, err)

	v := RequireRole(base, "cms_admin")
	_, err = v.ValidateToken(context.Background(), "cms_admin")
	assert.NoError(t, err)
	_, err = v.ValidateToken(context.Background(), "authenticated")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}
