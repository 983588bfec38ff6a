package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/auth"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate(t *testing.T) {
	var seenToken string
	v := auth.ValidatorFunc(func(_ context.Context, token string) (*model.User, error) {
		seenToken = token
		if token == "ok" {
			return &model.User{ID: "u-1"}, nil
		}
		return nil, auth.ErrUnauthorized
	})

	r := gin.New()
	r.Use(Authenticate(v))
	r.Any("/whoami", func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})

	tests := []struct {
		name   string
		method string
		header string
		code   int
		body   string
	}{
		{name: "missing header", method: http.MethodGet, code: http.StatusUnauthorized, body: `{"error":"No authorization header"}`},
		{name: "bad token", method: http.MethodGet, header: "Bearer nope", code: http.StatusUnauthorized, body: `{"error":"Unauthorized"}`},
		{name: "valid token", method: http.MethodGet, header: "Bearer ok", code: http.StatusOK, body: `{"id":"u-1"}`},
		{name: "preflight skips auth", method: http.MethodOptions, code: http.StatusTeapot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
	assert.Equal(t, "ok", seenToken)
}

func TestStaticCORS(t *testing.T) {
	r := gin.New()
	r.Use(StaticCORS())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", w.Header().Get("Access-Control-Allow-Headers"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/anything", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("rope snapped") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
