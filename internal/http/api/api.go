package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

// Error is a handler failure rendered as {"error": Message} with status Code.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

func Internal(message string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message}
}

type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *Error)
type HandlerFunc func(ctx *gin.Context) (any, *Error)

// ResolveEndpointWithAuth renders h's result as JSON for an authenticated caller.
// Handlers that wrote the response themselves (e.g. 304) are left alone.
func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		result, err := h(ctx, user)
		render(ctx, result, err)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, err := h(ctx)
		render(ctx, result, err)
	}
}

func render(ctx *gin.Context, result any, err *Error) {
	if err != nil {
		ctx.JSON(err.Code, gin.H{"error": err.Message})
		return
	}
	if ctx.IsAborted() || ctx.Writer.Written() {
		return
	}
	ctx.JSON(http.StatusOK, result)
}
