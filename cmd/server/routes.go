package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api/cms"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	// unmatched paths get the JSON 404 rather than an HTML redirect
	r.RedirectTrailingSlash = false

	r.Use(
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.StaticCORS(),
	)

	opts := []cms.Option{cms.WithPublisher(deps.Publisher)}
	if deps.ETags != nil {
		opts = append(opts, cms.WithETags(deps.ETags))
	}

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/cms",
		Validator: deps.Validator,
	},
		cms.NewRouter(deps.Store, opts...).Module(),
	)

	r.GET("/healthz", api.ResolveEndpoint(func(*gin.Context) (any, *api.Error) {
		return gin.H{"status": "ok"}, nil
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
