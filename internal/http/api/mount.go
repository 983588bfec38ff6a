package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/auth"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/middleware"
)

// Module is a pluggable feature that attaches its endpoints to a Controller (a gin group).
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc lets you define a Module with a simple function.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

// Controller is the route group a Module mounts on.
type Controller struct {
	Group *gin.RouterGroup
}

// Any routes every HTTP method on path to an authenticated handler.
func (c *Controller) Any(path string, h HandlerFuncWithAuth) {
	c.Group.Any(path, ResolveEndpointWithAuth(h))
}

// GroupConfig tells the api package how to mount a group.
type GroupConfig struct {
	Prefix     string
	Validator  auth.Validator    // nil mounts the group without authentication
	Middleware []gin.HandlerFunc // runs before authentication
}

// MountGroup mounts one or more Modules under a prefix with optional auth.
func MountGroup(parent gin.IRouter, cfg GroupConfig, modules ...Module) {
	grp := parent.Group(cfg.Prefix)

	// Apply middleware in a deterministic order.
	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}
	if cfg.Validator != nil {
		grp.Use(middleware.Authenticate(cfg.Validator))
	}

	controller := &Controller{Group: grp}

	for _, m := range modules {
		m.Mount(controller)
	}
}
