package cms

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/cache"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/db"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/events"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

const (
	ResourcePages      = "pages"
	ResourceBlocks     = "blocks"
	ResourceNavigation = "navigation"
	ResourceSettings   = "settings"
)

const publishTimeout = 5 * time.Second

type registration struct {
	resource Resource
	// cascades names resources whose collections change when this one is written
	cascades []string
}

// Router dispatches /:resource[/:id] requests to registered resources.
type Router struct {
	resources map[string]registration
	etags     cache.ETags
	publisher events.Publisher
}

type Option func(*Router)

// WithETags enables conditional collection reads.
func WithETags(etags cache.ETags) Option {
	return func(r *Router) { r.etags = etags }
}

// WithPublisher announces successful writes.
func WithPublisher(p events.Publisher) Option {
	return func(r *Router) { r.publisher = p }
}

// NewRouter registers pages, blocks, navigation and settings backed by store.
func NewRouter(store db.Store, opts ...Option) *Router {
	r := &Router{
		resources: make(map[string]registration),
		publisher: events.Nop{},
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Register(ResourcePages, pageResource{store: store}, ResourceBlocks)
	r.Register(ResourceBlocks, blockResource{store: store})
	r.Register(ResourceNavigation, navigationResource{store: store})
	r.Register(ResourceSettings, settingResource{store: store})
	return r
}

// Register adds or replaces the resource served under name.
func (r *Router) Register(name string, res Resource, cascades ...string) {
	r.resources[name] = registration{resource: res, cascades: cascades}
}

// Module mounts the router on a controller.
func (r *Router) Module() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		// a trailing slash routes like the bare path
		for _, path := range []string{"", "/:resource", "/:resource/:id"} {
			c.Any(path, r.handle)
			c.Any(path+"/", r.handle)
		}
	})
}

func (r *Router) handle(ctx *gin.Context, user *model.User) (any, *api.Error) {
	name := ctx.Param("resource")
	reg, ok := r.resources[name]
	if !ok {
		return nil, api.BadRequest("Invalid resource")
	}
	res := reg.resource
	rawID := ctx.Param("id")
	rctx := ctx.Request.Context()

	switch ctx.Request.Method {
	case http.MethodGet:
		if rawID != "" {
			id, apiErr := parseID(rawID)
			if apiErr != nil {
				return nil, apiErr
			}
			return result(res.Get(rctx, id))
		}
		return r.list(ctx, name, res)

	case http.MethodPost:
		out, err := res.Create(rctx, decoder(ctx))
		if err != nil {
			return nil, toAPIError(err)
		}
		r.afterWrite(ctx, name, reg, recordID(out), events.ActionCreated, user)
		return out, nil

	case http.MethodPut:
		if rawID == "" {
			return nil, api.BadRequest("ID is required for updates")
		}
		id, apiErr := parseID(rawID)
		if apiErr != nil {
			return nil, apiErr
		}
		out, err := res.Update(rctx, id, decoder(ctx))
		if err != nil {
			return nil, toAPIError(err)
		}
		r.afterWrite(ctx, name, reg, id.String(), events.ActionUpdated, user)
		return out, nil

	case http.MethodDelete:
		if rawID == "" {
			return nil, api.BadRequest("ID is required for deletion")
		}
		id, apiErr := parseID(rawID)
		if apiErr != nil {
			return nil, apiErr
		}
		if err := res.Delete(rctx, id); err != nil {
			return nil, toAPIError(err)
		}
		r.afterWrite(ctx, name, reg, id.String(), events.ActionDeleted, user)
		return gin.H{"success": true}, nil

	default:
		return nil, &api.Error{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	}
}

// list serves a collection read, answering 304 when the caller's ETag is current.
// The version token is read before the store so a concurrent write can only make the tag stale.
func (r *Router) list(ctx *gin.Context, name string, res Resource) (any, *api.Error) {
	var etag string
	if r.etags != nil {
		token, err := r.etags.Current(ctx.Request.Context(), name)
		if err != nil {
			log.Warn().Err(err).Str("resource", name).Msg("could not read collection ETag")
		} else {
			etag = cache.Format(token, ctx.Request.URL.RawQuery)
			if matchesETag(ctx.GetHeader("If-None-Match"), etag) {
				ctx.Header("ETag", etag)
				ctx.AbortWithStatus(http.StatusNotModified)
				return nil, nil
			}
		}
	}

	out, err := res.List(ctx.Request.Context(), ctx.Request.URL.Query())
	if err != nil {
		return nil, toAPIError(err)
	}
	if etag != "" {
		ctx.Header("ETag", etag)
	}
	return out, nil
}

func (r *Router) afterWrite(ctx *gin.Context, name string, reg registration, id string, action events.Action, user *model.User) {
	if r.etags != nil {
		stale := append([]string{name}, reg.cascades...)
		if err := r.etags.Invalidate(ctx.Request.Context(), stale...); err != nil {
			log.Warn().Err(err).Str("resource", name).Msg("collection ETag left in place")
		}
	}

	log.Info().
		Str("resource", name).
		Str("id", id).
		Str("action", string(action)).
		Str("user_id", user.ID).
		Msg("content changed")

	e := events.Event{Resource: name, ID: id, Action: action, At: time.Now().UTC()}
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := r.publisher.Publish(pctx, e); err != nil {
			log.Error().Err(err).Str("topic", e.Topic()).Msg("failed to publish content change")
		}
	}()
}

func decoder(ctx *gin.Context) Decoder {
	return func(dst any) error {
		return ctx.ShouldBindJSON(dst)
	}
}

func parseID(raw string) (uuid.UUID, *api.Error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, api.BadRequest("invalid id: " + raw)
	}
	return id, nil
}

func result(out any, err error) (any, *api.Error) {
	if err != nil {
		return nil, toAPIError(err)
	}
	return out, nil
}

// toAPIError keeps handler-level errors and surfaces store errors verbatim as 500s.
func toAPIError(err error) *api.Error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, db.ErrNotFound) {
		log.Debug().Err(err).Msg("store reported missing record")
	} else {
		log.Error().Err(err).Msg("store request failed")
	}
	return api.Internal(err.Error())
}

func recordID(v any) string {
	switch rec := v.(type) {
	case model.Page:
		return rec.ID.String()
	case model.ContentBlock:
		return rec.ID.String()
	case model.NavigationEntry:
		return rec.ID.String()
	case model.Setting:
		return rec.ID.String()
	}
	return ""
}

func matchesETag(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
