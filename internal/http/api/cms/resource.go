// Package cms implements the content request router: a registry of resources, each
// offering get, list, create, update and delete against the store.
package cms

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api"
)

func init() {
	// request bodies must only carry the fields of their resource
	binding.EnableDecoderDisallowUnknownFields = true
}

// Decoder fills dst from the request body.
type Decoder func(dst any) error

// Resource is one manageable entity kind.
type Resource interface {
	Get(ctx context.Context, id uuid.UUID) (any, error)
	List(ctx context.Context, query url.Values) (any, error)
	Create(ctx context.Context, decode Decoder) (any, error)
	Update(ctx context.Context, id uuid.UUID, decode Decoder) (any, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type validatable interface {
	Validate() error
}

// bind decodes and validates a request body, reporting failures as 400s.
func bind(decode Decoder, dst validatable) error {
	if err := decode(dst); err != nil {
		return api.BadRequest("invalid request body: " + err.Error())
	}
	if err := dst.Validate(); err != nil {
		return api.BadRequest(err.Error())
	}
	return nil
}
