package cms

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/db"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api/cms/packets"
)

type blockResource struct {
	store db.Store
}

func (r blockResource) Get(ctx context.Context, id uuid.UUID) (any, error) {
	return r.store.GetContentBlock(ctx, id)
}

// List requires ?page_id and returns that page's blocks by ascending order.
func (r blockResource) List(ctx context.Context, query url.Values) (any, error) {
	raw := query.Get("page_id")
	if raw == "" {
		return nil, api.BadRequest("page_id is required")
	}
	pageID, err := uuid.Parse(raw)
	if err != nil {
		return nil, api.BadRequest("page_id must be a valid id")
	}
	return r.store.ListContentBlocks(ctx, pageID)
}

func (r blockResource) Create(ctx context.Context, decode Decoder) (any, error) {
	var req packets.CreateContentBlockRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.CreateContentBlock(ctx, req.ToModel())
}

func (r blockResource) Update(ctx context.Context, id uuid.UUID, decode Decoder) (any, error) {
	var req packets.UpdateContentBlockRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.UpdateContentBlock(ctx, id, req.ToModel())
}

func (r blockResource) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.DeleteContentBlock(ctx, id)
}
