package cms

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/db"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api/cms/packets"
)

type pageResource struct {
	store db.Store
}

// Get embeds the page's content blocks.
func (r pageResource) Get(ctx context.Context, id uuid.UUID) (any, error) {
	return r.store.GetPage(ctx, id)
}

// List returns every page, newest first.
func (r pageResource) List(ctx context.Context, _ url.Values) (any, error) {
	return r.store.ListPages(ctx)
}

func (r pageResource) Create(ctx context.Context, decode Decoder) (any, error) {
	var req packets.CreatePageRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.CreatePage(ctx, req.ToModel())
}

func (r pageResource) Update(ctx context.Context, id uuid.UUID, decode Decoder) (any, error) {
	var req packets.UpdatePageRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.UpdatePage(ctx, id, req.ToModel())
}

func (r pageResource) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.DeletePage(ctx, id)
}
