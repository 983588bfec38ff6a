package cms

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/db"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api/cms/packets"
)

type navigationResource struct {
	store db.Store
}

func (r navigationResource) Get(ctx context.Context, id uuid.UUID) (any, error) {
	return r.store.GetNavigationEntry(ctx, id)
}

func (r navigationResource) List(ctx context.Context, _ url.Values) (any, error) {
	return r.store.ListNavigation(ctx)
}

func (r navigationResource) Create(ctx context.Context, decode Decoder) (any, error) {
	var req packets.CreateNavigationEntryRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.CreateNavigationEntry(ctx, req.ToModel())
}

func (r navigationResource) Update(ctx context.Context, id uuid.UUID, decode Decoder) (any, error) {
	var req packets.UpdateNavigationEntryRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.UpdateNavigationEntry(ctx, id, req.ToModel())
}

func (r navigationResource) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.DeleteNavigationEntry(ctx, id)
}
