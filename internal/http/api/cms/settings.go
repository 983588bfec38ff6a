package cms

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/db"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/http/api/cms/packets"
)

type settingResource struct {
	store db.Store
}

func (r settingResource) Get(ctx context.Context, id uuid.UUID) (any, error) {
	return r.store.GetSetting(ctx, id)
}

// List honours an optional ?group filter.
func (r settingResource) List(ctx context.Context, query url.Values) (any, error) {
	return r.store.ListSettings(ctx, query.Get("group"))
}

func (r settingResource) Create(ctx context.Context, decode Decoder) (any, error) {
	var req packets.CreateSettingRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.CreateSetting(ctx, req.ToModel())
}

func (r settingResource) Update(ctx context.Context, id uuid.UUID, decode Decoder) (any, error) {
	var req packets.UpdateSettingRequest
	if err := bind(decode, &req); err != nil {
		return nil, err
	}
	return r.store.UpdateSetting(ctx, id, req.ToModel())
}

func (r settingResource) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.DeleteSetting(ctx, id)
}
