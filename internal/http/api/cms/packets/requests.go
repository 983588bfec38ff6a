// Package packets holds the typed request bodies accepted by the CMS endpoints.
// Create requests carry the full field set; Update requests are partial, nil meaning unchanged.
package packets

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

type CreatePageRequest struct {
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	MetaDescription *string      `json:"meta_description"`
	Status          model.Status `json:"status"`
}

func (r *CreatePageRequest) Validate() error {
	if r.Status == "" {
		r.Status = model.StatusDraft
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Slug, validation.Required, slugRule),
		validation.Field(&r.Status, statusRule),
	)
}

func (r CreatePageRequest) ToModel() model.NewPage {
	return model.NewPage{
		Title:           r.Title,
		Slug:            r.Slug,
		MetaDescription: r.MetaDescription,
		Status:          r.Status,
	}
}

type UpdatePageRequest struct {
	Title           *string       `json:"title"`
	Slug            *string       `json:"slug"`
	MetaDescription *string       `json:"meta_description"`
	Status          *model.Status `json:"status"`
}

func (r *UpdatePageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Slug, validation.NilOrNotEmpty, slugRule),
		validation.Field(&r.Status, validation.NilOrNotEmpty, statusRule),
	)
}

func (r UpdatePageRequest) ToModel() model.PagePatch {
	return model.PagePatch{
		Title:           r.Title,
		Slug:            r.Slug,
		MetaDescription: r.MetaDescription,
		Status:          r.Status,
	}
}

type CreateContentBlockRequest struct {
	PageID      uuid.UUID      `json:"page_id"`
	Identifier  string         `json:"identifier"`
	ContentType string         `json:"content_type"`
	Content     model.Document `json:"content"`
	Order       int            `json:"order"`
	Status      model.Status   `json:"status"`
}

func (r *CreateContentBlockRequest) Validate() error {
	if r.Status == "" {
		r.Status = model.StatusDraft
	}
	if r.Content == nil {
		r.Content = model.Document("{}")
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.PageID, notNilUUID),
		validation.Field(&r.Identifier, validation.Required),
		validation.Field(&r.ContentType, validation.Required),
		validation.Field(&r.Content, objectDocument),
		validation.Field(&r.Status, statusRule),
	)
}

func (r CreateContentBlockRequest) ToModel() model.NewContentBlock {
	return model.NewContentBlock{
		PageID:      r.PageID,
		Identifier:  r.Identifier,
		ContentType: r.ContentType,
		Content:     r.Content,
		Order:       r.Order,
		Status:      r.Status,
	}
}

type UpdateContentBlockRequest struct {
	PageID      *uuid.UUID     `json:"page_id"`
	Identifier  *string        `json:"identifier"`
	ContentType *string        `json:"content_type"`
	Content     model.Document `json:"content"`
	Order       *int           `json:"order"`
	Status      *model.Status  `json:"status"`
}

func (r *UpdateContentBlockRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PageID, notNilUUID),
		validation.Field(&r.Identifier, validation.NilOrNotEmpty),
		validation.Field(&r.ContentType, validation.NilOrNotEmpty),
		validation.Field(&r.Content, objectDocument),
		validation.Field(&r.Status, validation.NilOrNotEmpty, statusRule),
	)
}

func (r UpdateContentBlockRequest) ToModel() model.ContentBlockPatch {
	return model.ContentBlockPatch{
		PageID:      r.PageID,
		Identifier:  r.Identifier,
		ContentType: r.ContentType,
		Content:     r.Content,
		Order:       r.Order,
		Status:      r.Status,
	}
}

type CreateNavigationEntryRequest struct {
	Label    string     `json:"label"`
	URL      string     `json:"url"`
	ParentID *uuid.UUID `json:"parent_id"`
	Order    int        `json:"order"`
	IsActive *bool      `json:"is_active"`
}

func (r *CreateNavigationEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Label, validation.Required),
		validation.Field(&r.URL, validation.Required),
		validation.Field(&r.ParentID, notNilUUID),
	)
}

func (r CreateNavigationEntryRequest) ToModel() model.NewNavigationEntry {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return model.NewNavigationEntry{
		Label:    r.Label,
		URL:      r.URL,
		ParentID: r.ParentID,
		Order:    r.Order,
		IsActive: active,
	}
}

type UpdateNavigationEntryRequest struct {
	Label    *string    `json:"label"`
	URL      *string    `json:"url"`
	ParentID *uuid.UUID `json:"parent_id"`
	Order    *int       `json:"order"`
	IsActive *bool      `json:"is_active"`
}

func (r *UpdateNavigationEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Label, validation.NilOrNotEmpty),
		validation.Field(&r.URL, validation.NilOrNotEmpty),
		validation.Field(&r.ParentID, notNilUUID),
	)
}

func (r UpdateNavigationEntryRequest) ToModel() model.NavigationEntryPatch {
	return model.NavigationEntryPatch{
		Label:    r.Label,
		URL:      r.URL,
		ParentID: r.ParentID,
		Order:    r.Order,
		IsActive: r.IsActive,
	}
}

type CreateSettingRequest struct {
	Key         string         `json:"key"`
	Value       model.Document `json:"value"`
	Group       string         `json:"group"`
	Description *string        `json:"description"`
}

func (r *CreateSettingRequest) Validate() error {
	if r.Group == "" {
		r.Group = "general"
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Key, validation.Required),
		validation.Field(&r.Value, presentDocument),
	)
}

func (r CreateSettingRequest) ToModel() model.NewSetting {
	return model.NewSetting{
		Key:         r.Key,
		Value:       r.Value,
		Group:       r.Group,
		Description: r.Description,
	}
}

type UpdateSettingRequest struct {
	Key         *string        `json:"key"`
	Value       model.Document `json:"value"`
	Group       *string        `json:"group"`
	Description *string        `json:"description"`
}

func (r *UpdateSettingRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key, validation.NilOrNotEmpty),
		validation.Field(&r.Group, validation.NilOrNotEmpty),
	)
}

func (r UpdateSettingRequest) ToModel() model.SettingPatch {
	return model.SettingPatch{
		Key:         r.Key,
		Value:       r.Value,
		Group:       r.Group,
		Description: r.Description,
	}
}
