package packets

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

func TestCreatePageRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePageRequest
		wantErr string
	}{
		{name: "valid", req: CreatePageRequest{Title: "A", Slug: "a", Status: model.StatusDraft}},
		{name: "status defaults to draft", req: CreatePageRequest{Title: "A", Slug: "about-us"}},
		{name: "missing title", req: CreatePageRequest{Slug: "a"}, wantErr: "title"},
		{name: "missing slug", req: CreatePageRequest{Title: "A"}, wantErr: "slug"},
		{name: "bad slug", req: CreatePageRequest{Title: "A", Slug: "Not A Slug!"}, wantErr: "slug"},
		{name: "bad status", req: CreatePageRequest{Title: "A", Slug: "a", Status: "deleted"}, wantErr: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.True(t, req.Status.Valid())
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestUpdatePageRequestPartial(t *testing.T) {
	var req UpdatePageRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"published"}`), &req))
	require.NoError(t, req.Validate())

	patch := req.ToModel()
	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.Slug)
	require.NotNil(t, patch.Status)
	assert.Equal(t, model.StatusPublished, *patch.Status)

	empty := ""
	assert.Error(t, (&UpdatePageRequest{Title: &empty}).Validate())
}

func TestCreateContentBlockRequestValidate(t *testing.T) {
	req := CreateContentBlockRequest{PageID: uuid.New(), Identifier: "hero", ContentType: "text"}
	require.NoError(t, req.Validate())
	assert.Equal(t, model.StatusDraft, req.Status)
	assert.JSONEq(t, `{}`, string(req.Content))

	noPage := CreateContentBlockRequest{Identifier: "hero", ContentType: "text"}
	assert.ErrorContains(t, noPage.Validate(), "page_id")

	array := CreateContentBlockRequest{PageID: uuid.New(), Identifier: "hero", ContentType: "text", Content: model.Document(`[1,2]`)}
	assert.ErrorContains(t, array.Validate(), "content")
}

func TestCreateSettingRequestValidate(t *testing.T) {
	req := CreateSettingRequest{Key: "theme", Value: model.Document(`"dark"`)}
	require.NoError(t, req.Validate())
	assert.Equal(t, "general", req.Group)

	missingValue := CreateSettingRequest{Key: "theme"}
	assert.ErrorContains(t, missingValue.Validate(), "value")
}

func TestCreateNavigationEntryDefaultsActive(t *testing.T) {
	req := CreateNavigationEntryRequest{Label: "Routes", URL: "/routes"}
	require.NoError(t, req.Validate())
	assert.True(t, req.ToModel().IsActive)

	inactive := false
	req.IsActive = &inactive
	assert.False(t, req.ToModel().IsActive)
}

func TestNilUUIDRejected(t *testing.T) {
	nilID := uuid.Nil

	block := CreateContentBlockRequest{PageID: uuid.Nil, Identifier: "hero", ContentType: "text"}
	assert.ErrorContains(t, block.Validate(), "page_id")

	move := UpdateContentBlockRequest{PageID: &nilID}
	assert.ErrorContains(t, move.Validate(), "page_id")

	nav := CreateNavigationEntryRequest{Label: "Routes", URL: "/routes", ParentID: &nilID}
	assert.ErrorContains(t, nav.Validate(), "parent_id")

	parent := uuid.New()
	nav.ParentID = &parent
	assert.NoError(t, nav.Validate())

	reparent := UpdateNavigationEntryRequest{ParentID: &nilID}
	assert.ErrorContains(t, reparent.Validate(), "parent_id")
}

func TestStatusRule(t *testing.T) {
	archived := model.StatusArchived
	assert.NoError(t, (&UpdatePageRequest{Status: &archived}).Validate())

	live := model.Status("live")
	assert.ErrorContains(t, (&UpdatePageRequest{Status: &live}).Validate(), "must be one of draft, published, archived")
}
