package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

func strPtr(s string) *string { return &s }

func TestMemoryStorePages(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.CreatePage(ctx, model.NewPage{Title: "Home", Slug: "home", Status: model.StatusDraft})
	require.NoError(t, err)
	second, err := store.CreatePage(ctx, model.NewPage{Title: "Gyms", Slug: "gyms", Status: model.StatusPublished})
	require.NoError(t, err)

	t.Run("list newest first", func(t *testing.T) {
		pages, err := store.ListPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, second.ID, pages[0].ID)
		assert.Equal(t, first.ID, pages[1].ID)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		_, err := store.CreatePage(ctx, model.NewPage{Title: "Other", Slug: "home", Status: model.StatusDraft})
		assert.True(t, errors.Is(err, ErrDuplicate))
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		updated, err := store.UpdatePage(ctx, first.ID, model.PagePatch{Title: strPtr("Welcome")})
		require.NoError(t, err)
		assert.Equal(t, "Welcome", updated.Title)
		assert.Equal(t, "home", updated.Slug)
		assert.Equal(t, model.StatusDraft, updated.Status)

		other, err := store.GetPage(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gyms", other.Title)
	})

	t.Run("get embeds empty block list", func(t *testing.T) {
		page, err := store.GetPage(ctx, second.ID)
		require.NoError(t, err)
		assert.NotNil(t, page.ContentBlocks)
		assert.Empty(t, page.ContentBlocks)
	})

	t.Run("delete twice", func(t *testing.T) {
		require.NoError(t, store.DeletePage(ctx, second.ID))
		err := store.DeletePage(ctx, second.ID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestMemoryStoreBlocks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	page, err := store.CreatePage(ctx, model.NewPage{Title: "Home", Slug: "home", Status: model.StatusDraft})
	require.NoError(t, err)
	other, err := store.CreatePage(ctx, model.NewPage{Title: "Other", Slug: "other", Status: model.StatusDraft})
	require.NoError(t, err)

	for _, order := range []int{3, 1, 2} {
		_, err := store.CreateContentBlock(ctx, model.NewContentBlock{
			PageID: page.ID, Identifier: "hero", ContentType: "text", Order: order, Status: model.StatusDraft,
		})
		require.NoError(t, err)
	}
	_, err = store.CreateContentBlock(ctx, model.NewContentBlock{
		PageID: other.ID, Identifier: "hero", ContentType: "text", Order: 0, Status: model.StatusDraft,
	})
	require.NoError(t, err)

	blocks, err := store.ListContentBlocks(ctx, page.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	for i, b := range blocks {
		assert.Equal(t, page.ID, b.PageID)
		assert.Equal(t, i+1, b.Order)
		assert.JSONEq(t, `{}`, string(b.Content))
	}

	_, err = store.CreateContentBlock(ctx, model.NewContentBlock{PageID: uuid.New(), Identifier: "x", ContentType: "text"})
	assert.True(t, errors.Is(err, ErrForeignKey))

	require.NoError(t, store.DeletePage(ctx, page.ID))
	_, err = store.GetContentBlock(ctx, blocks[0].ID)
	assert.True(t, errors.Is(err, ErrNotFound), "blocks are removed with their page")
}

func TestMemoryStoreSettingsGroupFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.CreateSetting(ctx, model.NewSetting{Key: "theme", Value: model.Document(`"dark"`), Group: "display"})
	require.NoError(t, err)
	_, err = store.CreateSetting(ctx, model.NewSetting{Key: "units", Value: model.Document(`"metric"`), Group: "display"})
	require.NoError(t, err)
	_, err = store.CreateSetting(ctx, model.NewSetting{Key: "support_email", Value: model.Document(`"help@cragline.app"`)})
	require.NoError(t, err)

	display, err := store.ListSettings(ctx, "display")
	require.NoError(t, err)
	require.Len(t, display, 2)
	for _, s := range display {
		assert.Equal(t, "display", s.Group)
	}

	all, err := store.ListSettings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "general", all[2].Group)
}

func TestMemoryStoreNavigationParentCleared(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	parent, err := store.CreateNavigationEntry(ctx, model.NewNavigationEntry{Label: "Routes", URL: "/routes", Order: 1, IsActive: true})
	require.NoError(t, err)
	child, err := store.CreateNavigationEntry(ctx, model.NewNavigationEntry{Label: "Bouldering", URL: "/routes/boulder", ParentID: &parent.ID, Order: 0})
	require.NoError(t, err)

	list, err := store.ListNavigation(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, child.ID, list[0].ID)

	require.NoError(t, store.DeleteNavigationEntry(ctx, parent.ID))
	got, err := store.GetNavigationEntry(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
}
