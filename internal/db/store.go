// exposes a Store interface that is passed to the CMS handlers
package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

// ErrNotFound is returned when a statement addressed by id matched no row.
var ErrNotFound = errors.New("record not found")

type Store interface {
	// page functions
	ListPages(ctx context.Context) ([]model.Page, error)
	GetPage(ctx context.Context, id uuid.UUID) (model.PageWithBlocks, error)
	CreatePage(ctx context.Context, p model.NewPage) (model.Page, error)
	UpdatePage(ctx context.Context, id uuid.UUID, patch model.PagePatch) (model.Page, error)
	DeletePage(ctx context.Context, id uuid.UUID) error

	// content block functions
	ListContentBlocks(ctx context.Context, pageID uuid.UUID) ([]model.ContentBlock, error)
	GetContentBlock(ctx context.Context, id uuid.UUID) (model.ContentBlock, error)
	CreateContentBlock(ctx context.Context, b model.NewContentBlock) (model.ContentBlock, error)
	UpdateContentBlock(ctx context.Context, id uuid.UUID, patch model.ContentBlockPatch) (model.ContentBlock, error)
	DeleteContentBlock(ctx context.Context, id uuid.UUID) error

	// navigation functions
	ListNavigation(ctx context.Context) ([]model.NavigationEntry, error)
	GetNavigationEntry(ctx context.Context, id uuid.UUID) (model.NavigationEntry, error)
	CreateNavigationEntry(ctx context.Context, n model.NewNavigationEntry) (model.NavigationEntry, error)
	UpdateNavigationEntry(ctx context.Context, id uuid.UUID, patch model.NavigationEntryPatch) (model.NavigationEntry, error)
	DeleteNavigationEntry(ctx context.Context, id uuid.UUID) error

	// setting functions; an empty group lists every setting
	ListSettings(ctx context.Context, group string) ([]model.Setting, error)
	GetSetting(ctx context.Context, id uuid.UUID) (model.Setting, error)
	CreateSetting(ctx context.Context, s model.NewSetting) (model.Setting, error)
	UpdateSetting(ctx context.Context, id uuid.UUID, patch model.SettingPatch) (model.Setting, error)
	DeleteSetting(ctx context.Context, id uuid.UUID) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore returns a Store backed by the given PostgreSQL connection.
func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
