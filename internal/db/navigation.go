package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

const navigationColumns = `id, label, url, parent_id, "order", is_active, created_at, updated_at`

func (s *pgStore) ListNavigation(ctx context.Context) ([]model.NavigationEntry, error) {
	all := []model.NavigationEntry{}
	query := `SELECT ` + navigationColumns + ` FROM navigation_menu ORDER BY "order" ASC, created_at ASC;`
	if err := s.db.SelectContext(ctx, &all, query); err != nil {
		log.Error().Err(err).Msg("failed to list navigation")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) GetNavigationEntry(ctx context.Context, id uuid.UUID) (model.NavigationEntry, error) {
	var n model.NavigationEntry
	query := `SELECT ` + navigationColumns + ` FROM navigation_menu WHERE id = $1;`
	if err := s.db.GetContext(ctx, &n, query, id); err != nil {
		log.Error().Err(err).Str("navigation_id", id.String()).Msg("failed to get navigation entry by id")
		return model.NavigationEntry{}, mapNoRows(err, "navigation_menu", id)
	}
	return n, nil
}

func (s *pgStore) CreateNavigationEntry(ctx context.Context, in model.NewNavigationEntry) (model.NavigationEntry, error) {
	var n model.NavigationEntry
	query := `
	INSERT INTO navigation_menu
	(label, url, parent_id, "order", is_active, created_at, updated_at)
	VALUES
	($1,    $2,  $3,        $4,      $5,        now(),      now())
	RETURNING ` + navigationColumns + `;`

	if err := s.db.GetContext(ctx, &n, query,
		in.Label, in.URL, in.ParentID, in.Order, in.IsActive,
	); err != nil {
		log.Error().Err(err).Str("label", in.Label).Msg("failed to create navigation entry")
		return model.NavigationEntry{}, err
	}
	return n, nil
}

func (s *pgStore) UpdateNavigationEntry(ctx context.Context, id uuid.UUID, patch model.NavigationEntryPatch) (model.NavigationEntry, error) {
	var n model.NavigationEntry
	query := `
	UPDATE navigation_menu
	SET
	label      = COALESCE($2, label),
	url        = COALESCE($3, url),
	parent_id  = COALESCE($4, parent_id),
	"order"    = COALESCE($5, "order"),
	is_active  = COALESCE($6, is_active),
	updated_at = now()
	WHERE id = $1
	RETURNING ` + navigationColumns + `;`

	if err := s.db.GetContext(ctx, &n, query,
		id, patch.Label, patch.URL, patch.ParentID, patch.Order, patch.IsActive,
	); err != nil {
		log.Error().Err(err).Str("navigation_id", id.String()).Msg("failed to update navigation entry")
		return model.NavigationEntry{}, mapNoRows(err, "navigation_menu", id)
	}
	return n, nil
}

func (s *pgStore) DeleteNavigationEntry(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM navigation_menu WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("navigation_id", id.String()).Msg("failed to delete navigation entry")
		return err
	}
	return expectAffected(res, "navigation_menu", id)
}
