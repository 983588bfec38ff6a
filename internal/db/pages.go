package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

const pageColumns = `id, title, slug, meta_description, status, created_at, updated_at`

func (s *pgStore) ListPages(ctx context.Context) ([]model.Page, error) {
	all := []model.Page{}
	query := `SELECT ` + pageColumns + ` FROM pages ORDER BY created_at DESC;`
	if err := s.db.SelectContext(ctx, &all, query); err != nil {
		log.Error().Err(err).Msg("failed to list pages")
		return nil, err
	}
	return all, nil
}

// GetPage fetches one page with its content blocks embedded.
func (s *pgStore) GetPage(ctx context.Context, id uuid.UUID) (model.PageWithBlocks, error) {
	var p model.PageWithBlocks
	query := `SELECT ` + pageColumns + ` FROM pages WHERE id = $1;`
	if err := s.db.GetContext(ctx, &p.Page, query, id); err != nil {
		log.Error().Err(err).Str("page_id", id.String()).Msg("failed to get page by id")
		return model.PageWithBlocks{}, mapNoRows(err, "pages", id)
	}

	blocks, err := s.ListContentBlocks(ctx, id)
	if err != nil {
		return model.PageWithBlocks{}, err
	}
	p.ContentBlocks = blocks
	return p, nil
}

func (s *pgStore) CreatePage(ctx context.Context, in model.NewPage) (model.Page, error) {
	var p model.Page
	query := `
	INSERT INTO pages
	(title, slug, meta_description, status, created_at, updated_at)
	VALUES
	($1,    $2,   $3,               $4,     now(),      now())
	RETURNING ` + pageColumns + `;`

	if err := s.db.GetContext(ctx, &p, query,
		in.Title,
		in.Slug,
		in.MetaDescription,
		in.Status,
	); err != nil {
		log.Error().Err(err).Str("slug", in.Slug).Msg("failed to create page")
		return model.Page{}, err
	}
	return p, nil
}

func (s *pgStore) UpdatePage(ctx context.Context, id uuid.UUID, patch model.PagePatch) (model.Page, error) {
	var p model.Page
	query := `
	UPDATE pages
	SET
	title            = COALESCE($2, title),
	slug             = COALESCE($3, slug),
	meta_description = COALESCE($4, meta_description),
	status           = COALESCE($5, status),
	updated_at       = now()
	WHERE id = $1
	RETURNING ` + pageColumns + `;`

	if err := s.db.GetContext(ctx, &p, query,
		id, patch.Title, patch.Slug, patch.MetaDescription, patch.Status,
	); err != nil {
		log.Error().Err(err).Str("page_id", id.String()).Msg("failed to update page")
		return model.Page{}, mapNoRows(err, "pages", id)
	}
	return p, nil
}

func (s *pgStore) DeletePage(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("page_id", id.String()).Msg("failed to delete page")
		return err
	}
	return expectAffected(res, "pages", id)
}
