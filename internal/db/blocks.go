package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

const blockColumns = `id, page_id, identifier, content_type, content, "order", status, created_at, updated_at`

// ListContentBlocks returns the blocks of one page in render order.
func (s *pgStore) ListContentBlocks(ctx context.Context, pageID uuid.UUID) ([]model.ContentBlock, error) {
	all := []model.ContentBlock{}
	query := `
	SELECT ` + blockColumns + `
	FROM content_blocks
	WHERE page_id = $1
	ORDER BY "order" ASC, created_at ASC;`
	if err := s.db.SelectContext(ctx, &all, query, pageID); err != nil {
		log.Error().Err(err).Str("page_id", pageID.String()).Msg("failed to list content blocks")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) GetContentBlock(ctx context.Context, id uuid.UUID) (model.ContentBlock, error) {
	var b model.ContentBlock
	query := `SELECT ` + blockColumns + ` FROM content_blocks WHERE id = $1;`
	if err := s.db.GetContext(ctx, &b, query, id); err != nil {
		log.Error().Err(err).Str("block_id", id.String()).Msg("failed to get content block by id")
		return model.ContentBlock{}, mapNoRows(err, "content_blocks", id)
	}
	return b, nil
}

func (s *pgStore) CreateContentBlock(ctx context.Context, in model.NewContentBlock) (model.ContentBlock, error) {
	var b model.ContentBlock
	query := `
	INSERT INTO content_blocks
	(page_id, identifier, content_type, content, "order", status, created_at, updated_at)
	VALUES
	($1,      $2,         $3,           $4,      $5,      $6,     now(),      now())
	RETURNING ` + blockColumns + `;`

	if err := s.db.GetContext(ctx, &b, query,
		in.PageID,
		in.Identifier,
		in.ContentType,
		in.Content,
		in.Order,
		in.Status,
	); err != nil {
		log.Error().Err(err).Str("page_id", in.PageID.String()).Msg("failed to create content block")
		return model.ContentBlock{}, err
	}
	return b, nil
}

func (s *pgStore) UpdateContentBlock(ctx context.Context, id uuid.UUID, patch model.ContentBlockPatch) (model.ContentBlock, error) {
	var b model.ContentBlock
	query := `
	UPDATE content_blocks
	SET
	page_id      = COALESCE($2, page_id),
	identifier   = COALESCE($3, identifier),
	content_type = COALESCE($4, content_type),
	content      = COALESCE($5::jsonb, content),
	"order"      = COALESCE($6, "order"),
	status       = COALESCE($7, status),
	updated_at   = now()
	WHERE id = $1
	RETURNING ` + blockColumns + `;`

	if err := s.db.GetContext(ctx, &b, query,
		id, patch.PageID, patch.Identifier, patch.ContentType, patch.Content, patch.Order, patch.Status,
	); err != nil {
		log.Error().Err(err).Str("block_id", id.String()).Msg("failed to update content block")
		return model.ContentBlock{}, mapNoRows(err, "content_blocks", id)
	}
	return b, nil
}

func (s *pgStore) DeleteContentBlock(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM content_blocks WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("block_id", id.String()).Msg("failed to delete content block")
		return err
	}
	return expectAffected(res, "content_blocks", id)
}
