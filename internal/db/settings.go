package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

const settingColumns = `id, key, value, "group", description, created_at, updated_at`

func (s *pgStore) ListSettings(ctx context.Context, group string) ([]model.Setting, error) {
	all := []model.Setting{}
	query := `SELECT ` + settingColumns + ` FROM settings`

	args := []interface{}{}
	if group != "" {
		query += ` WHERE "group" = $1`
		args = append(args, group)
	}
	query += ` ORDER BY "group", key;`

	if err := s.db.SelectContext(ctx, &all, query, args...); err != nil {
		log.Error().Err(err).Str("group", group).Msg("failed to list settings")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) GetSetting(ctx context.Context, id uuid.UUID) (model.Setting, error) {
	var st model.Setting
	query := `SELECT ` + settingColumns + ` FROM settings WHERE id = $1;`
	if err := s.db.GetContext(ctx, &st, query, id); err != nil {
		log.Error().Err(err).Str("setting_id", id.String()).Msg("failed to get setting by id")
		return model.Setting{}, mapNoRows(err, "settings", id)
	}
	return st, nil
}

func (s *pgStore) CreateSetting(ctx context.Context, in model.NewSetting) (model.Setting, error) {
	var st model.Setting
	query := `
	INSERT INTO settings
	(key, value, "group", description, created_at, updated_at)
	VALUES
	($1,  $2,    COALESCE(NULLIF($3, ''), 'general'), $4, now(), now())
	RETURNING ` + settingColumns + `;`

	if err := s.db.GetContext(ctx, &st, query,
		in.Key, in.Value, in.Group, in.Description,
	); err != nil {
		log.Error().Err(err).Str("key", in.Key).Msg("failed to create setting")
		return model.Setting{}, err
	}
	return st, nil
}

func (s *pgStore) UpdateSetting(ctx context.Context, id uuid.UUID, patch model.SettingPatch) (model.Setting, error) {
	var st model.Setting
	query := `
	UPDATE settings
	SET
	key         = COALESCE($2, key),
	value       = COALESCE($3::jsonb, value),
	"group"     = COALESCE($4, "group"),
	description = COALESCE($5, description),
	updated_at  = now()
	WHERE id = $1
	RETURNING ` + settingColumns + `;`

	if err := s.db.GetContext(ctx, &st, query,
		id, patch.Key, patch.Value, patch.Group, patch.Description,
	); err != nil {
		log.Error().Err(err).Str("setting_id", id.String()).Msg("failed to update setting")
		return model.Setting{}, mapNoRows(err, "settings", id)
	}
	return st, nil
}

func (s *pgStore) DeleteSetting(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("setting_id", id.String()).Msg("failed to delete setting")
		return err
	}
	return expectAffected(res, "settings", id)
}
