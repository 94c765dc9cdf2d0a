package settings

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbmotors/dealership/model"
)

type SQL struct {
	conn *sqlx.DB
}

// SettingsRepository stores singleton key/value rows (hero video URL, logo,
// social links).
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*model.SettingEntity, error)
	Upsert(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

func NewSettingsRepository(conn *sqlx.DB) SettingsRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Get(ctx context.Context, key string) (*model.SettingEntity, error) {
	var entity model.SettingEntity
	err := s.conn.QueryRowxContext(ctx, "SELECT `key`, value FROM settings WHERE `key` = ?", key).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Upsert(ctx context.Context, key, value string) error {
	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO settings (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)",
		key, value)
	return err
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM settings WHERE `key` = ?", key)
	return err
}
