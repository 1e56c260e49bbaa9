package store

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// collectionRow is the single-table layout behind the KV contract.
type collectionRow struct {
	Key       string         `gorm:"column:key;primaryKey"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt int64          `gorm:"column:updated_at"`
}

func (collectionRow) TableName() string { return "shop_collections" }

type sqliteKV struct {
	db *gorm.DB
}

// NewSQLite creates the backing table if needed and returns a KV over it.
func NewSQLite(db *gorm.DB) (KV, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("create shop_collections: %w", err)
	}
	return &sqliteKV{db: db}, nil
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT key, value, updated_at FROM shop_collections WHERE key = ?`,
		key,
	).Scan(&row).Error
	if err != nil {
		return nil, false, err
	}
	if row.Key == "" {
		return nil, false, nil
	}
	return []byte(row.Value), true, nil
}

func (s *sqliteKV) Set(ctx context.Context, key string, value []byte) error {
	return s.db.WithContext(ctx).Exec(
		`INSERT INTO shop_collections (key, value, updated_at) VALUES (?, ?, unixepoch())
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		datatypes.JSON(value),
	).Error
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Exec(
		`DELETE FROM shop_collections WHERE key = ?`,
		key,
	).Error
}
