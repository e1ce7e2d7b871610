package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

// SettingsStore defines the interface for the flat key/value configuration surface
//
//go:generate mockgen -source=settings_store.go -destination=../mocks/settings_store.go -package=mocks -mock_names=SettingsStore=MockSettingsStore
type SettingsStore interface {
	// GetSetting retrieves a value by key, or "" when unset
	GetSetting(ctx context.Context, key string) (string, error)
	// SetSettings writes several keys at once
	SetSettings(ctx context.Context, values map[string]string) error
	// GetSettingsByPrefix retrieves every key starting with prefix
	GetSettingsByPrefix(ctx context.Context, prefix string) (map[string]string, error)
}

type settingsStore struct {
	db *gorm.DB
}

// NewSettingsStore creates a new settings store
func NewSettingsStore(db *gorm.DB) SettingsStore {
	return &settingsStore{db: db}
}

// GetSetting retrieves a value by key, or "" when unset
func (s *settingsStore) GetSetting(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	return kv.Value, nil
}

// SetSettings writes several keys at once
func (s *settingsStore) SetSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	kvs := make([]schema.KeyValueStore, 0, len(values))
	for k, v := range values {
		kvs = append(kvs, schema.KeyValueStore{Key: k, Value: v})
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&kvs).Error
	if err != nil {
		return fmt.Errorf("failed to set settings: %w", err)
	}

	return nil
}

// GetSettingsByPrefix retrieves every key starting with prefix
func (s *settingsStore) GetSettingsByPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	var kvs []schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key LIKE ?", prefix+"%").Find(&kvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get settings by prefix: %w", err)
	}

	result := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		result[kv.Key] = kv.Value
	}

	return result, nil
}
