package appstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunStore persists settings in an app_settings table with optional read
// caching.
type BunStore struct {
	repo repository.Repository[*Setting]
}

// NewBunStore creates a setting store without caching.
func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache creates a setting store with caching services.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunStore {
	base := NewSettingRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunStore{repo: base}
}

func (s *BunStore) Get(ctx context.Context, key string) (string, error) {
	record, err := s.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return "", mapRepositoryError(err, key)
	}
	return record.Value, nil
}

func (s *BunStore) Set(ctx context.Context, key, value string) error {
	existing, err := s.repo.GetByIdentifier(ctx, key)
	mapped := mapRepositoryError(err, key)
	switch {
	case mapped == nil:
		existing.Value = value
		existing.UpdatedAt = time.Now()
		if _, err := s.repo.Update(ctx, existing); err != nil {
			return fmt.Errorf("appstate: update setting %q: %w", key, err)
		}
		return nil
	case errors.Is(mapped, ErrKeyNotFound):
		record := &Setting{
			ID:        uuid.New(),
			Key:       key,
			Value:     value,
			UpdatedAt: time.Now(),
		}
		if _, err := s.repo.Create(ctx, record); err != nil {
			return fmt.Errorf("appstate: create setting %q: %w", key, err)
		}
		return nil
	default:
		return mapped
	}
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return ErrKeyNotFound
	}
	return fmt.Errorf("appstate: setting %q: %w", key, err)
}
