package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/thamir0022/hueify/internal/config"
	"github.com/thamir0022/hueify/internal/model"
)

// HistoryRepo persists the per-user color history. Each user owns at most
// one row; the ordered color list is stored as a JSON array so a save
// replaces the whole record, matching the last-writer-wins behavior of the
// list. An optional Redis client serves as a write-through read cache;
// when it is nil or a cache call fails the repo falls through to MySQL.
type HistoryRepo struct {
	DB    *sql.DB
	Cache *redis.Client
	Cfg   config.HistoryCacheConfig
}

func NewHistoryRepo(db *sql.DB, cache *redis.Client, cfg config.HistoryCacheConfig) *HistoryRepo {
	if !cfg.Enabled {
		cache = nil
	}
	return &HistoryRepo{DB: db, Cache: cache, Cfg: cfg}
}

func (r *HistoryRepo) cacheKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", r.Cfg.Prefix, userID)
}

// GetByUser returns the user's color list, newest first. ErrNotFound when
// the user has no history row yet.
func (r *HistoryRepo) GetByUser(ctx context.Context, userID uint64) ([]string, error) {
	if r.Cache != nil {
		if raw, err := r.Cache.Get(ctx, r.cacheKey(userID)).Bytes(); err == nil {
			var colors []string
			if json.Unmarshal(raw, &colors) == nil {
				return colors, nil
			}
		}
	}

	var raw []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT colors FROM color_history WHERE user_id=? LIMIT 1",
		userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var colors []string
	if err := json.Unmarshal(raw, &colors); err != nil {
		return nil, fmt.Errorf("decode colors for user %d: %w", userID, err)
	}
	r.fillCache(ctx, userID, colors)
	return colors, nil
}

// Save upserts the user's history row. The cap is applied here, on every
// persist, so the stored list never exceeds the bound regardless of how
// the in-memory list was built.
func (r *HistoryRepo) Save(ctx context.Context, userID uint64, colors []string) ([]string, error) {
	colors = model.ClampColors(colors)
	raw, err := json.Marshal(colors)
	if err != nil {
		return nil, err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO color_history (user_id, colors) VALUES (?,?) ON DUPLICATE KEY UPDATE colors=VALUES(colors)",
		userID, raw)
	if err != nil {
		return nil, err
	}
	r.fillCache(ctx, userID, colors)
	return colors, nil
}

// fillCache refreshes the cached entry. Cache failures are logged and
// otherwise ignored; the database remains the source of truth.
func (r *HistoryRepo) fillCache(ctx context.Context, userID uint64, colors []string) {
	if r.Cache == nil {
		return
	}
	raw, err := json.Marshal(colors)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, r.cacheKey(userID), raw, r.Cfg.TTL).Err(); err != nil {
		log.Printf("history cache: set user %d failed: %v", userID, err)
	}
}
