package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/store/schema"
)

type pgStore struct {
	db    *gorm.DB
	json  adapter.JSON
	clock adapter.Clock
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, json adapter.JSON, clock adapter.Clock) Store {
	return &pgStore{db: db, json: json, clock: clock}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values get reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// ReplaceWalletCollectibles replaces the cached snapshot for a wallet and provider
func (s *pgStore) ReplaceWalletCollectibles(ctx context.Context, wallet string, provider domain.Provider, collectibles []domain.Collectible) error {
	rows := make([]schema.Collectible, 0, len(collectibles))
	now := s.clock.Now()

	for i := range collectibles {
		record, err := s.json.Marshal(&collectibles[i])
		if err != nil {
			return fmt.Errorf("failed to marshal collectible %s: %w", collectibles[i].ID, err)
		}
		rows = append(rows, schema.Collectible{
			CollectibleID: collectibles[i].ID,
			Wallet:        wallet,
			Provider:      string(provider),
			MediaType:     string(collectibles[i].Type),
			IsOwned:       collectibles[i].IsOwned,
			Record:        datatypes.JSON(record),
			RefreshedAt:   now,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("wallet = ? AND provider = ?", wallet, string(provider)).
			Delete(&schema.Collectible{}).Error; err != nil {
			return fmt.Errorf("failed to clear wallet snapshot: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert wallet snapshot: %w", err)
		}
		return nil
	})
}

// GetWalletCollectibles returns the cached snapshot for a wallet and provider
func (s *pgStore) GetWalletCollectibles(ctx context.Context, wallet string, provider domain.Provider) ([]domain.Collectible, time.Time, error) {
	var rows []schema.Collectible
	if err := s.db.WithContext(ctx).
		Where("wallet = ? AND provider = ?", wallet, string(provider)).
		Order("collectible_id ASC").
		Find(&rows).Error; err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query wallet snapshot: %w", err)
	}

	collectibles := make([]domain.Collectible, 0, len(rows))
	var refreshedAt time.Time
	for i := range rows {
		var collectible domain.Collectible
		if err := s.json.Unmarshal(rows[i].Record, &collectible); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to unmarshal cached collectible %s: %w", rows[i].CollectibleID, err)
		}
		collectibles = append(collectibles, collectible)
		if rows[i].RefreshedAt.After(refreshedAt) {
			refreshedAt = rows[i].RefreshedAt
		}
	}

	return collectibles, refreshedAt, nil
}
