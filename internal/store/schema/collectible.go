package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Collectible represents the collectibles table, the per-wallet cache of
// normalized collectible records. The full normalized record is stored as a
// JSONB document; the extracted columns exist for lookups and filtering.
type Collectible struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectibleID is the provider-scoped composite identifier of the record
	CollectibleID string `gorm:"column:collectible_id;not null;type:text;uniqueIndex:idx_collectibles_wallet_provider_cid,priority:3"`
	// Wallet is the wallet address the record was fetched for
	Wallet string `gorm:"column:wallet;not null;type:text;uniqueIndex:idx_collectibles_wallet_provider_cid,priority:1;index:idx_collectibles_wallet"`
	// Provider identifies the upstream data provider
	Provider string `gorm:"column:provider;not null;type:text;uniqueIndex:idx_collectibles_wallet_provider_cid,priority:2"`
	// MediaType is the resolved display media type (image, video, gif)
	MediaType string `gorm:"column:media_type;not null;type:text"`
	// IsOwned indicates whether the wallet currently holds the asset
	IsOwned bool `gorm:"column:is_owned;not null;default:true"`
	// Record is the full normalized collectible as served by the API
	Record datatypes.JSON `gorm:"column:record;not null;type:jsonb"`
	// RefreshedAt is when the record was last fetched from the provider
	RefreshedAt time.Time `gorm:"column:refreshed_at;not null;default:now()"`
	// CreatedAt is when this record was first cached
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Collectible model
func (Collectible) TableName() string {
	return "collectibles"
}
