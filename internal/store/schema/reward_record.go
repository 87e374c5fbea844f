package schema

import (
	"time"
)

// RewardRecord represents the reward_records table - staking yield bookkeeping per token
type RewardRecord struct {
	// TokenID references the staked token
	TokenID uint64 `gorm:"column:token_id;primaryKey"`
	// AccumulatedYield is yield carried over from before the last stake period
	AccumulatedYield uint64 `gorm:"column:accumulated_yield;not null;type:bigint"`
	// LastClaim is the logical height rewards were last settled at
	LastClaim uint64 `gorm:"column:last_claim;not null;type:bigint"`
	// UpdatedAt is the timestamp of the last change to this row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the RewardRecord model
func (RewardRecord) TableName() string {
	return "reward_records"
}
