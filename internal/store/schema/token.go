package schema

import (
	"time"
)

// Token represents the tokens table - one row per minted token
type Token struct {
	// ID is the sequential token identifier assigned by the ledger engine
	ID uint64 `gorm:"column:id;primaryKey"`
	// Owner is the current owner's account address
	Owner string `gorm:"column:owner;not null;type:text;index:idx_tokens_owner"`
	// URI points at the token's off-ledger metadata
	URI string `gorm:"column:uri;not null;type:text"`
	// Collateral is the amount locked with the custodian at mint time
	Collateral uint64 `gorm:"column:collateral;not null;type:bigint"`
	// IsStaked indicates whether the token is currently staked
	IsStaked bool `gorm:"column:is_staked;not null;default:false"`
	// StakeHeight is the logical height of the most recent stake (0 when unstaked)
	StakeHeight uint64 `gorm:"column:stake_height;not null;default:0;type:bigint"`
	// FractionalShares is the advisory count of shares issued against the token
	FractionalShares uint64 `gorm:"column:fractional_shares;not null;default:0;type:bigint"`
	// CreatedAt is the timestamp when this row was first written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last change to this row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
