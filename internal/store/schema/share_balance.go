package schema

import (
	"time"
)

// ShareBalance represents the share_balances table - fractional share holdings per token and owner
type ShareBalance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the token the shares belong to
	TokenID uint64 `gorm:"column:token_id;not null;uniqueIndex:idx_share_balances_token_owner,priority:1"`
	// OwnerAddress is the account holding the shares
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;uniqueIndex:idx_share_balances_token_owner,priority:2"`
	// Shares is the number of shares held
	Shares uint64 `gorm:"column:shares;not null;type:bigint"`
	// UpdatedAt is the timestamp of the last change to this row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ShareBalance model
func (ShareBalance) TableName() string {
	return "share_balances"
}
