package schema

import (
	"time"
)

// Listing represents the listings table - the marketplace entry for a token.
// A row survives its purchase with Active=false, preserving the last seller.
type Listing struct {
	// TokenID references the listed token
	TokenID uint64 `gorm:"column:token_id;primaryKey"`
	// Price is the asking price, exclusive of the protocol fee
	Price uint64 `gorm:"column:price;not null;type:bigint"`
	// Seller is the account that created the listing
	Seller string `gorm:"column:seller;not null;type:text"`
	// Active indicates whether the listing can still be purchased
	Active bool `gorm:"column:active;not null;default:false"`
	// UpdatedAt is the timestamp of the last change to this row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
