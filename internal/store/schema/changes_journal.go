package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SubjectType represents the type of entity that was changed
type SubjectType string

const (
	// SubjectTypeToken indicates a change to token data (mint, transfer, stake state)
	SubjectTypeToken SubjectType = "token"
	// SubjectTypeListing indicates a change to a marketplace listing
	SubjectTypeListing SubjectType = "listing"
	// SubjectTypeShares indicates a change in fractional share balances
	SubjectTypeShares SubjectType = "shares"
	// SubjectTypeRewards indicates a change in staking reward bookkeeping
	SubjectTypeRewards SubjectType = "rewards"
	// SubjectTypeParams indicates a change to the ledger parameter set
	SubjectTypeParams SubjectType = "params"
)

// ChangesJournal represents the changes_journal table - audit log for every committed ledger operation
type ChangesJournal struct {
	// Cursor is an auto-incrementing sequence number for efficient pagination and ordering
	Cursor int64 `gorm:"column:\"cursor\";primaryKey;autoIncrement"`
	// SubjectType identifies what kind of entity changed (token, listing, shares, rewards, params)
	SubjectType SubjectType `gorm:"column:subject_type;not null;type:text"`
	// SubjectID is the identifier of the changed entity (a token id, or "params")
	SubjectID string `gorm:"column:subject_id;not null;type:text;index:idx_changes_journal_subject"`
	// ChangedAt is the timestamp when the change was committed
	ChangedAt time.Time `gorm:"column:changed_at;not null;default:now();type:timestamptz"`
	// Meta contains the event payload that was published for the change as JSON
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
}

// TableName specifies the table name for the ChangesJournal model
func (ChangesJournal) TableName() string {
	return "changes_journal"
}
