// Package store persists committed ledger state to PostgreSQL. Each engine
// operation maps to a single Mutation applied in one database transaction,
// and LoadState rebuilds the in-memory state on startup.
package store

import (
	"context"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/ledger"
	"github.com/perebo-sp/nft-marketplace/internal/store/schema"
)

// Key-value store keys for the scalar parts of the ledger state
const (
	KeyTotalSupply = "counter:total_supply"
	KeyTotalStaked = "counter:total_staked"
	KeyParams      = "params"
)

// TokenRow is a token snapshot to upsert
type TokenRow struct {
	Token domain.Token
}

// ListingRow is a listing snapshot to upsert
type ListingRow struct {
	TokenID uint64
	Listing domain.Listing
}

// ShareRow is a share balance snapshot to upsert
type ShareRow struct {
	TokenID uint64
	Owner   domain.Account
	Shares  uint64
}

// RewardRow is a reward record snapshot to upsert
type RewardRow struct {
	TokenID uint64
	Record  domain.RewardRecord
}

// ChangeInput describes the journal entry recorded with a mutation
type ChangeInput struct {
	SubjectType schema.SubjectType
	SubjectID   string
	// Meta is the canonical JSON payload of the event published for this change
	Meta []byte
}

// Mutation is the durable effect of one committed engine operation. All
// snapshots are written in a single transaction; nil scalar fields are left
// untouched.
type Mutation struct {
	Tokens      []TokenRow
	Listings    []ListingRow
	Shares      []ShareRow
	Rewards     []RewardRow
	TotalSupply *uint64
	TotalStaked *uint64
	Params      *domain.Params
	Change      *ChangeInput
}

// ChangesQueryFilter filters the changes journal by cursor position
type ChangesQueryFilter struct {
	// AfterCursor returns only entries with a cursor strictly greater than this value
	AfterCursor int64
	// Limit caps the number of returned entries (default 50, max 200)
	Limit int
}

// Store is the persistence interface for the ledger
type Store interface {
	// ApplyMutation writes the durable effect of one operation atomically
	ApplyMutation(ctx context.Context, m Mutation) error
	// LoadState rebuilds the full in-memory ledger state from the database
	LoadState(ctx context.Context) (*ledger.State, error)
	// GetChanges returns journal entries after the given cursor, oldest first,
	// along with the total number of entries matching the filter
	GetChanges(ctx context.Context, filter ChangesQueryFilter) ([]*schema.ChangesJournal, uint64, error)
}
