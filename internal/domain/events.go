package domain

import (
	"encoding/json"

	"github.com/gowebpki/jcs"
	"github.com/oklog/ulid/v2"
)

// EventType represents the kind of committed ledger mutation
type EventType string

const (
	EventTypeTokenMinted      EventType = "token_minted"
	EventTypeTokenTransferred EventType = "token_transferred"
	EventTypeTokenListed      EventType = "token_listed"
	EventTypeTokenPurchased   EventType = "token_purchased"
	EventTypeSharesMoved      EventType = "shares_moved"
	EventTypeTokenStaked      EventType = "token_staked"
	EventTypeTokenUnstaked    EventType = "token_unstaked"
	EventTypeParamsUpdated    EventType = "params_updated"
)

// LedgerEvent is the normalized record of one committed state transition.
// Events are emitted after commit; they never influence engine state.
type LedgerEvent struct {
	// ID is a ULID assigned at emission time
	ID string `json:"id"`
	// Type is the kind of mutation
	Type EventType `json:"type"`
	// TokenID is the affected token, 0 for parameter updates
	TokenID uint64 `json:"token_id"`
	// Actor is the account that performed the operation
	Actor Account `json:"actor"`
	// Counterparty is the recipient or seller, empty when not applicable
	Counterparty Account `json:"counterparty,omitempty"`
	// Amount is the value moved (price, share amount, reward), 0 when not applicable
	Amount uint64 `json:"amount"`
	// Height is the logical-clock value when the operation committed
	Height uint64 `json:"height"`
}

// NewEventID returns a fresh ULID string for event identity
func NewEventID() string {
	return ulid.Make().String()
}

// CanonicalJSON returns the RFC 8785 canonical serialization of the event.
// Used as the deduplication identity when publishing.
func (e *LedgerEvent) CanonicalJSON() ([]byte, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return jcs.Transform(raw)
}
