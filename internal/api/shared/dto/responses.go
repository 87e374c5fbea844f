package dto

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/store/schema"
)

// TokenResponse represents a token
type TokenResponse struct {
	ID               uint64 `json:"id"`
	Owner            string `json:"owner"`
	URI              string `json:"uri"`
	Collateral       uint64 `json:"collateral"`
	LockedCollateral uint64 `json:"locked_collateral"`
	IsStaked         bool   `json:"is_staked"`
	StakeHeight      uint64 `json:"stake_height"`
	FractionalShares uint64 `json:"fractional_shares"`
}

// MapTokenToDTO converts a domain token to its API representation
func MapTokenToDTO(token domain.Token, lockedCollateral uint64) *TokenResponse {
	return &TokenResponse{
		ID:               token.ID,
		Owner:            token.Owner.String(),
		URI:              token.URI,
		Collateral:       token.Collateral,
		LockedCollateral: lockedCollateral,
		IsStaked:         token.IsStaked,
		StakeHeight:      token.StakeHeight,
		FractionalShares: token.FractionalShares,
	}
}

// ListingResponse represents a marketplace listing
type ListingResponse struct {
	TokenID uint64 `json:"token_id"`
	Price   uint64 `json:"price"`
	Seller  string `json:"seller"`
	Active  bool   `json:"active"`
	// Fee is the protocol fee a buyer pays on top of the price
	Fee uint64 `json:"fee"`
	// Total is the full amount charged to a buyer (price + fee)
	Total uint64 `json:"total"`
}

// PurchaseResponse represents the outcome of a completed purchase
type PurchaseResponse struct {
	Token  *TokenResponse `json:"token"`
	Price  uint64         `json:"price"`
	Fee    uint64         `json:"fee"`
	Total  uint64         `json:"total"`
	Seller string         `json:"seller"`
}

// SharesResponse represents the share balances of a token
type SharesResponse struct {
	TokenID uint64 `json:"token_id"`
	// Balances maps owner address to share count
	Balances map[string]uint64 `json:"balances"`
	// TotalIssued is the advisory count of shares issued against the token
	TotalIssued uint64 `json:"total_issued"`
}

// RewardsResponse represents accrued staking rewards for a token
type RewardsResponse struct {
	TokenID uint64 `json:"token_id"`
	// Accrued is the reward claimable at the current height
	Accrued uint64 `json:"accrued"`
	Height  uint64 `json:"height"`
}

// UnstakeResponse represents the outcome of unstaking a token
type UnstakeResponse struct {
	Token *TokenResponse `json:"token"`
	// RewardPaid is the reward settled to the owner during unstake
	RewardPaid uint64 `json:"reward_paid"`
}

// ParamsResponse represents the current ledger parameter set
type ParamsResponse struct {
	MinCollateralRatio uint64 `json:"min_collateral_ratio"`
	ProtocolFeeBPS     uint64 `json:"protocol_fee_bps"`
	YieldRateBPS       uint64 `json:"yield_rate_bps"`
}

// MapParamsToDTO converts domain parameters to their API representation
func MapParamsToDTO(params domain.Params) *ParamsResponse {
	return &ParamsResponse{
		MinCollateralRatio: params.MinCollateralRatio,
		ProtocolFeeBPS:     params.ProtocolFeeBPS,
		YieldRateBPS:       params.YieldRateBPS,
	}
}

// StatsResponse represents the ledger-wide counters
type StatsResponse struct {
	TotalSupply uint64 `json:"total_supply"`
	TotalStaked uint64 `json:"total_staked"`
	Height      uint64 `json:"height"`
}

// BalanceResponse represents the spendable balance of a bank account
type BalanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

// ChangeResponse represents one changes journal entry
type ChangeResponse struct {
	Cursor      int64           `json:"cursor"`
	SubjectType string          `json:"subject_type"`
	SubjectID   string          `json:"subject_id"`
	ChangedAt   time.Time       `json:"changed_at"`
	Meta        json.RawMessage `json:"meta,omitempty"`
}

// ChangeListResponse represents a page of the changes journal
type ChangeListResponse struct {
	Changes []*ChangeResponse `json:"changes"`
	Total   uint64            `json:"total"`
	// NextCursor resumes pagination; present only when more entries exist
	NextCursor *int64 `json:"next_cursor,omitempty"`
}

// MapChangesToDTO converts journal rows to their API representation
func MapChangesToDTO(entries []*schema.ChangesJournal, total uint64) *ChangeListResponse {
	changes := make([]*ChangeResponse, 0, len(entries))
	for _, entry := range entries {
		changes = append(changes, &ChangeResponse{
			Cursor:      entry.Cursor,
			SubjectType: string(entry.SubjectType),
			SubjectID:   entry.SubjectID,
			ChangedAt:   entry.ChangedAt,
			Meta:        json.RawMessage(entry.Meta),
		})
	}

	resp := &ChangeListResponse{Changes: changes, Total: total}
	if uint64(len(entries)) < total && len(entries) > 0 {
		last := entries[len(entries)-1].Cursor
		resp.NextCursor = &last
	}
	return resp
}

// TokenIDFromPath parses a token id path parameter
func TokenIDFromPath(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}
