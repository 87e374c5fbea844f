package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// MaxURILength is the upper bound on token metadata URIs
	MaxURILength = 256

	// FeeDenominator is the denominator for all basis-point parameters
	FeeDenominator = 1000

	// BlocksPerYear is the number of logical-clock ticks in one accrual year
	BlocksPerYear = 52560
)

// Default ledger parameters, applied when a fresh state is created.
const (
	DefaultMinCollateralRatio uint64 = 150
	DefaultProtocolFeeBPS     uint64 = 25
	DefaultYieldRateBPS       uint64 = 50
)

// Account identifies a participant by its hex address.
type Account string

// Valid checks if the account is a well-formed hex address
func (a Account) Valid() bool {
	return common.IsHexAddress(string(a))
}

// Normalize returns the checksummed form of the account address
func (a Account) Normalize() Account {
	if strings.HasPrefix(string(a), "0x") {
		return Account(common.HexToAddress(string(a)).Hex())
	}
	return a
}

// String returns the string representation of the account
func (a Account) String() string {
	return string(a)
}

// Token is a uniquely identified asset record. Tokens are value types:
// state transitions copy the record and change fields, never mutate in place.
type Token struct {
	// ID is the 1-based sequential token identifier
	ID uint64 `json:"id"`
	// Owner is the current owning account, never the custodial account
	Owner Account `json:"owner"`
	// URI is the opaque metadata reference, 1..MaxURILength characters
	URI string `json:"uri"`
	// Collateral is the declared collateral in base-currency units
	Collateral uint64 `json:"collateral"`
	// IsStaked reports whether the token is locked for staking
	IsStaked bool `json:"is_staked"`
	// StakeHeight is the logical-clock value at stake time, 0 when not staked
	StakeHeight uint64 `json:"stake_height"`
	// FractionalShares is advisory metadata; it is not reconciled against the share ledger
	FractionalShares uint64 `json:"fractional_shares"`
}

// Listing is a fixed-price sale offer for a whole token.
type Listing struct {
	// Price is the asking price in base-currency units, 0 once consumed
	Price uint64 `json:"price"`
	// Seller is the account that created the listing, retained for audit after purchase
	Seller Account `json:"seller"`
	// Active reports whether the listing can be purchased
	Active bool `json:"active"`
}

// RewardRecord tracks staking yield owed but not yet paid for one token.
type RewardRecord struct {
	// AccumulatedYield is the yield carried over from before the last claim
	AccumulatedYield uint64 `json:"accumulated_yield"`
	// LastClaim is the logical-clock value of the last reset
	LastClaim uint64 `json:"last_claim"`
}

// Params are the operator-adjustable ledger parameters.
type Params struct {
	// MinCollateralRatio is the percentage of declared collateral locked at mint
	MinCollateralRatio uint64 `json:"min_collateral_ratio"`
	// ProtocolFeeBPS is the purchase fee in units of 1/FeeDenominator
	ProtocolFeeBPS uint64 `json:"protocol_fee_bps"`
	// YieldRateBPS is the annual staking yield in units of 1/FeeDenominator
	YieldRateBPS uint64 `json:"yield_rate_bps"`
}

// DefaultParams returns the parameters a fresh ledger starts with
func DefaultParams() Params {
	return Params{
		MinCollateralRatio: DefaultMinCollateralRatio,
		ProtocolFeeBPS:     DefaultProtocolFeeBPS,
		YieldRateBPS:       DefaultYieldRateBPS,
	}
}
