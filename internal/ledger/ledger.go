// Package ledger implements the deterministic state-transition engine that
// tracks token ownership, fixed-price listings, fractional share balances and
// staking yield. Every operation validates its preconditions against the
// current state and applies its mutations as one atomic group; a failed
// operation changes nothing.
//
// The engine is a sequential state machine. It holds no locks of its own:
// the host serializes operations and advances the logical clock between them.
package ledger

import (
	"math"

	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/clock"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// State is the complete durable state surface of the engine: four keyed
// mappings plus scalar counters and parameters. Constructing a fresh State
// per test gives fully deterministic runs.
type State struct {
	Tokens      map[uint64]domain.Token
	Listings    map[uint64]domain.Listing
	Shares      map[uint64]map[domain.Account]uint64
	Rewards     map[uint64]domain.RewardRecord
	TotalSupply uint64
	TotalStaked uint64
	Params      domain.Params
}

// NewState creates an empty ledger state with default parameters
func NewState() *State {
	return &State{
		Tokens:   make(map[uint64]domain.Token),
		Listings: make(map[uint64]domain.Listing),
		Shares:   make(map[uint64]map[domain.Account]uint64),
		Rewards:  make(map[uint64]domain.RewardRecord),
		Params:   domain.DefaultParams(),
	}
}

// Engine applies ledger operations against a single owned State.
type Engine struct {
	state     *State
	bank      bank.Bank
	clock     clock.Clock
	custodian domain.Account
	operator  domain.Account
}

// New creates an engine over the given state. The custodian account holds
// collateral and protocol fees and pays out staking rewards; the operator
// account may adjust parameters.
func New(state *State, b bank.Bank, c clock.Clock, custodian, operator domain.Account) *Engine {
	return &Engine{
		state:     state,
		bank:      b,
		clock:     c,
		custodian: custodian,
		operator:  operator,
	}
}

// Custodian returns the engine's custodial account
func (e *Engine) Custodian() domain.Account {
	return e.custodian
}

// GetToken retrieves a token by id
func (e *Engine) GetToken(tokenID uint64) (domain.Token, error) {
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return domain.Token{}, domain.ErrInvalidToken
	}
	return token, nil
}

// GetListing retrieves the listing record for a token, including consumed ones
func (e *Engine) GetListing(tokenID uint64) (domain.Listing, error) {
	listing, ok := e.state.Listings[tokenID]
	if !ok {
		return domain.Listing{}, domain.ErrListingNotFound
	}
	return listing, nil
}

// GetShares returns the share balance of an owner for a token; absent records are 0
func (e *Engine) GetShares(tokenID uint64, owner domain.Account) uint64 {
	return e.state.Shares[tokenID][owner]
}

// ShareBalances returns a copy of every share balance held against a token
func (e *Engine) ShareBalances(tokenID uint64) map[domain.Account]uint64 {
	balances := make(map[domain.Account]uint64, len(e.state.Shares[tokenID]))
	for owner, shares := range e.state.Shares[tokenID] {
		balances[owner] = shares
	}
	return balances
}

// GetRewardRecord retrieves the staking reward record for a token
func (e *Engine) GetRewardRecord(tokenID uint64) (domain.RewardRecord, error) {
	record, ok := e.state.Rewards[tokenID]
	if !ok {
		return domain.RewardRecord{}, domain.ErrNotStaked
	}
	return record, nil
}

// TotalSupply returns the number of tokens minted so far
func (e *Engine) TotalSupply() uint64 {
	return e.state.TotalSupply
}

// TotalStaked returns the number of currently staked tokens
func (e *Engine) TotalStaked() uint64 {
	return e.state.TotalStaked
}

// Params returns the current ledger parameters
func (e *Engine) Params() domain.Params {
	return e.state.Params
}

// Height returns the engine's view of the current logical height
func (e *Engine) Height() uint64 {
	return e.clock.Now()
}

// checkedMul multiplies without silent wraparound
func checkedMul(a, b uint64) (uint64, error) {
	if b != 0 && a > math.MaxUint64/b {
		return 0, domain.ErrOverflow
	}
	return a * b, nil
}

// checkedAdd adds without silent wraparound
func checkedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, domain.ErrOverflow
	}
	return a + b, nil
}
