package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/clock"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

const (
	custodian = domain.Account("0xCCCCcCCcCCCCcCcCCcCcCCcCCCcCcCCCCCcCcCCC")
	operator  = domain.Account("0x0000000000000000000000000000000000000001")
	alice     = domain.Account("0xA111111111111111111111111111111111111111")
	bob       = domain.Account("0xB222222222222222222222222222222222222222")
	carol     = domain.Account("0xC333333333333333333333333333333333333333")
)

type testEnv struct {
	state  *State
	bank   *bank.InMemory
	clock  *clock.Manual
	engine *Engine
}

func newTestEnv() *testEnv {
	state := NewState()
	b := bank.NewInMemory()
	c := clock.NewManual(0)
	return &testEnv{
		state:  state,
		bank:   b,
		clock:  c,
		engine: New(state, b, c, custodian, operator),
	}
}

// fund seeds an account with spendable base currency
func (env *testEnv) fund(t *testing.T, account domain.Account, amount uint64) {
	t.Helper()
	require.NoError(t, env.bank.Deposit(account, amount))
}

// mint funds the owner with exactly the required lock and mints a token
func (env *testEnv) mint(t *testing.T, owner domain.Account, collateral uint64) uint64 {
	t.Helper()
	lock := env.state.Params.MinCollateralRatio * collateral / 100
	env.fund(t, owner, lock)
	tokenID, err := env.engine.Mint(owner, "ipfs://QmTest", collateral)
	require.NoError(t, err)
	return tokenID
}

// TestFullLifecycle walks one token through mint, list, purchase, share
// issuance, staking and unstaking, checking the accounting at each step.
func TestFullLifecycle(t *testing.T) {
	env := newTestEnv()

	// mint with collateral 100 requires a lock of 150
	env.fund(t, alice, 150)
	tokenID, err := env.engine.Mint(alice, "ipfs://QmLifecycle", 100)
	require.NoError(t, err)
	require.Equal(t, uint64(1), tokenID)
	require.Equal(t, uint64(1), env.engine.TotalSupply())
	require.Equal(t, uint64(0), env.bank.BalanceOf(alice))
	require.Equal(t, uint64(150), env.bank.BalanceOf(custodian))

	// list at 1000, purchase by bob with a 25 fee on top
	require.NoError(t, env.engine.List(alice, tokenID, 1000))
	env.fund(t, bob, 1025)
	require.NoError(t, env.engine.Purchase(bob, tokenID))
	require.Equal(t, uint64(1000), env.bank.BalanceOf(alice))
	require.Equal(t, uint64(175), env.bank.BalanceOf(custodian))
	require.Equal(t, uint64(0), env.bank.BalanceOf(bob))

	token, err := env.engine.GetToken(tokenID)
	require.NoError(t, err)
	require.Equal(t, bob, token.Owner)

	listing, err := env.engine.GetListing(tokenID)
	require.NoError(t, err)
	require.False(t, listing.Active)
	require.Equal(t, uint64(0), listing.Price)
	require.Equal(t, alice, listing.Seller)

	// fractionalize and move some shares around
	require.NoError(t, env.engine.IssueShares(bob, tokenID, 100))
	require.NoError(t, env.engine.TransferShares(bob, tokenID, carol, 40))
	require.Equal(t, uint64(60), env.engine.GetShares(tokenID, bob))
	require.Equal(t, uint64(40), env.engine.GetShares(tokenID, carol))

	// stake, accrue nothing at the default truncated rate, unstake
	require.NoError(t, env.engine.Stake(bob, tokenID))
	require.Equal(t, uint64(1), env.engine.TotalStaked())

	env.clock.Advance(domain.BlocksPerYear)
	reward, err := env.engine.CalculateRewards(tokenID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), reward)

	require.NoError(t, env.engine.Unstake(bob, tokenID))
	require.Equal(t, uint64(0), env.engine.TotalStaked())

	token, err = env.engine.GetToken(tokenID)
	require.NoError(t, err)
	require.False(t, token.IsStaked)
	require.Equal(t, uint64(0), token.StakeHeight)
}

func TestGetToken_NotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.engine.GetToken(42)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestGetListing_NotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.engine.GetListing(42)
	require.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestGetShares_AbsentIsZero(t *testing.T) {
	env := newTestEnv()
	require.Equal(t, uint64(0), env.engine.GetShares(42, alice))
}

func TestGetRewardRecord_NotStaked(t *testing.T) {
	env := newTestEnv()
	_, err := env.engine.GetRewardRecord(42)
	require.ErrorIs(t, err, domain.ErrNotStaked)
}
