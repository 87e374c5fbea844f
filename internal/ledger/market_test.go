package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/clock"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

func TestList(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(env *testEnv) uint64
		caller  domain.Account
		price   uint64
		wantErr error
	}{
		{
			name: "owner lists at a positive price",
			setup: func(env *testEnv) uint64 {
				return env.mint(t, alice, 100)
			},
			caller: alice,
			price:  1000,
		},
		{
			name: "non-existent token",
			setup: func(env *testEnv) uint64 {
				return 7
			},
			caller:  alice,
			price:   1000,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name: "zero price",
			setup: func(env *testEnv) uint64 {
				return env.mint(t, alice, 100)
			},
			caller:  alice,
			price:   0,
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name: "caller is not the owner",
			setup: func(env *testEnv) uint64 {
				return env.mint(t, alice, 100)
			},
			caller:  bob,
			price:   1000,
			wantErr: domain.ErrNotTokenOwner,
		},
		{
			name: "staked token cannot be listed",
			setup: func(env *testEnv) uint64 {
				tokenID := env.mint(t, alice, 100)
				require.NoError(t, env.engine.Stake(alice, tokenID))
				return tokenID
			},
			caller:  alice,
			price:   1000,
			wantErr: domain.ErrAlreadyStaked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tokenID := tt.setup(env)

			err := env.engine.List(tt.caller, tokenID, tt.price)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			listing, err := env.engine.GetListing(tokenID)
			require.NoError(t, err)
			assert.Equal(t, domain.Listing{Price: tt.price, Seller: tt.caller, Active: true}, listing)
		})
	}
}

func TestList_ReplacesPriorListing(t *testing.T) {
	env := newTestEnv()
	tokenID := env.mint(t, alice, 100)

	require.NoError(t, env.engine.List(alice, tokenID, 1000))
	require.NoError(t, env.engine.List(alice, tokenID, 2000))

	listing, err := env.engine.GetListing(tokenID)
	require.NoError(t, err)
	assert.Equal(t, domain.Listing{Price: 2000, Seller: alice, Active: true}, listing)
}

func TestPurchase(t *testing.T) {
	env := newTestEnv()
	tokenID := env.mint(t, alice, 100)
	require.NoError(t, env.engine.List(alice, tokenID, 1000))

	custodianBefore := env.bank.BalanceOf(custodian)
	sellerBefore := env.bank.BalanceOf(alice)
	env.fund(t, bob, 1025) // exactly price + fee

	require.NoError(t, env.engine.Purchase(bob, tokenID))

	// seller receives the full price; the 2.5% fee lands with the custodian
	assert.Equal(t, sellerBefore+1000, env.bank.BalanceOf(alice))
	assert.Equal(t, custodianBefore+25, env.bank.BalanceOf(custodian))
	assert.Equal(t, uint64(0), env.bank.BalanceOf(bob))

	token, err := env.engine.GetToken(tokenID)
	require.NoError(t, err)
	assert.Equal(t, bob, token.Owner)

	listing, err := env.engine.GetListing(tokenID)
	require.NoError(t, err)
	assert.Equal(t, domain.Listing{Price: 0, Seller: alice, Active: false}, listing)
}

func TestPurchase_FeeTruncation(t *testing.T) {
	// 39 * 25 / 1000 truncates to 0: small sales pay no fee
	env := newTestEnv()
	tokenID := env.mint(t, alice, 0)
	require.NoError(t, env.engine.List(alice, tokenID, 39))

	env.fund(t, bob, 39)
	require.NoError(t, env.engine.Purchase(bob, tokenID))

	assert.Equal(t, uint64(39), env.bank.BalanceOf(alice))
	assert.Equal(t, uint64(0), env.bank.BalanceOf(custodian))
}

func TestPurchase_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(env *testEnv) uint64
		buyer   domain.Account
		funding uint64
		wantErr error
	}{
		{
			name: "no listing",
			setup: func(env *testEnv) uint64 {
				return env.mint(t, alice, 100)
			},
			buyer:   bob,
			funding: 2000,
			wantErr: domain.ErrListingNotFound,
		},
		{
			name: "listing already consumed",
			setup: func(env *testEnv) uint64 {
				tokenID := env.mint(t, alice, 100)
				require.NoError(t, env.engine.List(alice, tokenID, 1000))
				env.fund(t, carol, 1025)
				require.NoError(t, env.engine.Purchase(carol, tokenID))
				return tokenID
			},
			buyer:   bob,
			funding: 2000,
			wantErr: domain.ErrListingNotFound,
		},
		{
			name: "buyer cannot cover price plus fee",
			setup: func(env *testEnv) uint64 {
				tokenID := env.mint(t, alice, 100)
				require.NoError(t, env.engine.List(alice, tokenID, 1000))
				return tokenID
			},
			buyer:   bob,
			funding: 1024,
			wantErr: domain.ErrInsufficientBalance,
		},
		{
			name: "seller no longer owns the token",
			setup: func(env *testEnv) uint64 {
				tokenID := env.mint(t, alice, 100)
				require.NoError(t, env.engine.List(alice, tokenID, 1000))
				require.NoError(t, env.engine.Transfer(alice, tokenID, carol))
				return tokenID
			},
			buyer:   bob,
			funding: 2000,
			wantErr: domain.ErrNotTokenOwner,
		},
		{
			name: "token staked between list and purchase",
			setup: func(env *testEnv) uint64 {
				tokenID := env.mint(t, alice, 100)
				require.NoError(t, env.engine.List(alice, tokenID, 1000))
				require.NoError(t, env.engine.Stake(alice, tokenID))
				return tokenID
			},
			buyer:   bob,
			funding: 2000,
			wantErr: domain.ErrAlreadyStaked,
		},
		{
			name: "seller cannot buy their own listing",
			setup: func(env *testEnv) uint64 {
				tokenID := env.mint(t, alice, 100)
				require.NoError(t, env.engine.List(alice, tokenID, 1000))
				return tokenID
			},
			buyer:   alice,
			funding: 10000,
			wantErr: domain.ErrInvalidRecipient,
		},
		{
			name: "custodian cannot buy",
			setup: func(env *testEnv) uint64 {
				tokenID := env.mint(t, alice, 100)
				require.NoError(t, env.engine.List(alice, tokenID, 1000))
				return tokenID
			},
			buyer:   custodian,
			funding: 2000,
			wantErr: domain.ErrInvalidRecipient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tokenID := tt.setup(env)
			env.fund(t, tt.buyer, tt.funding)

			buyerBefore := env.bank.BalanceOf(tt.buyer)
			custodianBefore := env.bank.BalanceOf(custodian)
			tokenBefore, tokenBeforeErr := env.engine.GetToken(tokenID)

			err := env.engine.Purchase(tt.buyer, tokenID)
			require.ErrorIs(t, err, tt.wantErr)

			// a failed purchase leaves no partial state behind
			assert.Equal(t, buyerBefore, env.bank.BalanceOf(tt.buyer))
			assert.Equal(t, custodianBefore, env.bank.BalanceOf(custodian))
			if tokenBeforeErr == nil {
				tokenAfter, err := env.engine.GetToken(tokenID)
				require.NoError(t, err)
				assert.Equal(t, tokenBefore, tokenAfter)
			}
		})
	}
}

func TestPurchase_OwnListingConservesFunds(t *testing.T) {
	env := newTestEnv()
	tokenID := env.mint(t, alice, 0)
	env.fund(t, alice, 10000)
	require.NoError(t, env.engine.List(alice, tokenID, 1000))

	err := env.engine.Purchase(alice, tokenID)
	require.ErrorIs(t, err, domain.ErrInvalidRecipient)

	// the seller's balance is untouched and the listing stays live
	assert.Equal(t, uint64(10000), env.bank.BalanceOf(alice))
	assert.Equal(t, uint64(0), env.bank.BalanceOf(custodian))
	listing, err := env.engine.GetListing(tokenID)
	require.NoError(t, err)
	assert.Equal(t, domain.Listing{Price: 1000, Seller: alice, Active: true}, listing)
}

// rejectingBank refuses transfers to one account once armed, standing in for
// a settlement backend that fails mid-purchase.
type rejectingBank struct {
	*bank.InMemory
	rejectTo domain.Account
	armed    bool
}

var errSettlement = errors.New("settlement backend unavailable")

func (b *rejectingBank) Transfer(amount uint64, from, to domain.Account) error {
	if b.armed && to == b.rejectTo {
		return errSettlement
	}
	return b.InMemory.Transfer(amount, from, to)
}

func TestPurchase_FeeLegFailureRefundsBuyer(t *testing.T) {
	rb := &rejectingBank{InMemory: bank.NewInMemory(), rejectTo: custodian}
	state := NewState()
	engine := New(state, rb, clock.NewManual(0), custodian, operator)

	require.NoError(t, rb.Deposit(alice, 150))
	tokenID, err := engine.Mint(alice, "ipfs://QmSettle", 100)
	require.NoError(t, err)
	require.NoError(t, engine.List(alice, tokenID, 1000))
	require.NoError(t, rb.Deposit(bob, 1025))

	// the price leg settles, the fee leg fails, the price is refunded
	rb.armed = true
	err = engine.Purchase(bob, tokenID)
	require.ErrorIs(t, err, errSettlement)

	assert.Equal(t, uint64(1025), rb.BalanceOf(bob))
	assert.Equal(t, uint64(0), rb.BalanceOf(alice))
	token, err := engine.GetToken(tokenID)
	require.NoError(t, err)
	assert.Equal(t, alice, token.Owner)
	listing, err := engine.GetListing(tokenID)
	require.NoError(t, err)
	assert.True(t, listing.Active)
}
