package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

func TestIssueShares(t *testing.T) {
	env := newTestEnv()
	tokenID := env.mint(t, alice, 100)

	require.NoError(t, env.engine.IssueShares(alice, tokenID, 100))
	assert.Equal(t, uint64(100), env.engine.GetShares(tokenID, alice))

	// issuing again accumulates, and the advisory figure follows
	require.NoError(t, env.engine.IssueShares(alice, tokenID, 50))
	assert.Equal(t, uint64(150), env.engine.GetShares(tokenID, alice))

	token, err := env.engine.GetToken(tokenID)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), token.FractionalShares)
}

func TestIssueShares_Failures(t *testing.T) {
	env := newTestEnv()
	tokenID := env.mint(t, alice, 100)

	err := env.engine.IssueShares(alice, 99, 10)
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	err = env.engine.IssueShares(bob, tokenID, 10)
	require.ErrorIs(t, err, domain.ErrNotTokenOwner)
	assert.Equal(t, uint64(0), env.engine.GetShares(tokenID, bob))
}

func TestTransferShares(t *testing.T) {
	tests := []struct {
		name          string
		senderBalance *uint64 // nil means no record at all
		recipient     domain.Account
		amount        uint64
		wantErr       error
	}{
		{
			name:          "partial transfer",
			senderBalance: ptr(uint64(100)),
			recipient:     bob,
			amount:        40,
		},
		{
			name:          "full balance transfer",
			senderBalance: ptr(uint64(100)),
			recipient:     bob,
			amount:        100,
		},
		{
			name:          "zero amount with an existing record is a no-op",
			senderBalance: ptr(uint64(100)),
			recipient:     bob,
			amount:        0,
		},
		{
			name:      "zero amount with no sender record still fails",
			recipient: bob,
			amount:    0,
			wantErr:   domain.ErrInsufficientBalance,
		},
		{
			name:          "amount above the sender balance",
			senderBalance: ptr(uint64(100)),
			recipient:     bob,
			amount:        101,
			wantErr:       domain.ErrInsufficientBalance,
		},
		{
			name:          "recipient is the custodian",
			senderBalance: ptr(uint64(100)),
			recipient:     custodian,
			amount:        10,
			wantErr:       domain.ErrInvalidRecipient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			const tokenID = uint64(1)
			if tt.senderBalance != nil {
				env.state.Shares[tokenID] = map[domain.Account]uint64{alice: *tt.senderBalance}
			}

			sumBefore := env.engine.GetShares(tokenID, alice) + env.engine.GetShares(tokenID, tt.recipient)
			err := env.engine.TransferShares(alice, tokenID, tt.recipient, tt.amount)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.senderBalance != nil {
					assert.Equal(t, *tt.senderBalance, env.engine.GetShares(tokenID, alice))
				}
				assert.Equal(t, uint64(0), env.engine.GetShares(tokenID, tt.recipient))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, *tt.senderBalance-tt.amount, env.engine.GetShares(tokenID, alice))
			assert.Equal(t, tt.amount, env.engine.GetShares(tokenID, tt.recipient))

			// the per-token share sum is conserved
			sumAfter := env.engine.GetShares(tokenID, alice) + env.engine.GetShares(tokenID, tt.recipient)
			assert.Equal(t, sumBefore, sumAfter)
		})
	}
}

func TestTransferShares_SelfTransferConservesSum(t *testing.T) {
	env := newTestEnv()
	tokenID := env.mint(t, alice, 100)
	require.NoError(t, env.engine.IssueShares(alice, tokenID, 100))

	// sending shares to yourself must not change the balance
	require.NoError(t, env.engine.TransferShares(alice, tokenID, alice, 40))
	assert.Equal(t, uint64(100), env.engine.GetShares(tokenID, alice))

	// the balance check still applies to the no-op path
	err := env.engine.TransferShares(alice, tokenID, alice, 101)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, uint64(100), env.engine.GetShares(tokenID, alice))
}

func TestTransferShares_RecipientOverflow(t *testing.T) {
	env := newTestEnv()
	const tokenID = uint64(1)
	env.state.Shares[tokenID] = map[domain.Account]uint64{
		alice: 10,
		bob:   math.MaxUint64 - 5,
	}

	err := env.engine.TransferShares(alice, tokenID, bob, 10)
	require.ErrorIs(t, err, domain.ErrOverflow)

	// both balances are untouched
	assert.Equal(t, uint64(10), env.engine.GetShares(tokenID, alice))
	assert.Equal(t, uint64(math.MaxUint64-5), env.engine.GetShares(tokenID, bob))
}

func ptr[T any](v T) *T {
	return &v
}
