package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

func TestSetProtocolFee(t *testing.T) {
	env := newTestEnv()

	require.ErrorIs(t, env.engine.SetProtocolFee(alice, 30), domain.ErrOwnerOnly)
	require.ErrorIs(t, env.engine.SetProtocolFee(operator, domain.FeeDenominator+1), domain.ErrInvalidPercentage)
	assert.Equal(t, domain.DefaultProtocolFeeBPS, env.engine.Params().ProtocolFeeBPS)

	require.NoError(t, env.engine.SetProtocolFee(operator, 30))
	assert.Equal(t, uint64(30), env.engine.Params().ProtocolFeeBPS)
}

func TestSetYieldRate(t *testing.T) {
	env := newTestEnv()

	require.ErrorIs(t, env.engine.SetYieldRate(alice, 100), domain.ErrOwnerOnly)
	require.ErrorIs(t, env.engine.SetYieldRate(operator, domain.FeeDenominator+1), domain.ErrInvalidPercentage)

	require.NoError(t, env.engine.SetYieldRate(operator, 100))
	assert.Equal(t, uint64(100), env.engine.Params().YieldRateBPS)
}

func TestSetMinCollateralRatio(t *testing.T) {
	env := newTestEnv()

	require.ErrorIs(t, env.engine.SetMinCollateralRatio(alice, 200), domain.ErrOwnerOnly)

	require.NoError(t, env.engine.SetMinCollateralRatio(operator, 200))
	assert.Equal(t, uint64(200), env.engine.Params().MinCollateralRatio)

	// a ratio change applies to subsequent mints
	env.fund(t, alice, 200)
	_, err := env.engine.Mint(alice, "ipfs://QmRatio", 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), env.bank.BalanceOf(alice))
}
