package ledger

import (
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// SetProtocolFee updates the purchase fee. Operator only; the fee cannot
// exceed the 1000 bps denominator.
func (e *Engine) SetProtocolFee(caller domain.Account, bps uint64) error {
	if caller != e.operator {
		return domain.ErrOwnerOnly
	}
	if bps > domain.FeeDenominator {
		return domain.ErrInvalidPercentage
	}
	e.state.Params.ProtocolFeeBPS = bps
	return nil
}

// SetYieldRate updates the annual staking yield. Operator only; capped at the
// 1000 bps denominator.
func (e *Engine) SetYieldRate(caller domain.Account, bps uint64) error {
	if caller != e.operator {
		return domain.ErrOwnerOnly
	}
	if bps > domain.FeeDenominator {
		return domain.ErrInvalidPercentage
	}
	e.state.Params.YieldRateBPS = bps
	return nil
}

// SetMinCollateralRatio updates the mint collateral lock percentage.
// Operator only.
func (e *Engine) SetMinCollateralRatio(caller domain.Account, ratio uint64) error {
	if caller != e.operator {
		return domain.ErrOwnerOnly
	}
	e.state.Params.MinCollateralRatio = ratio
	return nil
}
