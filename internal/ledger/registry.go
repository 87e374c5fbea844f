package ledger

import (
	"errors"

	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// Mint creates a new token owned by the caller and locks the required
// collateral with the custodian. The required lock is
// min_collateral_ratio * collateral / 100 with truncating division; a
// declared collateral of 0 therefore locks nothing.
func (e *Engine) Mint(caller domain.Account, uri string, collateral uint64) (uint64, error) {
	if len(uri) == 0 || len(uri) > domain.MaxURILength {
		return 0, domain.ErrInvalidURI
	}
	// the custodian never owns tokens
	if caller == e.custodian {
		return 0, domain.ErrInvalidRecipient
	}

	product, err := checkedMul(e.state.Params.MinCollateralRatio, collateral)
	if err != nil {
		return 0, err
	}
	requiredLock := product / 100

	if e.bank.BalanceOf(caller) < requiredLock {
		return 0, domain.ErrInsufficientCollateral
	}
	if err := e.bank.Transfer(requiredLock, caller, e.custodian); err != nil {
		if errors.Is(err, bank.ErrInsufficientFunds) {
			return 0, domain.ErrInsufficientCollateral
		}
		return 0, err
	}

	tokenID := e.state.TotalSupply + 1
	e.state.Tokens[tokenID] = domain.Token{
		ID:         tokenID,
		Owner:      caller,
		URI:        uri,
		Collateral: collateral,
	}
	e.state.TotalSupply = tokenID

	return tokenID, nil
}

// Transfer moves whole-token ownership from the caller to the recipient.
// Staked tokens are frozen and cannot be transferred.
func (e *Engine) Transfer(caller domain.Account, tokenID uint64, recipient domain.Account) error {
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return domain.ErrInvalidToken
	}
	if recipient == e.custodian {
		return domain.ErrInvalidRecipient
	}
	if token.Owner != caller {
		return domain.ErrNotTokenOwner
	}
	if token.IsStaked {
		return domain.ErrAlreadyStaked
	}

	token.Owner = recipient
	e.state.Tokens[tokenID] = token
	return nil
}
