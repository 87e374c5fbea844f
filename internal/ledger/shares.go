package ledger

import (
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// IssueShares credits the token owner with newly issued fractional shares and
// bumps the token's advisory fractional_shares figure. The advisory figure is
// never reconciled against the share ledger.
func (e *Engine) IssueShares(caller domain.Account, tokenID uint64, amount uint64) error {
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return domain.ErrInvalidToken
	}
	if token.Owner != caller {
		return domain.ErrNotTokenOwner
	}

	holders := e.state.Shares[tokenID]
	newBalance, err := checkedAdd(holders[caller], amount)
	if err != nil {
		return err
	}
	newAdvisory, err := checkedAdd(token.FractionalShares, amount)
	if err != nil {
		return err
	}

	if holders == nil {
		holders = make(map[domain.Account]uint64)
		e.state.Shares[tokenID] = holders
	}
	holders[caller] = newBalance

	token.FractionalShares = newAdvisory
	e.state.Tokens[tokenID] = token

	return nil
}

// TransferShares moves fractional shares from the caller to the recipient.
// The per-token balance sum is conserved: the sender is debited exactly what
// the recipient is credited. A zero-amount transfer from an existing record
// succeeds as a no-op, but a sender with no record at all fails with
// ErrInsufficientBalance even for amount 0.
func (e *Engine) TransferShares(caller domain.Account, tokenID uint64, recipient domain.Account, amount uint64) error {
	if recipient == e.custodian {
		return domain.ErrInvalidRecipient
	}

	holders := e.state.Shares[tokenID]
	senderBalance, ok := holders[caller]
	if !ok || senderBalance < amount {
		return domain.ErrInsufficientBalance
	}
	// a self-transfer settles to the same balance
	if caller == recipient {
		return nil
	}

	newRecipientBalance, err := checkedAdd(holders[recipient], amount)
	if err != nil {
		return err
	}

	holders[caller] = senderBalance - amount
	holders[recipient] = newRecipientBalance

	return nil
}
