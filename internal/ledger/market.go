package ledger

import (
	"errors"

	"go.uber.org/zap"

	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/logger"
)

// List puts a token up for sale at a fixed price. A new listing replaces any
// prior listing for the token unconditionally, active or not.
func (e *Engine) List(caller domain.Account, tokenID uint64, price uint64) error {
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return domain.ErrInvalidToken
	}
	if price == 0 {
		return domain.ErrInvalidPrice
	}
	if token.Owner != caller {
		return domain.ErrNotTokenOwner
	}
	if token.IsStaked {
		return domain.ErrAlreadyStaked
	}

	e.state.Listings[tokenID] = domain.Listing{
		Price:  price,
		Seller: caller,
		Active: true,
	}
	return nil
}

// Purchase buys a listed token at its asking price. The protocol fee is
// charged on top of the price: the buyer pays price + fee, the seller
// receives the full price and the custodian receives the fee. All sub-steps
// commit together or not at all.
func (e *Engine) Purchase(caller domain.Account, tokenID uint64) error {
	listing, ok := e.state.Listings[tokenID]
	if !ok || !listing.Active {
		return domain.ErrListingNotFound
	}
	// the custodian never owns tokens, and a seller cannot buy their own listing
	if caller == e.custodian || caller == listing.Seller {
		return domain.ErrInvalidRecipient
	}

	feeProduct, err := checkedMul(listing.Price, e.state.Params.ProtocolFeeBPS)
	if err != nil {
		return err
	}
	fee := feeProduct / domain.FeeDenominator
	total, err := checkedAdd(listing.Price, fee)
	if err != nil {
		return err
	}

	// Validate the ownership transfer against the listing's original seller
	// before any funds move: a stale listing (seller changed, token staked
	// since) aborts the whole purchase with nothing applied, and the state
	// mutations below cannot fail once the bank legs settle.
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return domain.ErrInvalidToken
	}
	if token.Owner != listing.Seller {
		return domain.ErrNotTokenOwner
	}
	if token.IsStaked {
		return domain.ErrAlreadyStaked
	}
	if e.bank.BalanceOf(caller) < total {
		return domain.ErrInsufficientBalance
	}

	if err := e.bank.Transfer(listing.Price, caller, listing.Seller); err != nil {
		if errors.Is(err, bank.ErrInsufficientFunds) {
			return domain.ErrInsufficientBalance
		}
		return err
	}
	if err := e.bank.Transfer(fee, caller, e.custodian); err != nil {
		// refund the price payment so the failed purchase is not observable;
		// a failed refund leaves the price with the seller and must be
		// reconciled by the operator
		if undoErr := e.bank.Transfer(listing.Price, listing.Seller, caller); undoErr != nil {
			logger.Error(undoErr,
				zap.String("action", "purchase_refund"),
				zap.Uint64("token_id", tokenID),
				zap.String("buyer", string(caller)),
				zap.Uint64("price", listing.Price))
		}
		if errors.Is(err, bank.ErrInsufficientFunds) {
			return domain.ErrInsufficientBalance
		}
		return err
	}

	token.Owner = caller
	e.state.Tokens[tokenID] = token

	// consume the listing; the seller field is retained for audit
	listing.Price = 0
	listing.Active = false
	e.state.Listings[tokenID] = listing

	return nil
}
