// Package dto defines the request and response bodies of the ledger API.
package dto

import (
	"fmt"

	apierrors "github.com/perebo-sp/nft-marketplace/internal/api/shared/errors"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// validateAccount checks a single account field
func validateAccount(field, value string) error {
	if value == "" {
		return apierrors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	if !domain.Account(value).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", field, value))
	}
	return nil
}

// MintRequest represents the request body for minting a token
type MintRequest struct {
	Caller     string `json:"caller"`
	URI        string `json:"uri"`
	Collateral uint64 `json:"collateral"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	if err := validateAccount("caller", r.Caller); err != nil {
		return err
	}
	if r.URI == "" {
		return apierrors.NewValidationError("uri is required")
	}
	if len(r.URI) > domain.MaxURILength {
		return apierrors.NewValidationError(fmt.Sprintf("uri exceeds %d characters", domain.MaxURILength))
	}
	return nil
}

// TransferRequest represents the request body for transferring a token
type TransferRequest struct {
	Caller    string `json:"caller"`
	Recipient string `json:"recipient"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if err := validateAccount("caller", r.Caller); err != nil {
		return err
	}
	return validateAccount("recipient", r.Recipient)
}

// ListRequest represents the request body for listing a token for sale
type ListRequest struct {
	Caller string `json:"caller"`
	Price  uint64 `json:"price"`
}

// Validate validates the request body
func (r *ListRequest) Validate() error {
	return validateAccount("caller", r.Caller)
}

// PurchaseRequest represents the request body for purchasing a listed token
type PurchaseRequest struct {
	Caller string `json:"caller"`
}

// Validate validates the request body
func (r *PurchaseRequest) Validate() error {
	return validateAccount("caller", r.Caller)
}

// IssueSharesRequest represents the request body for issuing fractional shares
type IssueSharesRequest struct {
	Caller string `json:"caller"`
	Amount uint64 `json:"amount"`
}

// Validate validates the request body
func (r *IssueSharesRequest) Validate() error {
	if err := validateAccount("caller", r.Caller); err != nil {
		return err
	}
	if r.Amount == 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// TransferSharesRequest represents the request body for moving fractional shares
type TransferSharesRequest struct {
	Caller    string `json:"caller"`
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

// Validate validates the request body
func (r *TransferSharesRequest) Validate() error {
	if err := validateAccount("caller", r.Caller); err != nil {
		return err
	}
	return validateAccount("recipient", r.Recipient)
}

// StakeRequest represents the request body for staking a token
type StakeRequest struct {
	Caller string `json:"caller"`
}

// Validate validates the request body
func (r *StakeRequest) Validate() error {
	return validateAccount("caller", r.Caller)
}

// UnstakeRequest represents the request body for unstaking a token
type UnstakeRequest struct {
	Caller string `json:"caller"`
}

// Validate validates the request body
func (r *UnstakeRequest) Validate() error {
	return validateAccount("caller", r.Caller)
}

// DepositRequest represents the request body for crediting a bank account
type DepositRequest struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
}

// Validate validates the request body
func (r *DepositRequest) Validate() error {
	if err := validateAccount("account", r.Account); err != nil {
		return err
	}
	if r.Amount == 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// UpdateParamsRequest represents the request body for adjusting ledger
// parameters. Nil fields are left unchanged.
type UpdateParamsRequest struct {
	Caller             string  `json:"caller"`
	ProtocolFeeBPS     *uint64 `json:"protocol_fee_bps,omitempty"`
	YieldRateBPS       *uint64 `json:"yield_rate_bps,omitempty"`
	MinCollateralRatio *uint64 `json:"min_collateral_ratio,omitempty"`
}

// Validate validates the request body
func (r *UpdateParamsRequest) Validate() error {
	if err := validateAccount("caller", r.Caller); err != nil {
		return err
	}
	if r.ProtocolFeeBPS == nil && r.YieldRateBPS == nil && r.MinCollateralRatio == nil {
		return apierrors.NewValidationError("at least one parameter is required")
	}
	return nil
}
