package domain

import "errors"

// Ledger precondition failures form a closed set. Every operation either
// succeeds or returns exactly one of these; a failed operation mutates nothing.
var (
	// ErrOwnerOnly is returned when a parameter update comes from an account other than the engine operator
	ErrOwnerOnly = errors.New("owner only")

	// ErrNotTokenOwner is returned when the caller does not own the token
	ErrNotTokenOwner = errors.New("not token owner")

	// ErrInsufficientBalance is returned when a share or base-currency balance cannot cover the operation
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidToken is returned when the token does not exist
	ErrInvalidToken = errors.New("invalid token")

	// ErrListingNotFound is returned when no active listing exists for the token
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidPrice is returned when a listing price is zero
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInsufficientCollateral is returned when the minter cannot cover the required collateral lock
	ErrInsufficientCollateral = errors.New("insufficient collateral")

	// ErrAlreadyStaked is returned when the token is staked and therefore frozen
	ErrAlreadyStaked = errors.New("already staked")

	// ErrNotStaked is returned when the token is not staked
	ErrNotStaked = errors.New("not staked")

	// ErrInvalidPercentage is returned when a basis-point parameter exceeds the fee denominator
	ErrInvalidPercentage = errors.New("invalid percentage")

	// ErrInvalidURI is returned when the token URI is empty or longer than MaxURILength
	ErrInvalidURI = errors.New("invalid uri")

	// ErrInvalidRecipient is returned when the recipient is the engine's
	// custodial account, or when a seller tries to buy their own listing
	ErrInvalidRecipient = errors.New("invalid recipient")

	// ErrOverflow is returned when an arithmetic step would overflow uint64
	ErrOverflow = errors.New("overflow")
)
