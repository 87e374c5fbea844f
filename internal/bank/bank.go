// Package bank provides the base-currency value-transfer collaborator the
// ledger engine depends on. The engine only sees the Bank interface; the host
// environment decides what actually moves the funds.
package bank

import (
	"errors"
	"math"
	"sync"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// ErrInsufficientFunds is returned when the source account cannot cover a transfer
var ErrInsufficientFunds = errors.New("insufficient funds")

// Bank moves base currency between accounts. Transfers are atomic and
// balance-checked: either the full amount moves or nothing does.
type Bank interface {
	// Transfer moves amount from one account to another
	Transfer(amount uint64, from, to domain.Account) error
	// BalanceOf returns the spendable balance of an account
	BalanceOf(account domain.Account) uint64
	// Deposit credits an account, seeding it with spendable funds
	Deposit(account domain.Account, amount uint64) error
}

// InMemory is a Bank backed by a plain balance map. It is the host-side
// implementation used by the API binary and by tests.
type InMemory struct {
	mu       sync.RWMutex
	balances map[domain.Account]uint64
}

// NewInMemory creates an empty in-memory bank
func NewInMemory() *InMemory {
	return &InMemory{balances: make(map[domain.Account]uint64)}
}

// Deposit credits an account, seeding it with spendable funds
func (b *InMemory) Deposit(account domain.Account, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.balances[account]
	if current > math.MaxUint64-amount {
		return domain.ErrOverflow
	}
	b.balances[account] = current + amount
	return nil
}

// Transfer moves amount from one account to another
func (b *InMemory) Transfer(amount uint64, from, to domain.Account) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	fromBalance := b.balances[from]
	if fromBalance < amount {
		return ErrInsufficientFunds
	}
	// a self-transfer settles to the same balance
	if from == to {
		return nil
	}

	toBalance := b.balances[to]
	if toBalance > math.MaxUint64-amount {
		return domain.ErrOverflow
	}

	b.balances[from] = fromBalance - amount
	b.balances[to] = toBalance + amount
	return nil
}

// BalanceOf returns the spendable balance of an account
func (b *InMemory) BalanceOf(account domain.Account) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[account]
}
