package ledger

import (
	"errors"

	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// Stake locks a token for staking at the current height. The reward record is
// created (or overwritten, for a re-stake) with zero accumulated yield so
// accrual restarts from now.
func (e *Engine) Stake(caller domain.Account, tokenID uint64) error {
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return domain.ErrInvalidToken
	}
	if token.Owner != caller {
		return domain.ErrNotTokenOwner
	}
	if token.IsStaked {
		return domain.ErrAlreadyStaked
	}

	now := e.clock.Now()

	token.IsStaked = true
	token.StakeHeight = now
	e.state.Tokens[tokenID] = token

	e.state.Rewards[tokenID] = domain.RewardRecord{AccumulatedYield: 0, LastClaim: now}
	e.state.TotalStaked++

	return nil
}

// CalculateRewards returns the yield owed for a staked token at the current
// height without mutating anything. The per-height yield is
// yield_rate_bps / BlocksPerYear with truncating division; for small rates
// this truncates to zero per height, which is the contractual behavior.
func (e *Engine) CalculateRewards(tokenID uint64) (uint64, error) {
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return 0, domain.ErrInvalidToken
	}
	record, ok := e.state.Rewards[tokenID]
	if !ok || !token.IsStaked {
		return 0, domain.ErrNotStaked
	}

	elapsed := e.clock.Now() - token.StakeHeight
	yieldPerHeight := e.state.Params.YieldRateBPS / domain.BlocksPerYear

	accrued, err := checkedMul(elapsed, yieldPerHeight)
	if err != nil {
		return 0, err
	}
	return checkedAdd(record.AccumulatedYield, accrued)
}

// Unstake releases a staked token, paying out any accrued yield to its owner
// first. Claim, flag reset and counter update commit together: if the reward
// payout fails the token stays staked and nothing changes.
func (e *Engine) Unstake(caller domain.Account, tokenID uint64) error {
	token, ok := e.state.Tokens[tokenID]
	if !ok {
		return domain.ErrInvalidToken
	}
	if token.Owner != caller {
		return domain.ErrNotTokenOwner
	}
	if !token.IsStaked {
		return domain.ErrNotStaked
	}

	if err := e.claim(token); err != nil {
		return err
	}

	token.IsStaked = false
	token.StakeHeight = 0
	e.state.Tokens[tokenID] = token
	e.state.TotalStaked--

	return nil
}

// claim pays the accrued yield from the custodian to the token owner and
// resets the reward record to {0, now}.
func (e *Engine) claim(token domain.Token) error {
	if !token.IsStaked {
		return domain.ErrNotStaked
	}

	reward, err := e.CalculateRewards(token.ID)
	if err != nil {
		return err
	}

	if err := e.bank.Transfer(reward, e.custodian, token.Owner); err != nil {
		if errors.Is(err, bank.ErrInsufficientFunds) {
			return domain.ErrInsufficientBalance
		}
		return err
	}

	e.state.Rewards[token.ID] = domain.RewardRecord{AccumulatedYield: 0, LastClaim: e.clock.Now()}
	return nil
}
