// Package executor bridges the HTTP surface and the ledger engine. The engine
// is a sequential state machine, so the executor serializes every operation
// behind one mutex, persists the durable effect of each commit, and publishes
// the resulting event.
package executor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/perebo-sp/nft-marketplace/internal/api/shared/dto"
	apierrors "github.com/perebo-sp/nft-marketplace/internal/api/shared/errors"
	"github.com/perebo-sp/nft-marketplace/internal/bank"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/ledger"
	"github.com/perebo-sp/nft-marketplace/internal/logger"
	"github.com/perebo-sp/nft-marketplace/internal/messaging"
	"github.com/perebo-sp/nft-marketplace/internal/store"
	"github.com/perebo-sp/nft-marketplace/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Mint creates a new token after locking collateral with the custodian
	Mint(ctx context.Context, req *dto.MintRequest) (*dto.TokenResponse, error)

	// Transfer moves token ownership to the recipient
	Transfer(ctx context.Context, tokenID uint64, req *dto.TransferRequest) (*dto.TokenResponse, error)

	// List puts a token up for fixed-price sale
	List(ctx context.Context, tokenID uint64, req *dto.ListRequest) (*dto.ListingResponse, error)

	// Purchase buys a listed token, charging price plus protocol fee
	Purchase(ctx context.Context, tokenID uint64, req *dto.PurchaseRequest) (*dto.PurchaseResponse, error)

	// IssueShares credits new fractional shares to the token owner
	IssueShares(ctx context.Context, tokenID uint64, req *dto.IssueSharesRequest) (*dto.SharesResponse, error)

	// TransferShares moves fractional shares between holders
	TransferShares(ctx context.Context, tokenID uint64, req *dto.TransferSharesRequest) (*dto.SharesResponse, error)

	// Stake locks a token for yield accrual
	Stake(ctx context.Context, tokenID uint64, req *dto.StakeRequest) (*dto.TokenResponse, error)

	// Unstake releases a staked token and settles accrued rewards
	Unstake(ctx context.Context, tokenID uint64, req *dto.UnstakeRequest) (*dto.UnstakeResponse, error)

	// CalculateRewards reports the reward claimable at the current height
	CalculateRewards(ctx context.Context, tokenID uint64) (*dto.RewardsResponse, error)

	// UpdateParams adjusts ledger parameters, operator only
	UpdateParams(ctx context.Context, req *dto.UpdateParamsRequest) (*dto.ParamsResponse, error)

	// GetToken retrieves a token by id
	GetToken(ctx context.Context, tokenID uint64) (*dto.TokenResponse, error)

	// GetListing retrieves the listing record for a token
	GetListing(ctx context.Context, tokenID uint64) (*dto.ListingResponse, error)

	// GetShares retrieves all share balances of a token
	GetShares(ctx context.Context, tokenID uint64) (*dto.SharesResponse, error)

	// GetParams retrieves the current parameter set
	GetParams(ctx context.Context) (*dto.ParamsResponse, error)

	// GetStats retrieves the ledger-wide counters
	GetStats(ctx context.Context) (*dto.StatsResponse, error)

	// GetChanges retrieves changes journal entries after a cursor
	GetChanges(ctx context.Context, afterCursor int64, limit int) (*dto.ChangeListResponse, error)

	// Deposit credits a bank account with spendable funds
	Deposit(ctx context.Context, req *dto.DepositRequest) (*dto.BalanceResponse, error)

	// GetBalance retrieves the spendable balance of a bank account
	GetBalance(ctx context.Context, account string) (*dto.BalanceResponse, error)
}

type executor struct {
	mu        sync.Mutex
	engine    *ledger.Engine
	bank      bank.Bank
	store     store.Store
	publisher messaging.Publisher
}

// NewExecutor creates an executor over the given engine. The bank must be the
// same instance the engine settles against; the store persists committed
// mutations and the publisher emits their events.
func NewExecutor(engine *ledger.Engine, b bank.Bank, s store.Store, publisher messaging.Publisher) Executor {
	return &executor{
		engine:    engine,
		bank:      b,
		store:     s,
		publisher: publisher,
	}
}

// mapDomainError converts engine errors into API errors
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return apierrors.NewNotFoundError("Token not found", err.Error())
	case errors.Is(err, domain.ErrListingNotFound):
		return apierrors.NewNotFoundError("Listing not found", err.Error())
	case errors.Is(err, domain.ErrNotTokenOwner),
		errors.Is(err, domain.ErrOwnerOnly):
		return apierrors.NewForbiddenError("Operation not permitted", err.Error())
	case errors.Is(err, domain.ErrInvalidURI),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidPercentage),
		errors.Is(err, domain.ErrInvalidRecipient):
		return apierrors.NewValidationError(err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientCollateral),
		errors.Is(err, domain.ErrAlreadyStaked),
		errors.Is(err, domain.ErrNotStaked),
		errors.Is(err, domain.ErrOverflow):
		return apierrors.NewConflictError("Operation rejected", err.Error())
	default:
		return apierrors.NewInternalError("Operation failed", err.Error())
	}
}

// commit persists the durable effect of an operation and publishes its event.
// Persistence failures surface to the caller; publish failures do not.
func (e *executor) commit(ctx context.Context, m store.Mutation, event *domain.LedgerEvent) error {
	if event != nil && m.Change != nil {
		meta, err := event.CanonicalJSON()
		if err != nil {
			return apierrors.NewInternalError("Failed to serialize event", err.Error())
		}
		m.Change.Meta = meta
	}

	if err := e.store.ApplyMutation(ctx, m); err != nil {
		logger.Error(err, zap.String("stage", "persist"))
		return apierrors.NewDatabaseError("Failed to persist operation", err.Error())
	}

	if event != nil {
		// publish is decoupled from the request lifetime
		if err := e.publisher.PublishEvent(context.WithoutCancel(ctx), event); err != nil {
			logger.Error(err,
				zap.String("stage", "publish"),
				zap.String("event_id", event.ID),
			)
		}
	}

	return nil
}

func ptr[T any](v T) *T { return &v }

func (e *executor) tokenDTO(token domain.Token) *dto.TokenResponse {
	params := e.engine.Params()
	locked := params.MinCollateralRatio * token.Collateral / 100
	return dto.MapTokenToDTO(token, locked)
}

func (e *executor) Mint(ctx context.Context, req *dto.MintRequest) (*dto.TokenResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()
	tokenID, err := e.engine.Mint(caller, req.URI, req.Collateral)
	if err != nil {
		return nil, mapDomainError(err)
	}

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:      domain.NewEventID(),
		Type:    domain.EventTypeTokenMinted,
		TokenID: tokenID,
		Actor:   caller,
		Amount:  req.Collateral,
		Height:  e.engine.Height(),
	}
	mutation := store.Mutation{
		Tokens:      []store.TokenRow{{Token: token}},
		TotalSupply: ptr(e.engine.TotalSupply()),
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeToken,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return e.tokenDTO(token), nil
}

func (e *executor) Transfer(ctx context.Context, tokenID uint64, req *dto.TransferRequest) (*dto.TokenResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()
	recipient := domain.Account(req.Recipient).Normalize()

	if err := e.engine.Transfer(caller, tokenID, recipient); err != nil {
		return nil, mapDomainError(err)
	}

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:           domain.NewEventID(),
		Type:         domain.EventTypeTokenTransferred,
		TokenID:      tokenID,
		Actor:        caller,
		Counterparty: recipient,
		Height:       e.engine.Height(),
	}
	mutation := store.Mutation{
		Tokens: []store.TokenRow{{Token: token}},
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeToken,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return e.tokenDTO(token), nil
}

func (e *executor) List(ctx context.Context, tokenID uint64, req *dto.ListRequest) (*dto.ListingResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()
	if err := e.engine.List(caller, tokenID, req.Price); err != nil {
		return nil, mapDomainError(err)
	}

	listing, err := e.engine.GetListing(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:      domain.NewEventID(),
		Type:    domain.EventTypeTokenListed,
		TokenID: tokenID,
		Actor:   caller,
		Amount:  req.Price,
		Height:  e.engine.Height(),
	}
	mutation := store.Mutation{
		Listings: []store.ListingRow{{TokenID: tokenID, Listing: listing}},
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeListing,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return e.listingDTO(tokenID, listing), nil
}

// listingDTO builds a listing response including the buyer's fee preview
func (e *executor) listingDTO(tokenID uint64, listing domain.Listing) *dto.ListingResponse {
	params := e.engine.Params()
	fee := listing.Price * params.ProtocolFeeBPS / domain.FeeDenominator
	return &dto.ListingResponse{
		TokenID: tokenID,
		Price:   listing.Price,
		Seller:  listing.Seller.String(),
		Active:  listing.Active,
		Fee:     fee,
		Total:   listing.Price + fee,
	}
}

func (e *executor) Purchase(ctx context.Context, tokenID uint64, req *dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()

	// capture the terms before the listing is consumed
	listing, err := e.engine.GetListing(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	params := e.engine.Params()
	price := listing.Price
	fee := price * params.ProtocolFeeBPS / domain.FeeDenominator
	seller := listing.Seller

	if err := e.engine.Purchase(caller, tokenID); err != nil {
		return nil, mapDomainError(err)
	}

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	consumed, err := e.engine.GetListing(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:           domain.NewEventID(),
		Type:         domain.EventTypeTokenPurchased,
		TokenID:      tokenID,
		Actor:        caller,
		Counterparty: seller,
		Amount:       price,
		Height:       e.engine.Height(),
	}
	mutation := store.Mutation{
		Tokens:   []store.TokenRow{{Token: token}},
		Listings: []store.ListingRow{{TokenID: tokenID, Listing: consumed}},
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeListing,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return &dto.PurchaseResponse{
		Token:  e.tokenDTO(token),
		Price:  price,
		Fee:    fee,
		Total:  price + fee,
		Seller: seller.String(),
	}, nil
}

func (e *executor) IssueShares(ctx context.Context, tokenID uint64, req *dto.IssueSharesRequest) (*dto.SharesResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()
	if err := e.engine.IssueShares(caller, tokenID, req.Amount); err != nil {
		return nil, mapDomainError(err)
	}

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:      domain.NewEventID(),
		Type:    domain.EventTypeSharesMoved,
		TokenID: tokenID,
		Actor:   caller,
		Amount:  req.Amount,
		Height:  e.engine.Height(),
	}
	mutation := store.Mutation{
		Tokens: []store.TokenRow{{Token: token}},
		Shares: []store.ShareRow{
			{TokenID: tokenID, Owner: caller, Shares: e.engine.GetShares(tokenID, caller)},
		},
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeShares,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return e.sharesDTO(tokenID, token), nil
}

func (e *executor) TransferShares(ctx context.Context, tokenID uint64, req *dto.TransferSharesRequest) (*dto.SharesResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()
	recipient := domain.Account(req.Recipient).Normalize()

	if err := e.engine.TransferShares(caller, tokenID, recipient, req.Amount); err != nil {
		return nil, mapDomainError(err)
	}

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:           domain.NewEventID(),
		Type:         domain.EventTypeSharesMoved,
		TokenID:      tokenID,
		Actor:        caller,
		Counterparty: recipient,
		Amount:       req.Amount,
		Height:       e.engine.Height(),
	}
	mutation := store.Mutation{
		Shares: []store.ShareRow{
			{TokenID: tokenID, Owner: caller, Shares: e.engine.GetShares(tokenID, caller)},
			{TokenID: tokenID, Owner: recipient, Shares: e.engine.GetShares(tokenID, recipient)},
		},
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeShares,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return e.sharesDTO(tokenID, token), nil
}

// sharesDTO builds the share balance view of a token
func (e *executor) sharesDTO(tokenID uint64, token domain.Token) *dto.SharesResponse {
	balances := make(map[string]uint64)
	for owner, shares := range e.engine.ShareBalances(tokenID) {
		balances[owner.String()] = shares
	}
	return &dto.SharesResponse{
		TokenID:     tokenID,
		Balances:    balances,
		TotalIssued: token.FractionalShares,
	}
}

func (e *executor) Stake(ctx context.Context, tokenID uint64, req *dto.StakeRequest) (*dto.TokenResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()
	if err := e.engine.Stake(caller, tokenID); err != nil {
		return nil, mapDomainError(err)
	}

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	record, err := e.engine.GetRewardRecord(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:      domain.NewEventID(),
		Type:    domain.EventTypeTokenStaked,
		TokenID: tokenID,
		Actor:   caller,
		Height:  e.engine.Height(),
	}
	mutation := store.Mutation{
		Tokens:      []store.TokenRow{{Token: token}},
		Rewards:     []store.RewardRow{{TokenID: tokenID, Record: record}},
		TotalStaked: ptr(e.engine.TotalStaked()),
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeToken,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return e.tokenDTO(token), nil
}

func (e *executor) Unstake(ctx context.Context, tokenID uint64, req *dto.UnstakeRequest) (*dto.UnstakeResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()

	// the reward that unstaking will settle; errors surface from Unstake
	reward, _ := e.engine.CalculateRewards(tokenID)

	if err := e.engine.Unstake(caller, tokenID); err != nil {
		return nil, mapDomainError(err)
	}

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	record, err := e.engine.GetRewardRecord(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	event := &domain.LedgerEvent{
		ID:      domain.NewEventID(),
		Type:    domain.EventTypeTokenUnstaked,
		TokenID: tokenID,
		Actor:   caller,
		Amount:  reward,
		Height:  e.engine.Height(),
	}
	mutation := store.Mutation{
		Tokens:      []store.TokenRow{{Token: token}},
		Rewards:     []store.RewardRow{{TokenID: tokenID, Record: record}},
		TotalStaked: ptr(e.engine.TotalStaked()),
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeRewards,
			SubjectID:   strconv.FormatUint(tokenID, 10),
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return &dto.UnstakeResponse{
		Token:      e.tokenDTO(token),
		RewardPaid: reward,
	}, nil
}

func (e *executor) CalculateRewards(ctx context.Context, tokenID uint64) (*dto.RewardsResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	reward, err := e.engine.CalculateRewards(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &dto.RewardsResponse{
		TokenID: tokenID,
		Accrued: reward,
		Height:  e.engine.Height(),
	}, nil
}

func (e *executor) UpdateParams(ctx context.Context, req *dto.UpdateParamsRequest) (*dto.ParamsResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	caller := domain.Account(req.Caller).Normalize()

	// reject invalid percentages before applying anything, so a request is
	// all-or-nothing across the fields it names
	if req.ProtocolFeeBPS != nil && *req.ProtocolFeeBPS > domain.FeeDenominator {
		return nil, mapDomainError(domain.ErrInvalidPercentage)
	}
	if req.YieldRateBPS != nil && *req.YieldRateBPS > domain.FeeDenominator {
		return nil, mapDomainError(domain.ErrInvalidPercentage)
	}

	if req.ProtocolFeeBPS != nil {
		if err := e.engine.SetProtocolFee(caller, *req.ProtocolFeeBPS); err != nil {
			return nil, mapDomainError(err)
		}
	}
	if req.YieldRateBPS != nil {
		if err := e.engine.SetYieldRate(caller, *req.YieldRateBPS); err != nil {
			return nil, mapDomainError(err)
		}
	}
	if req.MinCollateralRatio != nil {
		if err := e.engine.SetMinCollateralRatio(caller, *req.MinCollateralRatio); err != nil {
			return nil, mapDomainError(err)
		}
	}

	params := e.engine.Params()
	event := &domain.LedgerEvent{
		ID:     domain.NewEventID(),
		Type:   domain.EventTypeParamsUpdated,
		Actor:  caller,
		Height: e.engine.Height(),
	}
	mutation := store.Mutation{
		Params: &params,
		Change: &store.ChangeInput{
			SubjectType: schema.SubjectTypeParams,
			SubjectID:   "params",
		},
	}
	if err := e.commit(ctx, mutation, event); err != nil {
		return nil, err
	}

	return dto.MapParamsToDTO(params), nil
}

func (e *executor) GetToken(ctx context.Context, tokenID uint64) (*dto.TokenResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return e.tokenDTO(token), nil
}

func (e *executor) GetListing(ctx context.Context, tokenID uint64) (*dto.ListingResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	listing, err := e.engine.GetListing(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return e.listingDTO(tokenID, listing), nil
}

func (e *executor) GetShares(ctx context.Context, tokenID uint64) (*dto.SharesResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	token, err := e.engine.GetToken(tokenID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return e.sharesDTO(tokenID, token), nil
}

func (e *executor) GetParams(ctx context.Context) (*dto.ParamsResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return dto.MapParamsToDTO(e.engine.Params()), nil
}

func (e *executor) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return &dto.StatsResponse{
		TotalSupply: e.engine.TotalSupply(),
		TotalStaked: e.engine.TotalStaked(),
		Height:      e.engine.Height(),
	}, nil
}

func (e *executor) Deposit(ctx context.Context, req *dto.DepositRequest) (*dto.BalanceResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account := domain.Account(req.Account).Normalize()
	if err := e.bank.Deposit(account, req.Amount); err != nil {
		return nil, mapDomainError(err)
	}

	return &dto.BalanceResponse{
		Account: account.String(),
		Balance: e.bank.BalanceOf(account),
	}, nil
}

func (e *executor) GetBalance(ctx context.Context, account string) (*dto.BalanceResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	normalized := domain.Account(account).Normalize()
	return &dto.BalanceResponse{
		Account: normalized.String(),
		Balance: e.bank.BalanceOf(normalized),
	}, nil
}

func (e *executor) GetChanges(ctx context.Context, afterCursor int64, limit int) (*dto.ChangeListResponse, error) {
	entries, total, err := e.store.GetChanges(ctx, store.ChangesQueryFilter{
		AfterCursor: afterCursor,
		Limit:       limit,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get changes: %v", err))
	}
	return dto.MapChangesToDTO(entries, total), nil
}
