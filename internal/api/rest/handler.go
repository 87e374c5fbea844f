package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/perebo-sp/nft-marketplace/internal/api/shared/dto"
	"github.com/perebo-sp/nft-marketplace/internal/api/shared/executor"
	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Mint mints a new token
	// POST /api/v1/tokens
	Mint(c *gin.Context)

	// Transfer transfers token ownership
	// POST /api/v1/tokens/:id/transfer
	Transfer(c *gin.Context)

	// List lists a token for fixed-price sale
	// POST /api/v1/tokens/:id/list
	List(c *gin.Context)

	// Purchase buys a listed token
	// POST /api/v1/tokens/:id/purchase
	Purchase(c *gin.Context)

	// IssueShares issues fractional shares to the token owner
	// POST /api/v1/tokens/:id/shares/issue
	IssueShares(c *gin.Context)

	// TransferShares moves fractional shares between holders
	// POST /api/v1/tokens/:id/shares/transfer
	TransferShares(c *gin.Context)

	// Stake locks a token for yield accrual
	// POST /api/v1/tokens/:id/stake
	Stake(c *gin.Context)

	// Unstake releases a staked token and settles rewards
	// POST /api/v1/tokens/:id/unstake
	Unstake(c *gin.Context)

	// GetToken retrieves a single token
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// GetListing retrieves the listing record of a token
	// GET /api/v1/tokens/:id/listing
	GetListing(c *gin.Context)

	// GetShares retrieves the share balances of a token
	// GET /api/v1/tokens/:id/shares
	GetShares(c *gin.Context)

	// GetRewards reports the reward claimable at the current height
	// GET /api/v1/tokens/:id/rewards
	GetRewards(c *gin.Context)

	// GetParams retrieves the current parameter set
	// GET /api/v1/params
	GetParams(c *gin.Context)

	// UpdateParams adjusts ledger parameters, operator only
	// PUT /api/v1/params
	UpdateParams(c *gin.Context)

	// GetStats retrieves the ledger-wide counters
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// GetChanges retrieves changes journal entries
	// GET /api/v1/changes?after=<cursor>&limit=<limit>
	GetChanges(c *gin.Context)

	// Deposit credits a bank account with spendable funds
	// POST /api/v1/bank/deposit
	Deposit(c *gin.Context)

	// GetBalance retrieves the spendable balance of a bank account
	// GET /api/v1/bank/accounts/:address/balance
	GetBalance(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// tokenID parses the :id path parameter; a false return means the response
// has already been written
func tokenID(c *gin.Context) (uint64, bool) {
	id, err := dto.TokenIDFromPath(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid token id", c.Param("id"))
		return 0, false
	}
	return id, true
}

func (h *handler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.executor.Mint(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

func (h *handler) Transfer(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.executor.Transfer(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *handler) List(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	var req dto.ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	listing, err := h.executor.List(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *handler) Purchase(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.executor.Purchase(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) IssueShares(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	var req dto.IssueSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	shares, err := h.executor.IssueShares(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *handler) TransferShares(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	var req dto.TransferSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	shares, err := h.executor.TransferShares(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *handler) Stake(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.executor.Stake(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *handler) Unstake(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	var req dto.UnstakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.executor.Unstake(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetToken(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	token, err := h.executor.GetToken(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *handler) GetListing(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	listing, err := h.executor.GetListing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *handler) GetShares(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	shares, err := h.executor.GetShares(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *handler) GetRewards(c *gin.Context) {
	id, ok := tokenID(c)
	if !ok {
		return
	}
	rewards, err := h.executor.CalculateRewards(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rewards)
}

func (h *handler) GetParams(c *gin.Context) {
	params, err := h.executor.GetParams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, params)
}

func (h *handler) UpdateParams(c *gin.Context) {
	var req dto.UpdateParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	params, err := h.executor.UpdateParams(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, params)
}

func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.executor.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) GetChanges(c *gin.Context) {
	var afterCursor int64
	if raw := c.Query("after"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "Invalid after cursor", raw)
			return
		}
		afterCursor = parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(c, "Invalid limit", raw)
			return
		}
		limit = parsed
	}

	changes, err := h.executor.GetChanges(c.Request.Context(), afterCursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, changes)
}

func (h *handler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.executor.Deposit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *handler) GetBalance(c *gin.Context) {
	address := c.Param("address")
	if !domain.Account(address).Valid() {
		respondBadRequest(c, "Invalid account address", address)
		return
	}

	balance, err := h.executor.GetBalance(c.Request.Context(), address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "nft-marketplace-api",
	})
}
