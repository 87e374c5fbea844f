package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Allow an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")

	var dsn string
	var err error

	if dbHost != "" {
		dbPort := os.Getenv("TEST_DB_PORT")
		if dbPort == "" {
			dbPort = "5432"
		}
		dsn = fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=test_db sslmode=disable",
			dbHost, dbPort)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			terminateContainer(ctx)
			os.Exit(1)
		}
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := Migrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

func terminateContainer(ctx context.Context) {
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}
}

// resetDB truncates all ledger tables between tests
func resetDB(t *testing.T) Store {
	t.Helper()
	err := testDB.Exec(`TRUNCATE tokens, listings, share_balances, reward_records, key_value_store, changes_journal RESTART IDENTITY CASCADE`).Error
	require.NoError(t, err)
	return NewPGStore(testDB)
}

func ptr[T any](v T) *T { return &v }

func TestApplyMutationAndLoadState(t *testing.T) {
	s := resetDB(t)
	ctx := context.Background()

	alice := domain.Account("0x00000000000000000000000000000000000000a1")
	bob := domain.Account("0x00000000000000000000000000000000000000b2")

	mutation := Mutation{
		Tokens: []TokenRow{{Token: domain.Token{
			ID:               1,
			Owner:            alice,
			URI:              "ipfs://metadata/1",
			Collateral:       100,
			IsStaked:         true,
			StakeHeight:      42,
			FractionalShares: 100,
		}}},
		Listings: []ListingRow{{TokenID: 1, Listing: domain.Listing{
			Price:  1000,
			Seller: alice,
			Active: true,
		}}},
		Shares: []ShareRow{
			{TokenID: 1, Owner: alice, Shares: 60},
			{TokenID: 1, Owner: bob, Shares: 40},
		},
		Rewards: []RewardRow{{TokenID: 1, Record: domain.RewardRecord{
			AccumulatedYield: 7,
			LastClaim:        42,
		}}},
		TotalSupply: ptr(uint64(1)),
		TotalStaked: ptr(uint64(1)),
		Change: &ChangeInput{
			SubjectType: schema.SubjectTypeToken,
			SubjectID:   "1",
			Meta:        []byte(`{"type":"token_minted"}`),
		},
	}

	require.NoError(t, s.ApplyMutation(ctx, mutation))

	state, err := s.LoadState(ctx)
	require.NoError(t, err)

	token, ok := state.Tokens[1]
	require.True(t, ok)
	assert.Equal(t, alice, token.Owner)
	assert.Equal(t, "ipfs://metadata/1", token.URI)
	assert.Equal(t, uint64(100), token.Collateral)
	assert.True(t, token.IsStaked)
	assert.Equal(t, uint64(42), token.StakeHeight)

	listing, ok := state.Listings[1]
	require.True(t, ok)
	assert.Equal(t, uint64(1000), listing.Price)
	assert.Equal(t, alice, listing.Seller)
	assert.True(t, listing.Active)

	assert.Equal(t, uint64(60), state.Shares[1][alice])
	assert.Equal(t, uint64(40), state.Shares[1][bob])

	record, ok := state.Rewards[1]
	require.True(t, ok)
	assert.Equal(t, uint64(7), record.AccumulatedYield)
	assert.Equal(t, uint64(42), record.LastClaim)

	assert.Equal(t, uint64(1), state.TotalSupply)
	assert.Equal(t, uint64(1), state.TotalStaked)
	// no params were stored, defaults apply
	assert.Equal(t, domain.DefaultParams(), state.Params)
}

func TestApplyMutationUpsertsExistingRows(t *testing.T) {
	s := resetDB(t)
	ctx := context.Background()

	alice := domain.Account("0x00000000000000000000000000000000000000a1")
	bob := domain.Account("0x00000000000000000000000000000000000000b2")

	token := domain.Token{ID: 1, Owner: alice, URI: "ipfs://metadata/1", Collateral: 100}
	require.NoError(t, s.ApplyMutation(ctx, Mutation{
		Tokens:      []TokenRow{{Token: token}},
		Shares:      []ShareRow{{TokenID: 1, Owner: alice, Shares: 100}},
		TotalSupply: ptr(uint64(1)),
	}))

	// transfer to bob, shares split
	token.Owner = bob
	require.NoError(t, s.ApplyMutation(ctx, Mutation{
		Tokens: []TokenRow{{Token: token}},
		Shares: []ShareRow{
			{TokenID: 1, Owner: alice, Shares: 30},
			{TokenID: 1, Owner: bob, Shares: 70},
		},
	}))

	state, err := s.LoadState(ctx)
	require.NoError(t, err)

	assert.Equal(t, bob, state.Tokens[1].Owner)
	assert.Equal(t, uint64(30), state.Shares[1][alice])
	assert.Equal(t, uint64(70), state.Shares[1][bob])

	var count int64
	require.NoError(t, testDB.Model(&schema.Token{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyMutationPersistsParams(t *testing.T) {
	s := resetDB(t)
	ctx := context.Background()

	params := domain.Params{
		MinCollateralRatio: 200,
		ProtocolFeeBPS:     30,
		YieldRateBPS:       75,
	}
	require.NoError(t, s.ApplyMutation(ctx, Mutation{
		Params: &params,
		Change: &ChangeInput{
			SubjectType: schema.SubjectTypeParams,
			SubjectID:   "params",
			Meta:        []byte(`{"type":"params_updated"}`),
		},
	}))

	state, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, params, state.Params)
}

func TestLoadStateEmptyDatabase(t *testing.T) {
	s := resetDB(t)

	state, err := s.LoadState(context.Background())
	require.NoError(t, err)

	assert.Empty(t, state.Tokens)
	assert.Empty(t, state.Listings)
	assert.Empty(t, state.Shares)
	assert.Empty(t, state.Rewards)
	assert.Zero(t, state.TotalSupply)
	assert.Zero(t, state.TotalStaked)
	assert.Equal(t, domain.DefaultParams(), state.Params)
}

func TestGetChangesPagination(t *testing.T) {
	s := resetDB(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.ApplyMutation(ctx, Mutation{
			Change: &ChangeInput{
				SubjectType: schema.SubjectTypeToken,
				SubjectID:   fmt.Sprintf("%d", i),
				Meta:        []byte(fmt.Sprintf(`{"token_id":%d}`, i)),
			},
		}))
	}

	entries, total, err := s.GetChanges(ctx, ChangesQueryFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total)
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].SubjectID)
	assert.Equal(t, "2", entries[1].SubjectID)

	// resume from the last cursor
	entries, total, err = s.GetChanges(ctx, ChangesQueryFilter{AfterCursor: entries[1].Cursor, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, entries, 3)
	assert.Equal(t, "3", entries[0].SubjectID)
	assert.Equal(t, "5", entries[2].SubjectID)
}

func TestApplyMutationRollsBackOnFailure(t *testing.T) {
	s := resetDB(t)
	ctx := context.Background()

	alice := domain.Account("0x00000000000000000000000000000000000000a1")

	// the listing references a missing token, so the FK fails and the token
	// insert in the same mutation must be rolled back
	err := s.ApplyMutation(ctx, Mutation{
		Tokens:   []TokenRow{{Token: domain.Token{ID: 1, Owner: alice, URI: "ipfs://metadata/1"}}},
		Listings: []ListingRow{{TokenID: 99, Listing: domain.Listing{Price: 10, Seller: alice, Active: true}}},
	})
	require.Error(t, err)

	state, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Tokens)
	assert.Empty(t, state.Listings)
}
