package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/ledger"
	"github.com/perebo-sp/nft-marketplace/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the ledger tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Token{},
		&schema.Listing{},
		&schema.ShareBalance{},
		&schema.RewardRecord{},
		&schema.KeyValueStore{},
		&schema.ChangesJournal{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// ApplyMutation writes all snapshots of one committed operation in a single
// transaction. Upserts key on the natural primary keys so replaying a
// mutation is harmless.
func (s *pgStore) ApplyMutation(ctx context.Context, m Mutation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		for _, row := range m.Tokens {
			record := schema.Token{
				ID:               row.Token.ID,
				Owner:            row.Token.Owner.String(),
				URI:              row.Token.URI,
				Collateral:       row.Token.Collateral,
				IsStaked:         row.Token.IsStaked,
				StakeHeight:      row.Token.StakeHeight,
				FractionalShares: row.Token.FractionalShares,
				UpdatedAt:        now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"owner", "uri", "collateral", "is_staked", "stake_height", "fractional_shares", "updated_at",
				}),
			}).Create(&record).Error
			if err != nil {
				return fmt.Errorf("failed to upsert token %d: %w", row.Token.ID, err)
			}
		}

		for _, row := range m.Listings {
			record := schema.Listing{
				TokenID:   row.TokenID,
				Price:     row.Listing.Price,
				Seller:    row.Listing.Seller.String(),
				Active:    row.Listing.Active,
				UpdatedAt: now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "token_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"price", "seller", "active", "updated_at",
				}),
			}).Create(&record).Error
			if err != nil {
				return fmt.Errorf("failed to upsert listing %d: %w", row.TokenID, err)
			}
		}

		for _, row := range m.Shares {
			record := schema.ShareBalance{
				TokenID:      row.TokenID,
				OwnerAddress: row.Owner.String(),
				Shares:       row.Shares,
				UpdatedAt:    now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "token_id"}, {Name: "owner_address"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"shares", "updated_at",
				}),
			}).Create(&record).Error
			if err != nil {
				return fmt.Errorf("failed to upsert share balance %d/%s: %w", row.TokenID, row.Owner, err)
			}
		}

		for _, row := range m.Rewards {
			record := schema.RewardRecord{
				TokenID:          row.TokenID,
				AccumulatedYield: row.Record.AccumulatedYield,
				LastClaim:        row.Record.LastClaim,
				UpdatedAt:        now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "token_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"accumulated_yield", "last_claim", "updated_at",
				}),
			}).Create(&record).Error
			if err != nil {
				return fmt.Errorf("failed to upsert reward record %d: %w", row.TokenID, err)
			}
		}

		if m.TotalSupply != nil {
			if err := setKeyValue(tx, KeyTotalSupply, strconv.FormatUint(*m.TotalSupply, 10)); err != nil {
				return err
			}
		}
		if m.TotalStaked != nil {
			if err := setKeyValue(tx, KeyTotalStaked, strconv.FormatUint(*m.TotalStaked, 10)); err != nil {
				return err
			}
		}
		if m.Params != nil {
			data, err := json.Marshal(m.Params)
			if err != nil {
				return fmt.Errorf("failed to serialize params: %w", err)
			}
			if err := setKeyValue(tx, KeyParams, string(data)); err != nil {
				return err
			}
		}

		if m.Change != nil {
			entry := schema.ChangesJournal{
				SubjectType: m.Change.SubjectType,
				SubjectID:   m.Change.SubjectID,
				ChangedAt:   now,
				Meta:        datatypes.JSON(m.Change.Meta),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to append change journal entry: %w", err)
			}
		}

		return nil
	})
}

// setKeyValue upserts a key_value_store row
func setKeyValue(tx *gorm.DB, key, value string) error {
	record := schema.KeyValueStore{Key: key, Value: value}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// LoadState rebuilds the in-memory ledger state from the database. An empty
// database yields a fresh state with default parameters.
func (s *pgStore) LoadState(ctx context.Context) (*ledger.State, error) {
	state := ledger.NewState()
	db := s.db.WithContext(ctx)

	var tokens []schema.Token
	if err := db.Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to load tokens: %w", err)
	}
	for _, row := range tokens {
		state.Tokens[row.ID] = domain.Token{
			ID:               row.ID,
			Owner:            domain.Account(row.Owner),
			URI:              row.URI,
			Collateral:       row.Collateral,
			IsStaked:         row.IsStaked,
			StakeHeight:      row.StakeHeight,
			FractionalShares: row.FractionalShares,
		}
	}

	var listings []schema.Listing
	if err := db.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	for _, row := range listings {
		state.Listings[row.TokenID] = domain.Listing{
			Price:  row.Price,
			Seller: domain.Account(row.Seller),
			Active: row.Active,
		}
	}

	var balances []schema.ShareBalance
	if err := db.Find(&balances).Error; err != nil {
		return nil, fmt.Errorf("failed to load share balances: %w", err)
	}
	for _, row := range balances {
		holders, ok := state.Shares[row.TokenID]
		if !ok {
			holders = make(map[domain.Account]uint64)
			state.Shares[row.TokenID] = holders
		}
		holders[domain.Account(row.OwnerAddress)] = row.Shares
	}

	var rewards []schema.RewardRecord
	if err := db.Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("failed to load reward records: %w", err)
	}
	for _, row := range rewards {
		state.Rewards[row.TokenID] = domain.RewardRecord{
			AccumulatedYield: row.AccumulatedYield,
			LastClaim:        row.LastClaim,
		}
	}

	supply, err := s.getCounter(ctx, KeyTotalSupply)
	if err != nil {
		return nil, err
	}
	state.TotalSupply = supply

	staked, err := s.getCounter(ctx, KeyTotalStaked)
	if err != nil {
		return nil, err
	}
	state.TotalStaked = staked

	var paramsRow schema.KeyValueStore
	err = db.Where("key = ?", KeyParams).First(&paramsRow).Error
	switch {
	case err == nil:
		var params domain.Params
		if err := json.Unmarshal([]byte(paramsRow.Value), &params); err != nil {
			return nil, fmt.Errorf("failed to parse stored params: %w", err)
		}
		state.Params = params
	case errors.Is(err, gorm.ErrRecordNotFound):
		// keep defaults
	default:
		return nil, fmt.Errorf("failed to load params: %w", err)
	}

	return state, nil
}

// getCounter reads a uint64 counter from the key-value store, 0 when absent
func (s *pgStore) getCounter(ctx context.Context, key string) (uint64, error) {
	var row schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load %s: %w", key, err)
	}
	value, err := strconv.ParseUint(row.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

// GetChanges returns journal entries after the given cursor, oldest first
func (s *pgStore) GetChanges(ctx context.Context, filter ChangesQueryFilter) ([]*schema.ChangesJournal, uint64, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	var total int64
	err := s.db.WithContext(ctx).Model(&schema.ChangesJournal{}).
		Where("\"cursor\" > ?", filter.AfterCursor).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count changes: %w", err)
	}

	var entries []*schema.ChangesJournal
	err = s.db.WithContext(ctx).
		Where("\"cursor\" > ?", filter.AfterCursor).
		Order("\"cursor\" ASC").Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get changes: %w", err)
	}

	return entries, uint64(total), nil
}
