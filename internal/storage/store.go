package storage

import (
	"context"

	"directory/internal/database"
	"directory/internal/logger"
	. "directory/internal/models"
	"directory/internal/services"

	"github.com/valkey-io/valkey-go"
	"gorm.io/gorm"
)

const viewStateKey = "directory:viewstate"

// Store owns the durable employee collection and the small view-state record
// that survives navigation. Callers always read-modify-write the whole
// collection; Save overwrites it atomically.
type Store interface {
	// Load returns the full collection in numeric id order. On first run it
	// seeds the default records. Storage failures degrade to an empty
	// collection; Load never fails.
	Load(ctx context.Context) []Employee
	Save(ctx context.Context, employees []Employee) error
	ViewState(ctx context.Context) ViewState
	SetViewState(ctx context.Context, state ViewState)
}

// storeMeta carries bookkeeping rows: schema version and whether the seed
// data has been written. Seeding must not re-trigger after the user deletes
// every record.
type storeMeta struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:varchar(255)"`
}

func (storeMeta) TableName() string {
	return "store_meta"
}

const metaSeeded = "seeded"

type employeeStore struct {
	db           database.DB
	transactions *services.TransactionService
	log          logger.Logger
}

func New(db database.DB, transactions *services.TransactionService) Store {
	return &employeeStore{
		db:           db,
		transactions: transactions,
		log:          logger.New("employeeStore"),
	}
}

func (s *employeeStore) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return s.db.SQLWithContext(ctx)
}

func (s *employeeStore) Load(ctx context.Context) []Employee {
	log := s.log.Function("Load")

	var employees []Employee
	err := s.getDB(ctx).
		Order("CAST(id AS INTEGER)").
		Find(&employees).Error
	if err != nil {
		log.Er("failed to load employees, falling back to empty collection", err)
		return []Employee{}
	}

	if len(employees) == 0 && !s.isSeeded(ctx) {
		return s.seed(ctx)
	}

	return employees
}

func (s *employeeStore) Save(ctx context.Context, employees []Employee) error {
	log := s.log.Function("Save")

	err := s.transactions.Execute(ctx, func(txCtx context.Context) error {
		db := s.getDB(txCtx)

		if err := db.Where("1 = 1").Delete(&Employee{}).Error; err != nil {
			return log.Err("failed to clear employee collection", err)
		}

		if len(employees) == 0 {
			return nil
		}

		if err := db.Create(&employees).Error; err != nil {
			return log.Err("failed to write employee collection", err, "count", len(employees))
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Debug("employee collection saved", "count", len(employees))
	return nil
}

func (s *employeeStore) isSeeded(ctx context.Context) bool {
	var meta storeMeta
	err := s.getDB(ctx).First(&meta, "key = ?", metaSeeded).Error
	return err == nil && meta.Value == "true"
}

func (s *employeeStore) seed(ctx context.Context) []Employee {
	log := s.log.Function("seed")
	log.Info("No persisted collection found, seeding defaults")

	employees := DefaultEmployees()

	err := s.transactions.Execute(ctx, func(txCtx context.Context) error {
		db := s.getDB(txCtx)

		if err := db.Create(&employees).Error; err != nil {
			return log.Err("failed to write seed employees", err)
		}

		meta := storeMeta{Key: metaSeeded, Value: "true"}
		if err := db.Save(&meta).Error; err != nil {
			return log.Err("failed to mark store as seeded", err)
		}

		return nil
	})
	if err != nil {
		// Seed data still serves the current session even when the write
		// failed; the next Load retries.
		log.Er("failed to persist seed collection", err)
	}

	return employees
}

func (s *employeeStore) ViewState(ctx context.Context) ViewState {
	log := s.log.Function("ViewState")

	cache := s.db.Cache.Session
	if cache == nil {
		return DefaultViewState()
	}

	raw, err := cache.Do(ctx, cache.B().Get().Key(viewStateKey).Build()).AsBytes()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			log.Er("failed to read view state, using defaults", err)
		}
		return DefaultViewState()
	}

	state, err := decodeViewState(raw)
	if err != nil {
		log.Er("corrupt view state, using defaults", err)
		return DefaultViewState()
	}

	return state.Normalized()
}

func (s *employeeStore) SetViewState(ctx context.Context, state ViewState) {
	log := s.log.Function("SetViewState")

	cache := s.db.Cache.Session
	if cache == nil {
		return
	}

	raw, err := encodeViewState(state.Normalized())
	if err != nil {
		log.Er("failed to encode view state", err, "state", state)
		return
	}

	if err := cache.Do(ctx, cache.B().Set().Key(viewStateKey).Value(string(raw)).Build()).Error(); err != nil {
		log.Er("failed to persist view state", err, "state", state)
	}
}
