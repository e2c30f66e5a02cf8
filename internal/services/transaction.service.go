package services

import (
	"context"

	"directory/internal/database"
	"directory/internal/logger"

	"gorm.io/gorm"
)

type transactionKey struct{}

// GetTransaction returns the gorm transaction carried by ctx, if any.
// Repositories and the store route their queries through it so a whole
// load-modify-save cycle commits atomically.
func GetTransaction(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(transactionKey{}).(*gorm.DB)
	return tx, ok
}

type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("TransactionService"),
	}
}

// Execute runs fn inside a transaction, exposing it to nested calls through
// the context. Reentrant: if ctx already carries a transaction, fn joins it.
func (s *TransactionService) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	log := s.log.Function("Execute")

	if _, ok := GetTransaction(ctx); ok {
		return fn(ctx)
	}

	err := s.db.SQLWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, transactionKey{}, tx)
		return fn(txCtx)
	})
	if err != nil {
		return log.Err("transaction rolled back", err)
	}

	return nil
}
