package service

import (
	"context"

	"github.com/guttosm/contractpulse/internal/domain/models"
	"github.com/guttosm/contractpulse/internal/pipeline"
)

// TransactionService defines read access to the last parsed result set.
// This decouples HTTP handlers from the pipeline's state ownership.
type TransactionService interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

type transactionService struct {
	p *pipeline.Pipeline
}

func NewTransactionService(p *pipeline.Pipeline) TransactionService {
	return &transactionService{p: p}
}

func (s *transactionService) ListTransactions(_ context.Context) ([]models.Transaction, error) {
	// Reads are optimistic; see the Pipeline state contract.
	return s.p.Transactions()
}
