package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	InsertBatch(ctx context.Context, drafts []Draft) ([]*Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateClassification(ctx context.Context, id uuid.UUID, params ClassificationParams) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Bank       *string
	Year       *int
	Month      *int
	CategoryID *uuid.UUID
}

// ClassificationParams carries the only transaction fields a user may edit.
type ClassificationParams struct {
	CategoryID *uuid.UUID
	Notes      *string
}

// CreateBatch inserts all drafts in one storage transaction.
// Either every draft is inserted or none are.
func (s *Service) CreateBatch(ctx context.Context, drafts []Draft) ([]*Transaction, error) {
	if len(drafts) == 0 {
		return nil, nil
	}

	txs, err := s.repo.InsertBatch(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("insert batch: %w", err)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// Classify updates the category and notes of a transaction. The imported
// bank fields are not reachable through this or any other operation.
func (s *Service) Classify(ctx context.Context, id uuid.UUID, params ClassificationParams) error {
	return s.repo.UpdateClassification(ctx, id, params)
}
