package bank

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bank
type Repository interface {
	// EnsureBank inserts the bank if no bank with that name exists yet.
	EnsureBank(ctx context.Context, name string) error

	ListBanks(ctx context.Context) ([]*Bank, error)
	GetBank(ctx context.Context, id uuid.UUID) (*Bank, error)
	DeleteBank(ctx context.Context, id uuid.UUID) error

	// CountTransactions returns how many transactions reference the bank name.
	CountTransactions(ctx context.Context, name string) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ensure makes sure a bank with the given name exists. Imports call this
// before inserting transactions so every transaction's bank name resolves.
func (s *Service) Ensure(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("bank name is required")
	}

	if err := s.repo.EnsureBank(ctx, name); err != nil {
		return fmt.Errorf("ensuring bank %q: %w", name, err)
	}

	return nil
}

func (s *Service) List(ctx context.Context) ([]*Bank, error) {
	return s.repo.ListBanks(ctx)
}

// Delete removes a bank, refusing with ErrInUse while any transaction still
// references it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.repo.GetBank(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountTransactions(ctx, b.Name)
	if err != nil {
		return fmt.Errorf("counting transactions for bank %q: %w", b.Name, err)
	}

	if count > 0 {
		return ErrInUse
	}

	return s.repo.DeleteBank(ctx, id)
}
