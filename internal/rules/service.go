package rules

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=rules
type Repository interface {
	CreateRule(ctx context.Context, rule *Rule) error
	UpdateRule(ctx context.Context, rule *Rule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
	GetRule(ctx context.Context, id uuid.UUID) (*Rule, error)

	// ListRules returns every rule in creation order.
	ListRules(ctx context.Context) ([]*Rule, error)

	BeginRun(ctx context.Context) (RunTx, error)
}

// RunTx is one atomic rule-application pass over the ledger. Every update
// inside the run commits together or not at all.
type RunTx interface {
	ApplyRule(ctx context.Context, rule *Rule, scope Scope, overwrite bool) (int64, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, params Params) (*Rule, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	rule := &Rule{
		DescriptionMatch: params.DescriptionMatch,
		CategoryID:       params.CategoryID,
		TransactionType:  params.TransactionType,
	}

	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}

	return rule, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Rule, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	rule, err := s.repo.GetRule(ctx, id)
	if err != nil {
		return nil, err
	}

	rule.DescriptionMatch = params.DescriptionMatch
	rule.CategoryID = params.CategoryID
	rule.TransactionType = params.TransactionType

	if err := s.repo.UpdateRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("updating rule: %w", err)
	}

	return rule, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRule(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Rule, error) {
	return s.repo.ListRules(ctx)
}

// Apply runs every rule against the scope inside one storage transaction
// and returns the total number of transactions updated.
//
// Rules run in creation order, and each update sees the writes of the rules
// before it. With overwrite enabled, a transaction matched by several rules
// therefore ends up with the category of the last matching rule — callers
// rely on that ordering.
func (s *Service) Apply(ctx context.Context, scope Scope, overwrite bool) (int64, error) {
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing rules: %w", err)
	}

	if len(rules) == 0 {
		return 0, ErrNoRules
	}

	run, err := s.repo.BeginRun(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin rule run: %w", err)
	}
	defer run.Rollback()

	var total int64

	for _, rule := range rules {
		updated, err := run.ApplyRule(ctx, rule, scope, overwrite)
		if err != nil {
			return 0, fmt.Errorf("applying rule %s: %w", rule.ID, err)
		}

		total += updated
	}

	if err := run.Commit(); err != nil {
		return 0, fmt.Errorf("commit rule run: %w", err)
	}

	return total, nil
}
