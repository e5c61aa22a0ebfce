package category

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context) ([]*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a user-defined category. Categories created this way are always
// flagged custom.
func (s *Service) Create(ctx context.Context, name string) (*Category, error) {
	if name == "" {
		return nil, errors.New("category name is required")
	}

	category := &Category{
		Name:     name,
		IsCustom: true,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return category, nil
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}
