package bank_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledgerly/internal/bank"
)

func newService(t *testing.T) (*bank.Service, *bank.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := bank.NewMockRepository(ctrl)

	return bank.NewService(repo), repo
}

func TestEnsure(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().EnsureBank(gomock.Any(), "ANZ").Return(nil)

	require.NoError(t, svc.Ensure(context.Background(), "ANZ"))
}

func TestEnsure_EmptyName(t *testing.T) {
	svc, _ := newService(t)

	err := svc.Ensure(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bank name is required")
}

func TestDelete(t *testing.T) {
	svc, repo := newService(t)

	b := &bank.Bank{ID: uuid.New(), Name: "ANZ", CreatedAt: time.Now()}

	repo.EXPECT().GetBank(gomock.Any(), b.ID).Return(b, nil)
	repo.EXPECT().CountTransactions(gomock.Any(), "ANZ").Return(int64(0), nil)
	repo.EXPECT().DeleteBank(gomock.Any(), b.ID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), b.ID))
}

func TestDelete_BlockedWhileInUse(t *testing.T) {
	svc, repo := newService(t)

	b := &bank.Bank{ID: uuid.New(), Name: "ANZ", CreatedAt: time.Now()}

	repo.EXPECT().GetBank(gomock.Any(), b.ID).Return(b, nil)
	repo.EXPECT().CountTransactions(gomock.Any(), "ANZ").Return(int64(12), nil)
	// DeleteBank must not be called.

	err := svc.Delete(context.Background(), b.ID)
	assert.ErrorIs(t, err, bank.ErrInUse)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo := newService(t)

	id := uuid.New()
	repo.EXPECT().GetBank(gomock.Any(), id).Return(nil, bank.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, bank.ErrNotFound)
}
