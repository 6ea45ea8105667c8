package service

import (
	"context"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	UpdateBalances(ctx context.Context, args repoargs.UpdateBalances) error
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.AccountTransaction, error)
	BatchCreate(
		ctx context.Context,
		transactions []repoargs.TransactionCreate,
		fn repoargs.BatchExecQueryRow,
	)
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error)
	PendingPayouts(ctx context.Context, limit uint) ([]domain.AccountTransaction, error)
	UpdatePayoutStatuses(
		ctx context.Context,
		updates []repoargs.PayoutUpdate,
		fn repoargs.BatchExecQueryRow,
	)
}
