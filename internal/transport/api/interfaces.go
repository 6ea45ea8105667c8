package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/ledger"
	"github.com/fsdevblog/venuepay/internal/service"
)

// AccountServicer интерфейс исключительно для моков.
type AccountServicer interface {
	Authorize(ctx context.Context, accountID int64, username, password string) (*domain.Account, string, error)
	GetBalances(ctx context.Context, accountID int64) (*domain.BalanceSnapshot, error)
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Result, error)
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Result, error)
	AuthorizePayment(
		ctx context.Context,
		accountID int64,
		args service.AuthorizePaymentArgs,
	) (ledger.PaymentResult, error)
	Transactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error)
}

type PromotionServicer interface {
	Grant(ctx context.Context, accountID int64, amount decimal.Decimal, message string) (domain.Result, error)
	GrantMany(
		ctx context.Context,
		accountIDs []int64,
		amount decimal.Decimal,
		message string,
	) (map[int64]domain.Result, error)
}
