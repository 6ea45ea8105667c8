package payout

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/service"
	"github.com/fsdevblog/venuepay/internal/transport/payout/client"
)

type Client interface {
	SendPayout(ctx context.Context, req client.Request) (*client.Response, error)
}

type Servicer interface {
	PendingPayouts(ctx context.Context, limit uint) ([]domain.AccountTransaction, error)
	UpdatePayouts(ctx context.Context, updates []service.UpdatePayoutArgs) error
}
