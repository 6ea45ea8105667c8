package service

import (
	"fmt"

	"github.com/fsdevblog/venuepay/internal/ledger"
	"github.com/fsdevblog/venuepay/pkg/uow"
)

type AppServices struct {
	AccountService   *AccountService
	PromotionService *PromotionService
}

func Factory(unitOfWork uow.UOW, limits ledger.Limits, jwtSecret []byte) (*AppServices, error) {
	accountService, accountServiceErr := NewAccountService(unitOfWork, limits, jwtSecret)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	return &AppServices{
		AccountService:   accountService,
		PromotionService: NewPromotionService(unitOfWork, limits),
	}, nil
}
