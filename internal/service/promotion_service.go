package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/ledger"
	"github.com/fsdevblog/venuepay/internal/repository/repoargs"
	"github.com/fsdevblog/venuepay/pkg/uow"
)

// PromotionService начисляет промо-деньги. Операция административная,
// транспортный слой пускает к ней только по админ-ключу.
type PromotionService struct {
	uow    uow.UOW
	limits ledger.Limits
}

func NewPromotionService(u uow.UOW, limits ledger.Limits) *PromotionService {
	return &PromotionService{
		uow:    u,
		limits: limits,
	}
}

// Grant зачисляет amount промо-денег на аккаунт. Message сохраняется на проводке
// для истории ("welcome bonus", "happy hour" и т.п.).
func (p *PromotionService) Grant(
	ctx context.Context,
	accountID int64,
	amount decimal.Decimal,
	message string,
) (domain.Result, error) {
	var result domain.Result
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accRepo, accRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accRepoErr != nil {
			return accRepoErr //nolint:wrapcheck
		}
		transRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}

		acc, accErr := accRepo.FindByIDForUpdate(c, accountID)
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}

		result = ledger.NewEngine(p.limits).CreditPromotion(ledger.New(acc, p.limits), amount)
		if !result.OK() {
			return nil
		}

		if updErr := accRepo.UpdateBalances(c, balancesOf(acc)); updErr != nil {
			return updErr
		}
		_, createErr := transRepo.Create(c, repoargs.TransactionCreate{
			AccountID:    acc.ID,
			Reference:    uuid.New(),
			Kind:         domain.TransactionPromotion,
			Source:       domain.SourcePromotional,
			Amount:       amount.IntPart(),
			Message:      message,
			PayoutStatus: domain.PayoutNone,
		})
		return createErr
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecordNotFound) {
			return domain.Result{Code: domain.OutcomeInvalidAccount}, nil
		}
		return domain.Result{Code: domain.OutcomeUnknown},
			fmt.Errorf("granting promotion to account %d: %w", accountID, txErr)
	}
	return result, nil
}

// GrantMany начисляет одну и ту же промо-сумму списку аккаунтов (рассылка кампании).
// Каждый аккаунт обрабатывается в собственной транзакции, порядок между
// аккаунтами не гарантируется; результат возвращается по каждому аккаунту.
func (p *PromotionService) GrantMany(
	ctx context.Context,
	accountIDs []int64,
	amount decimal.Decimal,
	message string,
) (map[int64]domain.Result, error) {
	results := make(map[int64]domain.Result, len(accountIDs))
	var lastErr error
	for _, id := range accountIDs {
		res, err := p.Grant(ctx, id, amount, message)
		if err != nil {
			lastErr = err
		}
		results[id] = res
	}
	if lastErr != nil {
		return results, fmt.Errorf("granting promotion campaign: %w", lastErr)
	}
	return results, nil
}
