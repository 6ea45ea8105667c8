package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/ledger"
	"github.com/fsdevblog/venuepay/internal/repository/repoargs"
	"github.com/fsdevblog/venuepay/internal/service/tokens"
	"github.com/fsdevblog/venuepay/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

// maxPayoutAttempts после стольких неудачных попыток выплата помечается failed
// и требует ручного разбора.
const maxPayoutAttempts = 5

// AccountService оборачивает ядро учета persistence-слоем: каждая операция
// выполняется внутри одной транзакции БД с блокировкой строки аккаунта,
// так что два инстанса сервиса не увидят один и тот же срез балансов.
type AccountService struct {
	uow            uow.UOW
	accountRepo    AccountRepository
	transRepo      TransactionRepository
	limits         ledger.Limits
	jwtTokenSecret []byte
}

func NewAccountService(u uow.UOW, limits ledger.Limits, jwtTokenSecret []byte) (*AccountService, error) {
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](
		u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	transRepo, transErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transErr != nil {
		return nil, transErr
	}
	return &AccountService{
		uow:            u,
		accountRepo:    accountRepo,
		transRepo:      transRepo,
		limits:         limits,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

// Authorize проверяет учетные данные аккаунта и выдает сессионный токен.
// Возвращает domain.ErrInvalidAccount если аккаунта нет и
// domain.ErrPasswordMissMatch если учетные данные не подходят.
// Само ядро учетным данным не верит и не проверяет - это забота этого слоя.
func (s *AccountService) Authorize(
	ctx context.Context,
	accountID int64,
	username, password string,
) (*domain.Account, string, error) {
	acc, findErr := s.accountRepo.FindByID(ctx, accountID)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrInvalidAccount
		}
		return nil, "", fmt.Errorf("authorizing account %d: %w", accountID, findErr)
	}

	if acc.Username != username || !comparePasswords(acc.Password, password) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateAccountJWT(acc.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("authorizing account %d: %w", accountID, tokenErr)
	}
	return acc, token, nil
}

// GetBalances возвращает срез балансов. Значения читаются как есть,
// без пересчета - мобильный клиент дергает этот метод очень часто.
func (s *AccountService) GetBalances(ctx context.Context, accountID int64) (*domain.BalanceSnapshot, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrInvalidAccount
		}
		return nil, fmt.Errorf("getting balances of account %d: %w", accountID, err)
	}
	snap := ledger.New(acc, s.limits).Snapshot()
	return &snap, nil
}

// Deposit зачисляет amount на депозитный баланс аккаунта.
func (s *AccountService) Deposit(
	ctx context.Context,
	accountID int64,
	amount decimal.Decimal,
) (domain.Result, error) {
	var result domain.Result
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accRepo, transRepo, acc, opErr := s.lockAccount(c, tx, accountID)
		if opErr != nil {
			return opErr
		}

		result = ledger.NewEngine(s.limits).Deposit(ledger.New(acc, s.limits), amount)
		if !result.OK() {
			return nil
		}

		if updErr := accRepo.UpdateBalances(c, balancesOf(acc)); updErr != nil {
			return updErr
		}
		_, createErr := transRepo.Create(c, repoargs.TransactionCreate{
			AccountID:    acc.ID,
			Reference:    uuid.New(),
			Kind:         domain.TransactionDeposit,
			Source:       domain.SourceDeposited,
			Amount:       amount.IntPart(),
			PayoutStatus: domain.PayoutNone,
		})
		return createErr
	})
	return s.opResult(result, txErr, "depositing to account %d", accountID)
}

// Withdraw списывает amount с депозитного баланса и ставит выплату в очередь.
// Фактический перевод денег выполняет внешний провайдер выплат, строго после
// успеха этой операции.
func (s *AccountService) Withdraw(
	ctx context.Context,
	accountID int64,
	amount decimal.Decimal,
) (domain.Result, error) {
	var result domain.Result
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accRepo, transRepo, acc, opErr := s.lockAccount(c, tx, accountID)
		if opErr != nil {
			return opErr
		}

		result = ledger.NewEngine(s.limits).Withdraw(ledger.New(acc, s.limits), amount)
		if !result.OK() {
			return nil
		}

		if updErr := accRepo.UpdateBalances(c, balancesOf(acc)); updErr != nil {
			return updErr
		}
		_, createErr := transRepo.Create(c, repoargs.TransactionCreate{
			AccountID:    acc.ID,
			Reference:    uuid.New(),
			Kind:         domain.TransactionWithdrawal,
			Source:       domain.SourceDeposited,
			Amount:       amount.IntPart(),
			PayoutStatus: domain.PayoutPending,
		})
		return createErr
	})
	return s.opResult(result, txErr, "withdrawing from account %d", accountID)
}

type AuthorizePaymentArgs struct {
	Amount            decimal.Decimal
	MultiplierAllowed bool
	Message           string
}

// AuthorizePayment проводит оплату запроса заведения из двух балансов.
// Списания с промо и депозита записываются отдельными проводками под общим
// reference, чтобы чек можно было восстановить целиком.
func (s *AccountService) AuthorizePayment(
	ctx context.Context,
	accountID int64,
	args AuthorizePaymentArgs,
) (ledger.PaymentResult, error) {
	var result ledger.PaymentResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accRepo, transRepo, acc, opErr := s.lockAccount(c, tx, accountID)
		if opErr != nil {
			return opErr
		}

		result = ledger.NewEngine(s.limits).
			AuthorizePayment(ledger.New(acc, s.limits), args.Amount, args.MultiplierAllowed)
		if !result.OK() {
			return nil
		}

		if updErr := accRepo.UpdateBalances(c, balancesOf(acc)); updErr != nil {
			return updErr
		}
		return s.recordPaymentDraws(c, transRepo, acc.ID, args.Message, result)
	})

	opResult, err := s.opResult(result.Result, txErr, "authorizing payment of account %d", accountID)
	result.Result = opResult
	if err != nil || !opResult.OK() {
		result.PromotionalDraw, result.DepositedDraw = 0, 0
	}
	return result, err
}

// Transactions возвращает историю проводок аккаунта, новые первыми.
func (s *AccountService) Transactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error) {
	transactions, err := s.transRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// PendingPayouts возвращает выплаты, ожидающие обработки внешним провайдером.
func (s *AccountService) PendingPayouts(ctx context.Context, limit uint) ([]domain.AccountTransaction, error) {
	payouts, err := s.transRepo.PendingPayouts(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payouts, nil
}

type UpdatePayoutArgs struct {
	TransactionID int64
	Attempts      int32
	Error         error
}

// UpdatePayouts фиксирует результаты попыток выплат. Неудачная попытка
// оставляет выплату в очереди, пока не исчерпан лимит попыток.
func (s *AccountService) UpdatePayouts(ctx context.Context, updates []UpdatePayoutArgs) error {
	if len(updates) == 0 {
		return nil
	}

	var repoUpdates = make([]repoargs.PayoutUpdate, len(updates))
	for i, u := range updates {
		status := domain.PayoutSettled
		if u.Error != nil {
			status = domain.PayoutPending
			if u.Attempts+1 >= maxPayoutAttempts {
				status = domain.PayoutFailed
			}
		}
		repoUpdates[i] = repoargs.PayoutUpdate{ID: u.TransactionID, Status: status}
	}

	var lastErr error
	s.transRepo.UpdatePayoutStatuses(ctx, repoUpdates, func(_ int, err error) {
		if err != nil {
			lastErr = err
		}
	})
	if lastErr != nil {
		return fmt.Errorf("updating payouts: %w", lastErr)
	}
	return nil
}

// lockAccount достает репозитории из транзакции и блокирует строку аккаунта.
func (s *AccountService) lockAccount(
	ctx context.Context,
	tx uow.TX,
	accountID int64,
) (AccountRepository, TransactionRepository, *domain.Account, error) {
	accRepo, accRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accRepoErr != nil {
		return nil, nil, nil, accRepoErr //nolint:wrapcheck
	}
	transRepo, transRepoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, nil, nil, transRepoErr //nolint:wrapcheck
	}
	acc, accErr := accRepo.FindByIDForUpdate(ctx, accountID)
	if accErr != nil {
		return nil, nil, nil, accErr //nolint:wrapcheck
	}
	return accRepo, transRepo, acc, nil
}

// recordPaymentDraws пишет проводки оплат одним батчем (их может быть две).
func (s *AccountService) recordPaymentDraws(
	ctx context.Context,
	transRepo TransactionRepository,
	accountID int64,
	message string,
	result ledger.PaymentResult,
) error {
	reference := uuid.New()
	var draws = make([]repoargs.TransactionCreate, 0, 2)
	if result.PromotionalDraw > 0 {
		draws = append(draws, repoargs.TransactionCreate{
			AccountID:    accountID,
			Reference:    reference,
			Kind:         domain.TransactionPayment,
			Source:       domain.SourcePromotional,
			Amount:       result.PromotionalDraw,
			Message:      message,
			PayoutStatus: domain.PayoutNone,
		})
	}
	if result.DepositedDraw > 0 {
		draws = append(draws, repoargs.TransactionCreate{
			AccountID:    accountID,
			Reference:    reference,
			Kind:         domain.TransactionPayment,
			Source:       domain.SourceDeposited,
			Amount:       result.DepositedDraw,
			Message:      message,
			PayoutStatus: domain.PayoutNone,
		})
	}
	if len(draws) == 0 {
		return nil
	}

	var lastErr error
	transRepo.BatchCreate(ctx, draws, func(_ int, err error) {
		if err != nil {
			lastErr = err
		}
	})
	return lastErr
}

// opResult сводит ошибку транзакции к итогу операции: отсутствие аккаунта -
// бизнес-код InvalidAccount, инфраструктурная ошибка - Unknown плюс сама ошибка
// для логирования вызывающим слоем.
func (s *AccountService) opResult(
	result domain.Result,
	txErr error,
	format string,
	formatArgs ...any,
) (domain.Result, error) {
	if txErr == nil {
		return result, nil
	}
	if errors.Is(txErr, domain.ErrRecordNotFound) {
		return domain.Result{Code: domain.OutcomeInvalidAccount}, nil
	}
	msg := fmt.Sprintf(format, formatArgs...)
	return domain.Result{Code: domain.OutcomeUnknown}, fmt.Errorf("%s: %w", msg, txErr)
}

func balancesOf(acc *domain.Account) repoargs.UpdateBalances {
	return repoargs.UpdateBalances{
		ID:                 acc.ID,
		DepositedBalance:   acc.DepositedBalance,
		PromotionalBalance: acc.PromotionalBalance,
		DepositedToday:     acc.DepositedToday,
		DepositDay:         acc.DepositDay,
	}
}

func comparePasswords(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
