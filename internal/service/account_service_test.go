package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/ledger"
	"github.com/fsdevblog/venuepay/internal/repository/repoargs"
	"github.com/fsdevblog/venuepay/internal/service/mocks"
	"github.com/fsdevblog/venuepay/pkg/uow"
	uowmocks "github.com/fsdevblog/venuepay/pkg/uow/mocks"
)

var testLimits = ledger.Limits{
	DailyDepositLimit:   10000,
	MaxDepositedBalance: 50000,
	MultiplierFactor:    3,
}

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockAccRepo   *mocks.MockAccountRepository
	mockTransRepo *mocks.MockTransactionRepository
	service       *AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTransRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransRepo, nil).AnyTimes()

	var err error
	s.service, err = NewAccountService(s.mockUOW, testLimits, []byte("super secret key"))
	s.Require().NoError(err)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTransaction настраивает мок UOW так, что колбек выполняется с mockTX.
func (s *AccountServiceTestSuite) expectTransaction(times int) {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).Times(times)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccRepo, nil).Times(times)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransRepo, nil).Times(times)
}

func (s *AccountServiceTestSuite) TestAuthorize() {
	digest, hashErr := bcrypt.GenerateFromPassword([]byte("guest-password"), bcrypt.MinCost)
	s.Require().NoError(hashErr)

	acc := &domain.Account{
		ID:       42,
		Username: "guest",
		Password: string(digest),
	}

	s.mockAccRepo.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil).Times(2)
	s.mockAccRepo.EXPECT().FindByID(gomock.Any(), int64(999)).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	s.Run("ok", func() {
		got, token, err := s.service.Authorize(s.T().Context(), acc.ID, "guest", "guest-password")
		s.Require().NoError(err)
		s.Equal(acc.ID, got.ID)
		s.NotEmpty(token)
	})

	s.Run("wrong password", func() {
		_, _, err := s.service.Authorize(s.T().Context(), acc.ID, "guest", "wrong")
		s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
	})

	s.Run("unknown account", func() {
		_, _, err := s.service.Authorize(s.T().Context(), 999, "guest", "guest-password")
		s.Require().ErrorIs(err, domain.ErrInvalidAccount)
	})
}

func (s *AccountServiceTestSuite) TestGetBalances() {
	acc := &domain.Account{ID: 42, DepositedBalance: 1000, PromotionalBalance: 250}
	s.mockAccRepo.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil)

	snap, err := s.service.GetBalances(s.T().Context(), acc.ID)
	s.Require().NoError(err)
	s.Equal(int64(1000), snap.Deposited)
	s.Equal(int64(3000), snap.Multiplied)
	s.Equal(int64(250), snap.Promotional)
}

// today локальная полночь текущего дня - так DepositDay не считается устаревшим
// и дневной счетчик не сбрасывается посреди теста.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *AccountServiceTestSuite) TestDeposit() {
	acc := &domain.Account{
		ID:               42,
		DepositedBalance: 1000,
		DepositedToday:   500,
		DepositDay:       today(),
	}

	s.expectTransaction(1)
	s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), acc.ID).Return(acc, nil)

	s.mockAccRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateBalances) error {
			s.Equal(acc.ID, args.ID)
			s.Equal(int64(3000), args.DepositedBalance)
			s.Equal(int64(2500), args.DepositedToday)
			return nil
		})

	s.mockTransRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.AccountTransaction, error) {
			s.Equal(domain.TransactionDeposit, args.Kind)
			s.Equal(domain.SourceDeposited, args.Source)
			s.Equal(int64(2000), args.Amount)
			s.Equal(domain.PayoutNone, args.PayoutStatus)
			return &domain.AccountTransaction{ID: 1}, nil
		})

	result, err := s.service.Deposit(s.T().Context(), acc.ID, decimal.NewFromInt(2000))
	s.Require().NoError(err)
	s.Require().Equal(domain.OutcomeSuccess, result.Code)
	s.Equal(int64(3000), result.DepositedBalance)
}

// Отказ бизнес-правила не ошибка: транзакция завершается без записи.
func (s *AccountServiceTestSuite) TestDeposit_DailyLimitExceeded() {
	acc := &domain.Account{
		ID:             42,
		DepositedToday: 9800,
		DepositDay:     today(),
	}

	s.expectTransaction(1)
	s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), acc.ID).Return(acc, nil)
	// UpdateBalances и Create вызываться не должны.

	result, err := s.service.Deposit(s.T().Context(), acc.ID, decimal.NewFromInt(300))
	s.Require().NoError(err)
	s.Equal(domain.OutcomeMaxDepositPerDayExceeded, result.Code)
}

func (s *AccountServiceTestSuite) TestDeposit_UnknownAccount() {
	s.expectTransaction(1)
	s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(999)).
		Return(nil, domain.ErrRecordNotFound)

	result, err := s.service.Deposit(s.T().Context(), 999, decimal.NewFromInt(300))
	s.Require().NoError(err)
	s.Equal(domain.OutcomeInvalidAccount, result.Code)
}

func (s *AccountServiceTestSuite) TestWithdraw() {
	acc := &domain.Account{ID: 42, DepositedBalance: 1000}

	s.expectTransaction(2)
	s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), acc.ID).
		DoAndReturn(func(context.Context, int64) (*domain.Account, error) {
			cp := *acc
			return &cp, nil
		}).Times(2)

	s.mockAccRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateBalances) error {
			s.Equal(int64(600), args.DepositedBalance)
			return nil
		}).Times(1)

	// проводка вывода встает в очередь на выплату.
	s.mockTransRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.AccountTransaction, error) {
			s.Equal(domain.TransactionWithdrawal, args.Kind)
			s.Equal(domain.PayoutPending, args.PayoutStatus)
			s.Equal(int64(400), args.Amount)
			return &domain.AccountTransaction{ID: 2}, nil
		}).Times(1)

	cases := []struct {
		name     string
		amount   int64
		wantCode domain.Outcome
	}{
		{name: "ok", amount: 400, wantCode: domain.OutcomeSuccess},
		{name: "not enough money", amount: 1001, wantCode: domain.OutcomeNotEnoughMoney},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			result, err := s.service.Withdraw(s.T().Context(), acc.ID, decimal.NewFromInt(c.amount))
			s.Require().NoError(err)
			s.Equal(c.wantCode, result.Code)
		})
	}
}

func (s *AccountServiceTestSuite) TestAuthorizePayment() {
	acc := &domain.Account{ID: 42, DepositedBalance: 1000, PromotionalBalance: 200}

	s.expectTransaction(1)
	s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), acc.ID).Return(acc, nil)

	s.mockAccRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateBalances) error {
			s.Equal(int64(900), args.DepositedBalance)
			s.Equal(int64(0), args.PromotionalBalance)
			return nil
		})

	s.mockTransRepo.EXPECT().BatchCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, draws []repoargs.TransactionCreate, fn repoargs.BatchExecQueryRow) {
			s.Require().Len(draws, 2)
			s.Equal(domain.SourcePromotional, draws[0].Source)
			s.Equal(int64(200), draws[0].Amount)
			s.Equal(domain.SourceDeposited, draws[1].Source)
			s.Equal(int64(100), draws[1].Amount)
			// обе проводки под одним reference.
			s.Equal(draws[0].Reference, draws[1].Reference)
			s.Equal("two beers", draws[0].Message)
			for i := range draws {
				fn(i, nil)
			}
		})

	result, err := s.service.AuthorizePayment(s.T().Context(), acc.ID, AuthorizePaymentArgs{
		Amount:            decimal.NewFromInt(500),
		MultiplierAllowed: true,
		Message:           "two beers",
	})
	s.Require().NoError(err)
	s.Require().Equal(domain.OutcomeSuccess, result.Code)
	s.Equal(int64(200), result.PromotionalDraw)
	s.Equal(int64(100), result.DepositedDraw)
}

func (s *AccountServiceTestSuite) TestUpdatePayouts() {
	s.mockTransRepo.EXPECT().UpdatePayoutStatuses(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []repoargs.PayoutUpdate, fn repoargs.BatchExecQueryRow) {
			s.Require().Len(updates, 3)
			s.Equal(domain.PayoutSettled, updates[0].Status)
			// ошибка при неисчерпанном лимите попыток оставляет выплату в очереди.
			s.Equal(domain.PayoutPending, updates[1].Status)
			// лимит попыток исчерпан.
			s.Equal(domain.PayoutFailed, updates[2].Status)
			for i := range updates {
				fn(i, nil)
			}
		})

	err := s.service.UpdatePayouts(s.T().Context(), []UpdatePayoutArgs{
		{TransactionID: 1, Attempts: 0, Error: nil},
		{TransactionID: 2, Attempts: 0, Error: errors.New("provider unavailable")},
		{TransactionID: 3, Attempts: 4, Error: errors.New("provider unavailable")},
	})
	s.Require().NoError(err)
}
