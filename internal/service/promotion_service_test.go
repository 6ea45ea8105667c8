package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/repository/repoargs"
	"github.com/fsdevblog/venuepay/internal/service/mocks"
	"github.com/fsdevblog/venuepay/pkg/uow"
	uowmocks "github.com/fsdevblog/venuepay/pkg/uow/mocks"
)

type PromotionServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockAccRepo   *mocks.MockAccountRepository
	mockTransRepo *mocks.MockTransactionRepository
	service       *PromotionService
}

func TestPromotionServiceSuite(t *testing.T) {
	suite.Run(t, new(PromotionServiceTestSuite))
}

func (s *PromotionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTransRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	s.service = NewPromotionService(s.mockUOW, testLimits)
}

func (s *PromotionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTransaction настраивает мок UOW так, что колбек выполняется с mockTX.
func (s *PromotionServiceTestSuite) expectTransaction(times int) {
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

func (s *PromotionServiceTestSuite) TestGrant() {
	s.expectTransaction(1)

	acc := &domain.Account{ID: 42, DepositedBalance: 1000, PromotionalBalance: 50}
	s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), acc.ID).Return(acc, nil)

	s.mockAccRepo.EXPECT().
		UpdateBalances(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, args repoargs.UpdateBalances) {
			s.Equal(int64(1000), args.DepositedBalance)
			s.Equal(int64(350), args.PromotionalBalance)
		}).Return(nil)
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, args repoargs.TransactionCreate) {
			s.Equal(domain.TransactionPromotion, args.Kind)
			s.Equal(domain.SourcePromotional, args.Source)
			s.Equal(int64(300), args.Amount)
			s.Equal("happy hour", args.Message)
		}).Return(&domain.AccountTransaction{}, nil)

	result, err := s.service.Grant(s.T().Context(), acc.ID, decimal.NewFromInt(300), "happy hour")
	s.Require().NoError(err)
	s.Equal(domain.OutcomeSuccess, result.Code)
	s.Equal(int64(350), result.PromotionalBalance)
}

func (s *PromotionServiceTestSuite) TestGrant_NotInteger() {
	s.expectTransaction(1)

	acc := &domain.Account{ID: 42, PromotionalBalance: 50}
	s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), acc.ID).Return(acc, nil)

	// отклоненная операция ничего не пишет в БД.
	result, err := s.service.Grant(s.T().Context(), acc.ID, decimal.RequireFromString("10.5"), "")
	s.Require().NoError(err)
	s.Equal(domain.OutcomeAmountNotInteger, result.Code)
	s.Equal(int64(50), result.PromotionalBalance)
}

func (s *PromotionServiceTestSuite) TestGrant_UnknownAccount() {
	s.expectTransaction(1)

	s.mockAccRepo.EXPECT().
		FindByIDForUpdate(gomock.Any(), int64(999)).
		Return(nil, domain.ErrRecordNotFound)

	result, err := s.service.Grant(s.T().Context(), 999, decimal.NewFromInt(300), "")
	s.Require().NoError(err)
	s.Equal(domain.OutcomeInvalidAccount, result.Code)
}

func (s *PromotionServiceTestSuite) TestGrantMany() {
	s.expectTransaction(2)

	accounts := map[int64]*domain.Account{
		1: {ID: 1, PromotionalBalance: 0},
		2: {ID: 2, PromotionalBalance: 100},
	}
	for id, acc := range accounts {
		s.mockAccRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(acc, nil)
	}
	s.mockAccRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.AccountTransaction{}, nil).Times(2)

	results, err := s.service.GrantMany(s.T().Context(), []int64{1, 2}, decimal.NewFromInt(300), "campaign")
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(domain.OutcomeSuccess, results[1].Code)
	s.Equal(domain.OutcomeSuccess, results[2].Code)
}
