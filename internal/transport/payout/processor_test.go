package payout

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/service"
	"github.com/fsdevblog/venuepay/internal/transport/payout/client"
	"github.com/fsdevblog/venuepay/internal/transport/payout/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, "", logger)
	s.processor.client = s.mockHTTPClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) payoutTransaction(id, accountID, amount int64, attempts int32) domain.AccountTransaction {
	return domain.AccountTransaction{
		ID:             id,
		AccountID:      accountID,
		Reference:      uuid.New(),
		Kind:           domain.TransactionWithdrawal,
		Source:         domain.SourceDeposited,
		Amount:         amount,
		PayoutStatus:   domain.PayoutPending,
		PayoutAttempts: attempts,
	}
}

// TestProcess_NoPayouts Тест на случай, когда очередь выплат пуста.
func (s *ProcessorTestSuite) TestProcess_NoPayouts() {
	s.mockService.EXPECT().
		PendingPayouts(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.AccountTransaction{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoPayouts)
}

// TestProcess_ProviderErrors Тест на случай, когда провайдер отвечает ошибками.
func (s *ProcessorTestSuite) TestProcess_ProviderErrors() {
	testPayouts := []domain.AccountTransaction{
		s.payoutTransaction(1, 100, 500, 0),
		s.payoutTransaction(2, 101, 700, 3),
	}

	s.mockService.EXPECT().
		PendingPayouts(gomock.Any(), s.processor.limitPerIteration).
		Return(testPayouts, nil)

	internalError := client.NewStatusCodeError(http.StatusInternalServerError)
	badGatewayError := client.NewStatusCodeError(http.StatusBadGateway)

	s.mockHTTPClient.EXPECT().
		SendPayout(gomock.Any(), requestMatcher(testPayouts[0])).
		Return(nil, internalError)
	s.mockHTTPClient.EXPECT().
		SendPayout(gomock.Any(), requestMatcher(testPayouts[1])).
		Return(nil, badGatewayError)

	s.mockService.EXPECT().
		UpdatePayouts(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.UpdatePayoutArgs) {
			// Убеждаемся что ошибки были отправлены в сервис вместе с номером попытки.
			s.Require().Len(updates, 2)
			for _, update := range updates {
				s.Error(update.Error) //nolint:testifylint
				if update.TransactionID == 2 {
					s.Equal(int32(3), update.Attempts)
				}
			}
		}).Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)

	s.NoError(err)
}

// TestProcess_Success Тест на успешную обработку выплат.
func (s *ProcessorTestSuite) TestProcess_Success() {
	testPayouts := []domain.AccountTransaction{
		s.payoutTransaction(1, 100, 500, 0),
		s.payoutTransaction(2, 101, 700, 0),
	}

	s.mockService.EXPECT().
		PendingPayouts(gomock.Any(), s.processor.limitPerIteration).
		Return(testPayouts, nil)

	// Первая выплата проведена, вторая только принята провайдером: ее статус
	// не трогаем, переотправим в следующей итерации.
	s.mockHTTPClient.EXPECT().
		SendPayout(gomock.Any(), requestMatcher(testPayouts[0])).
		Return(&client.Response{Status: client.StatusSettled, Reference: testPayouts[0].Reference.String()}, nil)
	s.mockHTTPClient.EXPECT().
		SendPayout(gomock.Any(), requestMatcher(testPayouts[1])).
		Return(&client.Response{Status: client.StatusAccepted, Reference: testPayouts[1].Reference.String()}, nil)

	s.mockService.EXPECT().
		UpdatePayouts(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.UpdatePayoutArgs) {
			s.Require().Len(updates, 1)
			s.Equal(int64(1), updates[0].TransactionID)
			s.NoError(updates[0].Error) //nolint:testifylint
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_Rejected Тест на отказ провайдера: фиксируется как ошибка попытки.
func (s *ProcessorTestSuite) TestProcess_Rejected() {
	testPayouts := []domain.AccountTransaction{
		s.payoutTransaction(1, 100, 500, 4),
	}

	s.mockService.EXPECT().
		PendingPayouts(gomock.Any(), s.processor.limitPerIteration).
		Return(testPayouts, nil)

	s.mockHTTPClient.EXPECT().
		SendPayout(gomock.Any(), requestMatcher(testPayouts[0])).
		Return(&client.Response{Status: client.StatusRejected, Reference: testPayouts[0].Reference.String()}, nil)

	s.mockService.EXPECT().
		UpdatePayouts(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.UpdatePayoutArgs) {
			s.Require().Len(updates, 1)
			s.Error(updates[0].Error) //nolint:testifylint
			s.Equal(int32(4), updates[0].Attempts)
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

func requestMatcher(t domain.AccountTransaction) client.Request {
	return client.Request{
		Reference: t.Reference.String(),
		AccountID: t.AccountID,
		Amount:    t.Amount,
	}
}
