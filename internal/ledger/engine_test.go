package ledger

import (
	"sync"
	"testing"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.engine = NewEngine(testLimits)
}

func (s *EngineTestSuite) authorize(acc *domain.Account, amount int64, multiplier bool) PaymentResult {
	led := New(acc, testLimits)
	return s.engine.AuthorizePayment(led, decimal.NewFromInt(amount), multiplier)
}

func (s *EngineTestSuite) TestAuthorizePayment() {
	cases := []struct {
		name            string
		promotional     int64
		deposited       int64
		amount          int64
		multiplier      bool
		wantCode        domain.Outcome
		wantPromoDraw   int64
		wantDepositDraw int64
	}{
		{
			// промо-деньги тратятся первыми и полностью покрывают запрос.
			name: "promotion covers request", promotional: 500, deposited: 1000,
			amount: 400, multiplier: false,
			wantCode: domain.OutcomeSuccess, wantPromoDraw: 400, wantDepositDraw: 0,
		},
		{
			// запрос ровно исчерпывает промо-баланс, депозит не тронут.
			name: "promotion exactly exhausted", promotional: 500, deposited: 1000,
			amount: 500, multiplier: true,
			wantCode: domain.OutcomeSuccess, wantPromoDraw: 500, wantDepositDraw: 0,
		},
		{
			// множитель увеличивает покупательную способность, а не баланс:
			// запрос 3000 при депозите 1000 списывает ровно 1000.
			name: "multiplier spending power", promotional: 0, deposited: 1000,
			amount: 3000, multiplier: true,
			wantCode: domain.OutcomeSuccess, wantPromoDraw: 0, wantDepositDraw: 1000,
		},
		{
			name: "no promotion no multiplier", promotional: 0, deposited: 1000,
			amount: 700, multiplier: false,
			wantCode: domain.OutcomeSuccess, wantPromoDraw: 0, wantDepositDraw: 700,
		},
		{
			// остаток сверх промо делится на множитель: (500-200)/3 = 100.
			name: "split draw with multiplier", promotional: 200, deposited: 1000,
			amount: 500, multiplier: true,
			wantCode: domain.OutcomeSuccess, wantPromoDraw: 200, wantDepositDraw: 100,
		},
		{
			name: "split draw without multiplier", promotional: 200, deposited: 1000,
			amount: 500, multiplier: false,
			wantCode: domain.OutcomeSuccess, wantPromoDraw: 200, wantDepositDraw: 300,
		},
		{
			name: "not enough without multiplier", promotional: 100, deposited: 1000,
			amount: 1101, multiplier: false,
			wantCode: domain.OutcomeNotEnoughMoney,
		},
		{
			// с множителем хватает: 100 + 1000*3 = 3100.
			name: "enough only with multiplier", promotional: 100, deposited: 1000,
			amount: 3100, multiplier: true,
			wantCode: domain.OutcomeSuccess, wantPromoDraw: 100, wantDepositDraw: 1000,
		},
		{
			name: "not enough even with multiplier", promotional: 100, deposited: 1000,
			amount: 3101, multiplier: true,
			wantCode: domain.OutcomeNotEnoughMoney,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			acc := &domain.Account{
				PromotionalBalance: c.promotional,
				DepositedBalance:   c.deposited,
			}

			res := s.authorize(acc, c.amount, c.multiplier)

			s.Require().Equal(c.wantCode, res.Code)
			if c.wantCode != domain.OutcomeSuccess {
				// отказ не оставляет следов на балансах.
				s.Equal(c.promotional, acc.PromotionalBalance)
				s.Equal(c.deposited, acc.DepositedBalance)
				return
			}
			s.Equal(c.wantPromoDraw, res.PromotionalDraw)
			s.Equal(c.wantDepositDraw, res.DepositedDraw)
			s.Equal(c.promotional-c.wantPromoDraw, acc.PromotionalBalance)
			s.Equal(c.deposited-c.wantDepositDraw, acc.DepositedBalance)
		})
	}
}

// Регрессия политики округления: половина округляется от нуля (round half up
// для положительных сумм). Для множителя 3 точной половины не бывает, поэтому
// отдельно проверяем четный множитель.
func (s *EngineTestSuite) TestRoundingPolicy() {
	// 100/3 = 33.33... -> 33, детерминированно при повторах.
	for range 5 {
		acc := &domain.Account{DepositedBalance: 1000}
		res := s.authorize(acc, 100, true)
		s.Require().Equal(domain.OutcomeSuccess, res.Code)
		s.Equal(int64(33), res.DepositedDraw)
		s.Equal(int64(967), acc.DepositedBalance)
	}

	// 200/3 = 66.66... -> 67.
	acc := &domain.Account{DepositedBalance: 1000}
	res := s.authorize(acc, 200, true)
	s.Require().Equal(domain.OutcomeSuccess, res.Code)
	s.Equal(int64(67), res.DepositedDraw)

	// множитель 2: 25/2 = 12.5 -> 13, а не 12 (банковское округление не используется).
	evenEngine := NewEngine(Limits{
		DailyDepositLimit:   testLimits.DailyDepositLimit,
		MaxDepositedBalance: testLimits.MaxDepositedBalance,
		MultiplierFactor:    2,
	})
	acc = &domain.Account{DepositedBalance: 1000}
	led := New(acc, testLimits)
	evenRes := evenEngine.AuthorizePayment(led, decimal.NewFromInt(25), true)
	s.Require().Equal(domain.OutcomeSuccess, evenRes.Code)
	s.Equal(int64(13), evenRes.DepositedDraw)
}

func (s *EngineTestSuite) TestAmountNotInteger() {
	acc := &domain.Account{DepositedBalance: 1000, PromotionalBalance: 100}
	led := New(acc, testLimits)

	fractional := decimal.NewFromFloat(10.5)

	s.Equal(domain.OutcomeAmountNotInteger, s.engine.Deposit(led, fractional).Code)
	s.Equal(domain.OutcomeAmountNotInteger, s.engine.Withdraw(led, fractional).Code)
	s.Equal(domain.OutcomeAmountNotInteger, s.engine.CreditPromotion(led, fractional).Code)
	s.Equal(domain.OutcomeAmountNotInteger, s.engine.AuthorizePayment(led, fractional, true).Code)
	s.Equal(domain.OutcomeAmountNotInteger, s.engine.Deposit(led, decimal.NewFromInt(-10)).Code)

	// целое, но за пределами int64: IntPart() завернул бы его в мусор.
	overInt64 := decimal.RequireFromString("9223372036854775808")
	s.Equal(domain.OutcomeAmountNotInteger, s.engine.Deposit(led, overInt64).Code)
	s.Equal(domain.OutcomeAmountNotInteger, s.engine.AuthorizePayment(led, overInt64, true).Code)

	s.Equal(int64(1000), acc.DepositedBalance)
	s.Equal(int64(100), acc.PromotionalBalance)
}

func (s *EngineTestSuite) TestEngineWrappers() {
	acc := &domain.Account{}
	led := New(acc, testLimits)

	res := s.engine.Deposit(led, decimal.NewFromInt(3000))
	s.Require().Equal(domain.OutcomeSuccess, res.Code)
	s.Equal(int64(3000), res.DepositedBalance)

	res = s.engine.Withdraw(led, decimal.NewFromInt(1000))
	s.Require().Equal(domain.OutcomeSuccess, res.Code)
	s.Equal(int64(2000), res.DepositedBalance)

	res = s.engine.CreditPromotion(led, decimal.NewFromInt(150))
	s.Require().Equal(domain.OutcomeSuccess, res.Code)
	s.Equal(int64(150), res.PromotionalBalance)
}

// Две конкурентные авторизации на весь промо-баланс: ровно одна проходит,
// вторая получает NotEnoughMoney, двойного списания нет.
func (s *EngineTestSuite) TestConcurrentAuthorizationNoDoubleSpend() {
	acc := &domain.Account{PromotionalBalance: 100}
	led := New(acc, testLimits)

	results := make([]PaymentResult, 2)
	wg := new(sync.WaitGroup)
	wg.Add(2)
	for i := range results {
		go func() {
			defer wg.Done()
			results[i] = s.engine.AuthorizePayment(led, decimal.NewFromInt(100), false)
		}()
	}
	wg.Wait()

	codes := []domain.Outcome{results[0].Code, results[1].Code}
	s.ElementsMatch([]domain.Outcome{domain.OutcomeSuccess, domain.OutcomeNotEnoughMoney}, codes)
	s.Equal(int64(0), acc.PromotionalBalance)
	s.Equal(int64(0), acc.DepositedBalance)
}
