package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/venuepay/internal/domain"
)

// Engine движок бизнес-правил. Не хранит состояния, суммы принимает как
// decimal.Decimal в минорных единицах и отклоняет нецелые до обращения к Ledger,
// чтобы клиент мог отличить кривой ввод от нарушения бизнес-правила.
type Engine struct {
	limits Limits
}

func NewEngine(limits Limits) *Engine {
	return &Engine{limits: limits}
}

// PaymentResult итог авторизации оплаты. Draw-поля говорят, сколько фактически
// списано с каждого баланса: при множителе списание с депозита меньше номинала запроса.
type PaymentResult struct {
	domain.Result
	PromotionalDraw int64
	DepositedDraw   int64
}

func (e *Engine) Deposit(led *Ledger, amount decimal.Decimal) domain.Result {
	minor, ok := minorUnits(amount)
	if !ok {
		return reject(led, domain.OutcomeAmountNotInteger)
	}
	return led.Deposit(minor)
}

func (e *Engine) Withdraw(led *Ledger, amount decimal.Decimal) domain.Result {
	minor, ok := minorUnits(amount)
	if !ok {
		return reject(led, domain.OutcomeAmountNotInteger)
	}
	return led.Withdraw(minor)
}

func (e *Engine) CreditPromotion(led *Ledger, amount decimal.Decimal) domain.Result {
	minor, ok := minorUnits(amount)
	if !ok {
		return reject(led, domain.OutcomeAmountNotInteger)
	}
	return led.CreditPromotion(minor)
}

// AuthorizePayment проводит оплату из двух балансов.
//
// Порядок списания:
//  1. Промо-деньги тратятся первыми и множителем не умножаются.
//  2. Остаток берется с депозита; при разрешенном множителе депозитная часть
//     делится на множитель - множитель увеличивает покупательную способность
//     депозита, но не хранимый баланс.
//
// Деление округляется до целой минорной единицы по правилу "половина от нуля"
// (round half away from zero, для положительных сумм это round half up).
// Оба списания применяются в одной критической секции: если второе списание
// не проходит, первое откатывается и возвращается OutcomeUnknown - такое
// состояние означает баг инварианта, а не бизнес-условие.
func (e *Engine) AuthorizePayment(led *Ledger, amount decimal.Decimal, multiplierAllowed bool) PaymentResult {
	minor, ok := minorUnits(amount)
	if !ok {
		return PaymentResult{Result: reject(led, domain.OutcomeAmountNotInteger)}
	}

	var promoDraw, depositDraw int64
	res := led.update(func(acc *domain.Account) domain.Outcome {
		effective := acc.DepositedBalance
		if multiplierAllowed {
			effective *= e.limits.MultiplierFactor
		}
		if minor > acc.PromotionalBalance+effective {
			return domain.OutcomeNotEnoughMoney
		}

		switch {
		case acc.PromotionalBalance == 0:
			depositDraw = e.depositDraw(minor, multiplierAllowed)
		case minor <= acc.PromotionalBalance:
			promoDraw = minor
		default:
			promoDraw = acc.PromotionalBalance
			depositDraw = e.depositDraw(minor-acc.PromotionalBalance, multiplierAllowed)
		}

		if promoDraw > 0 && !debitPromotion(acc, promoDraw) {
			promoDraw, depositDraw = 0, 0
			return domain.OutcomeUnknown
		}
		if depositDraw > 0 && !debitDeposit(acc, depositDraw) {
			// частичная оплата недопустима, возвращаем промо-списание
			acc.PromotionalBalance += promoDraw
			promoDraw, depositDraw = 0, 0
			return domain.OutcomeUnknown
		}
		return domain.OutcomeSuccess
	})

	return PaymentResult{Result: res, PromotionalDraw: promoDraw, DepositedDraw: depositDraw}
}

// depositDraw вычисляет фактическое списание с депозита для остатка запроса.
func (e *Engine) depositDraw(remainder int64, multiplierAllowed bool) int64 {
	if !multiplierAllowed {
		return remainder
	}
	factor := decimal.NewFromInt(e.limits.MultiplierFactor)
	return decimal.NewFromInt(remainder).DivRound(factor, 0).IntPart()
}

// minorUnits проверяет что сумма - положительное целое число минорных единиц,
// представимое в int64. IntPart() на больших значениях молча заворачивается,
// поэтому диапазон проверяем до конвертации.
func minorUnits(amount decimal.Decimal) (int64, bool) {
	if !amount.IsInteger() || amount.Sign() <= 0 {
		return 0, false
	}
	bi := amount.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// reject возвращает Result с кодом code и нетронутыми балансами.
func reject(led *Ledger, code domain.Outcome) domain.Result {
	res := led.update(func(*domain.Account) domain.Outcome {
		return code
	})
	return res
}
