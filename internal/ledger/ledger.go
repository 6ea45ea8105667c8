// Package ledger содержит ядро учета: балансы одного аккаунта и правила операций.
// Ядро не выполняет I/O, загрузка и сохранение аккаунта - забота вызывающего слоя.
package ledger

import (
	"math"
	"sync"
	"time"

	"github.com/fsdevblog/venuepay/internal/domain"
)

// Limits бизнес-лимиты аккаунта. Передаются явно при создании,
// чтобы их можно было переопределять per-venue и фиксировать в тестах.
type Limits struct {
	DailyDepositLimit   int64
	MaxDepositedBalance int64
	MultiplierFactor    int64
}

// Ledger владеет изменяемым состоянием одного аккаунта на время операции.
// Все операции выполняются под мьютексом: проверки и мутация видят один срез
// состояния, операция применяется целиком либо не применяется вовсе.
type Ledger struct {
	mu     sync.Mutex
	acc    *domain.Account
	limits Limits
	now    func() time.Time
}

func New(acc *domain.Account, limits Limits) *Ledger {
	return &Ledger{
		acc:    acc,
		limits: limits,
		now:    time.Now,
	}
}

// Snapshot возвращает балансы аккаунта. Multiplied - производное значение
// для отображения, хранимые балансы множитель никогда не меняет.
func (l *Ledger) Snapshot() domain.BalanceSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.BalanceSnapshot{
		Deposited:   l.acc.DepositedBalance,
		Multiplied:  l.acc.DepositedBalance * l.limits.MultiplierFactor,
		Promotional: l.acc.PromotionalBalance,
	}
}

// Deposit зачисляет amount на депозитный баланс с проверкой дневного лимита
// и потолка хранения. Счетчик депозитов за день сбрасывается в локальную полночь.
func (l *Ledger) Deposit(amount int64) domain.Result {
	return l.update(func(acc *domain.Account) domain.Outcome {
		if amount <= 0 {
			return domain.OutcomeAmountNotInteger
		}
		l.rollDepositDay(acc)
		// сравниваем через вычитание: сумма amount+счетчик может переполнить int64.
		if amount > l.limits.DailyDepositLimit-acc.DepositedToday {
			return domain.OutcomeMaxDepositPerDayExceeded
		}
		if amount > l.limits.MaxDepositedBalance-acc.DepositedBalance {
			return domain.OutcomeMaxDepositedAmountExceeded
		}
		acc.DepositedBalance += amount
		acc.DepositedToday += amount
		return domain.OutcomeSuccess
	})
}

// Withdraw списывает amount с депозитного баланса. Сама выплата денег
// выполняется внешним коллаборатором уже после успеха операции.
func (l *Ledger) Withdraw(amount int64) domain.Result {
	return l.update(func(acc *domain.Account) domain.Outcome {
		if amount <= 0 {
			return domain.OutcomeAmountNotInteger
		}
		if amount > acc.DepositedBalance {
			return domain.OutcomeNotEnoughMoney
		}
		acc.DepositedBalance -= amount
		return domain.OutcomeSuccess
	})
}

// CreditPromotion зачисляет amount на промо-баланс. Лимиты депозита
// на промо-деньги не распространяются, но зачисление не должно
// переполнить баланс.
func (l *Ledger) CreditPromotion(amount int64) domain.Result {
	return l.update(func(acc *domain.Account) domain.Outcome {
		if amount <= 0 || amount > math.MaxInt64-acc.PromotionalBalance {
			return domain.OutcomeAmountNotInteger
		}
		acc.PromotionalBalance += amount
		return domain.OutcomeSuccess
	})
}

// update выполняет fn под мьютексом и собирает Result по состоянию после fn.
func (l *Ledger) update(fn func(acc *domain.Account) domain.Outcome) domain.Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	code := fn(l.acc)
	return domain.Result{
		Code:               code,
		DepositedBalance:   l.acc.DepositedBalance,
		PromotionalBalance: l.acc.PromotionalBalance,
		DepositedToday:     l.acc.DepositedToday,
	}
}

// rollDepositDay сбрасывает дневной счетчик, если календарный день сменился.
// Даты сравниваются по компонентам, а не как моменты времени: колонка DATE
// приходит из БД полуночью UTC, а now() живет в зоне сервера. Вызывающий
// держит мьютекс.
func (l *Ledger) rollDepositDay(acc *domain.Account) {
	now := l.now()
	if !sameDate(acc.DepositDay, now) {
		acc.DepositedToday = 0
		acc.DepositDay = dateOnly(now)
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dateOnly полночь UTC календарного дня t - в таком виде дата ездит в колонку
// DATE и обратно без сдвига.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// debitDeposit и debitPromotion - примитивы движка авторизации оплат.
// Возвращают false если списание увело бы баланс в минус. Вызывающий держит мьютекс.
func debitDeposit(acc *domain.Account, amount int64) bool {
	if amount > acc.DepositedBalance {
		return false
	}
	acc.DepositedBalance -= amount
	return true
}

func debitPromotion(acc *domain.Account, amount int64) bool {
	if amount > acc.PromotionalBalance {
		return false
	}
	acc.PromotionalBalance -= amount
	return true
}
