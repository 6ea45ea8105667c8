package domain

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID                 int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Username           string
	Password           string
	DepositedBalance   int64
	PromotionalBalance int64
	DepositedToday     int64
	// DepositDay календарная дата, за которую накоплен DepositedToday.
	// Значима только тройка год/месяц/день, зона значения роли не играет.
	DepositDay time.Time
}

// PaymentRequest запрос на оплату от заведения. MultiplierAllowed решает само заведение
// (до полуночи или по усмотрению менеджера), ядро это значение не вычисляет.
type PaymentRequest struct {
	Amount            int64
	MultiplierAllowed bool
	Message           string
}

type AccountTransaction struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	AccountID int64
	// Reference группирует проводки одной операции (оплата может породить две).
	Reference      uuid.UUID
	Kind           TransactionKind
	Source         FundsSource
	Amount         int64
	Message        string
	PayoutStatus   PayoutStatus
	PayoutAttempts int32
}

// BalanceSnapshot срез балансов аккаунта. Multiplied - покупательная способность
// депозита с учетом множителя, для отображения; сами балансы множитель не меняет.
type BalanceSnapshot struct {
	Deposited   int64
	Multiplied  int64
	Promotional int64
}
