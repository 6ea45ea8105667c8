package repoargs

import (
	"github.com/google/uuid"

	"github.com/fsdevblog/venuepay/internal/domain"
)

type TransactionCreate struct {
	AccountID    int64
	Reference    uuid.UUID
	Kind         domain.TransactionKind
	Source       domain.FundsSource
	Amount       int64
	Message      string
	PayoutStatus domain.PayoutStatus
}

// PayoutUpdate результат попытки выплаты по проводке вывода средств.
type PayoutUpdate struct {
	ID     int64
	Status domain.PayoutStatus
}
