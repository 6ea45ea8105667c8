package repoargs

import "time"

// UpdateBalances полный срез изменяемых полей аккаунта. Сохраняется строго
// после успешной операции ядра, внутри той же транзакции что и проводки.
type UpdateBalances struct {
	ID                 int64
	DepositedBalance   int64
	PromotionalBalance int64
	DepositedToday     int64
	DepositDay         time.Time
}
