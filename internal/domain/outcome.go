package domain

// Outcome явный код результата операции ядра. Клиенты ветвятся по коду,
// а не по тексту ошибки.
type Outcome uint8

const (
	OutcomeUnknown Outcome = iota
	OutcomeSuccess
	OutcomeAmountNotInteger
	OutcomeNotEnoughMoney
	OutcomeMaxDepositPerDayExceeded
	OutcomeMaxDepositedAmountExceeded
	OutcomeAuthorizationFailure
	OutcomeInvalidAccount
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAmountNotInteger:
		return "amount_not_integer"
	case OutcomeNotEnoughMoney:
		return "not_enough_money"
	case OutcomeMaxDepositPerDayExceeded:
		return "max_deposit_per_day_exceeded"
	case OutcomeMaxDepositedAmountExceeded:
		return "max_deposited_amount_exceeded"
	case OutcomeAuthorizationFailure:
		return "authorization_failure"
	case OutcomeInvalidAccount:
		return "invalid_account"
	default:
		return "unknown"
	}
}

// Result итог операции ядра: код плюс балансы после применения.
// При любом коде кроме OutcomeSuccess балансы не изменены.
type Result struct {
	Code               Outcome
	DepositedBalance   int64
	PromotionalBalance int64
	DepositedToday     int64
}

func (r Result) OK() bool {
	return r.Code == OutcomeSuccess
}
