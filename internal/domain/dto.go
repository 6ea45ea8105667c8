package domain

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "deposit"
	TransactionWithdrawal TransactionKind = "withdrawal"
	TransactionPayment    TransactionKind = "payment"
	TransactionPromotion  TransactionKind = "promotion"
)

type FundsSource string

const (
	SourceDeposited   FundsSource = "deposited"
	SourcePromotional FundsSource = "promotional"
)

type PayoutStatus string

const (
	// PayoutNone проводка не требует выплаты (все кроме withdrawal).
	PayoutNone    PayoutStatus = "none"
	PayoutPending PayoutStatus = "pending"
	PayoutSettled PayoutStatus = "settled"
	PayoutFailed  PayoutStatus = "failed"
)
