package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/repository/repoargs"
	"github.com/fsdevblog/venuepay/pkg/uow"
)

const transactionColumns = `id, created_at, updated_at, account_id, reference,
	kind, source, amount, message, payout_status, payout_attempts`

const insertTransactionSQL = `
	INSERT INTO account_transactions (account_id, reference, kind, source, amount, message, payout_status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + transactionColumns

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.AccountTransaction, error) {
	row := r.db.QueryRow(ctx, insertTransactionSQL,
		args.AccountID, args.Reference, args.Kind, args.Source, args.Amount, args.Message, args.PayoutStatus,
	)
	trans, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating account transaction")
	}
	return trans, nil
}

// BatchCreate вставляет проводки одним батчем. Результат каждой вставки
// передается в fn с её порядковым номером.
func (r *TransactionRepository) BatchCreate(
	ctx context.Context,
	transactions []repoargs.TransactionCreate,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, t := range transactions {
		batch.Queue(insertTransactionSQL,
			t.AccountID, t.Reference, t.Kind, t.Source, t.Amount, t.Message, t.PayoutStatus,
		)
	}
	results := r.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for i := range transactions {
		_, err := results.Exec()
		fn(i, convertErr(err, "creating account transaction"))
	}
}

// GetByAccountID возвращает проводки аккаунта, отсортированные по дате создания по убыванию.
func (r *TransactionRepository) GetByAccountID(
	ctx context.Context,
	accountID int64,
) ([]domain.AccountTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM account_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC`, accountID)
	if err != nil {
		return nil, convertErr(err, "getting transactions of account %d", accountID)
	}
	return collectTransactions(rows, "getting transactions of account %d", accountID)
}

// PendingPayouts возвращает проводки вывода средств, ожидающие выплаты.
// Строки не блокируются: запросы к провайдеру идемпотентны по reference,
// повторная отправка той же выплаты безопасна.
func (r *TransactionRepository) PendingPayouts(ctx context.Context, limit uint) ([]domain.AccountTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM account_transactions
		WHERE kind = $1 AND payout_status = $2
		ORDER BY created_at
		LIMIT $3`,
		domain.TransactionWithdrawal, domain.PayoutPending, limit)
	if err != nil {
		return nil, convertErr(err, "getting pending payouts")
	}
	return collectTransactions(rows, "getting pending payouts")
}

// UpdatePayoutStatuses пишет результаты попыток выплат одним батчем,
// инкрементируя счетчик попыток.
func (r *TransactionRepository) UpdatePayoutStatuses(
	ctx context.Context,
	updates []repoargs.PayoutUpdate,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, u := range updates {
		batch.Queue(`
			UPDATE account_transactions
			SET payout_status = $2, payout_attempts = payout_attempts + 1, updated_at = now()
			WHERE id = $1`, u.ID, u.Status)
	}
	results := r.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for i := range updates {
		_, err := results.Exec()
		fn(i, convertErr(err, "updating payout status of transaction %d", updates[i].ID))
	}
}

func scanTransaction(row accountRow) (*domain.AccountTransaction, error) {
	var t domain.AccountTransaction
	err := row.Scan(
		&t.ID,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.AccountID,
		&t.Reference,
		&t.Kind,
		&t.Source,
		&t.Amount,
		&t.Message,
		&t.PayoutStatus,
		&t.PayoutAttempts,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTransactions(rows pgx.Rows, errFormat string, errArgs ...any) ([]domain.AccountTransaction, error) {
	defer rows.Close()

	var transactions []domain.AccountTransaction
	for rows.Next() {
		t, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, errFormat, errArgs...)
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, errFormat, errArgs...)
	}
	return transactions, nil
}
