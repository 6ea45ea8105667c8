package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/repository/repoargs"
	"github.com/fsdevblog/venuepay/pkg/uow"
)

const accountColumns = `id, created_at, updated_at, username, password_digest,
	deposited_balance, promotional_balance, deposited_today, deposit_day`

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByID ищет аккаунт по id. Возвращает domain.ErrRecordNotFound если записи нет,
// во всех других случаях - domain.ErrUnknown.
func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by id %d", id)
	}
	return acc, nil
}

// FindByIDForUpdate то же что FindByID, но блокирует строку до конца транзакции.
// Сериализует операции над одним аккаунтом между инстансами сервиса.
func (r *AccountRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking account by id %d", id)
	}
	return acc, nil
}

// UpdateBalances сохраняет балансы и дневной счетчик аккаунта.
func (r *AccountRepository) UpdateBalances(ctx context.Context, args repoargs.UpdateBalances) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET deposited_balance = $2,
			promotional_balance = $3,
			deposited_today = $4,
			deposit_day = $5,
			updated_at = now()
		WHERE id = $1`,
		args.ID, args.DepositedBalance, args.PromotionalBalance, args.DepositedToday, args.DepositDay,
	)
	if err != nil {
		return convertErr(err, "updating balances of account %d", args.ID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating balances of account %d", args.ID)
	}
	return nil
}

type accountRow interface {
	Scan(dest ...any) error
}

func scanAccount(row accountRow) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID,
		&acc.CreatedAt,
		&acc.UpdatedAt,
		&acc.Username,
		&acc.Password,
		&acc.DepositedBalance,
		&acc.PromotionalBalance,
		&acc.DepositedToday,
		&acc.DepositDay,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
