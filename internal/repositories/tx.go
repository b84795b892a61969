package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier — общее у пула и транзакции: чтение заказа и его позиций
// работает одинаково внутри и вне inTx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type txStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// inTx выполняет fn в транзакции: заказ и его позиции пишутся атомарно.
// Ошибка или паника в fn откатывают транзакцию.
func inTx(ctx context.Context, db txStarter, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("начало транзакции: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("откат транзакции: %v: %w", rbErr, err)
			}
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("коммит транзакции: %w", err)
		}
	}()

	return fn(tx)
}
