package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier é o subconjunto de operações comum a *pgxpool.Pool e pgx.Tx.
// Os repositórios operam sobre um Querier, podendo assim ser vinculados
// tanto ao pool (leituras avulsas) quanto a uma transação em andamento.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
