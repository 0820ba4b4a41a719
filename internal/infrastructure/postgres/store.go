package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es la superficie mínima de ejecución que comparten *pgxpool.Pool y
// pgx.Tx. Permite que los repositorios funcionen igual dentro y fuera de una
// transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store es la interfaz uniforme de ejecución parametrizada sobre PostgreSQL:
// Run (mutación), Insert (mutación con id generado), Get (una fila),
// All (varias filas). Todos los argumentos son posicionales ($1, $2, ...);
// ningún llamador interpola valores en el texto SQL: la parametrización es
// la única defensa contra inyección y este adaptador es el único punto que
// conoce el dialecto del motor.
type Store struct {
	q Querier
}

// NewStore construye el ejecutor sobre un pool o una transacción.
func NewStore(q Querier) *Store {
	return &Store{q: q}
}

// Run ejecuta una sentencia mutadora y devuelve las filas afectadas.
func (s *Store) Run(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := s.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Insert ejecuta un INSERT y devuelve el id generado. Si la sentencia no pide
// RETURNING explícitamente se agrega "RETURNING id": aquí se absorbe la
// diferencia de dialecto (last-insert-id vs RETURNING) para que ningún
// repositorio tenga que conocerla.
func (s *Store) Insert(ctx context.Context, sql string, args ...any) (int64, error) {
	var id int64
	if err := s.q.QueryRow(ctx, ensureReturningID(sql), args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	return id, nil
}

// Get ejecuta una lectura que produce a lo sumo una fila.
func (s *Store) Get(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.q.QueryRow(ctx, sql, args...)
}

// All ejecuta una lectura de cero o más filas, en el orden que entregue el
// motor (sin garantía salvo ORDER BY en la sentencia).
func (s *Store) All(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.q.Query(ctx, sql, args...)
}

// ensureReturningID agrega la cláusula RETURNING id si la sentencia no trae
// ya un RETURNING propio.
func ensureReturningID(sql string) string {
	if strings.Contains(strings.ToUpper(sql), "RETURNING") {
		return sql
	}
	return strings.TrimRight(sql, " \t\n;") + " RETURNING id"
}
