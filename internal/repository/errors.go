package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые репозитории переводят в доменные ошибки.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
)

// ChannelNameIndex уникальный индекс имени канала без учета регистра.
const ChannelNameIndex = "canais_nome_canal_lower_uidx"

// IsUniqueViolation срабатывает на нарушение конкретного уникального индекса.
// Пустой constraint принимает любой индекс.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsSerializationFailure конфликт конкурентных serializable транзакций.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrSerializationFailure
}
