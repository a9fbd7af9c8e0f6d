package implementation

import (
	"errors"

	"dental-assistant-be/internal/repository/contract"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError maps driver-level constraint failures onto the contract
// sentinels so services don't have to know about pgconn.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return contract.ErrForeignKeyViolation
		case pgUniqueViolation:
			return contract.ErrUniqueViolation
		}
	}
	return err
}
