// Package pgerr classifies store failures. Failures that are safe to retry are
// wrapped in *errs.TransientError so the transport can answer "try again"
// instead of a generic internal error.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// transientCodes lists SQLSTATE codes outside class 08 that are worth a retry.
var transientCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"55P03": {}, // lock_not_available
	"57014": {}, // query_canceled, raised by statement_timeout
	"57P01": {}, // admin_shutdown
	"57P02": {}, // crash_shutdown
	"57P03": {}, // cannot_connect_now
	"53300": {}, // too_many_connections
}

// Wrap returns err wrapped as *errs.TransientError when it is retryable, and
// err unchanged otherwise.
//
// Example:
//
//	if err := tx.Create(&dto).Error; err != nil {
//	    return pgerr.Wrap("insert order", err)
//	}
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrTransient) {
		return err
	}
	if IsTransient(err) {
		return errs.NewTransientError(operation, err)
	}
	return err
}

// IsTransient reports whether err is a timeout, a dropped connection or a
// retryable SQLSTATE from either postgres driver.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return isTransientCode(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isTransientCode(pgErr.Code)
	}

	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isTransientCode(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	_, ok := transientCodes[code]
	return ok
}
