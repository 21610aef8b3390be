package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const maxStoreAttempts = 3

// retryBaseDelay doubles per attempt: 50ms, 100ms.
const retryBaseDelay = 50 * time.Millisecond

// WithRetry runs fn up to three times, backing off between attempts, but
// only when the failure is a busy-class store error. Anything else is
// returned immediately.
func WithRetry(ctx context.Context, logger *slog.Logger, op string, fn func(context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	var err error
	delay := retryBaseDelay
	for attempt := 1; attempt <= maxStoreAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !IsBusy(err) {
			return err
		}
		if attempt == maxStoreAttempts {
			break
		}
		logger.Warn("store.busy_retry", "op", op, "attempt", attempt, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	logger.Error("store.busy_exhausted", "op", op, "error", err)
	return err
}

// IsBusy reports whether err belongs to the "database busy" class that
// is worth retrying: sqlite lock contention or Postgres serialization /
// lock-timeout failures.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 serialization_failure, 40P01 deadlock, 55P03 lock_not_available
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "sqlite_busy")
}
