package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	apperr "vidchat/internal/errors"
)

const mysqlDuplicateEntry = 1062

// DefaultTimeout bounds a single query when the caller did not configure one.
const DefaultTimeout = 5 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(ctx, d)
}

// classify turns driver and GORM errors into the application taxonomy.
// Drivers report cancellation differently, so the query context decides timeouts.
func classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", apperr.ErrTimeout, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case isDuplicate(err):
		return fmt.Errorf("%w: %w", apperr.ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%w: %w", apperr.ErrStorage, err)
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
