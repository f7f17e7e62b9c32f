package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"hotel-core/internal/infra/repository"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

var writeTx = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

// backoff doubles per attempt and adds up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func (p retryPolicy) shouldRetry(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryableError(err)
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: retryPolicy{maxRetries: cfg.DB.TxMaxRetries, base: cfg.DB.TxRetryBase},
	}
}

// Within runs fn at READ COMMITTED and replays it on serialization failures
// and deadlocks. fn must therefore be safe to run more than once.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, writeTx, fn)
		if err == nil {
			return nil
		}
		if !u.retry.shouldRetry(err, attempt) {
			if attempt > 0 && isRetryableError(err) {
				slog.ErrorContext(ctx, "transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// runOnce owns exactly one pgx transaction so retries never stack defers.
func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err = fn(ctx, newTx(u.q, pgxTx)); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// pgTx binds every repository to one transaction.
type pgTx struct {
	rooms        shared.RoomRepository
	guests       shared.GuestRepository
	bookings     shared.BookingRepository
	payments     shared.PaymentRepository
	invoices     shared.InvoiceRepository
	policies     shared.PolicyRepository
	pricingRules shared.PricingRuleRepository
	housekeeping shared.HousekeepingRepository
	users        shared.UserRepository
}

func newTx(q *sqlc.Queries, db sqlc.DBTX) *pgTx {
	return &pgTx{
		rooms:        repository.NewRoomRepository(q, db),
		guests:       repository.NewGuestRepository(q, db),
		bookings:     repository.NewBookingRepository(q, db),
		payments:     repository.NewPaymentRepository(q, db),
		invoices:     repository.NewInvoiceRepository(q, db),
		policies:     repository.NewPolicyRepository(q, db),
		pricingRules: repository.NewPricingRuleRepository(q, db),
		housekeeping: repository.NewHousekeepingRepository(q, db),
		users:        repository.NewUserRepository(q, db),
	}
}

func (t *pgTx) Rooms() shared.RoomRepository                { return t.rooms }
func (t *pgTx) Guests() shared.GuestRepository              { return t.guests }
func (t *pgTx) Bookings() shared.BookingRepository          { return t.bookings }
func (t *pgTx) Payments() shared.PaymentRepository          { return t.payments }
func (t *pgTx) Invoices() shared.InvoiceRepository          { return t.invoices }
func (t *pgTx) Policies() shared.PolicyRepository           { return t.policies }
func (t *pgTx) PricingRules() shared.PricingRuleRepository  { return t.pricingRules }
func (t *pgTx) Housekeeping() shared.HousekeepingRepository { return t.housekeeping }
func (t *pgTx) Users() shared.UserRepository                { return t.users }
