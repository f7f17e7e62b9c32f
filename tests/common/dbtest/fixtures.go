//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-core/internal/infra/seed"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, full_name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, "Test "+role, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CreateTestGuest(t *testing.T, db DBLike, firstName, lastName string, loyaltyTier int) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO guests (id, first_name, last_name, loyalty_tier) VALUES ($1, $2, $3, $4)",
		guestID, firstName, lastName, loyaltyTier)
	require.NoError(t, err)
	return guestID
}

func RoomIDByNumber(t *testing.T, db DBLike, number string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM rooms WHERE number = $1", number).Scan(&id)
	require.NoError(t, err, "room %s not seeded", number)
	return id
}

func SetRoomStatus(t *testing.T, db DBLike, roomID uuid.UUID, status string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE rooms SET maintenance_status = $2 WHERE id = $1", roomID, status)
	require.NoError(t, err)
}

// InsertPaidPayment records a settled payment directly, bypassing the
// checked-out requirement of the payment API.
func InsertPaidPayment(t *testing.T, db DBLike, bookingID uuid.UUID, amount, reference string) uuid.UUID {
	t.Helper()

	paymentID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO payments (id, booking_id, amount, currency, method, status, reference, processed_at)
		VALUES ($1, $2, $3::numeric, 'USD', 'card', 'paid', $4, now())`,
		paymentID, bookingID, amount, reference)
	require.NoError(t, err)
	return paymentID
}

// inserts the room inventory and guests from the embedded seed file.
// Pricing rules are left out so quotes stay at the room's base rate.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data, err := seed.Default()
	if err != nil {
		return err
	}
	return seed.NewSeeder(pool, sqlc.New(), config.SeedConfig{PricingRules: false}, data).Run(ctx)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
