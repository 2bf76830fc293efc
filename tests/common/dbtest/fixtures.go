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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func SetBalance(t *testing.T, db DBLike, userID uuid.UUID, cents int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET balance_cents = $2 WHERE id = $1", userID, cents)
	require.NoError(t, err)
}

func GetBalance(t *testing.T, db DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var cents int64
	require.NoError(t, db.QueryRow(context.Background(), "SELECT balance_cents FROM users WHERE id = $1", userID).Scan(&cents))
	return cents
}

// MovementKinds lists the user's balance movements oldest first.
func MovementKinds(t *testing.T, db DBLike, userID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT kind FROM balance_movements WHERE user_id = $1 ORDER BY created_at, id", userID)
	require.NoError(t, err)
	kinds, err := pgx.CollectRows(rows, pgx.RowTo[string])
	require.NoError(t, err)
	return kinds
}

func CreateProService(t *testing.T, db DBLike, professionalID uuid.UUID, category string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO pro_services (id, professional_id, title, category, price_cents) VALUES ($1, $2, $3, $4, $5)",
		id, professionalID, "Service "+category, category, priceCents)
	require.NoError(t, err)
	return id
}

func CreatePromoCode(t *testing.T, db DBLike, code, discountType, value string, category *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO promo_codes (id, code, discount_type, discount_value, valid_from, target_category, is_active, created_at)
		VALUES ($1, $2, $3, $4::numeric, now() - interval '1 day', $5, true, now())`,
		id, code, discountType, value, category)
	require.NoError(t, err)
	return id
}

func PromoUsesCount(t *testing.T, db DBLike, codeID uuid.UUID) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT uses_count FROM promo_codes WHERE id = $1", codeID).Scan(&n))
	return n
}

// SeedReferenceData creates the accounts every scenario starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (email, role) VALUES ('admin@example.com', 'admin')
		ON CONFLICT (email) DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('schema_migrations')`)
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

func CountOffers(t *testing.T, db DBLike, postingID uuid.UUID, status string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT count(*) FROM offers WHERE posting_id = $1 AND status = $2", postingID, status).Scan(&n))
	return n
}
