//go:build integration

package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmefuto/portal/internal/app/migrations"
	"github.com/bmefuto/portal/internal/app/models"
)

// Integration tests run against a live database:
//
//	TEST_DATABASE_URL=postgres://... go test -tags integration ./...

func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool, "../../../migrations").Run(context.Background()))
	return pool
}

func countActiveCalendars(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM academic_calendars WHERE is_active`).Scan(&n)
	require.NoError(t, err)
	return n
}

// insertRawCalendar bypasses the repository so tests can build a starting
// state the repository itself would never produce.
func insertRawCalendar(t *testing.T, pool *pgxpool.Pool, title string, active bool) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO academic_calendars (title, academic_session, image_url, is_active)
		VALUES ($1, '2025/2026', '/uploads/calendars/test.png', $2)
		RETURNING id`, title, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func resetCalendars(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE academic_calendars RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestCreateActiveCalendarFromMultiActiveState(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	resetCalendars(t, pool)

	// several rows already flagged active, a pre-invariant-violation state
	for i := 1; i <= 3; i++ {
		insertRawCalendar(t, pool, fmt.Sprintf("Session %d", i), true)
	}
	require.Equal(t, 3, countActiveCalendars(t, pool))

	repo := NewCalendarRepository(pool)
	cal := &models.AcademicCalendar{
		Title:           "Session 4",
		AcademicSession: "2026/2027",
		ImageURL:        "/uploads/calendars/s4.png",
		IsActive:        true,
	}
	require.NoError(t, repo.Create(ctx, cal))

	assert.Equal(t, 1, countActiveCalendars(t, pool))
	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, cal.ID, active.ID)
}

func TestUpdateActivatingCalendarDeactivatesOthers(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	resetCalendars(t, pool)

	activeID := insertRawCalendar(t, pool, "Current", true)
	dormantID := insertRawCalendar(t, pool, "Next", false)

	repo := NewCalendarRepository(pool)
	cal, err := repo.GetByID(ctx, dormantID)
	require.NoError(t, err)
	cal.IsActive = true
	require.NoError(t, repo.Update(ctx, cal))

	assert.Equal(t, 1, countActiveCalendars(t, pool))
	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, dormantID, active.ID)

	previous, err := repo.GetByID(ctx, activeID)
	require.NoError(t, err)
	assert.False(t, previous.IsActive)
}

func TestInactiveCalendarWriteLeavesActiveUntouched(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	resetCalendars(t, pool)

	activeID := insertRawCalendar(t, pool, "Current", true)

	repo := NewCalendarRepository(pool)
	require.NoError(t, repo.Create(ctx, &models.AcademicCalendar{
		Title:           "Archive",
		AcademicSession: "2024/2025",
		ImageURL:        "/uploads/calendars/archive.png",
		IsActive:        false,
	}))

	assert.Equal(t, 1, countActiveCalendars(t, pool))
	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, activeID, active.ID)
}
