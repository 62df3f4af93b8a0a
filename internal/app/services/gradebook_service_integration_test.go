//go:build integration

package services

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmefuto/portal/internal/app/migrations"
	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/repositories"
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

func TestCalculateCGPAAppendsOneSnapshotPerCall(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	_, err := pool.Exec(ctx, `TRUNCATE students CASCADE`)
	require.NoError(t, err)

	studentRepo := repositories.NewStudentRepository(pool)
	gradebookRepo := repositories.NewGradebookRepository(pool)
	cgpaRepo := repositories.NewCGPARepository(pool)
	svc := NewGradebookService(gradebookRepo, cgpaRepo)

	const regNumber = "20219990001"
	require.NoError(t, studentRepo.Create(ctx, &models.Student{
		RegNumber: regNumber,
		FullName:  "Ada Obi",
		Level:     models.Level200,
	}))

	semesterID, err := gradebookRepo.CreateSemester(ctx, &models.Semester{
		RegNumber: regNumber,
		Name:      "200 Level First Semester",
	})
	require.NoError(t, err)

	_, err = gradebookRepo.CreateCourse(ctx, regNumber, &models.Course{
		SemesterID: semesterID,
		CourseCode: "BME201",
		CourseName: "Biomechanics I",
		CreditUnit: 3,
		GradePoint: 5.0,
	})
	require.NoError(t, err)
	_, err = gradebookRepo.CreateCourse(ctx, regNumber, &models.Course{
		SemesterID: semesterID,
		CourseCode: "BME203",
		CourseName: "Biomaterials",
		CreditUnit: 2,
		GradePoint: 4.0,
	})
	require.NoError(t, err)

	first, err := svc.CalculateCGPA(ctx, regNumber)
	require.NoError(t, err)
	assert.Equal(t, 4.6, first.CGPA)

	// unchanged inputs still append a second, identical-valued snapshot
	second, err := svc.CalculateCGPA(ctx, regNumber)
	require.NoError(t, err)
	assert.Equal(t, first.CGPA, second.CGPA)

	history, err := cgpaRepo.ListByStudent(ctx, regNumber, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.NotEqual(t, history[0].ID, history[1].ID)
	assert.Equal(t, history[0].CGPA, history[1].CGPA)
	assert.Equal(t, history[0].TotalCreditUnits, history[1].TotalCreditUnits)
}
