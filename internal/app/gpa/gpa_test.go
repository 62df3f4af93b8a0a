package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bmefuto/portal/internal/app/models"
)

func course(credit int, point float64) models.Course {
	return models.Course{CreditUnit: credit, GradePoint: point}
}

func TestComputeEmptySet(t *testing.T) {
	assert.Equal(t, 0.0, Compute(nil))
	assert.Equal(t, 0.0, Compute([]models.Course{}))
}

func TestComputeZeroCredits(t *testing.T) {
	courses := []models.Course{course(0, 5.0), course(0, 4.0)}
	assert.Equal(t, 0.0, Compute(courses))
}

func TestComputeWeightedAverage(t *testing.T) {
	// (3*5.0 + 2*4.0) / 5 = 23/5 = 4.60
	courses := []models.Course{course(3, 5.0), course(2, 4.0)}
	assert.Equal(t, 4.6, Compute(courses))
}

func TestComputeSingleCourse(t *testing.T) {
	assert.Equal(t, 3.0, Compute([]models.Course{course(4, 3.0)}))
}

func TestComputeRepeatingDecimal(t *testing.T) {
	// (2*5.0 + 1*4.0) / 3 = 14/3 = 4.666... -> 4.67
	courses := []models.Course{course(2, 5.0), course(1, 4.0)}
	assert.Equal(t, 4.67, Compute(courses))
}

func TestRound2HalfToEven(t *testing.T) {
	assert.Equal(t, 4.12, Round2(4.125))
	assert.Equal(t, 4.14, Round2(4.135))
	assert.Equal(t, 4.13, Round2(4.1349))
}

func TestTotals(t *testing.T) {
	credits, points := Totals([]models.Course{course(3, 5.0), course(2, 3.0)})
	assert.Equal(t, 5, credits)
	assert.Equal(t, 21.0, points)
}

func TestCumulativeMatchesUngroupedComputation(t *testing.T) {
	// Semester A: 3 units at 5.0; Semester B: 2 units at 3.0
	// CGPA = (15+6)/5 = 4.20, same as a single ungrouped semester.
	grouped := []models.Semester{
		{Name: "100 Level First Semester", Courses: []models.Course{course(3, 5.0)}},
		{Name: "100 Level Second Semester", Courses: []models.Course{course(2, 3.0)}},
	}
	ungrouped := []models.Semester{
		{Name: "All", Courses: []models.Course{course(3, 5.0), course(2, 3.0)}},
	}

	cgpaGrouped, credits, points := Cumulative(grouped)
	cgpaUngrouped, _, _ := Cumulative(ungrouped)

	assert.Equal(t, 4.2, cgpaGrouped)
	assert.Equal(t, cgpaUngrouped, cgpaGrouped)
	assert.Equal(t, 5, credits)
	assert.Equal(t, 21.0, points)
}

func TestCumulativeNoSemesters(t *testing.T) {
	cgpa, credits, points := Cumulative(nil)
	assert.Equal(t, 0.0, cgpa)
	assert.Equal(t, 0, credits)
	assert.Equal(t, 0.0, points)
}

func TestCumulativeSkipsEmptySemesters(t *testing.T) {
	semesters := []models.Semester{
		{Name: "Empty"},
		{Name: "Real", Courses: []models.Course{course(3, 4.0)}},
	}
	cgpa, credits, _ := Cumulative(semesters)
	assert.Equal(t, 4.0, cgpa)
	assert.Equal(t, 3, credits)
}

func TestGradeLetters(t *testing.T) {
	assert.Equal(t, "A", models.GradeLetter(5.0))
	assert.Equal(t, "B", models.GradeLetter(4.0))
	assert.Equal(t, "C", models.GradeLetter(3.0))
	assert.Equal(t, "D", models.GradeLetter(2.0))
	assert.Equal(t, "E", models.GradeLetter(1.0))
	assert.Equal(t, "F", models.GradeLetter(0.0))
	assert.Equal(t, "N/A", models.GradeLetter(4.5))
}
