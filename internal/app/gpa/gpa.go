// Package gpa implements the weighted-average grade computations behind the
// student CGPA calculator.
package gpa

import (
	"math"

	"github.com/bmefuto/portal/internal/app/models"
)

// Round2 rounds to two decimal places using round-half-to-even.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// Totals accumulates credit units and weighted grade points over courses.
func Totals(courses []models.Course) (credits int, points float64) {
	for _, c := range courses {
		credits += c.CreditUnit
		points += float64(c.CreditUnit) * c.GradePoint
	}
	return credits, points
}

// Compute returns the GPA for one semester's courses. An empty course set, or
// one whose credit units sum to zero, yields 0.0.
func Compute(courses []models.Course) float64 {
	credits, points := Totals(courses)
	if credits == 0 {
		return 0.0
	}
	return Round2(points / float64(credits))
}

// Cumulative returns the CGPA over all of a student's semesters together with
// the totals it was derived from. Grouping into semesters does not affect the
// result; only the union of courses matters.
func Cumulative(semesters []models.Semester) (cgpa float64, totalCredits int, totalPoints float64) {
	for _, s := range semesters {
		credits, points := Totals(s.Courses)
		totalCredits += credits
		totalPoints += points
	}
	if totalCredits == 0 {
		return 0.0, totalCredits, totalPoints
	}
	return Round2(totalPoints / float64(totalCredits)), totalCredits, totalPoints
}
