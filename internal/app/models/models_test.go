package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLevel(t *testing.T) {
	for _, l := range []Level{Level100, Level200, Level300, Level400, Level500} {
		assert.True(t, IsValidLevel(l), string(l))
	}
	// "All" is only accepted where a record targets every level
	assert.False(t, IsValidLevel(LevelAll))
	assert.False(t, IsValidLevel("600"))
	assert.False(t, IsValidLevel(""))
}

func TestIsValidGradePoint(t *testing.T) {
	for _, p := range []float64{5.0, 4.0, 3.0, 2.0, 1.0, 0.0} {
		assert.True(t, IsValidGradePoint(p))
	}
	assert.False(t, IsValidGradePoint(4.5))
	assert.False(t, IsValidGradePoint(-1.0))
	assert.False(t, IsValidGradePoint(6.0))
}

func TestIsValidTerm(t *testing.T) {
	assert.True(t, IsValidTerm(TermFirst))
	assert.True(t, IsValidTerm(TermSecond))
	assert.False(t, IsValidTerm("Third"))
	assert.False(t, IsValidTerm("first"))
}

func TestIsValidTimetableType(t *testing.T) {
	assert.True(t, IsValidTimetableType(TimetableExam))
	assert.True(t, IsValidTimetableType(TimetableClass))
	assert.False(t, IsValidTimetableType("Lab"))
}

func TestIsValidCourseType(t *testing.T) {
	assert.True(t, IsValidCourseType(CourseTypeCore))
	assert.True(t, IsValidCourseType(CourseTypeRequired))
	assert.True(t, IsValidCourseType(CourseTypeElective))
	assert.False(t, IsValidCourseType("Optional"))
}

func TestIsValidResourceCategory(t *testing.T) {
	for _, c := range []ResourceCategory{
		CategoryTextbook, CategoryJournal, CategoryLecture,
		CategoryProject, CategoryThesis, CategoryOther,
	} {
		assert.True(t, IsValidResourceCategory(c), string(c))
	}
	assert.False(t, IsValidResourceCategory("Magazine"))
}
