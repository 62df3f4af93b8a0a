package models

// Level is an academic year-level
type Level string

// Level constants
const (
	Level100 Level = "100"
	Level200 Level = "200"
	Level300 Level = "300"
	Level400 Level = "400"
	Level500 Level = "500"
	// LevelAll is accepted only where a record targets every level (timetables)
	LevelAll Level = "All"
)

// IsValidLevel reports whether l is one of the fixed year-levels.
func IsValidLevel(l Level) bool {
	switch l {
	case Level100, Level200, Level300, Level400, Level500:
		return true
	}
	return false
}

// Term is an academic semester within a session
type Term string

// Term constants
const (
	TermFirst  Term = "First"
	TermSecond Term = "Second"
)

// IsValidTerm reports whether t is a known semester term.
func IsValidTerm(t Term) bool {
	return t == TermFirst || t == TermSecond
}

// TimetableType distinguishes exam and class timetables
type TimetableType string

// Timetable type constants
const (
	TimetableExam  TimetableType = "Exam"
	TimetableClass TimetableType = "Class"
)

// IsValidTimetableType reports whether t is a known timetable type.
func IsValidTimetableType(t TimetableType) bool {
	return t == TimetableExam || t == TimetableClass
}

// CourseType classifies handbook entries
type CourseType string

// Course type constants
const (
	CourseTypeCore     CourseType = "Core"
	CourseTypeRequired CourseType = "Required"
	CourseTypeElective CourseType = "Elective"
)

// IsValidCourseType reports whether t is a known handbook course type.
func IsValidCourseType(t CourseType) bool {
	switch t {
	case CourseTypeCore, CourseTypeRequired, CourseTypeElective:
		return true
	}
	return false
}

// ResourceCategory classifies library resources
type ResourceCategory string

// Library resource categories
const (
	CategoryTextbook ResourceCategory = "Textbook"
	CategoryJournal  ResourceCategory = "Journal"
	CategoryLecture  ResourceCategory = "Lecture"
	CategoryProject  ResourceCategory = "Project"
	CategoryThesis   ResourceCategory = "Thesis"
	CategoryOther    ResourceCategory = "Other"
)

// IsValidResourceCategory reports whether c is a known library category.
func IsValidResourceCategory(c ResourceCategory) bool {
	switch c {
	case CategoryTextbook, CategoryJournal, CategoryLecture, CategoryProject, CategoryThesis, CategoryOther:
		return true
	}
	return false
}
