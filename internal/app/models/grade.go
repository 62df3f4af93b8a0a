package models

// gradeScale maps the fixed grade points to their letter grades.
var gradeScale = map[float64]string{
	5.0: "A",
	4.0: "B",
	3.0: "C",
	2.0: "D",
	1.0: "E",
	0.0: "F",
}

// IsValidGradePoint reports whether p is one of the fixed grade point values.
func IsValidGradePoint(p float64) bool {
	_, ok := gradeScale[p]
	return ok
}

// GradeLetter returns the letter grade for a grade point, or "N/A" for a
// value outside the scale.
func GradeLetter(p float64) string {
	if letter, ok := gradeScale[p]; ok {
		return letter
	}
	return "N/A"
}

// GradePoints returns the grade scale as point/letter pairs, highest first.
func GradePoints() []struct {
	Point  float64
	Letter string
} {
	return []struct {
		Point  float64
		Letter string
	}{
		{5.0, "A"},
		{4.0, "B"},
		{3.0, "C"},
		{2.0, "D"},
		{1.0, "E"},
		{0.0, "F"},
	}
}
