package services

import (
	"context"

	"github.com/bmefuto/portal/internal/app/gpa"
	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// GradebookService manages a student's semesters, courses and CGPA history.
// Every operation is scoped to the authenticated student's registration
// number.
type GradebookService struct {
	gradebookRepo *repositories.GradebookRepository
	cgpaRepo      *repositories.CGPARepository
}

// NewGradebookService creates a new GradebookService
func NewGradebookService(gradebookRepo *repositories.GradebookRepository, cgpaRepo *repositories.CGPARepository) *GradebookService {
	return &GradebookService{gradebookRepo: gradebookRepo, cgpaRepo: cgpaRepo}
}

// ListSemesters returns the student's semesters with their courses
func (s *GradebookService) ListSemesters(ctx context.Context, regNumber string) ([]models.Semester, error) {
	return s.gradebookRepo.ListSemestersWithCourses(ctx, regNumber)
}

// GetSemester returns one of the student's semesters with its courses
func (s *GradebookService) GetSemester(ctx context.Context, regNumber string, id int64) (*models.Semester, error) {
	sem, err := s.gradebookRepo.GetSemester(ctx, regNumber, id)
	if err != nil {
		return nil, err
	}
	courses, err := s.gradebookRepo.ListCourses(ctx, sem.ID)
	if err != nil {
		return nil, err
	}
	sem.Courses = courses
	return sem, nil
}

// CreateSemester adds a semester to the student's gradebook
func (s *GradebookService) CreateSemester(ctx context.Context, regNumber string, req *dto.SemesterRequest) (*models.Semester, error) {
	sem := &models.Semester{
		RegNumber: regNumber,
		Name:      req.Name,
		Year:      req.Year,
	}
	id, err := s.gradebookRepo.CreateSemester(ctx, sem)
	if err != nil {
		return nil, err
	}
	return s.gradebookRepo.GetSemester(ctx, regNumber, id)
}

// UpdateSemester renames one of the student's semesters
func (s *GradebookService) UpdateSemester(ctx context.Context, regNumber string, id int64, req *dto.SemesterRequest) (*models.Semester, error) {
	sem, err := s.gradebookRepo.GetSemester(ctx, regNumber, id)
	if err != nil {
		return nil, err
	}
	sem.Name = req.Name
	sem.Year = req.Year
	if err := s.gradebookRepo.UpdateSemester(ctx, sem); err != nil {
		return nil, err
	}
	return sem, nil
}

// DeleteSemester removes one of the student's semesters and its courses
func (s *GradebookService) DeleteSemester(ctx context.Context, regNumber string, id int64) error {
	return s.gradebookRepo.DeleteSemester(ctx, regNumber, id)
}

func validateCourse(req *dto.CourseRequest) error {
	if req.CreditUnit < 1 {
		return apperrors.ErrInvalidCreditUnit
	}
	if !models.IsValidGradePoint(req.GradePoint) {
		return apperrors.ErrInvalidGradePoint
	}
	return nil
}

// AddCourse adds a result line to one of the student's semesters
func (s *GradebookService) AddCourse(ctx context.Context, regNumber string, semesterID int64, req *dto.CourseRequest) (*models.Course, error) {
	if err := validateCourse(req); err != nil {
		return nil, err
	}

	course := &models.Course{
		SemesterID: semesterID,
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		CreditUnit: req.CreditUnit,
		GradePoint: req.GradePoint,
	}
	id, err := s.gradebookRepo.CreateCourse(ctx, regNumber, course)
	if err != nil {
		return nil, err
	}
	return s.gradebookRepo.GetCourse(ctx, regNumber, id)
}

// UpdateCourse edits one of the student's result lines
func (s *GradebookService) UpdateCourse(ctx context.Context, regNumber string, id int64, req *dto.CourseRequest) (*models.Course, error) {
	if err := validateCourse(req); err != nil {
		return nil, err
	}

	course, err := s.gradebookRepo.GetCourse(ctx, regNumber, id)
	if err != nil {
		return nil, err
	}
	course.CourseCode = req.CourseCode
	course.CourseName = req.CourseName
	course.CreditUnit = req.CreditUnit
	course.GradePoint = req.GradePoint

	if err := s.gradebookRepo.UpdateCourse(ctx, regNumber, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes one of the student's result lines
func (s *GradebookService) DeleteCourse(ctx context.Context, regNumber string, id int64) error {
	return s.gradebookRepo.DeleteCourse(ctx, regNumber, id)
}

// CalculateCGPA computes the student's CGPA over all semesters, stores an
// immutable snapshot and returns the full per-semester breakdown.
func (s *GradebookService) CalculateCGPA(ctx context.Context, regNumber string) (*dto.CGPAResultResponse, error) {
	semesters, err := s.gradebookRepo.ListSemestersWithCourses(ctx, regNumber)
	if err != nil {
		return nil, err
	}

	cgpa, totalCredits, totalPoints := gpa.Cumulative(semesters)

	snapshot := &models.CGPACalculation{
		RegNumber:        regNumber,
		CGPA:             cgpa,
		TotalCreditUnits: totalCredits,
		TotalGradePoints: totalPoints,
	}
	if _, err := s.cgpaRepo.Insert(ctx, snapshot); err != nil {
		return nil, err
	}

	results := make([]dto.SemesterResult, 0, len(semesters))
	for _, sem := range semesters {
		credits, _ := gpa.Totals(sem.Courses)
		courses := make([]dto.CourseResult, 0, len(sem.Courses))
		for _, c := range sem.Courses {
			courses = append(courses, dto.CourseResult{
				ID:         c.ID,
				CourseCode: c.CourseCode,
				CourseName: c.CourseName,
				CreditUnit: c.CreditUnit,
				GradePoint: c.GradePoint,
				Grade:      c.Letter(),
			})
		}
		results = append(results, dto.SemesterResult{
			ID:      sem.ID,
			Name:    sem.Name,
			GPA:     gpa.Compute(sem.Courses),
			Credits: credits,
			Courses: courses,
		})
	}

	return &dto.CGPAResultResponse{
		RegNumber:    regNumber,
		CGPA:         cgpa,
		TotalCredits: totalCredits,
		TotalPoints:  totalPoints,
		Semesters:    results,
	}, nil
}

// CGPAHistory returns the student's most recent CGPA snapshots
func (s *GradebookService) CGPAHistory(ctx context.Context, regNumber string, limit int) ([]models.CGPACalculation, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.cgpaRepo.ListByStudent(ctx, regNumber, limit)
}
