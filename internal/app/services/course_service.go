package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/repositories"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
	"github.com/rakib/uniportal/internal/pkg/validation"
)

// CourseService handles the course catalog
type CourseService struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// ParseCredit parses a free-text credit value, falling back when the input is
// empty, unparsable or not positive.
func ParseCredit(raw string, fallback float64) float64 {
	credit, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || credit <= 0 {
		return fallback
	}
	return credit
}

// GetAll lists courses ordered by code
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetByID retrieves one course
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Create finds or creates a course by its code. Submitting an existing code
// returns the existing row rather than an error.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, bool, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	title := strings.TrimSpace(req.Title)
	if !validation.IsValidCode(code) {
		return nil, false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Course code must be uppercase letters and digits").WithField("code")
	}
	if title == "" {
		return nil, false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Course title is required").WithField("title")
	}

	course := &models.Course{
		Code:         code,
		Title:        title,
		Credit:       ParseCredit(req.Credit, models.DefaultCredit),
		DepartmentID: req.DepartmentID,
		TermLabel:    strings.TrimSpace(req.TermLabel),
	}
	created, err := s.courseRepo.GetOrCreate(ctx, course)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info().Str("code", code).Msg("Course created")
	}
	return course, created, nil
}

// Update replaces a course's mutable fields. An unparsable credit keeps the
// stored value.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	title := strings.TrimSpace(req.Title)
	if !validation.IsValidCode(code) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Course code must be uppercase letters and digits").WithField("code")
	}
	if title == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Course title is required").WithField("title")
	}

	course := &models.Course{
		ID:           id,
		Code:         code,
		Title:        title,
		Credit:       ParseCredit(req.Credit, existing.Credit),
		DepartmentID: req.DepartmentID,
		TermLabel:    strings.TrimSpace(req.TermLabel),
	}
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", id).Msg("Course updated")
	return course, nil
}

// Delete removes a course. Courses with enrollments or graded results are
// kept; the caller gets ErrCourseInUse.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
