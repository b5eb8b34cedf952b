package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/repositories"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
	"github.com/rakib/uniportal/internal/pkg/validation"
)

// FacultyService handles the faculty member catalog
type FacultyService struct {
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(facultyRepo *repositories.FacultyRepository, logger zerolog.Logger) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// GetAll lists faculty members ordered by name
func (s *FacultyService) GetAll(ctx context.Context) ([]*models.FacultyMember, error) {
	return s.facultyRepo.GetAll(ctx)
}

// GetByID retrieves one faculty member
func (s *FacultyService) GetByID(ctx context.Context, id int64) (*models.FacultyMember, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// Create finds or creates a faculty record by institutional faculty ID.
// Submitting an existing faculty ID returns the existing row rather than an
// error.
func (s *FacultyService) Create(ctx context.Context, req *dto.CreateFacultyMemberRequest) (*models.FacultyMember, bool, error) {
	facultyID := strings.TrimSpace(req.FacultyID)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if facultyID == "" {
		return nil, false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Faculty ID is required").WithField("facultyId")
	}
	if name == "" {
		return nil, false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Name is required").WithField("name")
	}
	if !validation.IsFacultyEmail(email) {
		return nil, false, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Please enter a valid university email").WithField("email")
	}

	member := &models.FacultyMember{
		FacultyID:    facultyID,
		Name:         name,
		Email:        email,
		DepartmentID: req.DepartmentID,
	}
	created, err := s.facultyRepo.GetOrCreate(ctx, member)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info().Str("facultyID", facultyID).Msg("Faculty member created")
	}
	return member, created, nil
}

// Update replaces a faculty member's mutable fields
func (s *FacultyService) Update(ctx context.Context, id int64, req *dto.UpdateFacultyMemberRequest) (*models.FacultyMember, error) {
	existing, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	facultyID := strings.TrimSpace(req.FacultyID)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if facultyID == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Faculty ID is required").WithField("facultyId")
	}
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Name is required").WithField("name")
	}
	if !validation.IsFacultyEmail(email) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Please enter a valid university email").WithField("email")
	}

	member := &models.FacultyMember{
		ID:           id,
		FacultyID:    facultyID,
		Name:         name,
		Email:        email,
		DepartmentID: req.DepartmentID,
		UserID:       existing.UserID,
	}
	if err := s.facultyRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyMemberID", id).Msg("Faculty member updated")
	return member, nil
}

// Delete removes a faculty member record. The linked login account, if any,
// is left in place.
func (s *FacultyService) Delete(ctx context.Context, id int64) error {
	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("facultyMemberID", id).Msg("Faculty member deleted")
	return nil
}
