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

// DepartmentService handles the department catalog
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// GetAll lists departments ordered by name
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// GetByID retrieves one department
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// Create finds or creates a department by its natural key. Submitting an
// existing name/code pair returns the existing row rather than an error.
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, bool, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department name is required").WithField("name")
	}
	if !validation.IsValidCode(code) {
		return nil, false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department code must be uppercase letters and digits").WithField("code")
	}

	department := &models.Department{Name: name, Code: code}
	created, err := s.departmentRepo.GetOrCreate(ctx, department)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info().Str("code", code).Msg("Department created")
	}
	return department, created, nil
}

// Update replaces a department's name and code
func (s *DepartmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department name is required").WithField("name")
	}
	if !validation.IsValidCode(code) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department code must be uppercase letters and digits").WithField("code")
	}

	department := &models.Department{ID: id, Name: name, Code: code}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("departmentID", id).Msg("Department updated")
	return department, nil
}

// Delete removes a department. Students, courses and faculty members that
// reference it are detached, not deleted.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("departmentID", id).Msg("Department deleted")
	return nil
}
