package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/repositories"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
	"github.com/rakib/uniportal/internal/pkg/auth"
	"github.com/rakib/uniportal/internal/pkg/validation"
)

// Role landing pages. RedirectForRole must stay total over this map.
const (
	redirectStudent = "/students/dashboard"
	redirectFaculty = "/faculty/dashboard"
	redirectAdmin   = "/admin/dashboard"
	redirectLogin   = "/login"
)

// RedirectForRole maps a role to its post-login destination. Unknown or empty
// roles land on the login page; there is no undefined branch.
func RedirectForRole(role models.RoleType) string {
	switch role {
	case models.RoleStudent:
		return redirectStudent
	case models.RoleFaculty:
		return redirectFaculty
	case models.RoleAdmin:
		return redirectAdmin
	default:
		return redirectLogin
	}
}

// AuthService handles signup, login and token issuance
type AuthService struct {
	userRepo       *repositories.UserRepository
	tokenRepo      *repositories.TokenRepository
	studentRepo    *repositories.StudentRepository
	facultyRepo    *repositories.FacultyRepository
	departmentRepo *repositories.DepartmentRepository
	studentService *StudentService
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	departmentRepo *repositories.DepartmentRepository,
	studentService *StudentService,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		studentRepo:    studentRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		studentService: studentService,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// adminFallbackUsername is used when an admin signs up without an email.
const adminFallbackUsername = "admin_user"

// ValidateRegisterRequest applies the role-based signup rules and returns the
// derived login name. Field names in returned errors match the form fields.
func ValidateRegisterRequest(req *dto.RegisterRequest) (username string, err error) {
	role := models.RoleType(strings.ToUpper(strings.TrimSpace(req.Role)))
	email := strings.TrimSpace(req.Email)
	iid := strings.TrimSpace(req.InstitutionalID)

	if !models.ValidRole(role) {
		return "", apperrors.NewCustomError(apperrors.ErrInvalidRole, "Select a valid role").WithField("role")
	}
	if role != models.RoleAdmin && iid == "" {
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "Student/Faculty ID is required").WithField("institutionalId")
	}
	if req.Password1 != req.Password2 {
		return "", apperrors.NewCustomError(apperrors.ErrPasswordMismatch, "Passwords do not match").WithField("password")
	}
	if !validation.IsValidPassword(req.Password1) {
		return "", apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength)).WithField("password")
	}

	if role == models.RoleAdmin {
		if email == "" {
			return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "Email is required for admin accounts").WithField("email")
		}
		return email, nil
	}
	if iid != "" {
		return iid, nil
	}
	return email, nil
}

// Register handles the role-based signup flow: create the identity, provision
// the role profile, and auto-issue a session.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	username, err := ValidateRegisterRequest(req)
	if err != nil {
		return nil, err
	}
	role := models.RoleType(strings.ToUpper(strings.TrimSpace(req.Role)))
	email := strings.TrimSpace(req.Email)
	iid := strings.TrimSpace(req.InstitutionalID)

	if username == "" {
		username = adminFallbackUsername
	}

	hashed, err := auth.HashPassword(req.Password1)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		RoleType: role,
		IsActive: true,
	}
	if iid != "" {
		user.InstitutionalID = &iid
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrIdentifierExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrIdentifierExists, "This ID is already used").WithField("institutionalId")
		}
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "This email is already used").WithField("email")
		}
		return nil, err
	}

	// Provision the role profile at account creation, not lazily on read.
	switch role {
	case models.RoleStudent:
		if _, err := s.studentService.Provision(ctx, user, username, "", ""); err != nil {
			s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to provision student profile")
			return nil, err
		}
	case models.RoleFaculty:
		if err := s.linkFacultyRecord(ctx, user, iid, username); err != nil {
			s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to link faculty record")
			return nil, err
		}
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User registered")
	return s.generateTokenResponse(ctx, user)
}

// linkFacultyRecord attaches the new account to the catalog's faculty record
// with the same institutional ID, creating one if the catalog has none yet.
func (s *AuthService) linkFacultyRecord(ctx context.Context, user *models.User, facultyID, name string) error {
	member := &models.FacultyMember{
		FacultyID: facultyID,
		Name:      name,
		Email:     user.Email,
		UserID:    &user.ID,
	}
	if _, err := s.facultyRepo.GetOrCreate(ctx, member); err != nil {
		return err
	}
	if member.UserID == nil || *member.UserID != user.ID {
		return s.facultyRepo.LinkUser(ctx, member.ID, user.ID)
	}
	return nil
}

// RegisterStudent handles the student-specific signup flow with the
// university email-domain gate. No session is issued; the client is sent to
// the login page.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterStudentResponse, error) {
	email := strings.TrimSpace(req.Email)
	studentID := strings.TrimSpace(req.StudentID)

	if !validation.IsUniversityEmail(email) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail,
			"Please enter a valid university email (e.g., rakib22205341183@diu.edu.bd)").WithField("email")
	}
	if studentID == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Student ID is required").WithField("studentId")
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewCustomError(apperrors.ErrPasswordMismatch, "Passwords do not match").WithField("password")
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength)).WithField("password")
	}

	exists, err := s.studentRepo.StudentIDExists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student ID: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentIDAlreadyExists, "This student ID is already used").WithField("studentId")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	iid := studentID
	user := &models.User{
		Email:           email,
		Password:        hashed,
		RoleType:        models.RoleStudent,
		InstitutionalID: &iid,
		IsActive:        true,
	}
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "This email is already used").WithField("email")
		}
		if errors.Is(err, apperrors.ErrIdentifierExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrIdentifierExists, "This ID is already used").WithField("studentId")
		}
		return nil, err
	}

	if _, err := s.studentService.ProvisionWithDetails(ctx, user, studentID, req.FullName, req.Department, req.Batch); err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to provision student profile")
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("studentID", studentID).Msg("Student registered")
	return &dto.RegisterStudentResponse{
		Email:    email,
		Redirect: redirectLogin,
	}, nil
}

// Login authenticates by email or student ID and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	loginID := strings.TrimSpace(req.LoginID)
	if loginID == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.resolveUser(ctx, loginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	// Faculty accounts sign in with their institutional address only.
	if user.RoleType == models.RoleFaculty && strings.Contains(loginID, "@") && !validation.IsFacultyEmail(loginID) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return s.generateTokenResponse(ctx, user)
}

// resolveUser finds the account behind a login ID: an email when it contains
// '@', otherwise a student number.
func (s *AuthService) resolveUser(ctx context.Context, loginID string) (*models.User, error) {
	if strings.Contains(loginID, "@") {
		return s.userRepo.GetUserByEmail(ctx, loginID)
	}

	student, err := s.studentRepo.GetByStudentID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(ctx, student.UserID)
}

// RefreshToken rotates an access token from a stored refresh token.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.generateTokenResponse(ctx, user)
}

func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		Redirect:         RedirectForRole(user.RoleType),
	}, nil
}
