package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rakib/uniportal/internal/app/models"
	appRepos "github.com/rakib/uniportal/internal/app/repositories"
	"github.com/rakib/uniportal/internal/config"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
	"github.com/rakib/uniportal/internal/pkg/auth"
)

// CreateDefaultData seeds the catalog and the default admin account. Every
// write goes through a get-or-create path, so reruns are harmless.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	facultyRepo := appRepos.NewFacultyRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	departments := []*appModels.Department{
		{Name: "Computer Science and Engineering", Code: "CSE"},
		{Name: "Electrical and Electronic Engineering", Code: "EEE"},
		{Name: "Business Administration", Code: "BBA"},
		{Name: "Law", Code: "LAW"},
	}
	departmentIDs := make(map[string]int64, len(departments))
	for _, department := range departments {
		if _, err := departmentRepo.GetOrCreate(ctx, department); err != nil {
			lgr.Error().Err(err).Str("code", department.Code).Msg("Error seeding department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		departmentIDs[department.Code] = department.ID
	}

	if cseID, ok := departmentIDs["CSE"]; ok {
		term := cfg.Registration.ActiveTerm
		courses := []*appModels.Course{
			{Code: "CSE101", Title: "Introduction to Programming", Credit: 3.0, DepartmentID: &cseID, TermLabel: term},
			{Code: "CSE102", Title: "Discrete Mathematics", Credit: 3.0, DepartmentID: &cseID, TermLabel: term},
			{Code: "CSE103", Title: "Data Structures", Credit: 3.0, DepartmentID: &cseID, TermLabel: term},
			{Code: "CSE104", Title: "Digital Logic Design", Credit: 3.0, DepartmentID: &cseID, TermLabel: term},
		}
		for _, course := range courses {
			if _, err := courseRepo.GetOrCreate(ctx, course); err != nil {
				lgr.Error().Err(err).Str("code", course.Code).Msg("Error seeding course")
				finalErr = errors.Join(finalErr, err)
			}
		}

		member := &appModels.FacultyMember{
			FacultyID:    "FAC-1001",
			Name:         "Sharmin Akter",
			Email:        "sharmin@diu.edu.bd",
			DepartmentID: &cseID,
		}
		if _, err := facultyRepo.GetOrCreate(ctx, member); err != nil {
			lgr.Error().Err(err).Str("facultyID", member.FacultyID).Msg("Error seeding faculty member")
			finalErr = errors.Join(finalErr, err)
		}

		if cfg.Seed.Demo {
			if err := seedDemoStudent(ctx, dbPool, cfg, cseID, courses, lgr); err != nil {
				lgr.Error().Err(err).Msg("Error seeding demo student")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if err := seedAdminUser(ctx, userRepo, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// seedDemoStudent creates one student account with a pending registration
// and a graded prior term, for walking through the flows on a fresh database.
func seedDemoStudent(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, departmentID int64, courses []*appModels.Course, lgr zerolog.Logger) error {
	const demoEmail = "student1@diu.edu.bd"

	userRepo := appRepos.NewUserRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)
	enrollmentRepo := appRepos.NewEnrollmentRepository(dbPool)
	resultRepo := appRepos.NewResultRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, demoEmail)
	if err != nil || exists {
		return err
	}

	hashed, err := auth.HashPassword("changeme123")
	if err != nil {
		return err
	}

	user := &appModels.User{
		Email:    demoEmail,
		Password: hashed,
		RoleType: appModels.RoleStudent,
		IsActive: true,
	}
	userID, err := userRepo.CreateUser(ctx, user)
	if err != nil {
		return err
	}

	student := &appModels.Student{
		UserID:                   userID,
		StudentID:                "22205341101",
		FullName:                 "Demo Student",
		DepartmentID:             &departmentID,
		Batch:                    "2022",
		CurrentTerm:              cfg.Registration.ActiveTerm,
		IsClearedForRegistration: true,
	}
	if err := studentRepo.Create(ctx, student); err != nil {
		return err
	}

	if len(courses) > 0 {
		enrollment := &appModels.Enrollment{
			StudentID: student.ID,
			CourseID:  courses[0].ID,
			Term:      cfg.Registration.ActiveTerm,
			Status:    appModels.EnrollmentPending,
		}
		if err := enrollmentRepo.Create(ctx, enrollment); err != nil {
			return err
		}
	}

	if len(courses) >= 2 {
		result := &appModels.SemesterResult{
			StudentID: student.ID,
			Term:      "Fall 2024, 243",
			GPA:       3.65,
		}
		if err := resultRepo.CreateResult(ctx, result); err != nil {
			return err
		}
		for i, grade := range []string{"A", "B+"} {
			item := &appModels.ResultItem{
				ResultID:   result.ID,
				CourseID:   courses[i].ID,
				Credit:     courses[i].Credit,
				Grade:      grade,
				GradePoint: appModels.GradePointFor(grade),
			}
			if err := resultRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
	}

	lgr.Info().Str("email", demoEmail).Msg("Demo student created")
	return nil
}

func seedAdminUser(ctx context.Context, userRepo *appRepos.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	email := cfg.Seed.AdminEmail
	password := cfg.Seed.AdminPassword
	if email == "" || password == "" {
		lgr.Warn().Msg("Admin seed credentials not configured, skipping admin account")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:    email,
		Password: hashed,
		RoleType: appModels.RoleAdmin,
		IsActive: true,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error seeding admin account")
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
