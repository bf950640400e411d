package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iug/student-portal/internal/app/models"
	"github.com/iug/student-portal/internal/app/models/dto"
	"github.com/iug/student-portal/internal/pkg/apperrors"
	"github.com/iug/student-portal/internal/pkg/auth"
	"github.com/iug/student-portal/internal/pkg/matricule"
)

// matriculeAttempts bounds regeneration when a generated matricule collides
// with an existing one. Collisions are rare (six-digit space) but the store
// surfaces them as unique violations, so we retry with a fresh value.
const matriculeAttempts = 3

// StudentStore is the persistence contract the auth service depends on.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// AuthService defines registration and login operations.
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentProfile, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.StudentProfile, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	studentRepo  StudentStore
	newMatricule func() (string, error)
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo StudentStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		studentRepo:  studentRepo,
		newMatricule: matricule.Generate,
		logger:       logger,
	}
}

// validateRegistration checks the required registration fields are present.
// Anything beyond presence (email format, password strength) is out of scope.
func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	required := []struct {
		name  string
		value string
	}{
		{"first name", req.FirstName},
		{"last name", req.LastName},
		{"email", req.Email},
		{"password", req.Password},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", apperrors.ErrValidationFailed, field.name)
		}
	}
	return nil
}

// RegisterStudent registers a new student and returns the public profile.
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentProfile, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DateOfBirth:  req.DateOfBirth,
		Faculty:      req.Faculty,
		Department:   req.Department,
		PasswordHash: hashedPassword,
	}

	// The insert is the atomic arbiter for both unique columns. An email
	// conflict is terminal; a matricule conflict just means the generator
	// was unlucky, so draw again.
	for attempt := 1; ; attempt++ {
		student.Matricule, err = s.newMatricule()
		if err != nil {
			return nil, fmt.Errorf("error generating matricule: %w", err)
		}

		id, err := s.studentRepo.Create(ctx, student)
		if err == nil {
			student.ID = id
			s.logger.Info().
				Int64("studentID", id).
				Str("matricule", student.Matricule).
				Msg("Student registered")
			return dto.NewStudentProfile(student), nil
		}

		if errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		if errors.Is(err, apperrors.ErrMatriculeExists) && attempt < matriculeAttempts {
			s.logger.Warn().
				Str("matricule", student.Matricule).
				Int("attempt", attempt).
				Msg("Matricule collision, regenerating")
			continue
		}
		return nil, fmt.Errorf("student creation error: %w", err)
	}
}

// Login authenticates a student by email and password.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.StudentProfile, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidationFailed)
	}

	// Exact email match; at most one record can exist. A missing account is
	// reported distinctly from a wrong password.
	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(student.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("email", req.Email).Msg("Student logged in")
	return dto.NewStudentProfile(student), nil
}
