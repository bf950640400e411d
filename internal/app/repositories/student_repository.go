package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/iug/student-portal/internal/app/models"
	"github.com/iug/student-portal/internal/pkg/apperrors"
	"github.com/iug/student-portal/internal/pkg/dberrors"
	"github.com/iug/student-portal/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Create inserts a new student record and returns the assigned ID. The
// insert itself is the uniqueness arbiter: there is no prior existence
// check, so concurrent registrations for the same email cannot both
// succeed. Unique violations are mapped to the matching sentinel error.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	query, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "email", "date_of_birth", "faculty", "department", "password_hash", "matricule").
		Values(
			student.FirstName,
			student.LastName,
			student.Email,
			nullIfEmpty(student.DateOfBirth),
			nullIfEmpty(student.Faculty),
			nullIfEmpty(student.Department),
			student.PasswordHash,
			student.Matricule,
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "students.email") {
			return 0, apperrors.ErrEmailAlreadyRegistered
		}
		if dberrors.IsUniqueViolation(err, "students.matricule") {
			return 0, apperrors.ErrMatriculeExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading inserted student id: %w", err)
	}
	return id, nil
}

// GetByEmail retrieves a student by exact email match.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns()...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	return r.scanStudent(r.db.QueryRowContext(ctx, query, args...))
}

// GetByID retrieves a student by internal record ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns()...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by id query: %w", err)
	}

	return r.scanStudent(r.db.QueryRowContext(ctx, query, args...))
}

// CountByEmail returns how many records hold the given email. Used by tests
// to assert the uniqueness invariant; the unique index keeps this at most 1.
func (r *StudentRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").
		From("students").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count by email query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students by email: %w", err)
	}
	return count, nil
}

func studentColumns() []string {
	return []string{
		"id", "first_name", "last_name", "email",
		"date_of_birth", "faculty", "department",
		"password_hash", "matricule", "created_at",
	}
}

func (r *StudentRepository) scanStudent(row *sql.Row) (*models.Student, error) {
	student := &models.Student{}
	var dateOfBirth, faculty, department sql.NullString

	err := row.Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&dateOfBirth, &faculty, &department,
		&student.PasswordHash, &student.Matricule, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	student.DateOfBirth = dateOfBirth.String
	student.Faculty = faculty.String
	student.Department = department.String
	return student, nil
}

// nullIfEmpty stores absent optional fields as NULL rather than "".
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
