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

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *sql.DB) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Create creates a new faculty
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	query, args, err := r.sb.Insert("faculties").
		Columns("name", "code").
		Values(faculty.Name, faculty.Code).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "faculties.") {
			return 0, apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return result.LastInsertId()
}

// GetByID retrieves a faculty by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	query, args, err := r.sb.Select("id", "name", "code").
		From("faculties").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&faculty.ID, &faculty.Name, &faculty.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	return faculty, nil
}

// GetAll retrieves all faculties ordered by name
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	query, args, err := r.sb.Select("id", "name", "code").
		From("faculties").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all faculties query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculties query")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(&faculty.ID, &faculty.Name, &faculty.Code); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}
