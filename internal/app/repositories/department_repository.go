package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/iug/student-portal/internal/app/models"
	"github.com/iug/student-portal/internal/pkg/apperrors"
	"github.com/iug/student-portal/internal/pkg/dberrors"
	"github.com/iug/student-portal/internal/pkg/logger"
)

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) (int64, error) {
	query, args, err := r.sb.Insert("departments").
		Columns("faculty_id", "name", "code").
		Values(department.FacultyID, department.Name, department.Code).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create department query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "departments.") {
			return 0, apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create department query")
		return 0, fmt.Errorf("error creating department: %w", err)
	}

	return result.LastInsertId()
}

// GetByFacultyID retrieves all departments for a given faculty, ordered by name
func (r *DepartmentRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]models.Department, error) {
	query, args, err := r.sb.Select("id", "faculty_id", "name", "code").
		From("departments").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get departments query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing get departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		department := models.Department{}
		if err := rows.Scan(&department.ID, &department.FacultyID, &department.Name, &department.Code); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}
