package services

import (
	"context"
	"fmt"

	"github.com/iug/student-portal/internal/app/models"
	"github.com/iug/student-portal/internal/app/models/dto"
)

// CatalogStore is the persistence contract for the faculty/department catalog.
type CatalogStore interface {
	GetAll(ctx context.Context) ([]*models.Faculty, error)
}

// DepartmentStore lists the departments of a faculty.
type DepartmentStore interface {
	GetByFacultyID(ctx context.Context, facultyID int64) ([]models.Department, error)
}

// CatalogService exposes the closed faculty/department enumeration that
// backs the registration form.
type CatalogService interface {
	GetFaculties(ctx context.Context) ([]*dto.FacultyWithDepartments, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	facultyRepo    CatalogStore
	departmentRepo DepartmentStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(facultyRepo CatalogStore, departmentRepo DepartmentStore) CatalogService {
	return &catalogServiceImpl{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
	}
}

// GetFaculties returns every faculty with its departments, ordered by name.
func (s *catalogServiceImpl) GetFaculties(ctx context.Context) ([]*dto.FacultyWithDepartments, error) {
	faculties, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}

	catalog := make([]*dto.FacultyWithDepartments, 0, len(faculties))
	for _, faculty := range faculties {
		departments, err := s.departmentRepo.GetByFacultyID(ctx, faculty.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving departments for faculty %d: %w", faculty.ID, err)
		}
		catalog = append(catalog, &dto.FacultyWithDepartments{
			ID:          faculty.ID,
			Name:        faculty.Name,
			Code:        faculty.Code,
			Departments: departments,
		})
	}

	return catalog, nil
}
