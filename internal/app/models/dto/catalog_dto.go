package dto

import "github.com/iug/student-portal/internal/app/models"

// FacultyWithDepartments represents one faculty of the registration catalog
// together with its closed set of departments.
type FacultyWithDepartments struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Code        string              `json:"code"`
	Departments []models.Department `json:"departments"`
}
