package repositories

import "database/sql"

// Repositories bundles every repository for dependency wiring.
type Repositories struct {
	StudentRepository    *StudentRepository
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
}

// NewRepositories creates all repositories over one database handle.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
	}
}
