package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrMatriculeExists        = errors.New("matricule already exists")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Catalog errors
var (
	ErrFacultyNotFound         = errors.New("faculty not found")
	ErrFacultyAlreadyExists    = errors.New("faculty with this name or code already exists")
	ErrDepartmentAlreadyExists = errors.New("department already exists in this faculty")
)
