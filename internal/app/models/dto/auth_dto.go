package dto

import "github.com/iug/student-portal/internal/app/models"

// RegisterRequest represents a student registration request.
// dateOfBirth, faculty and department are optional; the faculty/department
// pair is constrained client-side by the catalog, not validated here.
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	Faculty     string `json:"faculty"`
	Department  string `json:"department"`
	Password    string `json:"password" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StudentProfile is the subset of a student record that is safe to return
// to a client. The password hash is deliberately not representable here.
type StudentProfile struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Faculty     string `json:"faculty,omitempty"`
	Department  string `json:"department,omitempty"`
	Matricule   string `json:"matricule"`
}

// NewStudentProfile builds the public profile for a stored student record.
func NewStudentProfile(student *models.Student) *StudentProfile {
	if student == nil {
		return nil
	}
	return &StudentProfile{
		ID:          student.ID,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		DateOfBirth: student.DateOfBirth,
		Faculty:     student.Faculty,
		Department:  student.Department,
		Matricule:   student.Matricule,
	}
}
