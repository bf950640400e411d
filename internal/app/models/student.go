package models

import "time"

// Student defines the student model based on the 'students' table.
// PasswordHash is never serialized; clients only ever see the profile DTO.
type Student struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Faculty      string    `json:"faculty,omitempty" db:"faculty"`
	Department   string    `json:"department,omitempty" db:"department"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Matricule    string    `json:"matricule" db:"matricule"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
