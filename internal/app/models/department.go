package models

// Department represents a department in a faculty
type Department struct {
	ID        int64  `json:"id"`
	FacultyID int64  `json:"facultyId"`
	Name      string `json:"name"`
	Code      string `json:"code"`
}
