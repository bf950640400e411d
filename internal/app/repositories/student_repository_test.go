package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iug/student-portal/internal/app/migrations"
	"github.com/iug/student-portal/internal/app/models"
	"github.com/iug/student-portal/internal/pkg/apperrors"
)

// newTestDB opens an in-memory database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := migrations.NewMigrator(db, "../../../migrations").Run(); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return db
}

func testStudent(email, matricule string) *models.Student {
	return &models.Student{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealha",
		Matricule:    matricule,
		Faculty:      "Engineering",
		Department:   "Mechanical",
	}
}

func TestStudentCreateAndGetByEmail(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, testStudent("ada@iug.edu", "IUG-123456"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id == 0 {
		t.Fatal("Create returned id 0")
	}

	got, err := repo.GetByEmail(ctx, "ada@iug.edu")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if got.ID != id {
		t.Errorf("GetByEmail id = %d, want %d", got.ID, id)
	}
	if got.Matricule != "IUG-123456" {
		t.Errorf("matricule = %q, want IUG-123456", got.Matricule)
	}
	if got.Faculty != "Engineering" || got.Department != "Mechanical" {
		t.Errorf("faculty/department = %q/%q, want Engineering/Mechanical", got.Faculty, got.Department)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not populated")
	}
}

func TestStudentOptionalFieldsStoredAsNull(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	student := testStudent("ada@iug.edu", "IUG-123456")
	student.Faculty = ""
	student.Department = ""
	if _, err := repo.Create(ctx, student); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	var nullCount int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE faculty IS NULL AND department IS NULL`).Scan(&nullCount)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if nullCount != 1 {
		t.Errorf("empty optional fields stored as %d NULL rows, want 1", nullCount)
	}

	got, err := repo.GetByEmail(ctx, "ada@iug.edu")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if got.Faculty != "" || got.Department != "" {
		t.Errorf("NULL columns read back as %q/%q, want empty strings", got.Faculty, got.Department)
	}
}

func TestStudentDuplicateEmail(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, testStudent("ada@iug.edu", "IUG-111111")); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := repo.Create(ctx, testStudent("ada@iug.edu", "IUG-222222"))
	if !errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
		t.Fatalf("error = %v, want ErrEmailAlreadyRegistered", err)
	}

	count, err := repo.CountByEmail(ctx, "ada@iug.edu")
	if err != nil {
		t.Fatalf("CountByEmail returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("email held by %d records, want 1", count)
	}
}

func TestStudentDuplicateMatricule(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, testStudent("first@iug.edu", "IUG-111111")); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := repo.Create(ctx, testStudent("second@iug.edu", "IUG-111111"))
	if !errors.Is(err, apperrors.ErrMatriculeExists) {
		t.Fatalf("error = %v, want ErrMatriculeExists", err)
	}
}

func TestStudentGetByEmailNotFound(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))

	_, err := repo.GetByEmail(context.Background(), "nobody@iug.edu")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("error = %v, want ErrStudentNotFound", err)
	}
}

func TestMigratorIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	// Second run must see every migration as applied and change nothing.
	if err := migrations.NewMigrator(db, "../../../migrations").Run(); err != nil {
		t.Fatalf("re-running migrations failed: %v", err)
	}

	var applied int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if applied == 0 {
		t.Fatal("no migrations recorded in schema_migrations")
	}
}
