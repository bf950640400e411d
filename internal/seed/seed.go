package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/iug/student-portal/internal/app/models"
	"github.com/iug/student-portal/internal/app/repositories"
	"github.com/iug/student-portal/internal/pkg/apperrors"
	"github.com/iug/student-portal/internal/pkg/logger"
)

type facultySeed struct {
	name        string
	code        string
	departments []departmentSeed
}

type departmentSeed struct {
	name string
	code string
}

// catalog is the faculty/department enumeration offered on the
// registration form.
var catalog = []facultySeed{
	{
		name: "Science", code: "SCI",
		departments: []departmentSeed{
			{"Physics", "PHY"},
			{"Chemistry", "CHM"},
			{"Biology", "BIO"},
		},
	},
	{
		name: "Arts", code: "ART",
		departments: []departmentSeed{
			{"History", "HIS"},
			{"Literature", "LIT"},
			{"Languages", "LAN"},
		},
	},
	{
		name: "Engineering", code: "ENG",
		departments: []departmentSeed{
			{"Mechanical", "MEC"},
			{"Electrical", "ELE"},
			{"Civil", "CIV"},
		},
	},
}

// Run inserts the catalog faculties and departments, skipping any that
// already exist. Safe to call on every startup.
func Run(ctx context.Context, repos *repositories.Repositories) error {
	for _, f := range catalog {
		facultyID, err := ensureFaculty(ctx, repos, f)
		if err != nil {
			return fmt.Errorf("failed to seed faculty %s: %w", f.name, err)
		}

		for _, d := range f.departments {
			_, err := repos.DepartmentRepository.Create(ctx, &models.Department{
				FacultyID: facultyID,
				Name:      d.name,
				Code:      d.code,
			})
			if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
				return fmt.Errorf("failed to seed department %s: %w", d.name, err)
			}
		}
	}

	logger.Debug().Msg("Catalog seed complete")
	return nil
}

func ensureFaculty(ctx context.Context, repos *repositories.Repositories, f facultySeed) (int64, error) {
	id, err := repos.FacultyRepository.Create(ctx, &models.Faculty{Name: f.name, Code: f.code})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
		return 0, err
	}

	// Already seeded on an earlier run; look the row up for its ID.
	faculties, err := repos.FacultyRepository.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, existing := range faculties {
		if existing.Name == f.name {
			return existing.ID, nil
		}
	}
	return 0, fmt.Errorf("faculty %s exists but was not found", f.name)
}
