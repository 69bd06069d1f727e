package store

import (
	"context"

	"github.com/escolar-hub/escolar-console/internal/classify"
	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
)

// Students is the student store. Enrollment numbers are normalized to
// their canonical form before every write.
type Students struct {
	*Store[school.Student, school.StudentPayload]
}

// NewStudents creates the student store.
func NewStudents(cfg Config) *Students {
	return &Students{
		Store: New[school.Student, school.StudentPayload](cfg, Descriptor{
			Entity:    classify.EntityStudent,
			Endpoints: escolar.StudentEndpoints,
			Messages: ActionMessages{
				Created: "the student was registered successfully",
				Updated: "the student's data was updated successfully",
				Deleted: "the student was deleted successfully",
			},
		}),
	}
}

// Create normalizes the enrollment number before submitting.
func (s *Students) Create(ctx context.Context, payload school.StudentPayload) (school.Student, error) {
	return s.Store.Create(ctx, payload.Normalize())
}

// Update normalizes the enrollment number before submitting.
func (s *Students) Update(ctx context.Context, id string, payload school.StudentPayload) (school.Student, error) {
	return s.Store.Update(ctx, id, payload.Normalize())
}

// ByEnrollment looks a student up by enrollment number. The lookup uses
// the canonical form, so "  a012345 " and "A012345" hit the same record.
func (s *Students) ByEnrollment(ctx context.Context, matricula string) (school.Student, error) {
	s.begin()
	defer s.end()

	var student school.Student
	path := escolar.StudentByEnrollmentPath(school.NormalizeEnrollment(matricula))
	if err := s.client.Get(ctx, path, &student); err != nil {
		return student, s.fail("by_enrollment", err)
	}
	return student, nil
}

// BySemester lists students currently in the given semester.
func (s *Students) BySemester(ctx context.Context, semester int) ([]school.Student, error) {
	return s.readList(ctx, "by_semester", escolar.StudentsBySemesterPath(semester))
}
