package store

import (
	"context"

	"github.com/escolar-hub/escolar-console/internal/classify"
	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
)

// Subjects is the subject store, with the server-side filters dashboards
// use to narrow by program and semester.
type Subjects struct {
	*Store[school.Subject, school.SubjectPayload]
}

// NewSubjects creates the subject store.
func NewSubjects(cfg Config) *Subjects {
	return &Subjects{
		Store: New[school.Subject, school.SubjectPayload](cfg, Descriptor{
			Entity:    classify.EntitySubject,
			Endpoints: escolar.SubjectEndpoints,
			Messages: ActionMessages{
				Created: "the subject was created successfully",
				Updated: "the subject was updated successfully",
				Deleted: "the subject was deleted successfully",
			},
		}),
	}
}

// BySemester lists subjects taught in the given semester. Read-only, the
// cache is untouched.
func (s *Subjects) BySemester(ctx context.Context, semester int) ([]school.Subject, error) {
	return s.readList(ctx, "by_semester", escolar.SubjectsBySemesterPath(semester))
}

// ByProgram lists subjects of a study program.
func (s *Subjects) ByProgram(ctx context.Context, programID string) ([]school.Subject, error) {
	return s.readList(ctx, "by_program", escolar.SubjectsByProgramPath(programID))
}

// ByProgramAndSemester lists subjects of a program in one semester.
func (s *Subjects) ByProgramAndSemester(ctx context.Context, programID string, semester int) ([]school.Subject, error) {
	return s.readList(ctx, "by_program_semester", escolar.SubjectsByProgramAndSemesterPath(programID, semester))
}

// CountByProgram counts the subjects of a study program. Best-effort
// like Count: 0 on failure.
func (s *Subjects) CountByProgram(ctx context.Context, programID string) int {
	return s.readCount(ctx, escolar.SubjectCountByProgramPath(programID))
}
