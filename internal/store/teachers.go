package store

import (
	"context"

	"github.com/escolar-hub/escolar-console/internal/classify"
	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
)

// Teachers is the teacher store, including the competency sub-resource.
type Teachers struct {
	*Store[school.Teacher, school.TeacherPayload]
}

// NewTeachers creates the teacher store.
func NewTeachers(cfg Config) *Teachers {
	return &Teachers{
		Store: New[school.Teacher, school.TeacherPayload](cfg, Descriptor{
			Entity:    classify.EntityTeacher,
			Endpoints: escolar.TeacherEndpoints,
			Messages: ActionMessages{
				Created: "the teacher was registered successfully",
				Updated: "the teacher was updated successfully",
				Deleted: "the teacher was deleted successfully",
			},
		}),
	}
}

// CompetentFor lists teachers qualified for the subject, as the server
// sees the relationship. For filtering an already-loaded snapshot use
// school.CompetentTeachersFor instead.
func (t *Teachers) CompetentFor(ctx context.Context, subjectID string) ([]school.Teacher, error) {
	return t.readList(ctx, "competent_for", escolar.TeachersBySubjectPath(subjectID))
}

// AddCompetency qualifies the teacher for one more subject and patches
// the cached teacher with the server's result.
func (t *Teachers) AddCompetency(ctx context.Context, teacherID, subjectID string) (school.Teacher, error) {
	return t.mutateRelated(ctx, "add_competency", func(ctx context.Context, out *school.Teacher) error {
		return t.client.Post(ctx, escolar.TeacherCompetencyPath(teacherID, subjectID), nil, out)
	}, "the teacher's competencies were updated")
}

// RemoveCompetency withdraws one qualification.
func (t *Teachers) RemoveCompetency(ctx context.Context, teacherID, subjectID string) (school.Teacher, error) {
	return t.mutateRelated(ctx, "remove_competency", func(ctx context.Context, out *school.Teacher) error {
		return t.client.DeleteJSON(ctx, escolar.TeacherCompetencyPath(teacherID, subjectID), out)
	}, "the teacher's competencies were updated")
}

// ReplaceCompetencies swaps the whole competency set in one call.
func (t *Teachers) ReplaceCompetencies(ctx context.Context, teacherID string, subjectIDs []string) (school.Teacher, error) {
	body := struct {
		SubjectIDs []string `json:"asignaturaIds"`
	}{SubjectIDs: subjectIDs}

	return t.mutateRelated(ctx, "replace_competencies", func(ctx context.Context, out *school.Teacher) error {
		return t.client.Patch(ctx, escolar.TeacherCompetenciesPath(teacherID), body, out)
	}, "the teacher's competencies were updated")
}
