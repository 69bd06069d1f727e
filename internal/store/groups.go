package store

import (
	"context"

	"github.com/escolar-hub/escolar-console/internal/classify"
	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
)

// Groups is the group store, including the student-roster sub-resource.
type Groups struct {
	*Store[school.Group, school.GroupPayload]
}

// NewGroups creates the group store. Note the deviating count path of
// this entity (/grupo/stats/count) carried by its endpoint table.
func NewGroups(cfg Config) *Groups {
	return &Groups{
		Store: New[school.Group, school.GroupPayload](cfg, Descriptor{
			Entity:    classify.EntityGroup,
			Endpoints: escolar.GroupEndpoints,
			Messages: ActionMessages{
				Created: "the group was created successfully",
				Updated: "the group was updated successfully",
				Deleted: "the group was deleted successfully",
			},
		}),
	}
}

// CheckCompetency verifies client-side that the payload's teacher is
// qualified for its subject, given a teacher snapshot. Selection UIs
// should have made this impossible already; this is the last gate before
// a submission. A server-side rejection of the same rule still flows
// through the normal classification path.
func (g *Groups) CheckCompetency(payload school.GroupPayload, teachers []school.Teacher) error {
	for _, t := range teachers {
		if t.ID == payload.TeacherID {
			if t.CompetentIn(payload.SubjectID) {
				return nil
			}
			break
		}
	}
	return classify.NewCompetencyViolation(classify.EntityGroup)
}

// BySubject lists the groups of a subject.
func (g *Groups) BySubject(ctx context.Context, subjectID string) ([]school.Group, error) {
	return g.readList(ctx, "by_subject", escolar.GroupsFilterPath(escolar.GroupsBySubject, subjectID))
}

// ByTeacher lists the groups a teacher runs.
func (g *Groups) ByTeacher(ctx context.Context, teacherID string) ([]school.Group, error) {
	return g.readList(ctx, "by_teacher", escolar.GroupsFilterPath(escolar.GroupsByTeacher, teacherID))
}

// ByStudent lists the groups a student is enrolled in.
func (g *Groups) ByStudent(ctx context.Context, studentID string) ([]school.Group, error) {
	return g.readList(ctx, "by_student", escolar.GroupsFilterPath(escolar.GroupsByStudent, studentID))
}

// EnrollStudent adds one student to the group's roster.
func (g *Groups) EnrollStudent(ctx context.Context, groupID, studentID string) (school.Group, error) {
	return g.mutateRelated(ctx, "enroll_student", func(ctx context.Context, out *school.Group) error {
		return g.client.Post(ctx, escolar.GroupStudentPath(groupID, studentID), nil, out)
	}, "the student was enrolled in the group")
}

// UnenrollStudent removes one student from the group's roster.
func (g *Groups) UnenrollStudent(ctx context.Context, groupID, studentID string) (school.Group, error) {
	return g.mutateRelated(ctx, "unenroll_student", func(ctx context.Context, out *school.Group) error {
		return g.client.DeleteJSON(ctx, escolar.GroupStudentPath(groupID, studentID), out)
	}, "the student was removed from the group")
}

// ReplaceStudents swaps the whole roster in one call.
func (g *Groups) ReplaceStudents(ctx context.Context, groupID string, studentIDs []string) (school.Group, error) {
	body := struct {
		StudentIDs []string `json:"alumnoIds"`
	}{StudentIDs: studentIDs}

	return g.mutateRelated(ctx, "replace_students", func(ctx context.Context, out *school.Group) error {
		return g.client.Patch(ctx, escolar.GroupStudentsPath(groupID), body, out)
	}, "the group's roster was updated")
}

// StudentCount counts the students enrolled in a group. Best-effort: 0
// on failure.
func (g *Groups) StudentCount(ctx context.Context, groupID string) int {
	return g.readCount(ctx, escolar.GroupStudentCountPath(groupID))
}
