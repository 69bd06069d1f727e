package escolar

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints is the per-entity path table of the school service. The base
// segments are fixed by the remote contract and use its Spanish naming.
type Endpoints struct {
	// Base is the collection path, e.g. "/alumno".
	Base string
	// Count is the aggregate path. Most entities expose "{base}/count";
	// groups deviate with "/grupo/stats/count".
	Count string
}

// ByID returns the member path for an id.
func (e Endpoints) ByID(id string) string {
	return e.Base + "/" + url.PathEscape(id)
}

// Endpoint tables for the five entities.
var (
	ProgramEndpoints = Endpoints{Base: "/programa-estudio", Count: "/programa-estudio/count"}
	SubjectEndpoints = Endpoints{Base: "/asignatura", Count: "/asignatura/count"}
	TeacherEndpoints = Endpoints{Base: "/docente", Count: "/docente/count"}
	StudentEndpoints = Endpoints{Base: "/alumno", Count: "/alumno/count"}
	GroupEndpoints   = Endpoints{Base: "/grupo", Count: "/grupo/stats/count"}
)

// Entity-specific filter and sub-resource paths.

// SubjectsBySemesterPath filters subjects taught in a semester.
func SubjectsBySemesterPath(semester int) string {
	return "/asignatura/cuatrimestre/" + strconv.Itoa(semester)
}

// SubjectsByProgramPath filters subjects of a study program.
func SubjectsByProgramPath(programID string) string {
	return "/asignatura/programa/" + url.PathEscape(programID)
}

// SubjectsByProgramAndSemesterPath combines both subject filters.
func SubjectsByProgramAndSemesterPath(programID string, semester int) string {
	return fmt.Sprintf("/asignatura/programa/%s/cuatrimestre/%d", url.PathEscape(programID), semester)
}

// SubjectCountByProgramPath counts the subjects of a study program.
func SubjectCountByProgramPath(programID string) string {
	return "/asignatura/programa/" + url.PathEscape(programID) + "/count"
}

// TeachersBySubjectPath filters teachers competent in a subject.
func TeachersBySubjectPath(subjectID string) string {
	return "/docente/asignatura/" + url.PathEscape(subjectID)
}

// TeacherCompetencyPath addresses one competency of a teacher.
func TeacherCompetencyPath(teacherID, subjectID string) string {
	return fmt.Sprintf("/docente/%s/competencia/%s", url.PathEscape(teacherID), url.PathEscape(subjectID))
}

// TeacherCompetenciesPath bulk-replaces a teacher's competencies.
func TeacherCompetenciesPath(teacherID string) string {
	return "/docente/" + url.PathEscape(teacherID) + "/competencias"
}

// StudentByEnrollmentPath looks a student up by enrollment number.
func StudentByEnrollmentPath(matricula string) string {
	return "/alumno/matricula/" + url.PathEscape(matricula)
}

// StudentsBySemesterPath filters students by current semester.
func StudentsBySemesterPath(semester int) string {
	return "/alumno/cuatrimestre/" + strconv.Itoa(semester)
}

// GroupFilterKind selects the relationship a group filter runs over.
type GroupFilterKind string

const (
	GroupsBySubject GroupFilterKind = "asignatura"
	GroupsByTeacher GroupFilterKind = "docente"
	GroupsByStudent GroupFilterKind = "alumno"
)

// GroupsFilterPath filters groups by one of their relationships.
func GroupsFilterPath(kind GroupFilterKind, id string) string {
	return fmt.Sprintf("/grupo/filter/%s/%s", kind, url.PathEscape(id))
}

// GroupStudentPath addresses one student's membership in a group.
func GroupStudentPath(groupID, studentID string) string {
	return fmt.Sprintf("/grupo/%s/alumno/%s", url.PathEscape(groupID), url.PathEscape(studentID))
}

// GroupStudentsPath bulk-replaces a group's student roster.
func GroupStudentsPath(groupID string) string {
	return "/grupo/" + url.PathEscape(groupID) + "/alumnos"
}

// GroupStudentCountPath counts the students enrolled in a group.
func GroupStudentCountPath(groupID string) string {
	return "/grupo/" + url.PathEscape(groupID) + "/alumnos/count"
}
