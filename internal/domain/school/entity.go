// Package school contains the core domain model of the administrative
// console: study programs, subjects, teachers, students and groups, plus
// the pure selection rules that relate them. This package has zero
// infrastructure dependencies.
package school

import "strings"

// Entity is implemented by every record managed by an entity store.
// Identifiers are opaque and assigned by the remote service, never here.
type Entity interface {
	EntityID() string
}

// StudyProgram is a degree program with a fixed number of semesters.
type StudyProgram struct {
	ID            string `json:"id"`
	Name          string `json:"nombre"`
	SemesterCount int    `json:"numeroCuatrimestres"`
}

// EntityID implements Entity.
func (p StudyProgram) EntityID() string { return p.ID }

// Subject is taught in one semester of one study program.
type Subject struct {
	ID             string `json:"id"`
	Name           string `json:"nombre"`
	Semester       int    `json:"cuatrimestre"`
	StudyProgramID string `json:"programaEstudioId"`
}

// EntityID implements Entity.
func (s Subject) EntityID() string { return s.ID }

// Teacher holds the set of subjects the teacher is qualified to teach.
// CompetencySubjectIDs has set semantics; order carries no meaning.
type Teacher struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"nombre"`
	CompetencySubjectIDs []string `json:"asignaturasCompetenciaIds"`
}

// EntityID implements Entity.
func (t Teacher) EntityID() string { return t.ID }

// CompetentIn reports whether the teacher is qualified for the subject.
func (t Teacher) CompetentIn(subjectID string) bool {
	for _, id := range t.CompetencySubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}

// Student is identified by a business-unique enrollment number.
type Student struct {
	ID              string `json:"id"`
	Name            string `json:"nombre"`
	Enrollment      string `json:"matricula"`
	CurrentSemester int    `json:"cuatrimestreActual"`
}

// EntityID implements Entity.
func (s Student) EntityID() string { return s.ID }

// Group assigns a teacher and a set of students to a subject.
//
// SubjectNameSnapshot and TeacherNameSnapshot are denormalized display
// copies captured by the remote service at write time. They are read-only
// projections and may go stale relative to the live Subject/Teacher name;
// this layer never recomputes them.
type Group struct {
	ID                  string   `json:"id"`
	Name                string   `json:"nombre"`
	SubjectID           string   `json:"asignaturaId"`
	TeacherID           string   `json:"docenteId"`
	StudentIDs          []string `json:"alumnoIds"`
	SubjectNameSnapshot string   `json:"asignaturaNombreSnapshot"`
	TeacherNameSnapshot string   `json:"docenteNombreSnapshot"`
}

// EntityID implements Entity.
func (g Group) EntityID() string { return g.ID }

// NormalizeEnrollment trims surrounding whitespace and uppercases an
// enrollment number. Applied before every student create/update so the
// business-uniqueness check on the server always sees the canonical form.
func NormalizeEnrollment(matricula string) string {
	return strings.ToUpper(strings.TrimSpace(matricula))
}
