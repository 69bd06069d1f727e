package school

// Write payloads sent to the remote service. JSON names follow the wire
// contract; validate tags are checked client-side before any request
// leaves the process.

// StudyProgramPayload creates or updates a study program.
type StudyProgramPayload struct {
	Name          string `json:"nombre" validate:"required"`
	SemesterCount int    `json:"numeroCuatrimestres" validate:"required,gt=0"`
}

// SubjectPayload creates or updates a subject.
type SubjectPayload struct {
	Name           string `json:"nombre" validate:"required"`
	Semester       int    `json:"cuatrimestre" validate:"required,gte=1"`
	StudyProgramID string `json:"programaEstudioId" validate:"required"`
}

// TeacherPayload creates or updates a teacher.
type TeacherPayload struct {
	Name                 string   `json:"nombre" validate:"required"`
	CompetencySubjectIDs []string `json:"asignaturasCompetenciaIds,omitempty"`
}

// StudentPayload creates or updates a student.
type StudentPayload struct {
	Name            string `json:"nombre" validate:"required"`
	Enrollment      string `json:"matricula" validate:"required"`
	CurrentSemester int    `json:"cuatrimestreActual" validate:"required,gte=1,lte=10"`
}

// GroupPayload creates or updates a group. The snapshot fields of Group
// are produced server-side and are deliberately absent here.
type GroupPayload struct {
	Name       string   `json:"nombre" validate:"required"`
	SubjectID  string   `json:"asignaturaId" validate:"required"`
	TeacherID  string   `json:"docenteId" validate:"required"`
	StudentIDs []string `json:"alumnoIds,omitempty"`
}

// Normalize returns a copy of the payload with the enrollment number in
// canonical form.
func (p StudentPayload) Normalize() StudentPayload {
	p.Enrollment = NormalizeEnrollment(p.Enrollment)
	return p
}
