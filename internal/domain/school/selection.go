package school

// Selection is the dependent form selection tuple used when composing a
// group: program determines the semester range, program+semester narrow
// the subjects, and the subject narrows the qualified teachers. An empty
// string (or zero semester) means "not selected".
type Selection struct {
	ProgramID string
	Semester  int
	SubjectID string
	TeacherID string
}

// SelectionField names a field of Selection for cascade resolution.
type SelectionField int

const (
	FieldProgram SelectionField = iota
	FieldSemester
	FieldSubject
	FieldTeacher
)

// MaxSemesterFor returns the highest semester a subject of the program
// may be placed in. Callers must clamp or reset a selected semester that
// exceeds this whenever the referenced program changes.
func MaxSemesterFor(program StudyProgram) int {
	return program.SemesterCount
}

// ClampSemester resets an out-of-range semester selection against the
// program's bound. Zero is returned for a selection that no longer fits,
// forcing the user to pick again rather than silently moving the subject.
func ClampSemester(semester int, program StudyProgram) int {
	if semester < 1 || semester > MaxSemesterFor(program) {
		return 0
	}
	return semester
}

// CompetentTeachersFor filters teachers to those qualified for the
// subject. Input order is preserved; the result is never nil.
func CompetentTeachersFor(subjectID string, teachers []Teacher) []Teacher {
	competent := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.CompetentIn(subjectID) {
			competent = append(competent, t)
		}
	}
	return competent
}

// CascadeReset clears every selection field downstream of the one that
// changed. The dependency order is fixed: Program → Semester → Subject →
// Teacher. Changing the teacher clears nothing below it.
func CascadeReset(sel Selection, changed SelectionField) Selection {
	switch changed {
	case FieldProgram:
		sel.Semester = 0
		fallthrough
	case FieldSemester:
		sel.SubjectID = ""
		fallthrough
	case FieldSubject:
		sel.TeacherID = ""
	}
	return sel
}

// SubjectsMatching filters subjects by program and/or semester. An unset
// filter (empty programID, semester <= 0) is an identity filter, never an
// empty-set filter.
func SubjectsMatching(programID string, semester int, subjects []Subject) []Subject {
	matched := make([]Subject, 0, len(subjects))
	for _, s := range subjects {
		if programID != "" && s.StudyProgramID != programID {
			continue
		}
		if semester > 0 && s.Semester != semester {
			continue
		}
		matched = append(matched, s)
	}
	return matched
}
