package classify

import "fmt"

// Entity context names used across the console.
const (
	EntityProgram = "study program"
	EntitySubject = "subject"
	EntityTeacher = "teacher"
	EntityStudent = "student"
	EntityGroup   = "group"
)

// Messages independent of the entity context.
var genericMessages = map[Kind]string{
	Network:      "could not reach the server; check that the backend is running",
	Timeout:      "the request took too long; please try again",
	Validation:   "the provided data is not valid; please review the fields",
	Unauthorized: "you do not have permission to perform this action",
	Server:       "the server encountered a problem; please try again later",
	Unknown:      "an unexpected error occurred; please try again",
}

// Conflict wording differs per entity because each carries a different
// uniqueness rule.
var conflictMessages = map[string]string{
	EntityProgram: "a study program with this name already exists",
	EntitySubject: "this subject already exists in the selected program",
	EntityTeacher: "a teacher with this name already exists",
	EntityStudent: "a student with this enrollment number already exists",
	EntityGroup:   "a group with this name already exists for this subject",
}

// messageFor resolves the template for an entity context and kind.
func messageFor(entity string, kind Kind) string {
	switch kind {
	case NotFound:
		return fmt.Sprintf("the requested %s was not found", entity)
	case Conflict:
		if msg, ok := conflictMessages[entity]; ok {
			return msg
		}
		return fmt.Sprintf("this %s already exists", entity)
	case CompetencyViolation:
		return "the selected teacher is not qualified for the chosen subject"
	default:
		if msg, ok := genericMessages[kind]; ok {
			return msg
		}
		return genericMessages[Unknown]
	}
}
