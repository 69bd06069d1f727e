package store

import (
	"github.com/escolar-hub/escolar-console/internal/classify"
	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
)

// Programs is the study-program store.
type Programs struct {
	*Store[school.StudyProgram, school.StudyProgramPayload]
}

// NewPrograms creates the study-program store.
func NewPrograms(cfg Config) *Programs {
	return &Programs{
		Store: New[school.StudyProgram, school.StudyProgramPayload](cfg, Descriptor{
			Entity:    classify.EntityProgram,
			Endpoints: escolar.ProgramEndpoints,
			Messages: ActionMessages{
				Created: "the study program was created successfully",
				Updated: "the study program was updated successfully",
				Deleted: "the study program was deleted successfully",
			},
		}),
	}
}
