package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar-hub/escolar-console/internal/classify"
	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
)

func TestCheckCompetency(t *testing.T) {
	teachers := []school.Teacher{
		{ID: "t1", Name: "B. Rivera", CompetencySubjectIDs: []string{"s1"}},
		{ID: "t2", Name: "A. Lopez", CompetencySubjectIDs: []string{}},
	}

	cfg, _ := testConfig("http://unused")
	groups := NewGroups(cfg)

	ok := school.GroupPayload{Name: "9A", SubjectID: "s1", TeacherID: "t1"}
	assert.NoError(t, groups.CheckCompetency(ok, teachers))

	violation := school.GroupPayload{Name: "9A", SubjectID: "s1", TeacherID: "t2"}
	err := groups.CheckCompetency(violation, teachers)
	require.Error(t, err)

	var ce *classify.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, classify.CompetencyViolation, ce.Kind)
	assert.Contains(t, ce.Message, "not qualified")

	// An unknown teacher id cannot be proven competent either.
	unknown := school.GroupPayload{Name: "9A", SubjectID: "s1", TeacherID: "t9"}
	assert.True(t, errors.Is(groups.CheckCompetency(unknown, teachers), &classify.Error{Kind: classify.CompetencyViolation}))
}

func TestGroupRosterOperations(t *testing.T) {
	base := school.Group{
		ID: "g1", Name: "9A", SubjectID: "s1", TeacherID: "t1",
		StudentIDs:          []string{"a1"},
		SubjectNameSnapshot: "Databases", TeacherNameSnapshot: "B. Rivera",
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeEnvelope(w, 200, []school.Group{base})
		case r.Method == http.MethodPost && r.URL.Path == "/grupo/g1/alumno/a2":
			g := base
			g.StudentIDs = []string{"a1", "a2"}
			writeEnvelope(w, 200, g)
		case r.Method == http.MethodDelete && r.URL.Path == "/grupo/g1/alumno/a1":
			g := base
			g.StudentIDs = []string{}
			writeEnvelope(w, 200, g)
		case r.Method == http.MethodPatch && r.URL.Path == "/grupo/g1/alumnos":
			g := base
			g.StudentIDs = []string{"a3", "a4"}
			writeEnvelope(w, 200, g)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg, _ := testConfig(server.URL)
	groups := NewGroups(cfg)
	require.NoError(t, groups.FetchAll(context.Background()))

	enrolled, err := groups.EnrollStudent(context.Background(), "g1", "a2")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, enrolled.StudentIDs)
	assert.Equal(t, []string{"a1", "a2"}, groups.Items()[0].StudentIDs)

	unenrolled, err := groups.UnenrollStudent(context.Background(), "g1", "a1")
	require.NoError(t, err)
	assert.Empty(t, unenrolled.StudentIDs)

	replaced, err := groups.ReplaceStudents(context.Background(), "g1", []string{"a3", "a4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a4"}, replaced.StudentIDs)
	assert.Equal(t, []string{"a3", "a4"}, groups.Items()[0].StudentIDs)

	// Snapshot fields ride along unchanged; this layer never recomputes
	// them.
	assert.Equal(t, "Databases", groups.Items()[0].SubjectNameSnapshot)
}

func TestGroupFiltersAndCounts(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/grupo/stats/count":
			writeEnvelope(w, 200, escolar.CountDTO{Count: 3})
		case "/grupo/g1/alumnos/count":
			writeEnvelope(w, 200, escolar.CountDTO{Count: 12})
		default:
			writeEnvelope(w, 200, []school.Group{{ID: "g1", Name: "9A", SubjectID: "s1", TeacherID: "t1"}})
		}
	}))
	defer server.Close()

	cfg, _ := testConfig(server.URL)
	groups := NewGroups(cfg)

	bySubject, err := groups.BySubject(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, bySubject, 1)

	_, err = groups.ByTeacher(context.Background(), "t1")
	require.NoError(t, err)
	_, err = groups.ByStudent(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, 3, groups.Count(context.Background()))
	assert.Equal(t, 12, groups.StudentCount(context.Background(), "g1"))

	assert.Equal(t, []string{
		"/grupo/filter/asignatura/s1",
		"/grupo/filter/docente/t1",
		"/grupo/filter/alumno/a1",
		"/grupo/stats/count",
		"/grupo/g1/alumnos/count",
	}, paths)
}
