package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/notify"
)

func TestTeacherCompetencyMutationsPatchCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeEnvelope(w, 200, []school.Teacher{
				{ID: "t1", Name: "B. Rivera", CompetencySubjectIDs: []string{"s1"}},
				{ID: "t2", Name: "A. Lopez", CompetencySubjectIDs: []string{}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/docente/t2/competencia/s1":
			writeEnvelope(w, 200, school.Teacher{ID: "t2", Name: "A. Lopez", CompetencySubjectIDs: []string{"s1"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/docente/t1/competencia/s1":
			writeEnvelope(w, 200, school.Teacher{ID: "t1", Name: "B. Rivera", CompetencySubjectIDs: []string{}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg, bus := testConfig(server.URL)
	teachers := NewTeachers(cfg)
	require.NoError(t, teachers.FetchAll(context.Background()))

	added, err := teachers.AddCompetency(context.Background(), "t2", "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, added.CompetencySubjectIDs)

	removed, err := teachers.RemoveCompetency(context.Background(), "t1", "s1")
	require.NoError(t, err)
	assert.Empty(t, removed.CompetencySubjectIDs)

	// Cache patched in place, order untouched.
	items := teachers.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "t1", items[0].ID)
	assert.Empty(t, items[0].CompetencySubjectIDs)
	assert.Equal(t, "t2", items[1].ID)
	assert.Equal(t, []string{"s1"}, items[1].CompetencySubjectIDs)

	assert.Equal(t, []notify.Severity{notify.SeveritySuccess, notify.SeveritySuccess}, severities(bus))
}

func TestReplaceCompetenciesSendsBulkBody(t *testing.T) {
	var gotBody map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch && r.URL.Path == "/docente/t1/competencias" {
			json.NewDecoder(r.Body).Decode(&gotBody)
			writeEnvelope(w, 200, school.Teacher{ID: "t1", Name: "B. Rivera", CompetencySubjectIDs: []string{"s1", "s2"}})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg, _ := testConfig(server.URL)
	teachers := NewTeachers(cfg)

	updated, err := teachers.ReplaceCompetencies(context.Background(), "t1", []string{"s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, updated.CompetencySubjectIDs)
	assert.Equal(t, []string{"s1", "s2"}, gotBody["asignaturaIds"])
}

func TestCompetentForHitsFilterEndpoint(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeEnvelope(w, 200, []school.Teacher{{ID: "t1", Name: "B. Rivera", CompetencySubjectIDs: []string{"s1"}}})
	}))
	defer server.Close()

	cfg, _ := testConfig(server.URL)
	teachers := NewTeachers(cfg)

	competent, err := teachers.CompetentFor(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "/docente/asignatura/s1", gotPath)
	require.Len(t, competent, 1)

	// Read-only: the cache stays empty.
	assert.Empty(t, teachers.Items())
}
