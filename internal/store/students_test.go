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
)

func TestStudentWritesNormalizeEnrollment(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeEnvelope(w, 201, school.Student{ID: "a1", Name: "Ana", Enrollment: "A012345", CurrentSemester: 1})
	}))
	defer server.Close()

	cfg, _ := testConfig(server.URL)
	students := NewStudents(cfg)

	_, err := students.Create(context.Background(), school.StudentPayload{
		Name: "Ana", Enrollment: "  a012345 ", CurrentSemester: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "A012345", gotBody["matricula"])

	_, err = students.Update(context.Background(), "a1", school.StudentPayload{
		Name: "Ana", Enrollment: "a012345", CurrentSemester: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "A012345", gotBody["matricula"])
}

func TestByEnrollmentUsesCanonicalForm(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeEnvelope(w, 200, school.Student{ID: "a1", Name: "Ana", Enrollment: "A012345", CurrentSemester: 1})
	}))
	defer server.Close()

	cfg, _ := testConfig(server.URL)
	students := NewStudents(cfg)

	student, err := students.ByEnrollment(context.Background(), "  a012345 ")
	require.NoError(t, err)
	assert.Equal(t, "/alumno/matricula/A012345", gotPath)
	assert.Equal(t, "a1", student.ID)
}

func TestStudentsBySemesterFilter(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeEnvelope(w, 200, []school.Student{{ID: "a1", Name: "Ana", Enrollment: "A01", CurrentSemester: 3}})
	}))
	defer server.Close()

	cfg, _ := testConfig(server.URL)
	students := NewStudents(cfg)

	result, err := students.BySemester(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/alumno/cuatrimestre/3", gotPath)
	require.Len(t, result, 1)
	// Filter reads never touch the cache.
	assert.Empty(t, students.Items())
}
