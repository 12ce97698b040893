package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/azhar2201/achievement-tracker/internal/ai"
	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/azhar2201/achievement-tracker/internal/services"
	jwtutil "github.com/azhar2201/achievement-tracker/pkg/jwt"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resumeEnv struct {
	achievementEnv
	students *memStudentStore
	resume   *ResumeHandler
}

func newResumeEnv() *resumeEnv {
	base := newAchievementEnv()
	students := newMemStudentStore()
	resumeService := services.NewResumeService(base.store, students, nil, ai.NewRuleBasedGenerator())
	return &resumeEnv{
		achievementEnv: *base,
		students:       students,
		resume:         NewResumeHandler(resumeService),
	}
}

func (e *resumeEnv) generate(t *testing.T, claims *jwtutil.Claims, body interface{}, query string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := mux.NewRouter()
	r.HandleFunc("/api/resume/generate", e.resume.GenerateResumeHandler).Methods("POST")
	req := httptest.NewRequest(http.MethodPost, "/api/resume/generate"+query, &buf)
	rec := httptest.NewRecorder()
	withClaims(claims, r).ServeHTTP(rec, req)
	return rec
}

// Full pipeline: submit, validate, generate. The validated project lands in
// the resume's projects section.
func TestGenerateResumeHandler_EndToEnd(t *testing.T) {
	env := newResumeEnv()
	claims := studentClaims("R1", "Aruzhan")

	rec := env.do(t, claims, http.MethodPost, "/api/achievements/log", submissionBody("X"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, adminClaims(), http.MethodPut,
		fmt.Sprintf("/api/achievements/%s/validate", created["id"]),
		map[string]string{"status": models.StatusValidated})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.generate(t, claims, map[string]interface{}{"mock": true}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resume models.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resume))
	assert.Equal(t, "rule-based", resume.GeneratedBy)
	assert.Equal(t, "Aruzhan", resume.PersonalInfo.Name)
	require.Len(t, resume.Projects, 1)
	assert.Equal(t, "X", resume.Projects[0].Title)
	assert.Empty(t, resume.Achievements)
}

func TestGenerateResumeHandler_NoValidatedIs404(t *testing.T) {
	env := newResumeEnv()
	claims := studentClaims("R1", "Aruzhan")

	rec := env.do(t, claims, http.MethodPost, "/api/achievements/log", submissionBody("X"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.generate(t, claims, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "no validated achievements")
}

func TestGenerateResumeHandler_MockQueryParam(t *testing.T) {
	env := newResumeEnv()
	claims := studentClaims("R1", "Aruzhan")

	rec := env.do(t, claims, http.MethodPost, "/api/achievements/log", submissionBody("X"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	rec = env.do(t, adminClaims(), http.MethodPut,
		fmt.Sprintf("/api/achievements/%s/validate", created["id"]),
		map[string]string{"status": models.StatusValidated})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.generate(t, claims, nil, "?mock=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var resume models.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resume))
	assert.Equal(t, "rule-based", resume.GeneratedBy)
}

func TestGenerateResumeHandler_CrossRollForbiddenForStudents(t *testing.T) {
	env := newResumeEnv()

	rec := env.do(t, studentClaims("R2", "Dana"), http.MethodPost, "/api/achievements/log", submissionBody("Y"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	rec = env.do(t, adminClaims(), http.MethodPut,
		fmt.Sprintf("/api/achievements/%s/validate", created["id"]),
		map[string]string{"status": models.StatusValidated})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.generate(t, studentClaims("R1", "Aruzhan"), map[string]interface{}{"rollNumber": "R2"}, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.generate(t, adminClaims(), map[string]interface{}{"rollNumber": "R2", "mock": true}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
