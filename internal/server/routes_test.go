package server

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"jobportal-backend/internal/store"
	"jobportal-backend/internal/testutil"
)

func testEngine(t *testing.T) (*gin.Engine, *store.Storage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := &Server{Store: store.New()}
	return s.RegisterRoutes().(*gin.Engine), s.Store
}

func TestHealthCheck(t *testing.T) {
	r, _ := testEngine(t)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", resp["message"])
}

// Full round trip through the registered routes: register both roles,
// log in, post a job, find it, apply, review, check both dashboards.
func TestEndToEndFlow(t *testing.T) {
	r, _ := testEngine(t)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"email":        "boss@example.com",
		"password":     "secret123",
		"name":         "Bess Boss",
		"company_name": "Acme Corp",
	}, "", r, "/auth/register/employer", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{
		"email":    "seeker@example.com",
		"password": "secret123",
		"name":     "Sam Seeker",
	}, "", r, "/auth/register/jobseeker", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email":    "boss@example.com",
		"password": "secret123",
		"role":     "employer",
	}, "", r, "/auth/login", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	employerTok := resp["access_token"].(string)

	rec, resp = testutil.MakeJSONRequest(gin.H{
		"email":    "seeker@example.com",
		"password": "secret123",
		"role":     "jobseeker",
	}, "", r, "/auth/login", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	seekerTok := resp["access_token"].(string)

	rec, resp = testutil.MakeJSONRequest(gin.H{
		"title":       "Backend Engineer",
		"description": "Go and Rust",
		"company":     "Ignored Co",
		"location":    "Remote",
		"skills":      []string{"go", "rust"},
	}, employerTok, r, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Acme Corp", resp["company"])
	jobID := resp["id"].(float64)

	// Public listing, no token.
	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/jobs?skills=go", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(gin.H{
		"job_id":       int(jobID),
		"seeker_email": "seeker@example.com",
		"cover_letter": "I love Go",
	}, seekerTok, r, "/applications", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	appID := resp["id"].(float64)

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "accepted"}, employerTok, r,
		"/applications/"+itoa(appID)+"/review", http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "accepted", resp["status"])

	rec, resp = testutil.MakeJSONRequest(nil, seekerTok, r, "/dashboard/jobseeker", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["num_applications"])

	rec, resp = testutil.MakeJSONRequest(nil, employerTok, r, "/dashboard/employer", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["num_jobs_posted"])
	assert.Equal(t, float64(1), resp["num_applications"])
}

func itoa(f float64) string {
	return strconv.Itoa(int(f))
}
