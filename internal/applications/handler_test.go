package applications_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fithire-backend/internal/bootstrap"
	"fithire-backend/internal/shared/config"
)

func TestApplicationStatusWorkflow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	trainerToken := signup(t, router, "trainer@example.com", "trainer")
	centerToken := signup(t, router, "center@example.com", "center")

	registerCenter(t, router, centerToken)
	jobID := createJob(t, router, centerToken)
	resumeID := createResume(t, router, trainerToken)

	// Apply starts the workflow at pending.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", trainerToken, map[string]any{
		"resumeId": resumeID,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("apply: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var app struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if app.Status != "pending" {
		t.Fatalf("expected status pending, got %s", app.Status)
	}

	// Second apply to the same posting conflicts.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", trainerToken, map[string]any{
		"resumeId": resumeID,
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate apply: expected 409, got %d", resp.Code)
	}

	// Rejection without a message is refused before any state change.
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", centerToken, map[string]any{
		"status": "rejected",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("reject without message: expected 400, got %d", resp.Code)
	}

	// The application is still pending and moves to reviewed.
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", centerToken, map[string]any{
		"status": "reviewed",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("review: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// Reject with a message succeeds from reviewed.
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", centerToken, map[string]any{
		"status":  "rejected",
		"message": "not a fit for this role",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("reject: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var rejected struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rejected); err != nil {
		t.Fatalf("decode rejected: %v", err)
	}
	if rejected.Status != "rejected" {
		t.Fatalf("expected status rejected, got %s", rejected.Status)
	}
	if rejected.Message != "not a fit for this role" {
		t.Fatalf("expected rejection message, got %q", rejected.Message)
	}

	// Terminal states accept no further transitions.
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", centerToken, map[string]any{
		"status": "accepted",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("transition from rejected: expected 400, got %d", resp.Code)
	}

	// Cancellation only covers pending applications.
	resp = doJSON(t, router, http.MethodDelete, "/api/v1/applications/"+app.ID, trainerToken, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("cancel after rejection: expected 400, got %d", resp.Code)
	}
}

func TestApplicationCancelWhilePending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	trainerToken := signup(t, router, "trainer@example.com", "trainer")
	centerToken := signup(t, router, "center@example.com", "center")
	registerCenter(t, router, centerToken)
	jobID := createJob(t, router, centerToken)
	resumeID := createResume(t, router, trainerToken)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", trainerToken, map[string]any{
		"resumeId": resumeID,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("apply: expected 201, got %d", resp.Code)
	}
	var app struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("decode application: %v", err)
	}

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/applications/"+app.ID, trainerToken, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("cancel: expected 204, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/applications", trainerToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	var mine []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&mine); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("expected no applications after cancel, got %d", len(mine))
	}

	// The cancelled application is gone for the center too.
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", centerToken, map[string]any{
		"status": "reviewed",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status change on cancelled: expected 404, got %d", resp.Code)
	}
}

func TestApplicationAccessControl(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	trainerToken := signup(t, router, "trainer@example.com", "trainer")
	otherTrainer := signup(t, router, "other-trainer@example.com", "trainer")
	centerToken := signup(t, router, "center@example.com", "center")
	otherCenter := signup(t, router, "other-center@example.com", "center")

	registerCenter(t, router, centerToken)
	jobID := createJob(t, router, centerToken)
	resumeID := createResume(t, router, trainerToken)

	// Center accounts cannot apply.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", centerToken, map[string]any{
		"resumeId": resumeID,
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("apply as center: expected 403, got %d", resp.Code)
	}

	// Applying with someone else's resume is refused.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", otherTrainer, map[string]any{
		"resumeId": resumeID,
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("apply with foreign resume: expected 403, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", trainerToken, map[string]any{
		"resumeId": resumeID,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("apply: expected 201, got %d", resp.Code)
	}
	var app struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("decode application: %v", err)
	}

	// Only the posting's center moves the status.
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", otherCenter, map[string]any{
		"status": "reviewed",
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("status change by foreign center: expected 403, got %d", resp.Code)
	}

	// Detail is limited to the applicant and the posting's center.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/applications/"+app.ID, otherTrainer, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("detail by stranger: expected 403, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodGet, "/api/v1/applications/"+app.ID, centerToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("detail by posting center: expected 200, got %d", resp.Code)
	}
	var detail struct {
		Applicant struct {
			Email string `json:"email"`
		} `json:"applicant"`
		Posting struct {
			ID string `json:"id"`
		} `json:"posting"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.Applicant.Email != "trainer@example.com" {
		t.Fatalf("expected applicant email, got %q", detail.Applicant.Email)
	}
	if detail.Posting.ID != jobID {
		t.Fatalf("expected posting id %s, got %s", jobID, detail.Posting.ID)
	}
}

func TestApplyToInactivePosting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	trainerToken := signup(t, router, "trainer@example.com", "trainer")
	centerToken := signup(t, router, "center@example.com", "center")
	registerCenter(t, router, centerToken)
	jobID := createJob(t, router, centerToken)
	resumeID := createResume(t, router, trainerToken)

	resp := doJSON(t, router, http.MethodPatch, "/api/v1/jobs/"+jobID+"/active", centerToken, map[string]any{
		"isActive": false,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("deactivate: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", trainerToken, map[string]any{
		"resumeId": resumeID,
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("apply to inactive posting: expected 400, got %d", resp.Code)
	}

	// Missing resumeId never reaches the repo.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", trainerToken, map[string]any{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("apply without resume: expected 400, got %d", resp.Code)
	}
}

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func signup(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"email":    email,
		"password": "secret123",
		"name":     "Test " + role,
		"role":     role,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d: %s", email, resp.Code, resp.Body.String())
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected session token for %s", email)
	}
	return session.Token
}

func registerCenter(t *testing.T, router *gin.Engine, token string) {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/centers", token, map[string]any{
		"name":   "Iron Works Gym",
		"region": "seoul",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register center: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func createJob(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs", token, map[string]any{
		"title":           "Personal Trainer",
		"region":          "seoul",
		"categories":      []string{"pt"},
		"employmentType":  "full_time",
		"experienceLevel": "junior",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create job: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var posting struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&posting); err != nil {
		t.Fatalf("decode posting: %v", err)
	}
	return posting.ID
}

func createResume(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/resumes", token, map[string]any{
		"title":      "PT Resume",
		"categories": []string{"pt"},
		"region":     "seoul",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create resume: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var resume struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&resume); err != nil {
		t.Fatalf("decode resume: %v", err)
	}
	return resume.ID
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
