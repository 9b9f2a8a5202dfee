package dashboard_test

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

func TestDashboardOverviews(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	trainerToken := signupAccount(t, router, "trainer@example.com", "trainer")
	centerToken := signupAccount(t, router, "center@example.com", "center")

	// A center account sees 404 until a center is registered.
	resp := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/center", centerToken, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("dashboard without center: expected 404, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/centers", centerToken, map[string]any{
		"name":   "Iron Works Gym",
		"region": "seoul",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register center: expected 201, got %d", resp.Code)
	}

	// Seed one posting, one resume, one application, one like.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs", centerToken, map[string]any{
		"title":           "PT Coach",
		"region":          "seoul",
		"categories":      []string{"pt"},
		"employmentType":  "full_time",
		"experienceLevel": "junior",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create job: expected 201, got %d", resp.Code)
	}
	var posting struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&posting); err != nil {
		t.Fatalf("decode posting: %v", err)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/resumes", trainerToken, map[string]any{
		"title":      "PT Resume",
		"categories": []string{"pt"},
		"region":     "seoul",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create resume: expected 201, got %d", resp.Code)
	}
	var resume struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&resume); err != nil {
		t.Fatalf("decode resume: %v", err)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+posting.ID+"/applications", trainerToken, map[string]any{
		"resumeId": resume.ID,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("apply: expected 201, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+posting.ID+"/like", trainerToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/trainer", trainerToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("trainer dashboard: expected 200, got %d", resp.Code)
	}
	var trainer struct {
		ResumeCount         int `json:"resumeCount"`
		TotalApplications   int `json:"totalApplications"`
		PendingApplications int `json:"pendingApplications"`
		LikeCount           int `json:"likeCount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&trainer); err != nil {
		t.Fatalf("decode trainer overview: %v", err)
	}
	if trainer.ResumeCount != 1 || trainer.TotalApplications != 1 || trainer.PendingApplications != 1 || trainer.LikeCount != 1 {
		t.Fatalf("unexpected trainer overview: %+v", trainer)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/center", centerToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("center dashboard: expected 200, got %d", resp.Code)
	}
	var center struct {
		JobPostingCount  int                  `json:"jobPostingCount"`
		ActiveJobCount   int                  `json:"activeJobCount"`
		TotalApplicants  int                  `json:"totalApplicants"`
		RecentApplicants []recentApplicantRow `json:"recentApplicants"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&center); err != nil {
		t.Fatalf("decode center overview: %v", err)
	}
	if center.JobPostingCount != 1 || center.ActiveJobCount != 1 || center.TotalApplicants != 1 {
		t.Fatalf("unexpected center overview: %+v", center)
	}
	if len(center.RecentApplicants) != 1 {
		t.Fatalf("expected 1 recent applicant, got %d", len(center.RecentApplicants))
	}
	recent := center.RecentApplicants[0]
	if recent.ApplicantEmail != "trainer@example.com" {
		t.Fatalf("unexpected applicant email %q", recent.ApplicantEmail)
	}
	if recent.ResumeTitle != "PT Resume" || recent.PostingTitle != "PT Coach" {
		t.Fatalf("unexpected recent applicant context: %+v", recent)
	}
	if recent.JobPostingID != posting.ID || recent.Status != "pending" {
		t.Fatalf("unexpected recent applicant row: %+v", recent)
	}

	// Role checks cut across dashboards.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/center", trainerToken, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("trainer on center dashboard: expected 403, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/trainer", centerToken, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("center on trainer dashboard: expected 403, got %d", resp.Code)
	}
}

type recentApplicantRow struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
	ResumeTitle    string `json:"resumeTitle"`
	JobPostingID   string `json:"jobPostingId"`
	PostingTitle   string `json:"postingTitle"`
}

func TestDashboardRecentApplicantsCapped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	centerToken := signupAccount(t, router, "owner@example.com", "center")
	resp := doJSON(t, router, http.MethodPost, "/api/v1/centers", centerToken, map[string]any{
		"name":   "Summit Fitness",
		"region": "busan",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register center: expected 201, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs", centerToken, map[string]any{
		"title":           "Yoga Instructor",
		"region":          "busan",
		"categories":      []string{"yoga"},
		"employmentType":  "part_time",
		"experienceLevel": "junior",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create job: expected 201, got %d", resp.Code)
	}
	var posting struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&posting); err != nil {
		t.Fatalf("decode posting: %v", err)
	}

	emails := []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com", "e@example.com", "f@example.com", "g@example.com"}
	for _, email := range emails {
		token := signupAccount(t, router, email, "trainer")
		resp = doJSON(t, router, http.MethodPost, "/api/v1/resumes", token, map[string]any{
			"title":      "Yoga Resume",
			"categories": []string{"yoga"},
			"region":     "busan",
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("create resume for %s: expected 201, got %d", email, resp.Code)
		}
		var resume struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&resume); err != nil {
			t.Fatalf("decode resume: %v", err)
		}
		resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+posting.ID+"/applications", token, map[string]any{
			"resumeId": resume.ID,
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("apply as %s: expected 201, got %d", email, resp.Code)
		}
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/center", centerToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("center dashboard: expected 200, got %d", resp.Code)
	}
	var center struct {
		TotalApplicants  int                  `json:"totalApplicants"`
		RecentApplicants []recentApplicantRow `json:"recentApplicants"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&center); err != nil {
		t.Fatalf("decode center overview: %v", err)
	}
	if center.TotalApplicants != len(emails) {
		t.Fatalf("expected %d applicants, got %d", len(emails), center.TotalApplicants)
	}
	if len(center.RecentApplicants) != 5 {
		t.Fatalf("expected feed capped at 5, got %d", len(center.RecentApplicants))
	}
	for i, row := range center.RecentApplicants {
		if row.PostingTitle != "Yoga Instructor" || row.ApplicantEmail == "" {
			t.Fatalf("unexpected feed row %d: %+v", i, row)
		}
	}
	// Newest first, so the two earliest applicants fall off.
	seen := map[string]bool{}
	for _, row := range center.RecentApplicants {
		seen[row.ApplicantEmail] = true
	}
	if seen["a@example.com"] || seen["b@example.com"] {
		t.Fatalf("expected earliest applicants dropped from feed, got %v", seen)
	}
	if !seen["g@example.com"] {
		t.Fatalf("expected newest applicant in feed, got %v", seen)
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

func signupAccount(t *testing.T, router *gin.Engine, email, role string) string {
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
	return session.Token
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
