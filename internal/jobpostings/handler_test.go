package jobpostings_test

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

type postingPayload struct {
	Title           string   `json:"title"`
	Region          string   `json:"region"`
	Categories      []string `json:"categories"`
	EmploymentType  string   `json:"employmentType"`
	ExperienceLevel string   `json:"experienceLevel"`
}

func TestJobPostingFiltersAreAdditive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	centerToken := signupCenter(t, router, "center@example.com")

	seoulPT := createPosting(t, router, centerToken, postingPayload{
		Title: "PT Coach", Region: "seoul", Categories: []string{"pt"},
		EmploymentType: "full_time", ExperienceLevel: "junior",
	})
	seoulYoga := createPosting(t, router, centerToken, postingPayload{
		Title: "Yoga Instructor", Region: "seoul", Categories: []string{"yoga", "pilates"},
		EmploymentType: "part_time", ExperienceLevel: "senior",
	})
	busanPT := createPosting(t, router, centerToken, postingPayload{
		Title: "PT Coach Busan", Region: "busan", Categories: []string{"pt"},
		EmploymentType: "full_time", ExperienceLevel: "junior",
	})

	// No filter lists everything active.
	ids := listJobIDs(t, router, "/api/v1/jobs")
	wantIDs(t, ids, seoulPT, seoulYoga, busanPT)

	// Region alone.
	ids = listJobIDs(t, router, "/api/v1/jobs?region=seoul")
	wantIDs(t, ids, seoulPT, seoulYoga)

	// Categories match on overlap.
	ids = listJobIDs(t, router, "/api/v1/jobs?categories=pt")
	wantIDs(t, ids, seoulPT, busanPT)

	// Filters combine with AND; category list with OR.
	ids = listJobIDs(t, router, "/api/v1/jobs?region=seoul&categories=pt,yoga")
	wantIDs(t, ids, seoulPT, seoulYoga)

	ids = listJobIDs(t, router, "/api/v1/jobs?region=seoul&categories=pt,yoga&employmentType=part_time")
	wantIDs(t, ids, seoulYoga)

	ids = listJobIDs(t, router, "/api/v1/jobs?search=busan")
	wantIDs(t, ids, busanPT)

	// Deactivated postings disappear from the public listing.
	resp := doJSON(t, router, http.MethodPatch, "/api/v1/jobs/"+seoulPT+"/active", centerToken, map[string]any{
		"isActive": false,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("deactivate: expected 200, got %d", resp.Code)
	}
	ids = listJobIDs(t, router, "/api/v1/jobs?region=seoul")
	wantIDs(t, ids, seoulYoga)
}

func TestJobPostingViewCountsAndOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	centerToken := signupCenter(t, router, "center@example.com")
	otherToken := signupCenter(t, router, "other@example.com")

	jobID := createPosting(t, router, centerToken, postingPayload{
		Title: "Crossfit Coach", Region: "seoul", Categories: []string{"crossfit"},
		EmploymentType: "full_time", ExperienceLevel: "any",
	})

	// Each public view bumps the counter.
	for want := int64(1); want <= 2; want++ {
		resp := doJSON(t, router, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("view: expected 200, got %d", resp.Code)
		}
		var posting struct {
			ViewCount int64 `json:"viewCount"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&posting); err != nil {
			t.Fatalf("decode posting: %v", err)
		}
		if posting.ViewCount != want {
			t.Fatalf("expected viewCount %d, got %d", want, posting.ViewCount)
		}
	}

	// Management routes are scoped to the owning center.
	resp := doJSON(t, router, http.MethodPut, "/api/v1/jobs/"+jobID, otherToken, postingPayload{
		Title: "Hijacked", Region: "seoul", Categories: []string{"crossfit"},
		EmploymentType: "full_time", ExperienceLevel: "any",
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("foreign update: expected 403, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodDelete, "/api/v1/jobs/"+jobID, otherToken, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/jobs/"+jobID, centerToken, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("view after delete: expected 404, got %d", resp.Code)
	}
}

func TestJobPostingValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	centerToken := signupCenter(t, router, "center@example.com")

	// Categories are mandatory.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs", centerToken, map[string]any{
		"title": "PT", "region": "seoul",
		"employmentType": "full_time", "experienceLevel": "junior",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing categories: expected 400, got %d", resp.Code)
	}

	// Salary range must be ordered.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs", centerToken, map[string]any{
		"title": "PT", "region": "seoul", "categories": []string{"pt"},
		"employmentType": "full_time", "experienceLevel": "junior",
		"salaryType": "monthly", "salaryMin": 400, "salaryMax": 300,
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("inverted salary range: expected 400, got %d", resp.Code)
	}

	// Deadline must be a date.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs", centerToken, map[string]any{
		"title": "PT", "region": "seoul", "categories": []string{"pt"},
		"employmentType": "full_time", "experienceLevel": "junior",
		"deadline": "next week",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("bad deadline: expected 400, got %d", resp.Code)
	}

	// A center account must register its center before posting.
	orphanToken := signupNoCenter(t, router, "orphan@example.com")
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs", orphanToken, postingPayload{
		Title: "PT", Region: "seoul", Categories: []string{"pt"},
		EmploymentType: "full_time", ExperienceLevel: "junior",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("posting without center: expected 404, got %d", resp.Code)
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

func signupNoCenter(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"email":    email,
		"password": "secret123",
		"name":     "Center Owner",
		"role":     "center",
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

func signupCenter(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	token := signupNoCenter(t, router, email)
	resp := doJSON(t, router, http.MethodPost, "/api/v1/centers", token, map[string]any{
		"name":   "Gym " + email,
		"region": "seoul",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register center: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	return token
}

func createPosting(t *testing.T, router *gin.Engine, token string, payload postingPayload) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs", token, payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create posting: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var posting struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&posting); err != nil {
		t.Fatalf("decode posting: %v", err)
	}
	return posting.ID
}

func listJobIDs(t *testing.T, router *gin.Engine, path string) map[string]bool {
	t.Helper()
	resp := doJSON(t, router, http.MethodGet, path, "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list %s: expected 200, got %d", path, resp.Code)
	}
	var postings []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&postings); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	ids := make(map[string]bool, len(postings))
	for _, p := range postings {
		ids[p.ID] = true
	}
	return ids
}

func wantIDs(t *testing.T, got map[string]bool, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d postings, got %d", len(want), len(got))
	}
	for _, id := range want {
		if !got[id] {
			t.Fatalf("expected posting %s in listing", id)
		}
	}
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
