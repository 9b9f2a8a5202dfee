package resumes_test

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

func TestResumeCRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	token := signupTrainer(t, router, "trainer@example.com")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/resumes", token, map[string]any{
		"title":          "Senior PT Resume",
		"categories":     []string{"pt", "crossfit"},
		"region":         "seoul",
		"certifications": []string{"NSCA-CPT"},
		"careerHistory": []map[string]string{
			{"company": "Iron Works Gym", "position": "Head Trainer", "period": "2020-2024"},
		},
		"isPrimary": true,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		Categories    []string `json:"categories"`
		CareerHistory []struct {
			Company string `json:"company"`
		} `json:"careerHistory"`
		IsPrimary bool `json:"isPrimary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if len(created.Categories) != 2 || len(created.CareerHistory) != 1 {
		t.Fatalf("unexpected resume: %+v", created)
	}
	if !created.IsPrimary {
		t.Fatalf("expected primary resume")
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/resumes", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	var list []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("expected the created resume in list, got %+v", list)
	}

	resp = doJSON(t, router, http.MethodPut, "/api/v1/resumes/"+created.ID, token, map[string]any{
		"title":      "Senior PT Resume v2",
		"categories": []string{"pt"},
		"region":     "seoul",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Title != "Senior PT Resume v2" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/resumes/"+created.ID, token, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodGet, "/api/v1/resumes/"+created.ID, token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.Code)
	}
}

func TestResumeOwnershipAndValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	owner := signupTrainer(t, router, "owner@example.com")
	stranger := signupTrainer(t, router, "stranger@example.com")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/resumes", owner, map[string]any{
		"title":      "PT Resume",
		"categories": []string{"pt"},
		"region":     "seoul",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	// Another trainer can neither read nor mutate it.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/resumes/"+created.ID, stranger, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("foreign get: expected 403, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodDelete, "/api/v1/resumes/"+created.ID, stranger, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403, got %d", resp.Code)
	}

	// Categories are mandatory; career entries must be complete.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/resumes", owner, map[string]any{
		"title":  "No Categories",
		"region": "seoul",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing categories: expected 400, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodPost, "/api/v1/resumes", owner, map[string]any{
		"title":      "Broken History",
		"categories": []string{"pt"},
		"region":     "seoul",
		"careerHistory": []map[string]string{
			{"company": "", "position": "Trainer", "period": "2020"},
		},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("empty career company: expected 400, got %d", resp.Code)
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

func signupTrainer(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"email":    email,
		"password": "secret123",
		"name":     "Trainer",
		"role":     "trainer",
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
