package likes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fithire-backend/internal/bootstrap"
	"fithire-backend/internal/shared/config"
)

func TestLikeToggleAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	trainerToken := signupAccount(t, router, "trainer@example.com", "trainer")
	centerToken := signupAccount(t, router, "center@example.com", "center")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/centers", centerToken, map[string]any{
		"name":   "Iron Works Gym",
		"region": "seoul",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register center: expected 201, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodPost, "/api/v1/jobs", centerToken, map[string]any{
		"title":           "Pilates Instructor",
		"region":          "seoul",
		"categories":      []string{"pilates"},
		"employmentType":  "part_time",
		"experienceLevel": "senior",
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

	// First toggle likes, second removes.
	if liked := toggleLike(t, router, trainerToken, posting.ID); !liked {
		t.Fatalf("expected first toggle to like")
	}
	if liked := getLiked(t, router, trainerToken, posting.ID); !liked {
		t.Fatalf("expected liked state after toggle")
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/likes", trainerToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list likes: expected 200, got %d", resp.Code)
	}
	var liked []struct {
		JobPostingID string `json:"jobPostingId"`
		Title        string `json:"title"`
		CenterName   string `json:"centerName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&liked); err != nil {
		t.Fatalf("decode likes: %v", err)
	}
	if len(liked) != 1 {
		t.Fatalf("expected 1 liked posting, got %d", len(liked))
	}
	if liked[0].JobPostingID != posting.ID || liked[0].Title != "Pilates Instructor" {
		t.Fatalf("unexpected liked posting: %+v", liked[0])
	}
	if liked[0].CenterName != "Iron Works Gym" {
		t.Fatalf("expected center name, got %q", liked[0].CenterName)
	}

	if liked := toggleLike(t, router, trainerToken, posting.ID); liked {
		t.Fatalf("expected second toggle to unlike")
	}
	if liked := getLiked(t, router, trainerToken, posting.ID); liked {
		t.Fatalf("expected unliked state after second toggle")
	}
}

func TestLikeUnknownPosting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(t)

	trainerToken := signupAccount(t, router, "trainer@example.com", "trainer")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+uuid.NewString()+"/like", trainerToken, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("like unknown posting: expected 404, got %d", resp.Code)
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

func toggleLike(t *testing.T, router *gin.Engine, token, postingID string) bool {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+postingID+"/like", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("toggle like: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	return decodeLiked(t, resp)
}

func getLiked(t *testing.T, router *gin.Engine, token, postingID string) bool {
	t.Helper()
	resp := doJSON(t, router, http.MethodGet, "/api/v1/jobs/"+postingID+"/like", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get like: expected 200, got %d", resp.Code)
	}
	return decodeLiked(t, resp)
}

func decodeLiked(t *testing.T, resp *httptest.ResponseRecorder) bool {
	t.Helper()
	var body struct {
		Liked bool `json:"liked"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode liked: %v", err)
	}
	return body.Liked
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
