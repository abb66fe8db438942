package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/samwong-dev/family-ledger/backend/internal/router"
	"github.com/samwong-dev/family-ledger/backend/validators"
	"gorm.io/gorm"
)

// setupTestServer starts the full API against a throwaway sqlite database
func setupTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	if err := router.SetupRoutes(e, db); err != nil {
		t.Fatalf("failed to set up routes: %v", err)
	}

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server, db
}

// doJSON performs a JSON request, attaching the bearer token when given
func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// registerUser creates a user through the API and returns its token and ID
func registerUser(t *testing.T, server *httptest.Server, name, email string) (string, uint) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeJSON(t, resp, &body)
	if body.Token == "" {
		t.Fatal("register returned an empty token")
	}
	return body.Token, body.User.ID
}

// createFamily creates a family through the API and returns its ID
func createFamily(t *testing.T, server *httptest.Server, token, name string) uint {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/families", token, map[string]string{
		"name": name,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create family returned status %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var body struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &body)
	return body.ID
}

func joinFamily(t *testing.T, server *httptest.Server, token string, familyID uint) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, familyURL(server, familyID)+"/join", token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("join family returned status %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func familyURL(server *httptest.Server, familyID uint) string {
	return server.URL + "/api/v1/families/" + uitoa(familyID)
}

func userURL(server *httptest.Server, userID uint) string {
	return server.URL + "/api/v1/users/" + uitoa(userID)
}

// makeFriends sends a request from the first user to the second and accepts
// it, returning nothing; both friendship edges exist afterwards
func makeFriends(t *testing.T, server *httptest.Server, fromToken string, toToken string, toUserID uint) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, userURL(server, toUserID)+"/send-friend-request", fromToken, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("send friend request returned status %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var request struct {
		ID uint `json:"ID"`
	}
	decodeJSON(t, resp, &request)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/friend-requests/"+uitoa(request.ID)+"/accept", toToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("accept friend request returned status %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
