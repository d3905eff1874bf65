package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/accounts"
	auction "auction-house/internal/auctionService"
	auth "auction-house/internal/authService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/sessions"

	"github.com/gin-gonic/gin"
)

// TestStackOptions tunes the wired stack for a single test.
type TestStackOptions struct {
	SessionTTL            time.Duration
	MinPasswordLength     int
	AllowStartingPriceBid bool
}

func defaultOptions() TestStackOptions {
	return TestStackOptions{
		SessionTTL:        time.Hour,
		MinPasswordLength: 8,
	}
}

// SetupTestRouter wires the full in-memory stack for integration testing.
func SetupTestRouter(opts TestStackOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userStore := accounts.NewStore(opts.MinPasswordLength)
	sessionManager := sessions.NewManager(opts.SessionTTL)
	repo := repository.NewMemoryRepo(opts.AllowStartingPriceBid)

	auctionSvc := auction.NewAuctionService(repo, 1.0)
	authSvc := auth.NewAuthService(userStore, sessionManager)

	return server.SetupRouter(auctionSvc, authSvc)
}

// ExecuteRequest executes an HTTP request with an optional session token and
// parses the JSON response.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// responseData extracts the "data" object from a structured response.
func responseData(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

// registerAndLogin creates a user and returns a valid session token.
func registerAndLogin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	_, w := ExecuteRequest(t, router, "POST", "/register", "", map[string]any{
		"username": username,
		"password": password,
	})
	if w.Code != 201 {
		t.Fatalf("register %s failed with status %d: %s", username, w.Code, w.Body.String())
	}

	resp, w := ExecuteRequest(t, router, "POST", "/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	if w.Code != 200 {
		t.Fatalf("login %s failed with status %d: %s", username, w.Code, w.Body.String())
	}

	return responseData(t, resp)["token"].(string)
}

// createAuction creates an auction and returns its id.
func createAuction(t *testing.T, router *gin.Engine, token string, startingPrice, minIncrement float64, durationSeconds int64) string {
	t.Helper()

	resp, w := ExecuteRequest(t, router, "POST", "/create_auction", token, map[string]any{
		"title":            "Vintage camera",
		"description":      "1970s rangefinder",
		"starting_price":   startingPrice,
		"min_increment":    minIncrement,
		"duration_seconds": durationSeconds,
	})
	if w.Code != 201 {
		t.Fatalf("create_auction failed with status %d: %s", w.Code, w.Body.String())
	}

	return responseData(t, resp)["auction_id"].(string)
}
