package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/catalog"
	"github.com/teetime/teetime/internal/pricing"
	"github.com/teetime/teetime/internal/repository/memory"
	"github.com/teetime/teetime/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, limiter *RateLimiter) *gin.Engine {
	t.Helper()
	return newTestRouterWithOptions(t, RouterOptions{CORSOrigins: []string{"*"}, AuthLimiter: limiter})
}

func newTestRouterWithOptions(t *testing.T, opts RouterOptions) *gin.Engine {
	t.Helper()
	c := catalog.Default()
	logger := zap.NewNop()
	playerRepo := memory.NewPlayerRepository()

	h := NewHandler(
		service.NewUserService(memory.NewUserRepository(), logger),
		service.NewPlayerService(playerRepo, logger),
		service.NewBookingService(memory.NewBookingRepository(), playerRepo, c, pricing.NewEngine(c), logger),
		c,
		logger,
	)
	h.now = func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }

	return h.Router(opts)
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		errMsg string
	}{
		{"signup", "/api/signup", `{"username":"golfer1","password":"pw"}`, http.StatusCreated, ""},
		{"duplicate", "/api/signup", `{"username":"golfer1","password":"pw"}`, http.StatusBadRequest, "Username already taken"},
		{"bad username", "/api/signup", `{"username":"a!","password":"pw"}`, http.StatusBadRequest, "Invalid username"},
		{"password too long", "/api/signup", `{"username":"golfer2","password":"` + strings.Repeat("x", 80) + `"}`, http.StatusBadRequest, "Password must be at most 72 bytes"},
		{"login", "/api/login", `{"username":"golfer1","password":"pw"}`, http.StatusOK, ""},
		{"wrong password", "/api/login", `{"username":"golfer1","password":"nope"}`, http.StatusUnauthorized, "Invalid username or password"},
		{"missing credentials", "/api/login", `{"username":"golfer1"}`, http.StatusBadRequest, "Missing credentials"},
		{"bad json", "/api/login", `{`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.errMsg != "" {
				body := decode[map[string]string](t, w)
				assert.Equal(t, tt.errMsg, body["error"])
			}
		})
	}

	w := do(t, r, http.MethodGet, "/api/profile/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"golfer1"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/profile/42", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/profile/abc", "").Code)
}

func TestAuthRateLimit(t *testing.T) {
	r := newTestRouter(t, NewRateLimiter(2))

	body := `{"username":"nobody","password":"pw"}`
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodPost, "/api/login", body).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodPost, "/api/login", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, r, http.MethodPost, "/api/login", body).Code)

	// other routes are not throttled
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/health", "").Code)
}

func TestAuthRateLimitIgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	r := newTestRouter(t, NewRateLimiter(2))

	var statuses []int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"nobody","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{401, 401, 429, 429, 429, 429}, statuses)
}

func TestAuthRateLimitUsesForwardedForFromTrustedProxy(t *testing.T) {
	r := newTestRouterWithOptions(t, RouterOptions{
		TrustedProxies: []string{"192.0.2.0/24"},
		AuthLimiter:    NewRateLimiter(1),
	})

	login := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"nobody","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// httptest requests come from 192.0.2.1, inside the trusted range
	assert.Equal(t, http.StatusUnauthorized, login("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, login("203.0.113.7"))
	assert.Equal(t, http.StatusUnauthorized, login("203.0.113.8"))
}

func TestCourseRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, w.Code)
	courses := decode[[]map[string]any](t, w)
	assert.Len(t, courses, 10)

	w = do(t, r, http.MethodGet, "/api/courses/"+url.PathEscape("Pine View Golf Course")+"/game-types", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["18-hole","Executive"]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/courses/"+url.PathEscape("The Marshes Golf Club")+"/add-ons", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Cart included in green fee","price":0}]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/courses/Nowhere/game-types", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/skill-levels", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 7)
}

func TestQuote(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name      string
		body      string
		status    int
		total     float64
		perPlayer string
	}{
		{
			name:      "numeric players",
			body:      `{"location":"Pine View Golf Course","gameTypes":["18-hole"],"date":"2025-05-20","numberOfPlayers":4,"selectedAddOns":["Power Cart 18 Holes"]}`,
			status:    http.StatusOK,
			total:     70,
			perPlayer: "$17.50",
		},
		{
			name:      "string players weekend",
			body:      `{"location":"White Sands Golf","gameTypes":["18 Holes"],"date":"2025-05-24","numberOfPlayers":"2"}`,
			status:    http.StatusOK,
			total:     44.5,
			perPlayer: "$22.25",
		},
		{
			name:   "zero players",
			body:   `{"location":"Pine View Golf Course","gameTypes":["18-hole"],"numberOfPlayers":0}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "non-numeric players",
			body:   `{"location":"Pine View Golf Course","gameTypes":["18-hole"],"numberOfPlayers":"four"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "bad date on variable price",
			body:   `{"location":"White Sands Golf","gameTypes":["18 Holes"],"date":"someday","numberOfPlayers":2}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/quote", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				return
			}
			resp := decode[quoteResponse](t, w)
			assert.InDelta(t, tt.total, resp.Cost.Total, 1e-9)
			assert.Equal(t, tt.perPlayer, resp.Formatted["perPlayer"])
		})
	}
}

func TestGameRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/players", `{"name":"John Doe","skillLevel":"Intermediate","personalBestScore":82}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/games", `{
		"title":"Morning Round at Pine View","skillLevel":"Intermediate","location":"Pine View Golf Course",
		"gameTypes":["18-hole"],"date":"2025-05-20","teeTime":"08:00","numberOfPlayers":"4",
		"selectedAddOns":["Power Cart 18 Holes"],"organizerId":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	cost, _ := created["cost"].(map[string]any)
	assert.Equal(t, 70.0, cost["total"])
	assert.Equal(t, 17.5, cost["perPlayer"])

	w = do(t, r, http.MethodGet, "/api/games/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	organizer, _ := got["organizer"].(map[string]any)
	assert.Equal(t, "John Doe", organizer["name"])

	w = do(t, r, http.MethodGet, "/api/games/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Game not found", decode[map[string]string](t, w)["error"])

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/games/not-a-uuid", "").Code)

	w = do(t, r, http.MethodGet, "/api/games?skillLevel=Beginner", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/games?skillLevel=all&course="+url.QueryEscape("Pine View Golf Course"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, r, http.MethodGet, "/api/players/1/games", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/players/9/games", "").Code)
}

func TestCreateGameValidation(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{
			name:   "missing title",
			path:   "/api/games",
			body:   `{"skillLevel":"Beginner","location":"Stittsville","numberOfPlayers":2}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "zero players",
			path:   "/api/games",
			body:   `{"title":"t","skillLevel":"Beginner","location":"Stittsville","gameTypes":["Weekday"],"numberOfPlayers":0}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown add-on accepted",
			path:   "/api/games",
			body:   `{"title":"t","skillLevel":"Beginner","location":"Stittsville","gameTypes":["Weekday"],"numberOfPlayers":2,"selectedAddOns":["Jetpack"]}`,
			status: http.StatusCreated,
		},
		{
			name:   "unknown add-on rejected in strict mode",
			path:   "/api/games?strict=true",
			body:   `{"title":"t","skillLevel":"Beginner","location":"Stittsville","gameTypes":["Weekday"],"numberOfPlayers":2,"selectedAddOns":["Jetpack"]}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestPlayerRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, body := range []string{
		`{"name":"Jane Smith","skillLevel":"Beginner","personalBestScore":95}`,
		`{"name":"Michael Johnson","skillLevel":"Advanced / Competitive","personalBestScore":75}`,
		`{"name":"Anna New","skillLevel":"Beginner"}`,
	} {
		require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/players", body).Code)
	}

	names := func(w *httptest.ResponseRecorder) []string {
		var out []string
		for _, p := range decode[[]map[string]any](t, w) {
			name, _ := p["name"].(string)
			out = append(out, name)
		}
		return out
	}

	w := do(t, r, http.MethodGet, "/api/players?sort=score", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Michael Johnson", "Jane Smith", "Anna New"}, names(w))

	w = do(t, r, http.MethodGet, "/api/players?skillLevel=Beginner", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Anna New", "Jane Smith"}, names(w))

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/players?sort=age", "").Code)

	w = do(t, r, http.MethodGet, "/api/players/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Michael Johnson", decode[map[string]any](t, w)["name"])

	w = do(t, r, http.MethodGet, "/api/players/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Player not found", decode[map[string]string](t, w)["error"])

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/api/players", `{"skillLevel":"Beginner"}`).Code)
}
