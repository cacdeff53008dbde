package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/pucklabs/fantasy-hockey/internal/domain/draft"
	"github.com/pucklabs/fantasy-hockey/internal/domain/lineup"
	"github.com/pucklabs/fantasy-hockey/internal/infrastructure/repository/memory"
	"github.com/pucklabs/fantasy-hockey/internal/platform/id"
	"github.com/pucklabs/fantasy-hockey/internal/platform/logging"
	"github.com/pucklabs/fantasy-hockey/internal/usecase"
)

const testJobToken = "test-job-token"

func newTestRouter(t *testing.T) http.Handler {
	return newTestRouterWithDefaults(t, JobDefaults{})
}

func newTestRouterWithDefaults(t *testing.T, defaults JobDefaults) http.Handler {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	scheduleRepo := memory.NewScheduleRepository()
	rosterRepo := memory.NewRosterRepository()
	lineupRepo := memory.NewLineupRepository()

	quotas := lineup.SlotQuotas{C: 1, LW: 1, RW: 1, D: 2, G: 1, UTIL: 1}
	handler := NewHandler(
		usecase.NewLeagueService(teamRepo, playerRepo),
		usecase.NewScheduleService(teamRepo, scheduleRepo, 2),
		usecase.NewDraftService(teamRepo, playerRepo, rosterRepo, draft.DefaultQuotas()),
		usecase.NewLineupService(teamRepo, playerRepo, rosterRepo, lineupRepo, nil, quotas, 3),
		logging.Default(),
		time.Minute,
		defaults,
	)

	return NewRouter(handler, logging.Default(), id.NewRandomGenerator(), []string{"*"}, testJobToken)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func postJob(t *testing.T, router http.Handler, path, payload string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouter_ListTeams(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemoHockey+"/teams", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 4 {
		t.Fatalf("data = %v, want 4 teams", body["data"])
	}
}

func TestRouter_UnknownLeagueIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/ghost-league/teams", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_InternalJobsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/run-draft", strings.NewReader(`{"league_id":"x","roster_cap":9}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without job token", rec.Code)
	}
}

func TestRouter_SeasonLifecycle(t *testing.T) {
	router := newTestRouter(t)
	league := memory.LeagueIDDemoHockey

	rec := postJob(t, router, "/v1/internal/jobs/generate-schedule", `{"league_id":"`+league+`","weeks":6,"seed":42}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate-schedule status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/"+league+"/schedule", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list schedule status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	weeks, ok := body["data"].([]any)
	if !ok || len(weeks) != 6 {
		t.Fatalf("schedule data = %v, want 6 weeks", body["data"])
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/"+league+"/schedule/3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get week status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/"+league+"/schedule/99", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing week status = %d, want 404", rec.Code)
	}

	// Regenerating with a shorter season must evict cached weeks.
	rec = postJob(t, router, "/v1/internal/jobs/generate-schedule", `{"league_id":"`+league+`","weeks":2,"seed":42}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("regenerate status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/"+league+"/schedule/3", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("stale week status = %d, want 404 after regeneration", rec.Code)
	}
}

func TestRouter_DraftAndLineupLifecycle(t *testing.T) {
	router := newTestRouter(t)
	league := memory.LeagueIDDemoHockey

	rec := postJob(t, router, "/v1/internal/jobs/run-draft", `{"league_id":"`+league+`","roster_cap":9}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("run-draft status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/"+league+"/teams/demo-icehawks/roster", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get roster status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	roster, ok := body["data"].([]any)
	if !ok || len(roster) != 9 {
		t.Fatalf("roster data = %v, want 9 players", body["data"])
	}

	rec = postJob(t, router, "/v1/internal/jobs/init-lineups", `{"league_id":"`+league+`","max_workers":4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("init-lineups status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/"+league+"/teams/demo-icehawks/lineup", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get lineup status = %d, body %s", rec.Code, rec.Body.String())
	}
	body = decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("lineup data = %v", body["data"])
	}
	starters, ok := data["starters"].([]any)
	if !ok || len(starters) == 0 {
		t.Fatalf("starters = %v, want at least one slot", data["starters"])
	}
}

func TestRouter_BadJobPayloadIsRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := postJob(t, router, "/v1/internal/jobs/run-draft", `{"league_id":"demo","roster_cap":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for negative roster cap", rec.Code)
	}

	rec = postJob(t, router, "/v1/internal/jobs/run-draft", `{"league_id":"demo","roster_cap":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when roster cap is omitted and no default is configured", rec.Code)
	}

	rec = postJob(t, router, "/v1/internal/jobs/generate-schedule", `{"league_id":"demo","weeks":6,"bogus":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for unknown field", rec.Code)
	}
}

func TestRouter_JobDefaultsFillOmittedFields(t *testing.T) {
	router := newTestRouterWithDefaults(t, JobDefaults{SeasonWeeks: 4, RosterCap: 9, LineupWorkers: 2})
	league := memory.LeagueIDDemoHockey

	rec := postJob(t, router, "/v1/internal/jobs/generate-schedule", `{"league_id":"`+league+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate-schedule status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %v", body["data"])
	}
	if got, _ := data["week_count"].(float64); got != 4 {
		t.Fatalf("week_count = %v, want default of 4", data["week_count"])
	}

	rec = postJob(t, router, "/v1/internal/jobs/run-draft", `{"league_id":"`+league+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("run-draft status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = postJob(t, router, "/v1/internal/jobs/init-lineups", `{"league_id":"`+league+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("init-lineups status = %d, body %s", rec.Code, rec.Body.String())
	}
	body = decodeEnvelope(t, rec)
	if data, ok := body["data"].(map[string]any); ok {
		if got, _ := data["worker_count"].(float64); got != 2 {
			t.Fatalf("worker_count = %v, want default of 2", data["worker_count"])
		}
	} else {
		t.Fatalf("data = %v", body["data"])
	}
}
