package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/schedule", handler.ListSeasonByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/schedule/{week}", handler.GetScheduleWeekByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/roster", handler.GetTeamRosterByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/lineup", handler.GetLineupByTeam)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/generate-schedule", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunGenerateScheduleJob)))
	mux.Handle("POST /v1/internal/jobs/run-draft", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunDraftJob)))
	mux.Handle("POST /v1/internal/jobs/init-lineups", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunInitLineupsJob)))
}
