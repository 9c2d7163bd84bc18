package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/divisions", handler.ListDivisions)
	mux.HandleFunc("GET /v1/divisions/{divisionID}/teams", handler.ListDivisionTeams)
	mux.HandleFunc("GET /v1/divisions/{divisionID}/roster.csv", handler.DivisionRosterCSV)
	mux.HandleFunc("GET /v1/conferences/{conferenceID}/registrations", handler.ListConferenceRegistrations)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeamPage)
}
