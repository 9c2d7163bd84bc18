package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/faceit-league-dashboard/internal/report"
)

const defaultRegistrationsLimit = 25

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	divisions, err := h.divisionService.Divisions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list divisions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListDivisionTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionTeams")
	defer span.End()

	divisionID := strings.TrimSpace(r.PathValue("divisionID"))
	query := rosterQuery{
		SeasonID: strings.TrimSpace(r.URL.Query().Get("season_id")),
		Region:   strings.TrimSpace(r.URL.Query().Get("region")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.divisionService.RosterReport(ctx, divisionID, query.SeasonID, query.Region)
	if err != nil {
		h.logger.WarnContext(ctx, "list division teams failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) DivisionRosterCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DivisionRosterCSV")
	defer span.End()

	divisionID := strings.TrimSpace(r.PathValue("divisionID"))
	query := rosterQuery{
		SeasonID: strings.TrimSpace(r.URL.Query().Get("season_id")),
		Region:   strings.TrimSpace(r.URL.Query().Get("region")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.divisionService.RosterReport(ctx, divisionID, query.SeasonID, query.Region)
	if err != nil {
		h.logger.WarnContext(ctx, "division roster export failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := report.WriteRosterCSV(w, teams); err != nil {
		h.logger.WarnContext(ctx, "write roster csv failed", "division_id", divisionID, "error", err)
	}
}

func (h *Handler) ListConferenceRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListConferenceRegistrations")
	defer span.End()

	conferenceID := strings.TrimSpace(r.PathValue("conferenceID"))
	offset, err := queryInt(r.URL.Query(), "offset", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r.URL.Query(), "limit", defaultRegistrationsLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := registrationsQuery{Offset: offset, Limit: limit}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.divisionService.Registrations(ctx, conferenceID, query.Offset, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list registrations failed", "conference_id", conferenceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, page)
}
