package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetTeamPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPage")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	season, err := queryInt(r.URL.Query(), "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := teamPageQuery{Season: season}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.teamPageService.TeamPage(ctx, teamID, query.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "get team page failed", "team_id", teamID, "season", query.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, page)
}
