package faceit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/match"
)

const (
	defaultStandingsLimit     = 100
	defaultRegistrationsLimit = 25
	championshipMatchesLimit  = 100
)

var (
	_ league.Source    = (*UnofficialClient)(nil)
	_ match.VoteSource = (*UnofficialClient)(nil)
)

// UnofficialClient reads the undocumented web API behind faceit.com. It
// sends no credentials.
type UnofficialClient struct {
	t *transport
}

func NewUnofficialClient(cfg ClientConfig) *UnofficialClient {
	cfg.APIKey = ""
	return &UnofficialClient{t: newTransport("web", DefaultWebBaseURL, cfg)}
}

func (c *UnofficialClient) LeagueInfo(ctx context.Context, leagueID string) (league.Info, error) {
	var out leagueInfoEnvelope
	err := c.t.doJSON(ctx, apiRequest{path: pathf("/team-leagues/v2/leagues/%s", leagueID)}, &out)
	if err != nil {
		return league.Info{}, fmt.Errorf("fetch league league_id=%s: %w", leagueID, err)
	}
	return toLeagueInfo(out), nil
}

func (c *UnofficialClient) LeagueFilters(ctx context.Context, seasonID string) (league.Filters, error) {
	var out filtersEnvelope
	err := c.t.doJSON(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/team-leagues/v1/get_filters",
		body:   map[string]string{"seasonId": seasonID},
	}, &out)
	if err != nil {
		return league.Filters{}, fmt.Errorf("fetch league filters season_id=%s: %w", seasonID, err)
	}
	return toFilters(out), nil
}

func (c *UnofficialClient) ConferenceStandings(ctx context.Context, conferenceID string, offset, limit int) (league.StandingsPage, error) {
	if limit <= 0 {
		limit = defaultStandingsLimit
	}
	query := url.Values{}
	query.Set("entityType", "conference")
	query.Set("entityId", conferenceID)
	query.Set("offset", strconv.Itoa(max(offset, 0)))
	query.Set("limit", strconv.Itoa(limit))

	var out standingsEnvelope
	err := c.t.doJSON(ctx, apiRequest{path: "/team-leagues/v2/standings", query: query}, &out)
	if err != nil {
		return league.StandingsPage{}, fmt.Errorf("fetch standings conference_id=%s offset=%d: %w", conferenceID, offset, err)
	}
	return toStandingsPage(out), nil
}

func (c *UnofficialClient) ConferenceRegistrations(ctx context.Context, conferenceID string, offset, limit int) (league.RegistrationsPage, error) {
	if limit <= 0 {
		limit = defaultRegistrationsLimit
	}
	offset = max(offset, 0)
	query := url.Values{}
	query.Set("conferenceId", conferenceID)
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var out registrationsEnvelope
	err := c.t.doJSON(ctx, apiRequest{
		path:  pathf("/team-leagues/v2/conferences/%s/registrations", conferenceID),
		query: query,
	}, &out)
	if err != nil {
		return league.RegistrationsPage{}, fmt.Errorf("fetch registrations conference_id=%s offset=%d: %w", conferenceID, offset, err)
	}
	return toRegistrationsPage(out, offset, limit), nil
}

func (c *UnofficialClient) TeamLeagueSummary(ctx context.Context, teamID string) ([]league.TeamLeague, error) {
	var out teamLeagueSummaryEnvelope
	err := c.t.doJSON(ctx, apiRequest{path: pathf("/team-leagues/v1/teams/%s/profile/leagues/summary", teamID)}, &out)
	if err != nil {
		return nil, fmt.Errorf("fetch team league summary team_id=%s: %w", teamID, err)
	}
	return toTeamLeagues(out), nil
}

func (c *UnofficialClient) VoteHistory(ctx context.Context, matchID string) (match.VoteHistory, error) {
	var out voteHistoryEnvelope
	err := c.t.doJSON(ctx, apiRequest{path: pathf("/democracy/v1/match/%s/history", matchID)}, &out)
	if err != nil {
		return match.VoteHistory{}, fmt.Errorf("fetch vote history match_id=%s: %w", matchID, err)
	}
	return toVoteHistory(out), nil
}

func (c *UnofficialClient) TeamChampionshipMatches(ctx context.Context, teamID string, championshipIDs []string) (league.ChampionshipMatchPage, error) {
	query := url.Values{}
	query.Set("participantId", teamID)
	query.Set("participantType", "TEAM")
	query.Set("limit", strconv.Itoa(championshipMatchesLimit))
	query.Set("offset", "0")
	query.Set("sort", "ASC")
	for _, id := range championshipIDs {
		query.Add("championshipId", id)
	}

	var out championshipMatchesEnvelope
	err := c.t.doJSON(ctx, apiRequest{path: "/championships/v1/matches", query: query}, &out)
	if err != nil {
		return league.ChampionshipMatchPage{}, fmt.Errorf(
			"fetch championship matches team_id=%s championships=%s: %w",
			teamID, strings.Join(championshipIDs, ","), err,
		)
	}
	return toChampionshipMatchPage(out), nil
}
