package faceit

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/schema"
	"github.com/riskibarqy/faceit-league-dashboard/internal/usecase"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		RetryBackoff:   time.Millisecond,
		Logger:         logging.NewNop(),
		CircuitBreaker: resilience.BreakerConfig{Enabled: false},
	}
}

func TestOfficialClient_TeamSendsBearerAndNormalizesURLs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/teams/team-1", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = io.WriteString(w, `{
			"team_id":"team-1","name":"Alpha","nickname":"ALP","avatar":"",
			"faceit_url":"https://www.faceit.com/{lang}/teams/team-1","game":"cs2","leader":"u1",
			"chat_room_id":"room","team_type":"premade",
			"members":[{"user_id":"u1","nickname":"one","avatar":"https://cdn/x.png","skill_level":"10",
				"faceit_url":"https://www.faceit.com/{lang}/players/one"}]
		}`)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = "secret"
	client := NewOfficialClient(cfg)

	got, err := client.Team(context.Background(), "team-1")
	require.NoError(t, err)
	require.Equal(t, "Alpha", got.Name)
	require.Empty(t, got.Avatar)
	require.Equal(t, "https://www.faceit.com/en/teams/team-1", got.FaceitURL)
	require.Len(t, got.Members, 1)
	require.NotNil(t, got.Members[0].SkillLevel)
	require.Equal(t, 10, *got.Members[0].SkillLevel)
	require.Equal(t, "https://www.faceit.com/en/players/one", got.Members[0].FaceitURL)
}

func TestOfficialClient_MatchRejectsResultsForUnknownFaction(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{
			"match_id":"m1","best_of":1,"faceit_url":"https://www.faceit.com/{lang}/cs2/room/m1",
			"game":"cs2","region":"US","status":"FINISHED","version":1,
			"teams":{"faction1":{"name":"A","leader":"x","type":""},"faction2":{"name":"B","leader":"y","type":""}},
			"results":{"winner":"faction3","score":{"faction1":0,"faction2":1}}
		}`)
	}))
	defer server.Close()

	_, err := NewOfficialClient(testConfig(server.URL)).Match(context.Background(), "m1")
	require.Error(t, err)

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "results.winner", verr.Path)
}

func TestOfficialClient_MatchStatsCoercesNumericStrings(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/matches/m1/stats", r.URL.Path)
		_, _ = io.WriteString(w, `{"rounds":[{
			"best_of":"3","match_round":"1","played":"1","game_id":"cs2","game_mode":"5v5","match_id":"m1",
			"competition_id":null,
			"round_stats":{"Map":"de_inferno","Rounds":"24","Score":"13 / 11","Winner":"t1"},
			"teams":[
				{"team_id":"t1","team_stats":{"Team":"Alpha","Final Score":"13","First Half Score":"7","Second Half Score":"6","Team Win":"1"},
				 "players":[{"player_id":"p1","nickname":"one"}]},
				{"team_id":"t2","team_stats":{"Team":"Bravo","Final Score":"11","Team Win":"0"},"players":[]}
			]}]}`)
	}))
	defer server.Close()

	stats, err := NewOfficialClient(testConfig(server.URL)).MatchStats(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, stats.Rounds, 1)

	round := stats.Rounds[0]
	require.Equal(t, 3, round.BestOf)
	require.Equal(t, 24, *round.RoundStats.Rounds)
	require.Equal(t, 13, *round.Teams[0].Stats.FinalScore)
	require.Equal(t, 1, *round.Teams[0].Stats.Win)
	require.Nil(t, round.Teams[1].Stats.FirstHalfScore)
}

func TestUnofficialClient_StandingsQueryAndDefaultLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/team-leagues/v2/standings", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		query := r.URL.Query()
		require.Equal(t, "conference", query.Get("entityType"))
		require.Equal(t, "conf-1", query.Get("entityId"))
		require.Equal(t, "200", query.Get("offset"))
		require.Equal(t, "100", query.Get("limit"))
		_, _ = io.WriteString(w, `{"payload":{"standings":[
			{"premade_team_id":"t1","name":"Alpha","avatar":"","rank":1,"points":"9","wins":3,"losses":0}
		]}}`)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = "must-not-leak"
	page, err := NewUnofficialClient(cfg).ConferenceStandings(context.Background(), "conf-1", 200, 0)
	require.NoError(t, err)
	require.Len(t, page.Standings, 1)
	require.Equal(t, "t1", page.Standings[0].PremadeTeamID)
	require.Equal(t, 9, *page.Standings[0].Points)
	require.Nil(t, page.Standings[0].Ties)
}

func TestUnofficialClient_RegistrationsDefaultLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/team-leagues/v2/conferences/conf-1/registrations", r.URL.Path)
		require.Equal(t, "conf-1", r.URL.Query().Get("conferenceId"))
		require.Equal(t, "25", r.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `{"payload":{"total":1,"items":[{"team_id":"t1","team_name":"Alpha"}]}}`)
	}))
	defer server.Close()

	page, err := NewUnofficialClient(testConfig(server.URL)).ConferenceRegistrations(context.Background(), "conf-1", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 25, page.Limit)
	require.Equal(t, 1, *page.Total)
	require.Equal(t, "Alpha", page.Items[0].TeamName)
}

func TestUnofficialClient_LeagueFiltersPostsSeasonID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/team-leagues/v1/get_filters", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"seasonId":"s-1"}`, string(body))
		_, _ = io.WriteString(w, `{"payload":{"regions":[{"id":"r1","name":"North America","divisions":[
			{"id":"d1","name":"Main","stages":[{"id":"st1","name":"Regular","conferences":[{"id":"c1","name":"East"}]}]}
		]}]}}`)
	}))
	defer server.Close()

	filters, err := NewUnofficialClient(testConfig(server.URL)).LeagueFilters(context.Background(), "s-1")
	require.NoError(t, err)
	region, ok := filters.RegionByName("North America")
	require.True(t, ok)
	division, ok := region.DivisionByID("d1")
	require.True(t, ok)
	require.Equal(t, "c1", division.Stages[0].Conferences[0].ID)
}

func TestUnofficialClient_ChampionshipMatchesRepeatsChampionshipID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		require.Equal(t, "/championships/v1/matches", r.URL.Path)
		require.Equal(t, "team-1", query.Get("participantId"))
		require.Equal(t, "TEAM", query.Get("participantType"))
		require.Equal(t, "100", query.Get("limit"))
		require.Equal(t, "0", query.Get("offset"))
		require.Equal(t, "ASC", query.Get("sort"))
		require.Equal(t, []string{"c1", "c2"}, query["championshipId"])
		_, _ = io.WriteString(w, `{"payload":{"start":0,"end":3,"items":[
			{"status":"finished","origin":{"id":"m1","state":"FINISHED"},"championshipId":"c1"},
			{"status":"dummy"},
			{"status":"scheduled","origin":{"id":"m2","state":"SCHEDULED"}}
		]}}`)
	}))
	defer server.Close()

	page, err := NewUnofficialClient(testConfig(server.URL)).TeamChampionshipMatches(context.Background(), "team-1", []string{"c1", "c2"})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.Equal(t, []string{"m1"}, page.FinishedMatchIDs())
}

func TestUnofficialClient_VoteHistoryValidationPath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"payload":{"match_id":"m1","tickets":[{"entity_type":"map","vote_type":"drop_pick",
			"entities":[{"guid":"de_mirage","status":"ban","random":false,"round":1,"selected_by":"faction1"}]}]}}`)
	}))
	defer server.Close()

	_, err := NewUnofficialClient(testConfig(server.URL)).VoteHistory(context.Background(), "m1")
	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "payload.tickets[0].entities[0].status", verr.Path)
	require.Equal(t, "oneof=drop pick", verr.Rule)
}

func TestTransport_NotFoundIsAPIErrorWithoutRetry(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"errors":[{"message":"not found"}]}`)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxRetries = 3
	_, err := NewUnofficialClient(cfg).TeamLeagueSummary(context.Background(), "team-1")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, http.MethodGet, apiErr.Method)
	require.Contains(t, apiErr.Target, "/team-leagues/v1/teams/team-1/profile/leagues/summary")
	require.ErrorIs(t, err, usecase.ErrNotFound)
	require.EqualValues(t, 1, hits.Load())
}

func TestTransport_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"payload":{"id":"l1","name":"ESEA","current_season_id":"s1"}}`)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxRetries = 2
	info, err := NewUnofficialClient(cfg).LeagueInfo(context.Background(), "l1")
	require.NoError(t, err)
	require.Equal(t, "s1", info.CurrentSeasonID)
	require.EqualValues(t, 3, hits.Load())
}

func TestTransport_OpenCircuitRejectsWithoutCallingUpstream(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.CircuitBreaker = resilience.BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}
	client := NewOfficialClient(cfg)

	for i := 0; i < 2; i++ {
		_, err := client.Match(context.Background(), "m1")
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
	}

	_, err := client.Match(context.Background(), "m1")
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
	require.EqualValues(t, 2, hits.Load())
}
