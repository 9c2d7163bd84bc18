package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/match"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/matchdata"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/team"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/pool"
)

const defaultFanoutLimit = 16

type TeamPageServiceConfig struct {
	LeagueID    string
	FanoutLimit int
	Logger      *logging.Logger
}

// TeamPageService assembles a team's season page from both APIs.
type TeamPageService struct {
	teams    team.Source
	leagues  league.Source
	matches  match.Source
	votes    match.VoteSource
	leagueID string
	fanout   int
	logger   *logging.Logger
}

func NewTeamPageService(
	teams team.Source,
	leagues league.Source,
	matches match.Source,
	votes match.VoteSource,
	cfg TeamPageServiceConfig,
) *TeamPageService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	leagueID := strings.TrimSpace(cfg.LeagueID)
	if leagueID == "" {
		leagueID = DefaultLeagueID
	}
	fanout := cfg.FanoutLimit
	if fanout <= 0 {
		fanout = defaultFanoutLimit
	}
	return &TeamPageService{
		teams:    teams,
		leagues:  leagues,
		matches:  matches,
		votes:    votes,
		leagueID: leagueID,
		fanout:   fanout,
		logger:   logger,
	}
}

type fetchedMatch struct {
	detail match.Match
	stats  *match.Stats
	votes  *match.VoteHistory
}

// TeamPage loads the team's profile and its matches in the configured league.
// seasonNumber <= 0 selects the latest season.
func (s *TeamPageService) TeamPage(ctx context.Context, teamID string, seasonNumber int) (matchdata.TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamPageService.TeamPage")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if !isTeamID(teamID) {
		return matchdata.TeamPage{}, fmt.Errorf("%w: %q is not a team id", ErrInvalidInput, teamID)
	}

	var (
		profile team.Team
		summary []league.TeamLeague
	)
	group := pool.New().WithContext(ctx)
	group.Go(func(ctx context.Context) error {
		item, err := s.teams.Team(ctx, teamID)
		if err != nil {
			return fmt.Errorf("load team: %w", err)
		}
		profile = item
		return nil
	})
	group.Go(func(ctx context.Context) error {
		items, err := s.leagues.TeamLeagueSummary(ctx, teamID)
		if err != nil {
			return fmt.Errorf("load team league summary: %w", err)
		}
		summary = items
		return nil
	})
	if err := group.Wait(); err != nil {
		return matchdata.TeamPage{}, err
	}

	page := matchdata.TeamPage{
		Team:     profile,
		Seasons:  []league.Season{},
		MatchIDs: []string{},
		Matches:  []matchdata.MatchData{},
	}

	entry, ok := league.FindLeague(summary, s.leagueID)
	if !ok {
		return page, nil
	}
	page.Seasons = entry.Seasons
	season, ok := entry.SelectSeason(seasonNumber)
	if !ok {
		return page, nil
	}
	page.Season = &season

	championshipIDs := season.ChampionshipIDs()
	if len(championshipIDs) == 0 {
		return page, nil
	}
	schedule, err := s.leagues.TeamChampionshipMatches(ctx, teamID, championshipIDs)
	if err != nil {
		return matchdata.TeamPage{}, fmt.Errorf("load championship matches: %w", err)
	}
	page.MatchIDs = schedule.FinishedMatchIDs()
	if len(page.MatchIDs) == 0 {
		return page, nil
	}

	mapper := iter.Mapper[string, fetchedMatch]{MaxGoroutines: s.fanout}
	fetched, err := mapper.MapErr(page.MatchIDs, func(matchID *string) (fetchedMatch, error) {
		return s.fetchMatch(ctx, *matchID)
	})
	if err != nil {
		return matchdata.TeamPage{}, err
	}

	in := FusionInput{
		TeamID:              teamID,
		ChampionshipMatches: schedule.Items,
		MatchIDs:            page.MatchIDs,
		Matches:             make([]match.Match, 0, len(fetched)),
		Stats:               make(map[string]match.Stats, len(fetched)),
		VoteHistories:       make(map[string]match.VoteHistory, len(fetched)),
	}
	for i, item := range fetched {
		matchID := page.MatchIDs[i]
		in.Matches = append(in.Matches, item.detail)
		if item.stats != nil {
			in.Stats[matchID] = *item.stats
		}
		if item.votes != nil {
			in.VoteHistories[matchID] = *item.votes
		}
	}
	page.Matches = FuseMatchData(in)
	return page, nil
}

// fetchMatch loads one match. Detail failures fail the page; statistics and
// veto failures only drop that part.
func (s *TeamPageService) fetchMatch(ctx context.Context, matchID string) (fetchedMatch, error) {
	var out fetchedMatch
	var wg conc.WaitGroup
	wg.Go(func() {
		stats, err := s.matches.MatchStats(ctx, matchID)
		if err != nil {
			s.logger.WarnContext(ctx, "match stats unavailable", "match_id", matchID, "error", err)
			return
		}
		out.stats = &stats
	})
	wg.Go(func() {
		history, err := s.votes.VoteHistory(ctx, matchID)
		if err != nil {
			s.logger.WarnContext(ctx, "vote history unavailable", "match_id", matchID, "error", err)
			return
		}
		out.votes = &history
	})

	detail, detailErr := s.matches.Match(ctx, matchID)
	wg.Wait()
	if detailErr != nil {
		return fetchedMatch{}, fmt.Errorf("load match match_id=%s: %w", matchID, detailErr)
	}
	out.detail = detail
	return out, nil
}

// isTeamID accepts the canonical hyphenated UUID form only. Match ids carry a
// "1-" prefix and are rejected.
func isTeamID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
