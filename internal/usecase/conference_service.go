package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/matchdata"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	defaultStandingsPageSize = 100
	defaultSummaryWorkers    = 8
)

type ConferenceServiceConfig struct {
	StandingsPageSize int
	Workers           int
	Logger            *logging.Logger
}

// ConferenceService builds the team list of a division from its conference
// standings and each team's league summary.
type ConferenceService struct {
	leagues  league.Source
	pageSize int
	workers  int
	logger   *logging.Logger
}

func NewConferenceService(leagues league.Source, cfg ConferenceServiceConfig) *ConferenceService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	pageSize := cfg.StandingsPageSize
	if pageSize <= 0 {
		pageSize = defaultStandingsPageSize
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultSummaryWorkers
	}
	return &ConferenceService{
		leagues:  leagues,
		pageSize: pageSize,
		workers:  workers,
		logger:   logger,
	}
}

// ConferenceTeamData lists every team standing in the division, joined with
// its first league summary entry. Teams whose summary cannot be loaded are
// left out. An unknown region or division yields an empty list.
func (s *ConferenceService) ConferenceTeamData(ctx context.Context, seasonID, regionName, divisionID string) ([]matchdata.ConferenceTeamData, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConferenceService.ConferenceTeamData")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	divisionID = strings.TrimSpace(divisionID)
	if seasonID == "" || divisionID == "" {
		return nil, fmt.Errorf("%w: season id and division id are required", ErrInvalidInput)
	}

	filters, err := s.leagues.LeagueFilters(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("load league filters: %w", err)
	}
	region, ok := filters.RegionByName(regionName)
	if !ok {
		s.logger.DebugContext(ctx, "region not found in season filters", "season_id", seasonID, "region", regionName)
		return []matchdata.ConferenceTeamData{}, nil
	}
	division, ok := region.DivisionByID(divisionID)
	if !ok {
		s.logger.DebugContext(ctx, "division not found in region", "season_id", seasonID, "division_id", divisionID)
		return []matchdata.ConferenceTeamData{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		lookups sync.WaitGroup
		mu      sync.Mutex
	)
	rows := make(map[string]league.StandingRow, 64)
	order := make([]string, 0, 64)
	summaries := make(map[string]league.TeamLeague, 64)

	walkErr := s.walkStandings(ctx, division, func(row league.StandingRow) error {
		teamID := row.PremadeTeamID
		_, seen := rows[teamID]
		rows[teamID] = row
		if seen {
			return nil
		}
		order = append(order, teamID)

		lookups.Add(1)
		if err := pool.Submit(func() {
			defer lookups.Done()
			summary, ok := s.lookupSummary(ctx, row)
			if !ok {
				return
			}
			mu.Lock()
			summaries[teamID] = summary
			mu.Unlock()
		}); err != nil {
			lookups.Done()
			return fmt.Errorf("submit summary lookup to worker pool: %w", err)
		}
		return nil
	})
	lookups.Wait()
	if walkErr != nil {
		return nil, walkErr
	}

	out := make([]matchdata.ConferenceTeamData, 0, len(order))
	for _, teamID := range order {
		summary, ok := summaries[teamID]
		if !ok {
			continue
		}
		out = append(out, matchdata.ConferenceTeamData{Team: rows[teamID], Summary: &summary})
	}
	SortConferenceTeams(out)
	return out, nil
}

// walkStandings pages every conference of the division until a page comes
// back empty.
func (s *ConferenceService) walkStandings(ctx context.Context, division league.Division, visit func(league.StandingRow) error) error {
	for _, stage := range division.Stages {
		for _, conference := range stage.Conferences {
			offset := 0
			for {
				page, err := s.leagues.ConferenceStandings(ctx, conference.ID, offset, s.pageSize)
				if err != nil {
					return fmt.Errorf("load standings conference_id=%s offset=%d: %w", conference.ID, offset, err)
				}
				if len(page.Standings) == 0 {
					break
				}
				offset += len(page.Standings)
				for _, row := range page.Standings {
					if err := visit(row); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (s *ConferenceService) lookupSummary(ctx context.Context, row league.StandingRow) (league.TeamLeague, bool) {
	summary, err := s.leagues.TeamLeagueSummary(ctx, row.PremadeTeamID)
	if err != nil {
		s.logger.DebugContext(ctx, "failed to find team", "team_id", row.PremadeTeamID, "team_name", row.Name, "error", err)
		return league.TeamLeague{}, false
	}
	if len(summary) == 0 {
		s.logger.DebugContext(ctx, "failed to find team", "team_id", row.PremadeTeamID, "team_name", row.Name, "reason", "empty summary")
		return league.TeamLeague{}, false
	}
	return summary[0], true
}

// SortConferenceTeams orders teams by name in English collation with
// summary-less entries first, and each roster players first then by name.
// The sort is stable, so applying it twice changes nothing.
func SortConferenceTeams(items []matchdata.ConferenceTeamData) {
	col := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i], items[j]
		if (left.Summary == nil) != (right.Summary == nil) {
			return left.Summary == nil
		}
		return col.CompareString(left.Team.Name, right.Team.Name) < 0
	})
	for _, item := range items {
		if item.Summary == nil {
			continue
		}
		members := item.Summary.ActiveMembers
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].IsPlayer() != members[j].IsPlayer() {
				return members[i].IsPlayer()
			}
			return col.CompareString(members[i].UserName, members[j].UserName) < 0
		})
	}
}
