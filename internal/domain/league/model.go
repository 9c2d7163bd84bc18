package league

import (
	"context"
	"strings"
)

const (
	RolePlayer = "player"

	ItemStatusFinished = "finished"
	OriginFinished     = "FINISHED"
)

// Info is a team league as listed by the web API.
type Info struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CurrentSeasonID string `json:"current_season_id"`
}

// Filters is the region tree of one season.
type Filters struct {
	Regions []Region `json:"regions"`
}

type Region struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Divisions []Division `json:"divisions"`
}

type Division struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Stages []Stage `json:"stages"`
}

type Stage struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Conferences []Conference `json:"conferences"`
}

type Conference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegionByName returns the first region with the given display name.
func (f Filters) RegionByName(name string) (Region, bool) {
	for _, region := range f.Regions {
		if region.Name == name {
			return region, true
		}
	}
	return Region{}, false
}

func (r Region) DivisionByID(id string) (Division, bool) {
	for _, division := range r.Divisions {
		if division.ID == id {
			return division, true
		}
	}
	return Division{}, false
}

// StandingRow is one team's line in a conference table.
type StandingRow struct {
	PremadeTeamID string `json:"premade_team_id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar,omitempty"`
	Rank          *int   `json:"rank,omitempty"`
	Points        *int   `json:"points,omitempty"`
	Wins          *int   `json:"wins,omitempty"`
	Losses        *int   `json:"losses,omitempty"`
	Ties          *int   `json:"ties,omitempty"`
	MatchesPlayed *int   `json:"matches_played,omitempty"`
}

type StandingsPage struct {
	Standings []StandingRow `json:"standings"`
}

type Registration struct {
	TeamID       string `json:"team_id"`
	TeamName     string `json:"team_name"`
	Avatar       string `json:"avatar,omitempty"`
	Status       string `json:"status,omitempty"`
	RegisteredAt *int64 `json:"registered_at,omitempty"`
}

type RegistrationsPage struct {
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
	Total  *int           `json:"total,omitempty"`
	Items  []Registration `json:"items"`
}

// TeamLeague is one league a team has played in, with its seasons newest
// first.
type TeamLeague struct {
	LeagueID      string         `json:"league_id"`
	LeagueName    string         `json:"league_name"`
	GameID        string         `json:"game_id"`
	Seasons       []Season       `json:"league_seasons_info"`
	ActiveMembers []ActiveMember `json:"active_members"`
}

type Season struct {
	SeasonNumber int              `json:"season_number"`
	SeasonID     string           `json:"season_id"`
	Standings    []SeasonStanding `json:"season_standings"`
}

type SeasonStanding struct {
	StageID        string `json:"stage_id"`
	StageName      string `json:"stage_name"`
	ChampionshipID string `json:"championship_id"`
}

type ActiveMember struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	GameRole string `json:"game_role"`
	Avatar   string `json:"avatar,omitempty"`
}

func (m ActiveMember) IsPlayer() bool {
	return strings.EqualFold(m.GameRole, RolePlayer)
}

// ChampionshipIDs lists the championships of every stage in the season.
func (s Season) ChampionshipIDs() []string {
	out := make([]string, 0, len(s.Standings))
	for _, standing := range s.Standings {
		if standing.ChampionshipID == "" {
			continue
		}
		out = append(out, standing.ChampionshipID)
	}
	return out
}

// FindLeague returns the summary entry for leagueID.
func FindLeague(summary []TeamLeague, leagueID string) (TeamLeague, bool) {
	for _, item := range summary {
		if item.LeagueID == leagueID {
			return item, true
		}
	}
	return TeamLeague{}, false
}

// SelectSeason picks the season with the given number, or the latest season
// when number is zero or negative.
func (l TeamLeague) SelectSeason(number int) (Season, bool) {
	if len(l.Seasons) == 0 {
		return Season{}, false
	}
	if number <= 0 {
		return l.Seasons[0], true
	}
	for _, season := range l.Seasons {
		if season.SeasonNumber == number {
			return season, true
		}
	}
	return Season{}, false
}

// ChampionshipMatch is one entry of a team's championship schedule.
type ChampionshipMatch struct {
	Status         string  `json:"status"`
	Origin         *Origin `json:"origin,omitempty"`
	ChampionshipID string  `json:"championshipId,omitempty"`
}

type Origin struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// MatchID returns the origin id or "" when the item has none.
func (c ChampionshipMatch) MatchID() string {
	if c.Origin == nil {
		return ""
	}
	return c.Origin.ID
}

type ChampionshipMatchPage struct {
	Start int                 `json:"start"`
	End   int                 `json:"end"`
	Items []ChampionshipMatch `json:"items"`
}

// FinishedMatchIDs returns origin ids of finished items in schedule order.
func (p ChampionshipMatchPage) FinishedMatchIDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		if item.Status != ItemStatusFinished || item.MatchID() == "" {
			continue
		}
		ids = append(ids, item.MatchID())
	}
	return ids
}

// Source is the league side of the web API.
type Source interface {
	LeagueInfo(ctx context.Context, leagueID string) (Info, error)
	LeagueFilters(ctx context.Context, seasonID string) (Filters, error)
	ConferenceStandings(ctx context.Context, conferenceID string, offset, limit int) (StandingsPage, error)
	ConferenceRegistrations(ctx context.Context, conferenceID string, offset, limit int) (RegistrationsPage, error)
	TeamLeagueSummary(ctx context.Context, teamID string) ([]TeamLeague, error)
	TeamChampionshipMatches(ctx context.Context, teamID string, championshipIDs []string) (ChampionshipMatchPage, error)
}
