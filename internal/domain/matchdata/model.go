package matchdata

import (
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/match"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/team"
)

const (
	SideTeam     = "team"
	SideOpponent = "opponent"

	NoteIncomplete = "Match did not complete."
)

// MapChoice is one veto step from the subject team's point of view.
type MapChoice struct {
	Team   string `json:"team"`
	Choice string `json:"choice"`
	Map    string `json:"map"`
	Random bool   `json:"random"`
}

// MatchSummary holds the result of one match for the subject team. Nil fields
// were not reported upstream.
type MatchSummary struct {
	TeamWin       *bool            `json:"teamWin,omitempty"`
	TeamScore     *int             `json:"teamScore,omitempty"`
	OpponentScore *int             `json:"opponentScore,omitempty"`
	Opponent      *match.MatchTeam `json:"opponent,omitempty"`
	MapChoices    []MapChoice      `json:"mapChoices,omitempty"`
	TeamMapBans   []string         `json:"teamMapBans,omitempty"`
	TeamMapPicks  []string         `json:"teamMapPicks,omitempty"`
}

type HalfScores [2]int

// MapSummary is the box score of one map.
type MapSummary struct {
	TeamWin            *bool               `json:"teamWin,omitempty"`
	MapName            string              `json:"mapName,omitempty"`
	TeamScore          *int                `json:"teamScore,omitempty"`
	TeamHalfScores     *HalfScores         `json:"teamHalfScores,omitempty"`
	TeamPlayers        []match.RoundPlayer `json:"teamPlayers,omitempty"`
	OpponentName       string              `json:"opponentName,omitempty"`
	OpponentScore      *int                `json:"opponentScore,omitempty"`
	OpponentHalfScores *HalfScores         `json:"opponentHalfScores,omitempty"`
	OpponentPlayers    []match.RoundPlayer `json:"opponentPlayers,omitempty"`
}

// MatchData is a championship match joined with everything known about it.
type MatchData struct {
	ChampionshipMatch league.ChampionshipMatch `json:"championshipMatch"`
	Match             *match.Match             `json:"match,omitempty"`
	Stats             *match.Stats             `json:"stats,omitempty"`
	VoteHistory       *match.VoteHistory       `json:"voteHistory,omitempty"`
	Summary           MatchSummary             `json:"summary"`
	MapSummaries      []MapSummary             `json:"mapSummaries"`
	Notes             []string                 `json:"notes"`
}

// ConferenceTeamData is a standings row joined with the team's league
// summary. Summary is nil when the lookup produced nothing.
type ConferenceTeamData struct {
	Team    league.StandingRow `json:"team"`
	Summary *league.TeamLeague `json:"summary,omitempty"`
}

// TeamPage is everything rendered on a team's page.
type TeamPage struct {
	Team     team.Team       `json:"team"`
	Seasons  []league.Season `json:"seasons"`
	Season   *league.Season  `json:"season,omitempty"`
	MatchIDs []string        `json:"matchIds"`
	Matches  []MatchData     `json:"matches"`
}
