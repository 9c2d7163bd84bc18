package match

import "context"

const (
	Faction1 = "faction1"
	Faction2 = "faction2"

	StatusFinished = "FINISHED"

	ChoiceDrop = "drop"
	ChoicePick = "pick"

	EntityTypeMap = "map"
)

// Match is the detail record of one FACEIT match.
type Match struct {
	ID              string               `json:"match_id"`
	BestOf          int                  `json:"best_of"`
	Status          string               `json:"status"`
	Game            string               `json:"game"`
	Region          string               `json:"region"`
	CompetitionID   string               `json:"competition_id,omitempty"`
	CompetitionName string               `json:"competition_name,omitempty"`
	CompetitionType string               `json:"competition_type,omitempty"`
	OrganizerID     string               `json:"organizer_id,omitempty"`
	FaceitURL       string               `json:"faceit_url"`
	Round           *int                 `json:"round,omitempty"`
	Group           *int                 `json:"group,omitempty"`
	ConfiguredAt    *int64               `json:"configured_at,omitempty"`
	ScheduledAt     *int64               `json:"scheduled_at,omitempty"`
	StartedAt       *int64               `json:"started_at,omitempty"`
	FinishedAt      *int64               `json:"finished_at,omitempty"`
	DemoURLs        []string             `json:"demo_url,omitempty"`
	Teams           map[string]MatchTeam `json:"teams"`
	Results         *Results             `json:"results,omitempty"`
	DetailedResults []DetailedResult     `json:"detailed_results,omitempty"`
	Maps            []MapInfo            `json:"maps,omitempty"`
}

// MatchTeam is one side of a match, keyed in Match.Teams by faction name.
type MatchTeam struct {
	FactionID   string        `json:"faction_id,omitempty"`
	Name        string        `json:"name"`
	Leader      string        `json:"leader"`
	Avatar      string        `json:"avatar,omitempty"`
	Type        string        `json:"type"`
	Substituted bool          `json:"substituted,omitempty"`
	Roster      []MatchPlayer `json:"roster,omitempty"`
	Stats       *TeamRating   `json:"stats,omitempty"`
}

type MatchPlayer struct {
	PlayerID       string `json:"player_id"`
	Nickname       string `json:"nickname"`
	Avatar         string `json:"avatar,omitempty"`
	GamePlayerID   string `json:"game_player_id"`
	GamePlayerName string `json:"game_player_name"`
	GameSkillLevel int    `json:"game_skill_level"`
	Membership     string `json:"membership"`
}

type TeamRating struct {
	Rating            float64 `json:"rating"`
	SkillLevelAverage float64 `json:"skill_level_average"`
	SkillLevelMin     float64 `json:"skill_level_min"`
	SkillLevelMax     float64 `json:"skill_level_max"`
	WinProbability    float64 `json:"win_probability"`
}

type Results struct {
	Winner string         `json:"winner"`
	Score  map[string]int `json:"score"`
}

type DetailedResult struct {
	AscScore bool           `json:"asc_score"`
	Winner   string         `json:"winner,omitempty"`
	Factions map[string]int `json:"factions"`
}

// MapInfo is a map offered during the veto.
type MapInfo struct {
	GUID    string `json:"guid"`
	Name    string `json:"name"`
	ImageSM string `json:"image_sm,omitempty"`
}

// Stats is the per-map box score of a match; one Round per completed map.
type Stats struct {
	Rounds []Round `json:"rounds"`
}

type Round struct {
	MatchID       string      `json:"match_id"`
	BestOf        int         `json:"best_of"`
	MatchRound    int         `json:"match_round"`
	Played        int         `json:"played"`
	GameID        string      `json:"game_id"`
	GameMode      string      `json:"game_mode"`
	CompetitionID string      `json:"competition_id,omitempty"`
	RoundStats    RoundStats  `json:"round_stats"`
	Teams         []RoundTeam `json:"teams"`
}

type RoundStats struct {
	Map    string `json:"map,omitempty"`
	Region string `json:"region,omitempty"`
	Rounds *int   `json:"rounds,omitempty"`
	Score  string `json:"score,omitempty"`
	Winner string `json:"winner,omitempty"`
}

type RoundTeam struct {
	TeamID  string         `json:"team_id"`
	Premade bool           `json:"premade,omitempty"`
	Stats   RoundTeamStats `json:"team_stats"`
	Players []RoundPlayer  `json:"players"`
}

type RoundTeamStats struct {
	Name            string `json:"team,omitempty"`
	FinalScore      *int   `json:"final_score,omitempty"`
	FirstHalfScore  *int   `json:"first_half_score,omitempty"`
	SecondHalfScore *int   `json:"second_half_score,omitempty"`
	Headshots       string `json:"team_headshots,omitempty"`
	Win             *int   `json:"team_win,omitempty"`
}

type RoundPlayer struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
}

// VoteHistory is the veto log of a match.
type VoteHistory struct {
	MatchID string       `json:"match_id"`
	Tickets []VoteTicket `json:"tickets"`
}

type VoteTicket struct {
	EntityType string       `json:"entity_type"`
	VoteType   string       `json:"vote_type"`
	Entities   []VoteEntity `json:"entities"`
}

// VoteEntity is one drop or pick. SelectedBy is a faction name, or empty when
// the platform chose.
type VoteEntity struct {
	GUID       string `json:"guid"`
	Status     string `json:"status"`
	Random     bool   `json:"random"`
	Round      int    `json:"round"`
	SelectedBy string `json:"selected_by"`
}

// MapTicket returns the ticket that vetoed maps, if any.
func (v VoteHistory) MapTicket() (VoteTicket, bool) {
	for _, ticket := range v.Tickets {
		if ticket.EntityType == EntityTypeMap {
			return ticket, true
		}
	}
	return VoteTicket{}, false
}

// Source reads match detail and statistics from the authenticated API.
type Source interface {
	Match(ctx context.Context, matchID string) (Match, error)
	MatchStats(ctx context.Context, matchID string) (Stats, error)
}

// VoteSource reads veto history from the web API.
type VoteSource interface {
	VoteHistory(ctx context.Context, matchID string) (VoteHistory, error)
}
