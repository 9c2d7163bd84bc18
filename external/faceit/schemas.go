package faceit

import (
	"sort"

	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/match"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/team"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/schema"
)

// Official API shapes.

type teamDTO struct {
	TeamID      string             `json:"team_id" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Nickname    string             `json:"nickname"`
	Avatar      schema.OptionalURL `json:"avatar" validate:"omitempty,url"`
	CoverImage  schema.OptionalURL `json:"cover_image" validate:"omitempty,url"`
	Description string             `json:"description"`
	Facebook    schema.OptionalURL `json:"facebook" validate:"omitempty,url"`
	Twitter     schema.OptionalURL `json:"twitter" validate:"omitempty,url"`
	Website     schema.OptionalURL `json:"website" validate:"omitempty,url"`
	Youtube     schema.OptionalURL `json:"youtube" validate:"omitempty,url"`
	FaceitURL   string             `json:"faceit_url" validate:"required,url"`
	Game        string             `json:"game" validate:"required,oneof=csgo cs2"`
	Leader      string             `json:"leader"`
	TeamType    string             `json:"team_type" validate:"omitempty,oneof=premade"`
	Members     []memberDTO        `json:"members" validate:"dive"`
}

type memberDTO struct {
	UserID         string                `json:"user_id"`
	Nickname       string                `json:"nickname" validate:"required"`
	Avatar         schema.OptionalURL    `json:"avatar" validate:"omitempty,url"`
	Country        string                `json:"country"`
	FaceitURL      schema.OptionalURL    `json:"faceit_url" validate:"omitempty,url"`
	MembershipType string                `json:"membership_type"`
	Memberships    []string              `json:"memberships"`
	SkillLevel     schema.OptionalNumber `json:"skill_level"`
}

type matchDTO struct {
	MatchID         string                  `json:"match_id" validate:"required"`
	BestOf          int                     `json:"best_of"`
	CompetitionID   string                  `json:"competition_id"`
	CompetitionName string                  `json:"competition_name"`
	CompetitionType string                  `json:"competition_type"`
	OrganizerID     string                  `json:"organizer_id"`
	ConfiguredAt    *int64                  `json:"configured_at"`
	ScheduledAt     *int64                  `json:"scheduled_at"`
	StartedAt       *int64                  `json:"started_at"`
	FinishedAt      *int64                  `json:"finished_at"`
	DemoURL         []schema.OptionalURL    `json:"demo_url" validate:"omitempty,dive,omitempty,url"`
	DetailedResults []detailedResultDTO     `json:"detailed_results" validate:"dive"`
	FaceitURL       string                  `json:"faceit_url" validate:"required,url"`
	Game            string                  `json:"game" validate:"required"`
	Region          string                  `json:"region"`
	Round           *int                    `json:"round"`
	Group           *int                    `json:"group"`
	Status          string                  `json:"status" validate:"required"`
	Teams           map[string]matchTeamDTO `json:"teams" validate:"required,dive"`
	Results         *resultsDTO             `json:"results"`
	Voting          *votingDTO              `json:"voting"`
}

type detailedResultDTO struct {
	AscScore bool                       `json:"asc_score"`
	Winner   string                     `json:"winner"`
	Factions map[string]factionScoreDTO `json:"factions" validate:"dive"`
}

type factionScoreDTO struct {
	Score int `json:"score"`
}

type resultsDTO struct {
	Winner string         `json:"winner"`
	Score  map[string]int `json:"score" validate:"required"`
}

type votingDTO struct {
	Map *votingMapDTO `json:"map"`
}

type votingMapDTO struct {
	Entities []mapInfoDTO `json:"entities" validate:"dive"`
}

type mapInfoDTO struct {
	GUID    string             `json:"guid" validate:"required"`
	Name    string             `json:"name" validate:"required"`
	ImageSM schema.OptionalURL `json:"image_sm" validate:"omitempty,url"`
}

type matchTeamDTO struct {
	FactionID   string             `json:"faction_id"`
	Name        string             `json:"name" validate:"required"`
	Leader      string             `json:"leader"`
	Avatar      schema.OptionalURL `json:"avatar" validate:"omitempty,url"`
	Type        string             `json:"type"`
	Substituted bool               `json:"substituted"`
	Roster      []matchPlayerDTO   `json:"roster" validate:"dive"`
	Stats       *matchTeamStatsDTO `json:"stats"`
}

type matchPlayerDTO struct {
	PlayerID       string             `json:"player_id" validate:"required"`
	Nickname       string             `json:"nickname" validate:"required"`
	Avatar         schema.OptionalURL `json:"avatar" validate:"omitempty,url"`
	GamePlayerID   string             `json:"game_player_id"`
	GamePlayerName string             `json:"game_player_name"`
	GameSkillLevel int                `json:"game_skill_level"`
	Membership     string             `json:"membership"`
}

type matchTeamStatsDTO struct {
	Rating     float64 `json:"rating"`
	SkillLevel struct {
		Average float64 `json:"average"`
		Range   struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"range"`
	} `json:"skillLevel"`
	WinProbability float64 `json:"winProbability"`
}

type statsDTO struct {
	Rounds []statsRoundDTO `json:"rounds" validate:"dive"`
}

type statsRoundDTO struct {
	MatchID       string         `json:"match_id" validate:"required"`
	BestOf        schema.Number  `json:"best_of"`
	MatchRound    schema.Number  `json:"match_round"`
	Played        schema.Number  `json:"played"`
	GameID        string         `json:"game_id"`
	GameMode      string         `json:"game_mode"`
	CompetitionID string         `json:"competition_id"`
	RoundStats    roundStatsDTO  `json:"round_stats"`
	Teams         []statsTeamDTO `json:"teams" validate:"dive"`
}

type roundStatsDTO struct {
	Map    string                `json:"Map"`
	Region string                `json:"Region"`
	Rounds schema.OptionalNumber `json:"Rounds"`
	Score  string                `json:"Score"`
	Winner string                `json:"Winner"`
}

type statsTeamDTO struct {
	TeamID    string           `json:"team_id" validate:"required"`
	Premade   bool             `json:"premade"`
	TeamStats teamStatsDTO     `json:"team_stats"`
	Players   []statsPlayerDTO `json:"players" validate:"dive"`
}

type teamStatsDTO struct {
	Team            string                `json:"Team"`
	FinalScore      schema.OptionalNumber `json:"Final Score"`
	FirstHalfScore  schema.OptionalNumber `json:"First Half Score"`
	SecondHalfScore schema.OptionalNumber `json:"Second Half Score"`
	TeamHeadshots   string                `json:"Team Headshots"`
	TeamWin         schema.OptionalNumber `json:"Team Win"`
}

type statsPlayerDTO struct {
	PlayerID string `json:"player_id" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
}

// Web API shapes. Every response wraps its data in a payload field.

type leagueInfoEnvelope struct {
	Payload struct {
		ID              string `json:"id" validate:"required"`
		Name            string `json:"name"`
		CurrentSeasonID string `json:"current_season_id" validate:"required"`
	} `json:"payload"`
}

type filtersEnvelope struct {
	Payload struct {
		Regions []regionDTO `json:"regions" validate:"dive"`
	} `json:"payload"`
}

type regionDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Divisions []divisionDTO `json:"divisions" validate:"dive"`
}

type divisionDTO struct {
	ID     string     `json:"id" validate:"required"`
	Name   string     `json:"name"`
	Stages []stageDTO `json:"stages" validate:"dive"`
}

type stageDTO struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name"`
	Conferences []conferenceDTO `json:"conferences" validate:"dive"`
}

type conferenceDTO struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

type standingsEnvelope struct {
	Payload struct {
		Standings []standingDTO `json:"standings" validate:"dive"`
	} `json:"payload"`
}

type standingDTO struct {
	PremadeTeamID string                `json:"premade_team_id" validate:"required"`
	Name          string                `json:"name" validate:"required"`
	Avatar        schema.OptionalURL    `json:"avatar" validate:"omitempty,url"`
	Rank          schema.OptionalNumber `json:"rank"`
	Points        schema.OptionalNumber `json:"points"`
	Wins          schema.OptionalNumber `json:"wins"`
	Losses        schema.OptionalNumber `json:"losses"`
	Ties          schema.OptionalNumber `json:"ties"`
	MatchesPlayed schema.OptionalNumber `json:"matches_played"`
}

type registrationsEnvelope struct {
	Payload struct {
		Total schema.OptionalNumber `json:"total"`
		Items []registrationDTO     `json:"items" validate:"dive"`
	} `json:"payload"`
}

type registrationDTO struct {
	TeamID       string                `json:"team_id" validate:"required"`
	TeamName     string                `json:"team_name"`
	Avatar       schema.OptionalURL    `json:"avatar" validate:"omitempty,url"`
	Status       string                `json:"status"`
	RegisteredAt schema.OptionalNumber `json:"registered_at"`
}

type teamLeagueSummaryEnvelope struct {
	Payload []teamLeagueDTO `json:"payload" validate:"dive"`
}

type teamLeagueDTO struct {
	LeagueID      string            `json:"league_id" validate:"required"`
	LeagueName    string            `json:"league_name"`
	GameID        string            `json:"game_id"`
	Seasons       []leagueSeasonDTO `json:"league_seasons_info" validate:"dive"`
	ActiveMembers []activeMemberDTO `json:"active_members" validate:"dive"`
}

type leagueSeasonDTO struct {
	SeasonNumber    schema.Number       `json:"season_number"`
	SeasonID        string              `json:"season_id" validate:"required"`
	SeasonStandings []seasonStandingDTO `json:"season_standings" validate:"dive"`
}

type seasonStandingDTO struct {
	StageID        string `json:"stage_id"`
	StageName      string `json:"stage_name"`
	ChampionshipID string `json:"championship_id" validate:"required"`
}

type activeMemberDTO struct {
	UserID   string             `json:"user_id" validate:"required"`
	UserName string             `json:"user_name" validate:"required"`
	GameRole string             `json:"game_role"`
	Avatar   schema.OptionalURL `json:"avatar" validate:"omitempty,url"`
}

type voteHistoryEnvelope struct {
	Payload struct {
		MatchID string          `json:"match_id" validate:"required"`
		Tickets []voteTicketDTO `json:"tickets" validate:"dive"`
	} `json:"payload"`
}

type voteTicketDTO struct {
	EntityType string          `json:"entity_type" validate:"required"`
	VoteType   string          `json:"vote_type" validate:"oneof=drop_pick"`
	Entities   []voteEntityDTO `json:"entities" validate:"dive"`
}

type voteEntityDTO struct {
	GUID       string `json:"guid" validate:"required"`
	Status     string `json:"status" validate:"oneof=drop pick"`
	Random     bool   `json:"random"`
	Round      int    `json:"round"`
	SelectedBy string `json:"selected_by" validate:"omitempty,oneof=faction1 faction2"`
}

type championshipMatchesEnvelope struct {
	Payload struct {
		Start int                   `json:"start"`
		End   int                   `json:"end"`
		Items []championshipItemDTO `json:"items" validate:"dive"`
	} `json:"payload"`
}

type championshipItemDTO struct {
	Status         string     `json:"status" validate:"required"`
	Origin         *originDTO `json:"origin"`
	ChampionshipID string     `json:"championshipId"`
}

type originDTO struct {
	ID    string `json:"id" validate:"required"`
	State string `json:"state"`
}

// Mapping into domain types.

func toTeam(in teamDTO) team.Team {
	out := team.Team{
		ID:          in.TeamID,
		Name:        in.Name,
		Nickname:    in.Nickname,
		Avatar:      in.Avatar.String(),
		CoverImage:  in.CoverImage.String(),
		Description: in.Description,
		Game:        in.Game,
		Leader:      in.Leader,
		FaceitURL:   team.LocalizeURL(in.FaceitURL),
		Website:     in.Website.String(),
		Twitter:     in.Twitter.String(),
		Facebook:    in.Facebook.String(),
		Youtube:     in.Youtube.String(),
		Members:     make([]team.Member, 0, len(in.Members)),
	}
	for _, member := range in.Members {
		out.Members = append(out.Members, team.Member{
			UserID:         member.UserID,
			Nickname:       member.Nickname,
			Avatar:         member.Avatar.String(),
			Country:        member.Country,
			SkillLevel:     member.SkillLevel.IntPtr(),
			MembershipType: member.MembershipType,
			Memberships:    member.Memberships,
			FaceitURL:      team.LocalizeURL(member.FaceitURL.String()),
		})
	}
	return out
}

// toMatch also enforces that results only reference factions present in
// teams.
func toMatch(in matchDTO) (match.Match, error) {
	out := match.Match{
		ID:              in.MatchID,
		BestOf:          in.BestOf,
		Status:          in.Status,
		Game:            in.Game,
		Region:          in.Region,
		CompetitionID:   in.CompetitionID,
		CompetitionName: in.CompetitionName,
		CompetitionType: in.CompetitionType,
		OrganizerID:     in.OrganizerID,
		FaceitURL:       team.LocalizeURL(in.FaceitURL),
		Round:           in.Round,
		Group:           in.Group,
		ConfiguredAt:    in.ConfiguredAt,
		ScheduledAt:     in.ScheduledAt,
		StartedAt:       in.StartedAt,
		FinishedAt:      in.FinishedAt,
		Teams:           make(map[string]match.MatchTeam, len(in.Teams)),
	}
	for _, demo := range in.DemoURL {
		if value, ok := demo.Get(); ok {
			out.DemoURLs = append(out.DemoURLs, value)
		}
	}
	for faction, side := range in.Teams {
		out.Teams[faction] = toMatchTeam(side)
	}

	if in.Results != nil {
		if in.Results.Winner != "" {
			if _, ok := in.Teams[in.Results.Winner]; !ok {
				return match.Match{}, unknownFaction("results.winner", in.Results.Winner)
			}
		}
		score := make(map[string]int, len(in.Results.Score))
		for _, faction := range sortedKeys(in.Results.Score) {
			if _, ok := in.Teams[faction]; !ok {
				return match.Match{}, unknownFaction("results.score", faction)
			}
			score[faction] = in.Results.Score[faction]
		}
		out.Results = &match.Results{Winner: in.Results.Winner, Score: score}
	}

	for _, detailed := range in.DetailedResults {
		factions := make(map[string]int, len(detailed.Factions))
		for faction, value := range detailed.Factions {
			factions[faction] = value.Score
		}
		out.DetailedResults = append(out.DetailedResults, match.DetailedResult{
			AscScore: detailed.AscScore,
			Winner:   detailed.Winner,
			Factions: factions,
		})
	}

	if in.Voting != nil && in.Voting.Map != nil {
		for _, entity := range in.Voting.Map.Entities {
			out.Maps = append(out.Maps, match.MapInfo{
				GUID:    entity.GUID,
				Name:    entity.Name,
				ImageSM: entity.ImageSM.String(),
			})
		}
	}
	return out, nil
}

func toMatchTeam(in matchTeamDTO) match.MatchTeam {
	out := match.MatchTeam{
		FactionID:   in.FactionID,
		Name:        in.Name,
		Leader:      in.Leader,
		Avatar:      in.Avatar.String(),
		Type:        in.Type,
		Substituted: in.Substituted,
	}
	for _, player := range in.Roster {
		out.Roster = append(out.Roster, match.MatchPlayer{
			PlayerID:       player.PlayerID,
			Nickname:       player.Nickname,
			Avatar:         player.Avatar.String(),
			GamePlayerID:   player.GamePlayerID,
			GamePlayerName: player.GamePlayerName,
			GameSkillLevel: player.GameSkillLevel,
			Membership:     player.Membership,
		})
	}
	if in.Stats != nil {
		out.Stats = &match.TeamRating{
			Rating:            in.Stats.Rating,
			SkillLevelAverage: in.Stats.SkillLevel.Average,
			SkillLevelMin:     in.Stats.SkillLevel.Range.Min,
			SkillLevelMax:     in.Stats.SkillLevel.Range.Max,
			WinProbability:    in.Stats.WinProbability,
		}
	}
	return out
}

func unknownFaction(path, faction string) error {
	return &schema.ValidationError{Shape: "matchDTO", Path: path, Rule: "faction", Value: faction}
}

func toStats(in statsDTO) match.Stats {
	out := match.Stats{Rounds: make([]match.Round, 0, len(in.Rounds))}
	for _, round := range in.Rounds {
		item := match.Round{
			MatchID:       round.MatchID,
			BestOf:        round.BestOf.Int(),
			MatchRound:    round.MatchRound.Int(),
			Played:        round.Played.Int(),
			GameID:        round.GameID,
			GameMode:      round.GameMode,
			CompetitionID: round.CompetitionID,
			RoundStats: match.RoundStats{
				Map:    round.RoundStats.Map,
				Region: round.RoundStats.Region,
				Rounds: round.RoundStats.Rounds.IntPtr(),
				Score:  round.RoundStats.Score,
				Winner: round.RoundStats.Winner,
			},
			Teams: make([]match.RoundTeam, 0, len(round.Teams)),
		}
		for _, side := range round.Teams {
			players := make([]match.RoundPlayer, 0, len(side.Players))
			for _, player := range side.Players {
				players = append(players, match.RoundPlayer{PlayerID: player.PlayerID, Nickname: player.Nickname})
			}
			item.Teams = append(item.Teams, match.RoundTeam{
				TeamID:  side.TeamID,
				Premade: side.Premade,
				Stats: match.RoundTeamStats{
					Name:            side.TeamStats.Team,
					FinalScore:      side.TeamStats.FinalScore.IntPtr(),
					FirstHalfScore:  side.TeamStats.FirstHalfScore.IntPtr(),
					SecondHalfScore: side.TeamStats.SecondHalfScore.IntPtr(),
					Headshots:       side.TeamStats.TeamHeadshots,
					Win:             side.TeamStats.TeamWin.IntPtr(),
				},
				Players: players,
			})
		}
		out.Rounds = append(out.Rounds, item)
	}
	return out
}

func toLeagueInfo(in leagueInfoEnvelope) league.Info {
	return league.Info{
		ID:              in.Payload.ID,
		Name:            in.Payload.Name,
		CurrentSeasonID: in.Payload.CurrentSeasonID,
	}
}

func toFilters(in filtersEnvelope) league.Filters {
	out := league.Filters{Regions: make([]league.Region, 0, len(in.Payload.Regions))}
	for _, region := range in.Payload.Regions {
		r := league.Region{ID: region.ID, Name: region.Name, Divisions: make([]league.Division, 0, len(region.Divisions))}
		for _, division := range region.Divisions {
			d := league.Division{ID: division.ID, Name: division.Name, Stages: make([]league.Stage, 0, len(division.Stages))}
			for _, stage := range division.Stages {
				s := league.Stage{ID: stage.ID, Name: stage.Name, Conferences: make([]league.Conference, 0, len(stage.Conferences))}
				for _, conference := range stage.Conferences {
					s.Conferences = append(s.Conferences, league.Conference{ID: conference.ID, Name: conference.Name})
				}
				d.Stages = append(d.Stages, s)
			}
			r.Divisions = append(r.Divisions, d)
		}
		out.Regions = append(out.Regions, r)
	}
	return out
}

func toStandingsPage(in standingsEnvelope) league.StandingsPage {
	out := league.StandingsPage{Standings: make([]league.StandingRow, 0, len(in.Payload.Standings))}
	for _, row := range in.Payload.Standings {
		out.Standings = append(out.Standings, league.StandingRow{
			PremadeTeamID: row.PremadeTeamID,
			Name:          row.Name,
			Avatar:        row.Avatar.String(),
			Rank:          row.Rank.IntPtr(),
			Points:        row.Points.IntPtr(),
			Wins:          row.Wins.IntPtr(),
			Losses:        row.Losses.IntPtr(),
			Ties:          row.Ties.IntPtr(),
			MatchesPlayed: row.MatchesPlayed.IntPtr(),
		})
	}
	return out
}

func toRegistrationsPage(in registrationsEnvelope, offset, limit int) league.RegistrationsPage {
	out := league.RegistrationsPage{
		Offset: offset,
		Limit:  limit,
		Total:  in.Payload.Total.IntPtr(),
		Items:  make([]league.Registration, 0, len(in.Payload.Items)),
	}
	for _, item := range in.Payload.Items {
		reg := league.Registration{
			TeamID:   item.TeamID,
			TeamName: item.TeamName,
			Avatar:   item.Avatar.String(),
			Status:   item.Status,
		}
		if v, ok := item.RegisteredAt.Get(); ok {
			at := int64(v)
			reg.RegisteredAt = &at
		}
		out.Items = append(out.Items, reg)
	}
	return out
}

func toTeamLeagues(in teamLeagueSummaryEnvelope) []league.TeamLeague {
	out := make([]league.TeamLeague, 0, len(in.Payload))
	for _, item := range in.Payload {
		entry := league.TeamLeague{
			LeagueID:      item.LeagueID,
			LeagueName:    item.LeagueName,
			GameID:        item.GameID,
			Seasons:       make([]league.Season, 0, len(item.Seasons)),
			ActiveMembers: make([]league.ActiveMember, 0, len(item.ActiveMembers)),
		}
		for _, season := range item.Seasons {
			s := league.Season{
				SeasonNumber: season.SeasonNumber.Int(),
				SeasonID:     season.SeasonID,
				Standings:    make([]league.SeasonStanding, 0, len(season.SeasonStandings)),
			}
			for _, standing := range season.SeasonStandings {
				s.Standings = append(s.Standings, league.SeasonStanding{
					StageID:        standing.StageID,
					StageName:      standing.StageName,
					ChampionshipID: standing.ChampionshipID,
				})
			}
			entry.Seasons = append(entry.Seasons, s)
		}
		for _, member := range item.ActiveMembers {
			entry.ActiveMembers = append(entry.ActiveMembers, league.ActiveMember{
				UserID:   member.UserID,
				UserName: member.UserName,
				GameRole: member.GameRole,
				Avatar:   member.Avatar.String(),
			})
		}
		out = append(out, entry)
	}
	return out
}

func toVoteHistory(in voteHistoryEnvelope) match.VoteHistory {
	out := match.VoteHistory{
		MatchID: in.Payload.MatchID,
		Tickets: make([]match.VoteTicket, 0, len(in.Payload.Tickets)),
	}
	for _, ticket := range in.Payload.Tickets {
		t := match.VoteTicket{
			EntityType: ticket.EntityType,
			VoteType:   ticket.VoteType,
			Entities:   make([]match.VoteEntity, 0, len(ticket.Entities)),
		}
		for _, entity := range ticket.Entities {
			t.Entities = append(t.Entities, match.VoteEntity{
				GUID:       entity.GUID,
				Status:     entity.Status,
				Random:     entity.Random,
				Round:      entity.Round,
				SelectedBy: entity.SelectedBy,
			})
		}
		out.Tickets = append(out.Tickets, t)
	}
	return out
}

func toChampionshipMatchPage(in championshipMatchesEnvelope) league.ChampionshipMatchPage {
	out := league.ChampionshipMatchPage{
		Start: in.Payload.Start,
		End:   in.Payload.End,
		Items: make([]league.ChampionshipMatch, 0, len(in.Payload.Items)),
	}
	for _, item := range in.Payload.Items {
		entry := league.ChampionshipMatch{
			Status:         item.Status,
			ChampionshipID: item.ChampionshipID,
		}
		if item.Origin != nil {
			entry.Origin = &league.Origin{ID: item.Origin.ID, State: item.Origin.State}
		}
		out.Items = append(out.Items, entry)
	}
	return out
}

func sortedKeys(in map[string]int) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
