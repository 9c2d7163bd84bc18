package usecase

import (
	"sort"

	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/match"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/matchdata"
)

// FusionInput is everything fetched for one team's season. Stats and
// VoteHistories are keyed by match id; a missing key means the fetch failed
// or the match had nothing to report.
type FusionInput struct {
	TeamID              string
	ChampionshipMatches []league.ChampionshipMatch
	MatchIDs            []string
	Matches             []match.Match
	Stats               map[string]match.Stats
	VoteHistories       map[string]match.VoteHistory
}

// FuseMatchData joins the championship schedule with match detail, per-map
// statistics and veto history. Output follows MatchIDs; ids without a
// schedule entry are dropped.
func FuseMatchData(in FusionInput) []matchdata.MatchData {
	byID := make(map[string]*matchdata.MatchData, len(in.ChampionshipMatches))
	for _, item := range in.ChampionshipMatches {
		id := item.MatchID()
		if id == "" {
			continue
		}
		byID[id] = &matchdata.MatchData{
			ChampionshipMatch: item,
			MapSummaries:      []matchdata.MapSummary{},
			Notes:             []string{},
		}
	}

	// Every detail is applied before any name lookup below reads mapNames.
	mapNames := make(map[string]string)
	subjectFactions := make(map[string]string, len(in.Matches))
	for _, detail := range in.Matches {
		data, ok := byID[detail.ID]
		if !ok {
			continue
		}
		data.Match = &detail
		for _, info := range detail.Maps {
			mapNames[info.GUID] = info.Name
		}
		if faction := applyMatchDetail(data, detail, in.TeamID); faction != "" {
			subjectFactions[detail.ID] = faction
		}
	}

	pending := uniqueIDs(in.MatchIDs)
	for _, matchID := range pending {
		data, ok := byID[matchID]
		if !ok {
			continue
		}
		if stats, ok := in.Stats[matchID]; ok {
			data.Stats = &stats
			for _, round := range stats.Rounds {
				data.MapSummaries = append(data.MapSummaries, summarizeMap(round, in.TeamID, mapNames))
			}
		}
		if len(data.MapSummaries) == 0 && !hasNote(data.Notes, matchdata.NoteIncomplete) {
			data.Notes = append(data.Notes, matchdata.NoteIncomplete)
		}
	}

	for _, matchID := range pending {
		data, ok := byID[matchID]
		if !ok {
			continue
		}
		history, ok := in.VoteHistories[matchID]
		if !ok {
			continue
		}
		data.VoteHistory = &history
		applyVetoes(data, history, subjectFactions[matchID], mapNames)
	}

	out := make([]matchdata.MatchData, 0, len(in.MatchIDs))
	for _, matchID := range in.MatchIDs {
		if data, ok := byID[matchID]; ok {
			out = append(out, *data)
		}
	}
	return out
}

// isSubjectSide is the one rule for telling the subject team's side apart,
// shared by results, statistics and veto attribution. Empty ids never match.
func isSubjectSide(subjectID, sideID string) bool {
	return subjectID != "" && sideID != "" && subjectID == sideID
}

// applyMatchDetail fills the summary from the match's teams and results and
// returns the subject team's faction name, or "" if it did not play.
func applyMatchDetail(data *matchdata.MatchData, detail match.Match, teamID string) string {
	factions := make([]string, 0, len(detail.Teams))
	for faction := range detail.Teams {
		factions = append(factions, faction)
	}
	sort.Strings(factions)

	subject := ""
	for _, faction := range factions {
		side := detail.Teams[faction]
		if isSubjectSide(teamID, side.FactionID) {
			subject = faction
			if detail.Results != nil {
				data.Summary.TeamWin = boolPtr(detail.Results.Winner == faction)
				data.Summary.TeamScore = scoreOf(detail.Results, faction)
			}
			continue
		}
		data.Summary.Opponent = &side
		if detail.Results != nil {
			data.Summary.OpponentScore = scoreOf(detail.Results, faction)
		}
	}
	return subject
}

func summarizeMap(round match.Round, teamID string, mapNames map[string]string) matchdata.MapSummary {
	var out matchdata.MapSummary
	if raw := round.RoundStats.Map; raw != "" {
		out.MapName = resolveMapName(mapNames, raw)
	}
	for _, side := range round.Teams {
		stats := side.Stats
		if isSubjectSide(teamID, side.TeamID) {
			if stats.Win != nil {
				out.TeamWin = boolPtr(*stats.Win == 1)
			}
			out.TeamScore = stats.FinalScore
			out.TeamHalfScores = halfScores(stats)
			out.TeamPlayers = side.Players
			continue
		}
		out.OpponentName = stats.Name
		out.OpponentScore = stats.FinalScore
		out.OpponentHalfScores = halfScores(stats)
		out.OpponentPlayers = side.Players
	}
	return out
}

// halfScores reports both halves only when neither is zero; a real 0 second
// half is indistinguishable from a forfeit upstream.
func halfScores(stats match.RoundTeamStats) *matchdata.HalfScores {
	if stats.FirstHalfScore == nil || stats.SecondHalfScore == nil {
		return nil
	}
	if *stats.FirstHalfScore == 0 || *stats.SecondHalfScore == 0 {
		return nil
	}
	return &matchdata.HalfScores{*stats.FirstHalfScore, *stats.SecondHalfScore}
}

func applyVetoes(data *matchdata.MatchData, history match.VoteHistory, subjectFaction string, mapNames map[string]string) {
	ticket, ok := history.MapTicket()
	if !ok {
		return
	}

	choices := make([]matchdata.MapChoice, 0, len(ticket.Entities))
	bans := make([]string, 0, len(ticket.Entities))
	picks := make([]string, 0, len(ticket.Entities))
	for _, entity := range ticket.Entities {
		name := resolveMapName(mapNames, entity.GUID)
		side := matchdata.SideOpponent
		if isSubjectSide(subjectFaction, entity.SelectedBy) {
			side = matchdata.SideTeam
			switch entity.Status {
			case match.ChoiceDrop:
				bans = append(bans, name)
			case match.ChoicePick:
				picks = append(picks, name)
			}
		}
		choices = append(choices, matchdata.MapChoice{
			Team:   side,
			Choice: entity.Status,
			Map:    name,
			Random: entity.Random,
		})
	}
	data.Summary.MapChoices = choices
	data.Summary.TeamMapBans = bans
	data.Summary.TeamMapPicks = picks
}

func resolveMapName(mapNames map[string]string, guid string) string {
	if name, ok := mapNames[guid]; ok && name != "" {
		return name
	}
	return guid
}

func scoreOf(results *match.Results, faction string) *int {
	score, ok := results.Score[faction]
	if !ok {
		return nil
	}
	return &score
}

func hasNote(notes []string, note string) bool {
	for _, existing := range notes {
		if existing == note {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func boolPtr(v bool) *bool {
	return &v
}
