package usecase

import (
	"testing"

	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/match"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/matchdata"
	"github.com/stretchr/testify/require"
)

const (
	subjectTeamID  = "3f0a2d3e-0b5b-4a55-9a3e-5b8b9e0c1a01"
	opponentTeamID = "7c1e9a44-51f2-4d8e-8f0e-0d2c4b6a9e02"
)

func intPtr(v int) *int { return &v }

func scheduleItem(matchID string) league.ChampionshipMatch {
	return league.ChampionshipMatch{
		Status:         league.ItemStatusFinished,
		Origin:         &league.Origin{ID: matchID, State: league.OriginFinished},
		ChampionshipID: "champ-1",
	}
}

func matchDetail(matchID, subjectFaction, winner string, subjectScore, opponentScore int) match.Match {
	opponentFaction := match.Faction2
	if subjectFaction == match.Faction2 {
		opponentFaction = match.Faction1
	}
	return match.Match{
		ID:     matchID,
		Status: match.StatusFinished,
		Teams: map[string]match.MatchTeam{
			subjectFaction:  {FactionID: subjectTeamID, Name: "Subject"},
			opponentFaction: {FactionID: opponentTeamID, Name: "Opponent"},
		},
		Results: &match.Results{
			Winner: winner,
			Score:  map[string]int{subjectFaction: subjectScore, opponentFaction: opponentScore},
		},
		Maps: []match.MapInfo{
			{GUID: "de_mirage", Name: "Mirage"},
			{GUID: "de_inferno", Name: "Inferno"},
			{GUID: "de_nuke", Name: "Nuke"},
			{GUID: "de_ancient", Name: "Ancient"},
		},
	}
}

func statsRound(matchID, mapGUID string, subjectScore, opponentScore int) match.Round {
	win := 0
	if subjectScore > opponentScore {
		win = 1
	}
	return match.Round{
		MatchID:    matchID,
		RoundStats: match.RoundStats{Map: mapGUID},
		Teams: []match.RoundTeam{
			{
				TeamID: subjectTeamID,
				Stats: match.RoundTeamStats{
					Name:            "Subject",
					FinalScore:      intPtr(subjectScore),
					FirstHalfScore:  intPtr(7),
					SecondHalfScore: intPtr(subjectScore - 7),
					Win:             intPtr(win),
				},
				Players: []match.RoundPlayer{{PlayerID: "p1", Nickname: "one"}},
			},
			{
				TeamID: opponentTeamID,
				Stats: match.RoundTeamStats{
					Name:       "Opponent",
					FinalScore: intPtr(opponentScore),
					Win:        intPtr(1 - win),
				},
				Players: []match.RoundPlayer{{PlayerID: "p6", Nickname: "six"}},
			},
		},
	}
}

func mapVeto(matchID string, entities ...match.VoteEntity) match.VoteHistory {
	return match.VoteHistory{
		MatchID: matchID,
		Tickets: []match.VoteTicket{
			{EntityType: "location", VoteType: "drop_pick"},
			{EntityType: match.EntityTypeMap, VoteType: "drop_pick", Entities: entities},
		},
	}
}

func TestFuseMatchData_ExampleScenario(t *testing.T) {
	t.Parallel()

	in := FusionInput{
		TeamID:              subjectTeamID,
		ChampionshipMatches: []league.ChampionshipMatch{scheduleItem("m1"), scheduleItem("m2")},
		MatchIDs:            []string{"m1", "m2"},
		Matches: []match.Match{
			matchDetail("m2", match.Faction1, match.Faction2, 0, 1),
			matchDetail("m1", match.Faction1, match.Faction1, 2, 0),
		},
		Stats: map[string]match.Stats{
			"m1": {Rounds: []match.Round{
				statsRound("m1", "de_mirage", 13, 9),
				statsRound("m1", "de_inferno", 13, 11),
			}},
		},
		VoteHistories: map[string]match.VoteHistory{
			"m1": mapVeto("m1",
				match.VoteEntity{GUID: "de_nuke", Status: match.ChoiceDrop, Round: 1, SelectedBy: match.Faction1},
				match.VoteEntity{GUID: "de_ancient", Status: match.ChoiceDrop, Round: 2, SelectedBy: match.Faction1},
				match.VoteEntity{GUID: "de_mirage", Status: match.ChoicePick, Round: 3, SelectedBy: match.Faction2},
			),
		},
	}

	got := FuseMatchData(in)
	require.Len(t, got, 2)

	first := got[0]
	require.Equal(t, "m1", first.Match.ID)
	require.Len(t, first.MapSummaries, 2)
	require.NotNil(t, first.Summary.TeamWin)
	require.True(t, *first.Summary.TeamWin)
	require.Equal(t, []string{"Nuke", "Ancient"}, first.Summary.TeamMapBans)
	require.Empty(t, first.Summary.TeamMapPicks)
	require.Equal(t, matchdata.MapChoice{Team: matchdata.SideOpponent, Choice: match.ChoicePick, Map: "Mirage"}, first.Summary.MapChoices[2])
	require.Empty(t, first.Notes)

	second := got[1]
	require.Equal(t, "m2", second.Match.ID)
	require.Empty(t, second.MapSummaries)
	require.Nil(t, second.Stats)
	require.Equal(t, []string{matchdata.NoteIncomplete}, second.Notes)
}

func TestFuseMatchData_AllFetchesSucceed(t *testing.T) {
	t.Parallel()

	ids := []string{"m3", "m1", "m2"}
	in := FusionInput{
		TeamID:        subjectTeamID,
		MatchIDs:      ids,
		Stats:         map[string]match.Stats{},
		VoteHistories: map[string]match.VoteHistory{},
	}
	for _, id := range ids {
		in.ChampionshipMatches = append(in.ChampionshipMatches, scheduleItem(id))
		in.Matches = append(in.Matches, matchDetail(id, match.Faction1, match.Faction1, 1, 0))
		in.Stats[id] = match.Stats{Rounds: []match.Round{statsRound(id, "de_mirage", 13, 5)}}
		in.VoteHistories[id] = mapVeto(id, match.VoteEntity{GUID: "de_nuke", Status: match.ChoiceDrop, SelectedBy: match.Faction2})
	}

	got := FuseMatchData(in)
	require.Len(t, got, len(ids))
	for i, data := range got {
		require.Equal(t, ids[i], data.ChampionshipMatch.MatchID())
		require.NotNil(t, data.Match)
		require.NotNil(t, data.Stats)
		require.NotNil(t, data.VoteHistory)
		require.Len(t, data.MapSummaries, 1)
		require.Empty(t, data.Notes)
	}
}

func TestFuseMatchData_OneStatsFailureDegradesOnlyThatMatch(t *testing.T) {
	t.Parallel()

	ids := []string{"m1", "m2", "m3"}
	in := FusionInput{TeamID: subjectTeamID, MatchIDs: ids, Stats: map[string]match.Stats{}}
	for _, id := range ids {
		in.ChampionshipMatches = append(in.ChampionshipMatches, scheduleItem(id))
		in.Matches = append(in.Matches, matchDetail(id, match.Faction1, match.Faction1, 1, 0))
		if id != "m2" {
			in.Stats[id] = match.Stats{Rounds: []match.Round{statsRound(id, "de_mirage", 13, 5)}}
		}
	}

	got := FuseMatchData(in)
	require.Len(t, got, 3)
	require.Len(t, got[0].MapSummaries, 1)
	require.Empty(t, got[1].MapSummaries)
	require.Equal(t, []string{matchdata.NoteIncomplete}, got[1].Notes)
	require.Len(t, got[2].MapSummaries, 1)
	require.Empty(t, got[2].Notes)
}

func TestFuseMatchData_UnknownMapFallsBackToRawID(t *testing.T) {
	t.Parallel()

	detail := matchDetail("m1", match.Faction1, match.Faction1, 1, 0)
	detail.Maps = nil
	in := FusionInput{
		TeamID:              subjectTeamID,
		ChampionshipMatches: []league.ChampionshipMatch{scheduleItem("m1")},
		MatchIDs:            []string{"m1"},
		Matches:             []match.Match{detail},
		Stats:               map[string]match.Stats{"m1": {Rounds: []match.Round{statsRound("m1", "de_overpass", 13, 2)}}},
		VoteHistories: map[string]match.VoteHistory{
			"m1": mapVeto("m1", match.VoteEntity{GUID: "de_train", Status: match.ChoicePick, Random: true}),
		},
	}

	got := FuseMatchData(in)
	require.Len(t, got, 1)
	require.Equal(t, "de_overpass", got[0].MapSummaries[0].MapName)
	require.Equal(t, "de_train", got[0].Summary.MapChoices[0].Map)
	require.True(t, got[0].Summary.MapChoices[0].Random)
	require.Equal(t, matchdata.SideOpponent, got[0].Summary.MapChoices[0].Team, "platform picks belong to no team")
}

func TestFuseMatchData_SubjectOnFaction2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		winner  string
		wantWin bool
	}{
		{name: "faction2 wins", winner: match.Faction2, wantWin: true},
		{name: "faction1 wins", winner: match.Faction1, wantWin: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			detail := matchDetail("m1", match.Faction2, tc.winner, 16, 12)
			in := FusionInput{
				TeamID:              subjectTeamID,
				ChampionshipMatches: []league.ChampionshipMatch{scheduleItem("m1")},
				MatchIDs:            []string{"m1"},
				Matches:             []match.Match{detail},
				VoteHistories: map[string]match.VoteHistory{
					"m1": mapVeto("m1",
						match.VoteEntity{GUID: "de_nuke", Status: match.ChoiceDrop, SelectedBy: match.Faction2},
						match.VoteEntity{GUID: "de_mirage", Status: match.ChoicePick, SelectedBy: match.Faction2},
						match.VoteEntity{GUID: "de_ancient", Status: match.ChoiceDrop, SelectedBy: match.Faction1},
					),
				},
			}

			got := FuseMatchData(in)
			require.Len(t, got, 1)
			summary := got[0].Summary
			require.Equal(t, tc.wantWin, *summary.TeamWin)
			require.Equal(t, detail.Results.Score[match.Faction2], *summary.TeamScore)
			require.Equal(t, detail.Results.Score[match.Faction1], *summary.OpponentScore)
			require.Equal(t, opponentTeamID, summary.Opponent.FactionID)
			require.Equal(t, []string{"Nuke"}, summary.TeamMapBans)
			require.Equal(t, []string{"Mirage"}, summary.TeamMapPicks)
		})
	}
}

func TestFuseMatchData_NoResultsLeavesScoresAbsent(t *testing.T) {
	t.Parallel()

	detail := matchDetail("m1", match.Faction1, match.Faction1, 0, 0)
	detail.Results = nil
	got := FuseMatchData(FusionInput{
		TeamID:              subjectTeamID,
		ChampionshipMatches: []league.ChampionshipMatch{scheduleItem("m1")},
		MatchIDs:            []string{"m1"},
		Matches:             []match.Match{detail},
	})

	require.Len(t, got, 1)
	require.Nil(t, got[0].Summary.TeamWin)
	require.Nil(t, got[0].Summary.TeamScore)
	require.Nil(t, got[0].Summary.OpponentScore)
	require.NotNil(t, got[0].Summary.Opponent)
}

func TestFuseMatchData_DropsIDsWithoutScheduleEntry(t *testing.T) {
	t.Parallel()

	got := FuseMatchData(FusionInput{
		TeamID: subjectTeamID,
		ChampionshipMatches: []league.ChampionshipMatch{
			scheduleItem("m1"),
			{Status: league.ItemStatusFinished},
		},
		MatchIDs: []string{"m1", "m9"},
		Matches:  []match.Match{matchDetail("m1", match.Faction1, match.Faction1, 1, 0)},
	})

	require.Len(t, got, 1)
	require.Equal(t, "m1", got[0].Match.ID)
}

func TestFuseMatchData_HalfScoresNeedBothHalves(t *testing.T) {
	t.Parallel()

	round := statsRound("m1", "de_mirage", 13, 7)
	round.Teams[1].Stats.FirstHalfScore = intPtr(7)
	round.Teams[1].Stats.SecondHalfScore = intPtr(0)

	got := FuseMatchData(FusionInput{
		TeamID:              subjectTeamID,
		ChampionshipMatches: []league.ChampionshipMatch{scheduleItem("m1")},
		MatchIDs:            []string{"m1"},
		Matches:             []match.Match{matchDetail("m1", match.Faction1, match.Faction1, 1, 0)},
		Stats:               map[string]match.Stats{"m1": {Rounds: []match.Round{round}}},
	})

	summary := got[0].MapSummaries[0]
	require.Equal(t, &matchdata.HalfScores{7, 6}, summary.TeamHalfScores)
	require.Nil(t, summary.OpponentHalfScores)
	require.Equal(t, "Opponent", summary.OpponentName)
	require.True(t, *summary.TeamWin)
	require.Equal(t, "Mirage", summary.MapName)
}

func TestIsSubjectSide(t *testing.T) {
	t.Parallel()

	require.True(t, isSubjectSide("a", "a"))
	require.False(t, isSubjectSide("a", "b"))
	require.False(t, isSubjectSide("", ""))
	require.False(t, isSubjectSide("a", ""))
}
