// Package report renders division data for export.
package report

import (
	"io"
	"strings"

	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/matchdata"
	"github.com/valyala/bytebufferpool"
)

var rosterHeader = []string{"Team name", "Team ID", "Team URL", "Player name", "Player role", "Player URL"}

func TeamURL(teamID string) string {
	return "https://faceit.com/en/teams/" + teamID + "/leagues"
}

func PlayerURL(nickname string) string {
	return "https://www.faceit.com/en/players/" + nickname
}

// WriteRosterCSV writes one line per active member of every team with a
// league summary. Fields are joined without quoting and lines are separated
// by a single newline with none after the last.
func WriteRosterCSV(w io.Writer, teams []matchdata.ConferenceTeamData) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(strings.Join(rosterHeader, ","))
	for _, item := range teams {
		if item.Summary == nil {
			continue
		}
		for _, member := range item.Summary.ActiveMembers {
			_ = buf.WriteByte('\n')
			_, _ = buf.WriteString(strings.Join([]string{
				item.Team.Name,
				item.Team.PremadeTeamID,
				TeamURL(item.Team.PremadeTeamID),
				member.UserName,
				member.GameRole,
				PlayerURL(member.UserName),
			}, ","))
		}
	}

	_, err := buf.WriteTo(w)
	return err
}
