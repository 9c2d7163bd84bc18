package faceit

import (
	"context"
	"fmt"

	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/match"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/team"
)

var (
	_ team.Source  = (*OfficialClient)(nil)
	_ match.Source = (*OfficialClient)(nil)
)

// OfficialClient reads the documented Data API with a bearer key.
type OfficialClient struct {
	t *transport
}

func NewOfficialClient(cfg ClientConfig) *OfficialClient {
	return &OfficialClient{t: newTransport("data", DefaultOfficialBaseURL, cfg)}
}

func (c *OfficialClient) Team(ctx context.Context, teamID string) (team.Team, error) {
	var out teamDTO
	if err := c.t.doJSON(ctx, apiRequest{path: pathf("/teams/%s", teamID)}, &out); err != nil {
		return team.Team{}, fmt.Errorf("fetch team team_id=%s: %w", teamID, err)
	}
	return toTeam(out), nil
}

func (c *OfficialClient) Match(ctx context.Context, matchID string) (match.Match, error) {
	var out matchDTO
	if err := c.t.doJSON(ctx, apiRequest{path: pathf("/matches/%s", matchID)}, &out); err != nil {
		return match.Match{}, fmt.Errorf("fetch match match_id=%s: %w", matchID, err)
	}
	item, err := toMatch(out)
	if err != nil {
		return match.Match{}, fmt.Errorf("map match match_id=%s: %w", matchID, err)
	}
	return item, nil
}

func (c *OfficialClient) MatchStats(ctx context.Context, matchID string) (match.Stats, error) {
	var out statsDTO
	if err := c.t.doJSON(ctx, apiRequest{path: pathf("/matches/%s/stats", matchID)}, &out); err != nil {
		return match.Stats{}, fmt.Errorf("fetch match stats match_id=%s: %w", matchID, err)
	}
	return toStats(out), nil
}
