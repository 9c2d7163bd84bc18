package team

import (
	"context"
	"strings"
)

// Team is a FACEIT premade team profile.
type Team struct {
	ID          string   `json:"team_id"`
	Name        string   `json:"name"`
	Nickname    string   `json:"nickname"`
	Avatar      string   `json:"avatar,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	Description string   `json:"description,omitempty"`
	Game        string   `json:"game"`
	Leader      string   `json:"leader"`
	FaceitURL   string   `json:"faceit_url"`
	Website     string   `json:"website,omitempty"`
	Twitter     string   `json:"twitter,omitempty"`
	Facebook    string   `json:"facebook,omitempty"`
	Youtube     string   `json:"youtube,omitempty"`
	Members     []Member `json:"members"`
}

type Member struct {
	UserID         string   `json:"user_id,omitempty"`
	Nickname       string   `json:"nickname"`
	Avatar         string   `json:"avatar,omitempty"`
	Country        string   `json:"country,omitempty"`
	SkillLevel     *int     `json:"skill_level,omitempty"`
	MembershipType string   `json:"membership_type,omitempty"`
	Memberships    []string `json:"memberships,omitempty"`
	FaceitURL      string   `json:"faceit_url,omitempty"`
}

// Source loads team profiles from the platform.
type Source interface {
	Team(ctx context.Context, teamID string) (Team, error)
}

// LocalizeURL fills the {lang} placeholder FACEIT leaves in profile links.
func LocalizeURL(raw string) string {
	return strings.ReplaceAll(raw, "{lang}", "en")
}
