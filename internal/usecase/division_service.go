package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/matchdata"
)

const (
	DefaultLeagueID   = "a14b8616-45b9-4581-8637-4dfd0b5f6af8"
	DefaultRegionName = "North America"
)

// DivisionService answers questions about the configured league's current
// season in one region.
type DivisionService struct {
	leagues     league.Source
	conferences *ConferenceService
	leagueID    string
	regionName  string
}

func NewDivisionService(leagues league.Source, conferences *ConferenceService, leagueID, regionName string) *DivisionService {
	if strings.TrimSpace(leagueID) == "" {
		leagueID = DefaultLeagueID
	}
	if strings.TrimSpace(regionName) == "" {
		regionName = DefaultRegionName
	}
	return &DivisionService{
		leagues:     leagues,
		conferences: conferences,
		leagueID:    leagueID,
		regionName:  regionName,
	}
}

// CurrentSeasonID resolves the league's running season.
func (s *DivisionService) CurrentSeasonID(ctx context.Context) (string, error) {
	info, err := s.leagues.LeagueInfo(ctx, s.leagueID)
	if err != nil {
		return "", fmt.Errorf("load league info: %w", err)
	}
	return info.CurrentSeasonID, nil
}

// Divisions lists the region's divisions for the current season; none when the
// region is absent.
func (s *DivisionService) Divisions(ctx context.Context) ([]league.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Divisions")
	defer span.End()

	seasonID, err := s.CurrentSeasonID(ctx)
	if err != nil {
		return nil, err
	}
	filters, err := s.leagues.LeagueFilters(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("load league filters: %w", err)
	}
	region, ok := filters.RegionByName(s.regionName)
	if !ok || region.Divisions == nil {
		return []league.Division{}, nil
	}
	return region.Divisions, nil
}

// RosterReport is the division's team list for a season and region. Empty
// seasonID and regionName fall back to the current season and configured
// region.
func (s *DivisionService) RosterReport(ctx context.Context, divisionID, seasonID, regionName string) ([]matchdata.ConferenceTeamData, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.RosterReport")
	defer span.End()

	if strings.TrimSpace(divisionID) == "" {
		return nil, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(seasonID) == "" {
		current, err := s.CurrentSeasonID(ctx)
		if err != nil {
			return nil, err
		}
		seasonID = current
	}
	if strings.TrimSpace(regionName) == "" {
		regionName = s.regionName
	}
	return s.conferences.ConferenceTeamData(ctx, seasonID, regionName, divisionID)
}

// Registrations returns one page of a conference's registered teams.
func (s *DivisionService) Registrations(ctx context.Context, conferenceID string, offset, limit int) (league.RegistrationsPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Registrations")
	defer span.End()

	if strings.TrimSpace(conferenceID) == "" {
		return league.RegistrationsPage{}, fmt.Errorf("%w: conference id is required", ErrInvalidInput)
	}
	if offset < 0 || limit < 0 {
		return league.RegistrationsPage{}, fmt.Errorf("%w: offset and limit must not be negative", ErrInvalidInput)
	}
	page, err := s.leagues.ConferenceRegistrations(ctx, conferenceID, offset, limit)
	if err != nil {
		return league.RegistrationsPage{}, fmt.Errorf("load registrations: %w", err)
	}
	return page, nil
}
