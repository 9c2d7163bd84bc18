package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/faceit-league-dashboard/internal/domain/league"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/faceit-league-dashboard/internal/usecase"
)

type Handler struct {
	divisionService *usecase.DivisionService
	teamPageService *usecase.TeamPageService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	divisionService *usecase.DivisionService,
	teamPageService *usecase.TeamPageService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		divisionService: divisionService,
		teamPageService: teamPageService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type rosterQuery struct {
	SeasonID string `validate:"omitempty,uuid"`
	Region   string `validate:"omitempty,max=64"`
}

type registrationsQuery struct {
	Offset int `validate:"gte=0"`
	Limit  int `validate:"gte=1,lte=100"`
}

type teamPageQuery struct {
	Season int `validate:"gte=0"`
}

// queryInt reads an optional integer parameter, falling back when absent.
func queryInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

type conferenceDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StageID   string `json:"stage_id"`
	StageName string `json:"stage_name"`
}

type divisionDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Conferences []conferenceDTO `json:"conferences"`
}

func divisionToDTO(v league.Division) divisionDTO {
	out := divisionDTO{
		ID:          v.ID,
		Name:        v.Name,
		Conferences: make([]conferenceDTO, 0),
	}
	for _, stage := range v.Stages {
		for _, conference := range stage.Conferences {
			out.Conferences = append(out.Conferences, conferenceDTO{
				ID:        conference.ID,
				Name:      conference.Name,
				StageID:   stage.ID,
				StageName: stage.Name,
			})
		}
	}
	return out
}
