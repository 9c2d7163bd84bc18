package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/faceit-league-dashboard/external/faceit"
	"github.com/riskibarqy/faceit-league-dashboard/internal/config"
	"github.com/riskibarqy/faceit-league-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/faceit-league-dashboard/internal/usecase"
)

// Services holds the use cases shared by the HTTP server and the CLI.
type Services struct {
	Divisions *usecase.DivisionService
	TeamPages *usecase.TeamPageService
}

func NewServices(cfg config.Config, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Default()
	}

	clientCfg := func(baseURL string) faceit.ClientConfig {
		return faceit.ClientConfig{
			BaseURL:    baseURL,
			APIKey:     cfg.FaceitAPIKey,
			Timeout:    cfg.FaceitTimeout,
			MaxRetries: cfg.FaceitMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.BreakerConfig{
				Enabled:          cfg.FaceitCircuitEnabled,
				FailureThreshold: cfg.FaceitCircuitFailureCount,
				OpenTimeout:      cfg.FaceitCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FaceitCircuitHalfOpenMaxReq,
			},
		}
	}
	official := faceit.NewOfficialClient(clientCfg(cfg.FaceitAPIBaseURL))
	unofficial := faceit.NewUnofficialClient(clientCfg(cfg.FaceitWebAPIBaseURL))

	conferences := usecase.NewConferenceService(unofficial, usecase.ConferenceServiceConfig{
		StandingsPageSize: cfg.FaceitStandingsPageSize,
		Workers:           cfg.FaceitSummaryWorkers,
		Logger:            logger,
	})

	return &Services{
		Divisions: usecase.NewDivisionService(unofficial, conferences, cfg.FaceitLeagueID, cfg.FaceitRegionName),
		TeamPages: usecase.NewTeamPageService(official, unofficial, official, unofficial, usecase.TeamPageServiceConfig{
			LeagueID:    cfg.FaceitLeagueID,
			FanoutLimit: cfg.FaceitFanoutLimit,
			Logger:      logger,
		}),
	}
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	services := NewServices(cfg, logger)
	handler := httpapi.NewHandler(services.Divisions, services.TeamPages, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
