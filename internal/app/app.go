package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/pucklabs/fantasy-hockey/external/availability"
	"github.com/pucklabs/fantasy-hockey/internal/config"
	"github.com/pucklabs/fantasy-hockey/internal/domain/draft"
	"github.com/pucklabs/fantasy-hockey/internal/domain/lineup"
	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
	"github.com/pucklabs/fantasy-hockey/internal/domain/schedule"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
	"github.com/pucklabs/fantasy-hockey/internal/infrastructure/repository/memory"
	"github.com/pucklabs/fantasy-hockey/internal/infrastructure/repository/postgres"
	"github.com/pucklabs/fantasy-hockey/internal/interfaces/httpapi"
	idgen "github.com/pucklabs/fantasy-hockey/internal/platform/id"
	"github.com/pucklabs/fantasy-hockey/internal/platform/logging"
	"github.com/pucklabs/fantasy-hockey/internal/platform/resilience"
	"github.com/pucklabs/fantasy-hockey/internal/usecase"
)

type repositories struct {
	teams    team.Repository
	players  player.Repository
	schedule schedule.Repository
	rosters  draft.Repository
	lineups  lineup.Repository
}

// NewHTTPServer assembles repositories, services, and the HTTP router
// into a ready-to-run server. It does not start listening.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	slotQuotas, err := slotQuotasFromConfig(cfg.LineupSlotQuotas)
	if err != nil {
		return nil, err
	}

	leagueSvc := usecase.NewLeagueService(repos.teams, repos.players)
	scheduleSvc := usecase.NewScheduleService(repos.teams, repos.schedule, cfg.ScheduleValidators)
	draftSvc := usecase.NewDraftService(repos.teams, repos.players, repos.rosters, draftQuotasFromConfig(cfg))
	lineupSvc := usecase.NewLineupService(
		repos.teams,
		repos.players,
		repos.rosters,
		repos.lineups,
		availabilitySource(cfg, logger),
		slotQuotas,
		cfg.LineupIRCap,
	)

	var listingCacheTTL time.Duration
	if cfg.CacheEnabled {
		listingCacheTTL = cfg.CacheTTL
	}

	handler := httpapi.NewHandler(leagueSvc, scheduleSvc, draftSvc, lineupSvc, logger, listingCacheTTL, httpapi.JobDefaults{
		SeasonWeeks:   cfg.DefaultSeasonWeeks,
		RosterCap:     cfg.DefaultRosterCap,
		LineupWorkers: cfg.LineupWorkers,
	})
	router := httpapi.NewRouter(handler, logger, idgen.NewRandomGenerator(), cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageMode {
	case config.StoragePostgres:
		db, err := openDatabase(cfg)
		if err != nil {
			return repositories{}, fmt.Errorf("open database: %w", err)
		}
		logger.Info("storage ready", "mode", cfg.StorageMode, "db_name", dbNameFromURL(cfg.DBURL))

		return repositories{
			teams:    postgres.NewTeamRepository(db),
			players:  postgres.NewPlayerRepository(db),
			schedule: postgres.NewScheduleRepository(db),
			rosters:  postgres.NewRosterRepository(db),
			lineups:  postgres.NewLineupRepository(db),
		}, nil
	default:
		logger.Info("storage ready", "mode", cfg.StorageMode, "league_id", memory.LeagueIDDemoHockey)

		return repositories{
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			schedule: memory.NewScheduleRepository(),
			rosters:  memory.NewRosterRepository(),
			lineups:  memory.NewLineupRepository(),
		}, nil
	}
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func draftQuotasFromConfig(cfg config.Config) draft.Quotas {
	quotas := draft.DefaultQuotas()
	quotas.GoaliesPerTeam = cfg.GoaliesPerTeam
	quotas.GoalieBaseline = cfg.GoalieBaselineScore

	return quotas
}

func slotQuotasFromConfig(counts map[string]int) (lineup.SlotQuotas, error) {
	var quotas lineup.SlotQuotas
	for slot, count := range counts {
		switch slot {
		case "C":
			quotas.C = count
		case "LW":
			quotas.LW = count
		case "RW":
			quotas.RW = count
		case "D":
			quotas.D = count
		case "G":
			quotas.G = count
		case "UTIL":
			quotas.UTIL = count
		default:
			return lineup.SlotQuotas{}, fmt.Errorf("unknown lineup slot %q in LINEUP_SLOT_QUOTAS", slot)
		}
	}
	if quotas.Total() == 0 {
		return lineup.SlotQuotas{}, fmt.Errorf("LINEUP_SLOT_QUOTAS must allow at least one starter slot")
	}

	return quotas, nil
}

func availabilitySource(cfg config.Config, logger *logging.Logger) usecase.AvailabilitySource {
	if !cfg.AvailabilityEnabled {
		return nil
	}

	return availability.NewClient(availability.ClientConfig{
		BaseURL:    cfg.AvailabilityBaseURL,
		Token:      cfg.AvailabilityToken,
		Timeout:    cfg.AvailabilityTimeout,
		MaxRetries: cfg.AvailabilityMaxRetries,
		Logger:     logger,
		Circuit: resilience.BreakerConfig{
			Enabled:          cfg.AvailabilityCircuitEnabled,
			FailureThreshold: cfg.AvailabilityCircuitFailureCount,
			OpenTimeout:      cfg.AvailabilityCircuitOpenTimeout,
			ProbeLimit:       cfg.AvailabilityCircuitProbeLimit,
		},
	})
}
