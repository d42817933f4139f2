// Package app assembles the coin ledger from configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"coin-ledger/config"
	"coin-ledger/internal/adapter/events/kafka"
	httpHandler "coin-ledger/internal/adapter/http/handler"
	"coin-ledger/internal/adapter/http/middleware"
	"coin-ledger/internal/adapter/storage/memory"
	pgStorage "coin-ledger/internal/adapter/storage/postgres"
	redisStorage "coin-ledger/internal/adapter/storage/redis"
	"coin-ledger/internal/core/ports"
	"coin-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// App is a fully wired ledger service.
type App struct {
	Router  *gin.Engine
	AuthSvc ports.AuthService

	log     zerolog.Logger
	stores  stores
	closers []func() error
}

// stores groups the repositories of one storage driver.
type stores struct {
	accounts   ports.AccountRepository
	entries    ports.LedgerRepository
	audits     ports.AuditRepository
	records    ports.RecordsRepository
	transactor ports.DBTransactor
	health     ports.HealthChecker
}

// New connects every configured dependency and builds the router.
// Call Close when done.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret must be set")
	}

	a := &App{log: log}
	ok := false
	defer func() {
		if !ok {
			a.Close() //nolint:errcheck
		}
	}()

	st, err := a.openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.stores = st
	healthCheckers := []ports.HealthChecker{st.health}

	// Redis backs rate limiting and purchase replays. Both stay nil
	// interfaces when it is disabled.
	var (
		rateLimitStore middleware.RateLimitStore
		replayCache    ports.IdempotencyCache
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		replayCache = redisStorage.NewIdempotencyCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled: no rate limiting, purchase replays served from the ledger")
	}

	var publisher ports.EventPublisher
	if cfg.Kafka.Enabled() {
		p := kafka.NewPublisher(cfg.Kafka)
		a.closers = append(a.closers, p.Close)
		publisher = p
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("ledger events enabled")
	}

	hashSvc := service.NewArgon2HashService(service.DefaultArgon2Params)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	ledgerSvc := service.NewLedgerService(st.accounts, st.entries, st.audits, st.transactor, publisher, log)
	meteringSvc := service.NewMeteringService(st.accounts, ledgerSvc, st.transactor, cfg.Ledger, log)
	authSvc := service.NewAuthService(st.accounts, ledgerSvc, st.transactor, hashSvc, tokenSvc, cfg.Ledger, log)
	adminSvc := service.NewAdminService(
		st.accounts,
		st.entries,
		st.records,
		st.audits,
		ledgerSvc,
		service.NewRoleAuthorizer(st.accounts),
		st.transactor,
		log,
	)

	a.AuthSvc = authSvc
	a.Router = httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AccountSvc:     service.NewAccountService(st.accounts, meteringSvc),
		LedgerSvc:      ledgerSvc,
		PurchaseSvc:    service.NewPurchaseService(ledgerSvc, st.entries, replayCache, cfg.Ledger, log),
		BookSvc:        service.NewBookkeepingService(st.records, meteringSvc, st.transactor),
		ReportSvc:      service.NewReportService(st.records, meteringSvc),
		AdminSvc:       adminSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       service.NewAuditService(st.audits, log),
		HistoryLimit:   cfg.Ledger.HistoryLimit,
		Logger:         log,
	})

	ok = true
	return a, nil
}

func (a *App) openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		a.log.Warn().Msg("memory storage driver: the ledger is lost on restart")
		s := memory.NewStore()
		return stores{
			accounts:   memory.NewAccountRepo(s),
			entries:    memory.NewLedgerRepo(s),
			audits:     memory.NewAuditRepo(s),
			records:    memory.NewRecordsRepo(s),
			transactor: memory.NewTransactor(s),
			health:     memory.HealthCheck{},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, a.log)
	if err != nil {
		return stores{}, err
	}
	a.closers = append(a.closers, func() error { pool.Close(); return nil })

	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(ctx, pool, a.log); err != nil {
			return stores{}, err
		}
	}

	return stores{
		accounts:   pgStorage.NewAccountRepo(pool),
		entries:    pgStorage.NewLedgerRepo(pool),
		audits:     pgStorage.NewAuditRepo(pool),
		records:    pgStorage.NewRecordsRepo(pool),
		transactor: pgStorage.NewTransactor(pool),
		health:     pgStorage.NewHealthCheck(pool),
	}, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Migrate applies the PostgreSQL schema without starting the service.
func Migrate(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Storage.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate needs the %s storage driver, configured %q", config.DriverPostgres, cfg.Storage.Driver)
	}
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pgStorage.Migrate(ctx, pool, log)
}

// GinMode maps the configured server mode onto gin's modes.
func GinMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	}
	return gin.ReleaseMode
}
