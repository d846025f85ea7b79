package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/support-desk/ticket-dashboard/internal/api/http"
	"github.com/support-desk/ticket-dashboard/internal/api/http/handlers"
	"github.com/support-desk/ticket-dashboard/internal/auth"
	"github.com/support-desk/ticket-dashboard/internal/config"
	"github.com/support-desk/ticket-dashboard/internal/events"
	"github.com/support-desk/ticket-dashboard/internal/i18n"
	"github.com/support-desk/ticket-dashboard/internal/observability"
	"github.com/support-desk/ticket-dashboard/internal/persistence"
	"github.com/support-desk/ticket-dashboard/internal/repository"
	"github.com/support-desk/ticket-dashboard/internal/scanner"
	"github.com/support-desk/ticket-dashboard/internal/service"
	"github.com/support-desk/ticket-dashboard/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	cache := persistence.NewRedis(cfg.Redis, logger)
	defer cache.Close()

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	auditRepo := repository.NewAuditLogRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	container := state.NewContainer()
	invalidator := state.NewRedisInvalidator(cache.Client)
	dispatcher := events.NewInMemoryDispatcher()

	auditService := service.NewAuditService(auditRepo, invalidator, logger)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, invalidator, logger)
	notificationService.RegisterHandlers()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:  ticketRepo,
		Audit:       auditService,
		Dispatcher:  dispatcher,
		Invalidator: invalidator,
		Logger:      logger,
	})
	authService := service.NewAuthService(cfg.Auth, userRepo)
	statsService := service.NewStatsService(container, cfg.Locale.Location())
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	listener := state.NewListener(cache.Client, container, state.Loaders{
		Tickets:       ticketRepo.ListAll,
		Users:         userRepo.ListAll,
		AuditLogs:     auditRepo.ListAll,
		Notifications: notificationRepo.ListAll,
	}, logger)
	go listener.Run(ctx)

	deadlineScanner := scanner.New(scanner.Config{
		Source:   container.Tickets,
		Emitter:  notificationService,
		Dedup:    scanner.NewRedisDeduper(cache.Client, cfg.Scanner.DedupTTL()),
		Interval: cfg.Scanner.Interval(),
		Location: cfg.Locale.Location(),
		Logger:   logger,
	})
	container.Subscribe(state.CollectionTickets, deadlineScanner.NotifyChanged)
	go deadlineScanner.Run(ctx)

	defaultLang := i18n.ParseLanguage(cfg.Locale.DefaultLanguage, i18n.LanguageFrench)
	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), defaultLang)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pool, cache.Client),
		Auth:           handlers.NewAuthHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Stats:          handlers.NewStatsHandler(statsService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Audit:          handlers.NewAuditHandler(auditService),
		Users:          handlers.NewUsersHandler(authService),
		I18n:           handlers.NewI18nHandler(defaultLang, httptransport.RequestLanguage),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
