package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	accountsapp "github.com/karobar/backoffice/internal/application/accounts"
	collabapp "github.com/karobar/backoffice/internal/application/collab"
	ledgerapp "github.com/karobar/backoffice/internal/application/ledger"
	reminderapp "github.com/karobar/backoffice/internal/application/reminder"
	"github.com/karobar/backoffice/internal/infrastructure/cache"
	"github.com/karobar/backoffice/internal/infrastructure/config"
	"github.com/karobar/backoffice/internal/infrastructure/logger"
	"github.com/karobar/backoffice/internal/infrastructure/notification"
	"github.com/karobar/backoffice/internal/infrastructure/persistence"
	"github.com/karobar/backoffice/internal/infrastructure/scheduler"
	"github.com/karobar/backoffice/internal/interfaces/http/handler"
	"github.com/karobar/backoffice/internal/interfaces/http/middleware"
	"github.com/karobar/backoffice/internal/interfaces/http/router"
)

const version = "0.3.0"

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	gormLevel := gormlogger.Warn
	if !cfg.App.IsProduction() {
		gormLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabase(&cfg.Database, logger.NewGormLogger(log, gormLevel))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	staffRepo := persistence.NewGormStaffRepository(db.DB)
	workItemRepo := persistence.NewGormWorkItemRepository(db.DB)
	staffWorkRepo := persistence.NewGormStaffWorkRepository(db.DB)
	incomeRepo := persistence.NewGormIncomeRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	reminderRepo := persistence.NewGormReminderRepository(db.DB)
	influencerRepo := persistence.NewGormInfluencerRepository(db.DB)
	collaborationRepo := persistence.NewGormCollaborationRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)

	// Optional Redis-backed summary cache
	var summaryCache accountsapp.SummaryCache
	var invalidator ledgerapp.CacheInvalidator
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()
		c := cache.NewRedisSummaryCache(redisClient, cfg.Redis.TTL, log)
		summaryCache = c
		invalidator = c
		log.Info("summary cache enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	// Notifications fall back to the log when no mail host is configured
	var notifier reminderapp.Notifier
	if cfg.SMTP.Host != "" {
		notifier = notification.NewSMTPNotifier(&cfg.SMTP, log)
	} else {
		notifier = notification.NewLogNotifier(log)
	}

	// Application services
	accountService := accountsapp.NewAccountService(clientRepo, staffRepo, workItemRepo, staffWorkRepo, incomeRepo, expenseRepo, summaryCache, log)
	clientService := ledgerapp.NewClientService(clientRepo, invalidator, log)
	staffService := ledgerapp.NewStaffService(staffRepo, log)
	workItemService := ledgerapp.NewWorkItemService(workItemRepo, log)
	staffWorkService := ledgerapp.NewStaffWorkService(staffWorkRepo, staffRepo, workItemRepo, clientRepo, log)
	incomeService := ledgerapp.NewIncomeService(incomeRepo, clientRepo, invalidator, log)
	expenseService := ledgerapp.NewExpenseService(expenseRepo, staffRepo, invalidator, log)
	reminderService := reminderapp.NewReminderService(reminderRepo, clientRepo, notifier, log)
	influencerService := collabapp.NewInfluencerService(influencerRepo, log)
	collaborationService := collabapp.NewCollaborationService(collaborationRepo, influencerRepo, log)
	paymentService := collabapp.NewPaymentService(paymentRepo, collaborationRepo, log)

	// Daily jobs
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg.Scheduler.DailyCronSchedule, log)
		if err != nil {
			return fmt.Errorf("scheduler: %w", err)
		}
		sched.Register("contract-expiry-scan", func(ctx context.Context) error {
			_, err := reminderService.RunContractExpiryScan(ctx, time.Now())
			return err
		})
		sched.Register("payment-overdue-sweep", func(ctx context.Context) error {
			_, err := paymentService.SweepOverdue(ctx, time.Now())
			return err
		})
		sched.Start()
		defer sched.Stop()
	}

	// HTTP server
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			return fmt.Errorf("trusted proxies: %w", err)
		}
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
		middleware.Timeout(cfg.HTTP.RequestTimeout),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.JWTAuth(cfg.JWT.Secret, cfg.JWT.Issuer),
	)

	router.NewRouter(engine).
		Register(handler.NewSystemHandler(db, cfg.App.Name, version)).
		Register(handler.NewAccountsHandler(accountService)).
		Register(handler.NewClientHandler(clientService)).
		Register(handler.NewStaffHandler(staffService)).
		Register(handler.NewWorkItemHandler(workItemService)).
		Register(handler.NewStaffWorkHandler(staffWorkService)).
		Register(handler.NewIncomeHandler(incomeService)).
		Register(handler.NewExpenseHandler(expenseService)).
		Register(handler.NewReminderHandler(reminderService)).
		Register(handler.NewInfluencerHandler(influencerService)).
		Register(handler.NewCollaborationHandler(collaborationService)).
		Register(handler.NewPaymentHandler(paymentService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
