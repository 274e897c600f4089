package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"duoprofits/internal/bot"
	"duoprofits/internal/config"
	"duoprofits/internal/repository"
	"duoprofits/internal/server"
	"duoprofits/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	txRepo := repository.NewTransactionRepository(db)
	coupleRepo := repository.NewCoupleRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	txSvc := service.NewTransactionService(txRepo, coupleRepo)
	statsSvc := service.NewStatsService(txRepo, coupleRepo, budgetRepo, cfg.Location())
	reportSvc := service.NewReportService(txRepo, coupleRepo)

	telegramBot, err := bot.New(cfg.TelegramToken, txSvc, statsSvc, reportSvc, coupleRepo, subRepo, cfg.SessionTTL())
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	scheduler := service.NewSchedulerService(cfg.Location())
	if _, err := scheduler.ScheduleDaily(cfg.DailySummaryTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := telegramBot.SendDailySummaries(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("daily summary: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule daily summary: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Liveness endpoint for the host platform's health checks.
	healthSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server.Health(time.Now()),
	}
	go func() {
		log.Infof("health endpoint listening on :%d", cfg.Port)
		if err := healthSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("health server: %v", err)
		}
	}()

	log.Info("duoprofits bot started")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("health shutdown: %v", err)
	}
	log.Info("shutdown complete")
}
