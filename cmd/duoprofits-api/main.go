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
	if cfg.DashboardPassword == "" {
		log.Fatal("DASHBOARD_PASSWORD is required")
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
	goalRepo := repository.NewGoalRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)

	txSvc := service.NewTransactionService(txRepo, coupleRepo)
	goalSvc := service.NewGoalService(goalRepo, coupleRepo)
	statsSvc := service.NewStatsService(txRepo, coupleRepo, budgetRepo, cfg.Location())

	srv := server.New(txSvc, goalSvc, statsSvc, coupleRepo, budgetRepo, cfg.Location(), cfg.DashboardUser, cfg.DashboardPassword)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Handler(),
	}

	go func() {
		log.Infof("duoprofits api listening on :%d", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("api server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	log.Info("shutdown complete")
}
