package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"duoprofits/internal/repository"
	"duoprofits/internal/service"
)

// Server exposes the dashboard API over HTTP.
type Server struct {
	engine  *gin.Engine
	txs     *service.TransactionService
	goals   *service.GoalService
	stats   *service.StatsService
	couples *repository.CoupleRepository
	budgets *repository.BudgetRepository
	started time.Time
	now     func() time.Time
}

func New(txs *service.TransactionService, goals *service.GoalService, stats *service.StatsService, couples *repository.CoupleRepository, budgets *repository.BudgetRepository, loc *time.Location, user, password string) *Server {
	s := &Server{
		txs:     txs,
		goals:   goals,
		stats:   stats,
		couples: couples,
		budgets: budgets,
		started: time.Now(),
		now:     func() time.Time { return time.Now().In(loc) },
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), CORSMiddleware())

	engine.GET("/health", s.handleHealth)

	api := engine.Group("/api", RequireAuth(user, password))
	{
		api.GET("/couple", s.handleCouple)

		api.GET("/transactions", s.handleListTransactions)
		api.POST("/transactions", s.handleCreateTransaction)
		api.PUT("/transactions/:id", s.handleUpdateTransaction)
		api.DELETE("/transactions/:id", s.handleDeleteTransaction)

		api.GET("/goals", s.handleListGoals)
		api.POST("/goals", s.handleCreateGoal)
		api.POST("/goals/:id/progress", s.handleGoalProgress)
		api.DELETE("/goals/:id", s.handleDeleteGoal)

		api.GET("/budgets", s.handleListBudgets)

		api.GET("/stats/summary", s.handleStatsSummary)
		api.GET("/stats/categories", s.handleStatsCategories)
		api.GET("/stats/trends", s.handleStatsTrends)
	}

	s.engine = engine
	return s
}

// Handler returns the underlying HTTP handler, used by tests and by callers
// embedding the API into another server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	healthHandler(s.started)(c)
}

func healthHandler(started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"uptime_seconds": int(time.Since(started).Seconds()),
		})
	}
}

// Health is a standalone liveness handler for processes that do not carry
// the full API, such as the bot.
func Health(started time.Time) http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/health", healthHandler(started))
	return engine
}

func (s *Server) handleCouple(c *gin.Context) {
	couple, err := s.couples.Household(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, couple)
}

// respondError maps service and storage errors onto HTTP statuses. The
// missing-table case gets its own status so the dashboard can tell "not set
// up yet" apart from a real outage.
func respondError(c *gin.Context, err error) {
	log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	var validationErrs validator.ValidationErrors
	switch {
	case repository.IsUndefinedTable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database tables missing, run the setup script"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrCategoryMismatch),
		errors.Is(err, service.ErrUnknownGoalCategory),
		errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
