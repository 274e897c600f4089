package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"duoprofits/internal/model"
	"duoprofits/internal/stats"
)

const (
	defaultTrendMonths = 6
	maxTrendMonths     = 24
)

func (s *Server) handleStatsSummary(c *gin.Context) {
	summary, err := s.stats.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleStatsCategories(c *gin.Context) {
	year, month, ok := s.monthParam(c)
	if !ok {
		return
	}

	breakdown, usage, err := s.stats.CategoryStats(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	if breakdown == nil {
		breakdown = []stats.CategoryStat{}
	}
	if usage == nil {
		usage = []stats.BudgetUsage{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": breakdown, "budgets": usage})
}

func (s *Server) handleStatsTrends(c *gin.Context) {
	months := defaultTrendMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive number"})
			return
		}
		months = parsed
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	series, err := s.stats.Trends(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (s *Server) handleListBudgets(c *gin.Context) {
	year, month, ok := s.monthParam(c)
	if !ok {
		return
	}
	couple, err := s.couples.Household(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	monthYear := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	budgets, err := s.budgets.ListByMonth(c.Request.Context(), couple.ID, monthYear)
	if err != nil {
		respondError(c, err)
		return
	}
	if budgets == nil {
		budgets = []model.MonthlyBudget{}
	}
	c.JSON(http.StatusOK, budgets)
}

// monthParam reads the optional ?month=YYYY-MM query, defaulting to the
// current month on the household's clock. On a malformed value it writes
// the 400 itself.
func (s *Server) monthParam(c *gin.Context) (int, time.Month, bool) {
	raw := c.Query("month")
	if raw == "" {
		now := s.now()
		return now.Year(), now.Month(), true
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return 0, 0, false
	}
	return parsed.Year(), parsed.Month(), true
}
