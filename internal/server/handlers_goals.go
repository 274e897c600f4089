package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"duoprofits/internal/model"
	"duoprofits/internal/service"
	"duoprofits/internal/stats"
)

type goalRequest struct {
	Title        string  `json:"title"`
	TargetAmount float64 `json:"target_amount"`
	TargetDate   string  `json:"target_date"`
	Category     string  `json:"category"`
}

type goalProgressRequest struct {
	Amount float64 `json:"amount"`
}

// goalView decorates a goal with the derived numbers the dashboard renders.
type goalView struct {
	model.SavingsGoal
	ProgressPercent float64 `json:"progress_percent"`
	DaysRemaining   *int    `json:"days_remaining,omitempty"`
}

func newGoalView(goal model.SavingsGoal) goalView {
	view := goalView{
		SavingsGoal:     goal,
		ProgressPercent: stats.GoalProgress(goal.CurrentAmount, goal.TargetAmount),
	}
	if days, ok := stats.GoalDaysRemaining(goal.TargetDate, time.Now()); ok {
		view.DaysRemaining = &days
	}
	return view
}

func (s *Server) handleListGoals(c *gin.Context) {
	goals, err := s.goals.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]goalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, newGoalView(goal))
	}
	c.JSON(http.StatusOK, views)
}

func (s *Server) handleCreateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := service.GoalInput{
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Category:     req.Category,
	}
	if req.TargetDate != "" {
		date, err := time.Parse("2006-01-02", req.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target_date must be YYYY-MM-DD"})
			return
		}
		input.TargetDate = &date
	}

	goal, err := s.goals.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newGoalView(*goal))
}

func (s *Server) handleGoalProgress(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	var req goalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	goal, err := s.goals.AddProgress(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGoalView(*goal))
}

func (s *Server) handleDeleteGoal(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	if err := s.goals.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}
