package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"questionnaire/middleware"
	"questionnaire/responses"
	"questionnaire/services"
)

type StatsHandler struct {
	statsService *services.StatsService
	log          *logrus.Logger
}

func NewStatsHandler(statsService *services.StatsService, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		log:          log,
	}
}

// Get returns the user's cached counters. They are recomputed asynchronously
// after answer saves, so a read right after answering may still show the
// previous counts.
func (h *StatsHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	stats, err := h.statsService.GetOrCreate(c.Request.Context(), user.ID)
	if err != nil {
		h.log.WithError(err).Error("statistics lookup failed")
		responses.ServerError(c)
		return
	}

	responses.OK(c, gin.H{
		"answered_questions":   stats.AnsweredQuestions,
		"unanswered_questions": stats.UnansweredQuestions,
	}, "")
}
