package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"malaysia-energy-synth/internal/api/models"
)

// ServiceStats tracks lifetime totals for the status endpoint.
type ServiceStats struct {
	mu           sync.Mutex
	startedAt    time.Time
	runs         int64
	observations int64
}

func NewServiceStats() *ServiceStats {
	return &ServiceStats{startedAt: time.Now()}
}

func (s *ServiceStats) RecordRun(observations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	s.observations += int64(observations)
}

func (s *ServiceStats) snapshot() (time.Time, int64, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt, s.runs, s.observations
}

// Status handles GET /api/v1/status.
func (h *GenerationHandler) Status(c *gin.Context) {
	startedAt, runs, observations := h.Stats.snapshot()
	c.JSON(http.StatusOK, models.StatusResponse{
		Status:            "ok",
		StartedAt:         startedAt,
		UptimeSeconds:     time.Since(startedAt).Seconds(),
		GenerationRuns:    runs,
		TotalObservations: observations,
	})
}
