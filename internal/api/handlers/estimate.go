package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"malaysia-energy-synth/internal/api/models"
	"malaysia-energy-synth/internal/generator"
	"malaysia-energy-synth/internal/model"
)

// Estimate handles POST /api/v1/estimate.
func (h *GenerationHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		badRequest(c, "INVALID_PERIOD", err.Error())
		return
	}

	freqToken := req.Frequency
	if freqToken == "" {
		freqToken = string(model.Freq30Min)
	}
	freq, warnings, errs := generator.ValidateRequest(start, end, freqToken, req.BuildingCount)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: errs[0],
				Details: map[string]interface{}{"errors": errs},
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.EstimateResponse{
		Estimate: generator.EstimateRun(req.BuildingCount, start, end, freq),
		Warnings: warnings,
	})
}
