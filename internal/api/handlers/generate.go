package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"malaysia-energy-synth/internal/analysis"
	"malaysia-energy-synth/internal/api/models"
	"malaysia-energy-synth/internal/data"
	"malaysia-energy-synth/internal/generator"
	"malaysia-energy-synth/internal/metrics"
	"malaysia-energy-synth/internal/model"
)

// GenerationHandler handles generation and estimation requests.
type GenerationHandler struct {
	Profiles model.Profiles
	Catalog  *data.Catalog
	Stats    *ServiceStats

	// Optional season overrides applied to every run's climate model.
	// Nil keeps the built-in Malaysia month sets.
	MonsoonMonths map[int]bool
	DryMonths     map[int]bool
}

func NewGenerationHandler(profiles model.Profiles, catalog *data.Catalog, stats *ServiceStats) *GenerationHandler {
	if profiles == nil {
		profiles = model.DefaultProfiles()
	}
	if catalog == nil {
		catalog = data.DefaultCatalog()
	}
	if stats == nil {
		stats = NewServiceStats()
	}
	return &GenerationHandler{Profiles: profiles, Catalog: catalog, Stats: stats}
}

// Generate handles POST /api/v1/generate.
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
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
	freq, warnings, errs := generator.ValidateRequest(start, end, freqToken, len(req.Buildings))
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

	buildings, recordErrs := model.BuildFromRecords(req.Buildings, h.Profiles)
	warnings = append(warnings, recordErrs...)
	if len(buildings) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_VALID_BUILDINGS",
				Message: "no valid buildings in request",
				Details: map[string]interface{}{"errors": recordErrs},
			},
		})
		return
	}
	h.fillZones(buildings)

	engine := h.newEngine(req.Options.Seed, req.Options.Workers)

	result, err := engine.Run(buildings, start, end, freq)
	if err != nil {
		metrics.GenerationFailures.Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "GENERATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	metrics.GenerationRuns.Inc()
	metrics.ObservationsGenerated.Add(float64(len(result.Observations)))
	metrics.GenerationSeconds.Observe(result.Elapsed.Seconds())
	if h.Stats != nil {
		h.Stats.RecordRun(len(result.Observations))
	}

	summary := analysis.Summarize(buildings, result.Observations)
	warnings = append(warnings, result.Warnings...)
	warnings = append(warnings, summary.Warnings...)

	resp := models.GenerateResponse{
		Status:   "completed",
		Warnings: warnings,
		Summary:  summary,
		Meta: models.GenerateMeta{
			Buildings:         len(buildings),
			ExcludedBuildings: len(recordErrs),
			Periods:           len(result.Timestamps),
			TotalObservations: len(result.Observations),
			Frequency:         string(freq),
			ElapsedSeconds:    result.Elapsed.Seconds(),
		},
	}
	if req.Options.IncludeObservations {
		resp.Observations = result.Observations
	}
	c.JSON(http.StatusOK, resp)
}

// newEngine builds a per-request engine carrying the handler's profile table
// and season overrides, so configured overlays shape both building
// construction and the consumption/climate models.
func (h *GenerationHandler) newEngine(seed int64, workers int) *generator.Engine {
	engine := generator.New(nil, nil, seed)
	engine.Consumption.Profiles = h.Profiles
	if h.MonsoonMonths != nil {
		engine.Climate.MonsoonMonths = h.MonsoonMonths
	}
	if h.DryMonths != nil {
		engine.Climate.DryMonths = h.DryMonths
	}
	if workers > 0 {
		engine.Workers = workers
	}
	return engine
}

// fillZones resolves empty zone names from the catalog by coordinate.
func (h *GenerationHandler) fillZones(buildings []*model.Building) {
	for _, b := range buildings {
		if b.ZoneName != "" {
			continue
		}
		if z, ok := h.Catalog.Locate(b.Latitude, b.Longitude); ok {
			b.ZoneName = z.Name
		}
	}
}

// parsePeriod turns date strings into a [midnight, end of day] range in
// Malaysia time, so a single-day request still yields a full day of samples.
func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	loc := model.MalaysiaTime()
	start, err := time.ParseInLocation("2006-01-02", startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end.Add(24*time.Hour - time.Second), nil
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}
