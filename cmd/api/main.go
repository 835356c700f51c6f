package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"malaysia-energy-synth/internal/api/handlers"
	"malaysia-energy-synth/internal/api/middleware"
	"malaysia-energy-synth/internal/climate"
	"malaysia-energy-synth/internal/config"
	"malaysia-energy-synth/internal/data"
	"malaysia-energy-synth/internal/model"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	profiles := model.DefaultProfiles()
	catalog := data.DefaultCatalog()
	var monsoonMonths, dryMonths map[int]bool

	// Optional YAML config: profile overlays, season months, extra zone file.
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		profiles = cfg.BuildProfiles()
		if cfg.ZoneFile != "" {
			src, err := data.LoadZoneFile(cfg.ZoneFile)
			if err != nil {
				log.Fatalf("Failed to load zone file %s: %v", cfg.ZoneFile, err)
			}
			catalog = data.NewCatalog(src, data.BuiltinZones(), data.DefaultZone())
		}
		if len(cfg.MonsoonMonths()) > 0 {
			monsoonMonths = climate.MonthSet(cfg.MonsoonMonths()...)
		}
		if len(cfg.DryMonths()) > 0 {
			dryMonths = climate.MonthSet(cfg.DryMonths()...)
		}
		log.Printf("Loaded config from %s", path)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	stats := handlers.NewServiceStats()
	generationHandler := handlers.NewGenerationHandler(profiles, catalog, stats)
	generationHandler.MonsoonMonths = monsoonMonths
	generationHandler.DryMonths = dryMonths

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/generate", generationHandler.Generate)
		api.POST("/estimate", generationHandler.Estimate)
		api.GET("/zones", generationHandler.Zones)
		api.GET("/status", generationHandler.Status)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
