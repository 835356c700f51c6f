package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"malaysia-energy-synth/internal/analysis"
	"malaysia-energy-synth/internal/climate"
	"malaysia-energy-synth/internal/config"
	"malaysia-energy-synth/internal/data"
	"malaysia-energy-synth/internal/export"
	"malaysia-energy-synth/internal/generator"
	"malaysia-energy-synth/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "estimate":
		cmdEstimate(os.Args[2:])
	case "zones":
		cmdZones(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli generate --buildings buildings.json --start 2024-01-01 --end 2024-01-31 --out results/observations.csv")
	fmt.Println("  cli estimate --count 1000 --start 2024-01-01 --end 2024-12-31 --freq 1H")
	fmt.Println("  cli zones")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - generate writes one observation per (building, timestamp) pair")
	fmt.Println("  - supported frequencies: 15T, 30T, 1H, 3H, D")
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	buildingsPath := fs.String("buildings", "", "Path to JSON building list")
	cfgPath := fs.String("config", "", "Optional YAML config with profile overlays")
	startDate := fs.String("start", "", "Start date (YYYY-MM-DD)")
	endDate := fs.String("end", "", "End date (YYYY-MM-DD), inclusive")
	freqToken := fs.String("freq", string(model.Freq30Min), "Sampling frequency (15T, 30T, 1H, 3H, D)")
	seed := fs.Int64("seed", 42, "Random seed")
	workers := fs.Int("workers", 1, "Parallel workers")
	outPath := fs.String("out", "results/observations.csv", "Output CSV path")
	metaPath := fs.String("meta", "", "Optional building metadata CSV path")
	xlsxPath := fs.String("xlsx", "", "Optional XLSX workbook path")
	jsonPath := fs.String("json", "", "Optional observations JSON path")
	_ = fs.Parse(args)

	if *buildingsPath == "" {
		fmt.Println("--buildings is required")
		os.Exit(2)
	}

	profiles := model.DefaultProfiles()
	catalog := data.DefaultCatalog()
	var cl *climate.Model
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		profiles = cfg.BuildProfiles()
		if cfg.ZoneFile != "" {
			src, err := data.LoadZoneFile(cfg.ZoneFile)
			if err != nil {
				fatal(err)
			}
			catalog = data.NewCatalog(src, data.BuiltinZones(), data.DefaultZone())
		}
		if len(cfg.MonsoonMonths()) > 0 || len(cfg.DryMonths()) > 0 {
			cl = climate.New(rand.New(rand.NewSource(*seed)))
			if len(cfg.MonsoonMonths()) > 0 {
				cl.MonsoonMonths = climate.MonthSet(cfg.MonsoonMonths()...)
			}
			if len(cfg.DryMonths()) > 0 {
				cl.DryMonths = climate.MonthSet(cfg.DryMonths()...)
			}
		}
		if *startDate == "" {
			*startDate = cfg.Generation.StartDate
		}
		if *endDate == "" {
			*endDate = cfg.Generation.EndDate
		}
	}
	if *startDate == "" || *endDate == "" {
		fmt.Println("--start and --end are required (or set them in the config)")
		os.Exit(2)
	}

	start, end, err := parsePeriod(*startDate, *endDate)
	if err != nil {
		fatal(err)
	}

	records, err := data.LoadBuildingRecords(*buildingsPath)
	if err != nil {
		fatal(err)
	}

	freq, warnings, errs := generator.ValidateRequest(start, end, *freqToken, len(records))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}

	buildings, recordErrs := model.BuildFromRecords(records, profiles)
	warnings = append(warnings, recordErrs...)
	if len(buildings) == 0 {
		fmt.Fprintln(os.Stderr, "error: no valid buildings in input")
		os.Exit(1)
	}
	for _, b := range buildings {
		if b.ZoneName == "" {
			if z, ok := catalog.Locate(b.Latitude, b.Longitude); ok {
				b.ZoneName = z.Name
			}
		}
	}

	engine := generator.New(cl, nil, *seed)
	engine.Consumption.Profiles = profiles
	engine.Workers = *workers

	res, err := engine.Run(buildings, start, end, freq)
	if err != nil {
		fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal(err)
	}
	if err := export.WriteObservationsCSV(*outPath, res.Observations); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %d observations to %s\n", len(res.Observations), *outPath)

	meta := generator.Metadata(buildings)
	if *metaPath != "" {
		if err := export.WriteBuildingsCSV(*metaPath, meta); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d building rows to %s\n", len(meta), *metaPath)
	}
	if *xlsxPath != "" {
		if err := export.WriteWorkbookXLSX(*xlsxPath, meta, res.Observations); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote workbook to %s\n", *xlsxPath)
	}
	if *jsonPath != "" {
		if err := export.WriteObservationsJSON(*jsonPath, res.Observations); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote JSON to %s\n", *jsonPath)
	}

	summary := analysis.Summarize(buildings, res.Observations)
	warnings = append(warnings, summary.Warnings...)
	fmt.Printf("Buildings=%d Periods=%d Total=%.1f kWh Avg=%.3f kWh Quality=%.1f (%.2fs)\n",
		len(buildings), len(res.Timestamps), summary.TotalKWh, summary.AvgKWh, summary.QualityScore, res.Elapsed.Seconds())
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func cmdEstimate(args []string) {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	count := fs.Int("count", 0, "Building count")
	startDate := fs.String("start", "", "Start date (YYYY-MM-DD)")
	endDate := fs.String("end", "", "End date (YYYY-MM-DD), inclusive")
	freqToken := fs.String("freq", string(model.Freq30Min), "Sampling frequency")
	_ = fs.Parse(args)

	if *count < 1 || *startDate == "" || *endDate == "" {
		fmt.Println("--count, --start and --end are required")
		os.Exit(2)
	}

	start, end, err := parsePeriod(*startDate, *endDate)
	if err != nil {
		fatal(err)
	}
	freq, warnings, errs := generator.ValidateRequest(start, end, *freqToken, *count)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}

	est := generator.EstimateRun(*count, start, end, freq)
	fmt.Printf("Buildings:     %d\n", est.Buildings)
	fmt.Printf("Periods:       %d\n", est.Periods)
	fmt.Printf("Observations:  %d\n", est.TotalObservations)
	fmt.Printf("Est. time:     %.1fs\n", est.EstimatedSeconds)
	fmt.Printf("Est. size:     %.1f MB\n", est.EstimatedSizeMB)
	fmt.Printf("Complexity:    %s\n", est.Complexity)
	fmt.Printf("Recommendation: %s\n", est.Recommendation)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func cmdZones(args []string) {
	fs := flag.NewFlagSet("zones", flag.ExitOnError)
	zoneFile := fs.String("zone-file", "", "Optional JSON zone file layered over the built-ins")
	_ = fs.Parse(args)

	catalog := data.DefaultCatalog()
	if *zoneFile != "" {
		src, err := data.LoadZoneFile(*zoneFile)
		if err != nil {
			fatal(err)
		}
		catalog = data.NewCatalog(src, data.BuiltinZones(), data.DefaultZone())
	}

	for _, z := range catalog.Zones() {
		state := z.State
		if state == "" {
			state = "-"
		}
		fmt.Printf("%-16s %-14s lat[%.2f, %.2f] lon[%.2f, %.2f]\n", z.Name, state, z.MinLat, z.MaxLat, z.MinLon, z.MaxLon)
	}
}

// parsePeriod expands dates to [midnight, end of day] in Malaysia time.
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

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
