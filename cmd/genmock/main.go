// Command genmock reads a CSV of station observations and generates the JSON
// fixtures used by the test suites: the raw source records and the comfort
// reports the pipeline produces from them. It runs the real domain package so
// the enriched fixture matches pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv data/mock/observations.csv \
//	  -raw-out data/mock/observations.json \
//	  -report-out data/mock/comfort_reports.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/meteocalc/internal/domain"
	"github.com/couchcryptid/meteocalc/pkg/meteo"
)

var baseDate = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "CSV file of station observations")
	rawOut := flag.String("raw-out", "", "output path for the raw observation fixture")
	reportOut := flag.String("report-out", "", "output path for the comfort report fixture")
	flag.Parse()

	if *csvPath == "" || *rawOut == "" || *reportOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -raw-out, -report-out")
	}

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.July, 2, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	records, reports, err := processCSV(*csvPath)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *csvPath, err)
	}
	log.Printf("total: %d records", len(records))

	if err := writeJSON(*rawOut, records); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", *rawOut)

	if err := writeJSON(*reportOut, reports); err != nil {
		return fmt.Errorf("writing report fixture: %w", err)
	}
	log.Printf("wrote report fixture: %s", *reportOut)

	printStats(reports)
	return nil
}

func processCSV(path string) ([]domain.RawObservation, []domain.ComfortReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[h] = i
	}

	recs := make([]domain.RawObservation, 0, len(rows)-1)
	reports := make([]domain.ComfortReport, 0, len(rows)-1)

	for n, row := range rows[1:] {
		rec, err := parseRow(row, colIdx)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		recs = append(recs, rec)

		// Run the actual transformation.
		rawJSON, err := json.Marshal(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal record: %w", err)
		}
		obs, err := domain.ParseRawEvent(domain.RawEvent{Value: rawJSON, Timestamp: baseDate})
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		reports = append(reports, domain.EnrichObservation(obs))
	}

	return recs, reports, nil
}

func parseRow(row []string, idx map[string]int) (domain.RawObservation, error) {
	rec := domain.RawObservation{
		StationID:   get(row, idx, "station_id"),
		StationName: get(row, idx, "station_name"),
		ObservedAt:  get(row, idx, "observed_at"),
	}

	fields := []struct {
		col string
		dst **float64
	}{
		{"temperature_c", &rec.TemperatureC},
		{"humidity_pct", &rec.HumidityPct},
		{"wind_speed_ms", &rec.WindSpeedMS},
		{"wind_gust_ms", &rec.WindGustMS},
	}
	for _, fld := range fields {
		s := get(row, idx, fld.col)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", fld.col, err)
		}
		*fld.dst = &v
	}
	return rec, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// printStats prints the figures the fixture tests assert on.
func printStats(reports []domain.ComfortReport) {
	regimes := map[meteo.Regime]int{}
	var withHumidity, withWind int
	for i := range reports {
		r := &reports[i]
		regimes[r.Regime]++
		if r.HumidityPct != nil {
			withHumidity++
		}
		if r.Wind != nil {
			withWind++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(reports))
	fmt.Printf("By regime: wind_chill=%d, heat_index=%d, nominal=%d\n",
		regimes[meteo.RegimeWindChill], regimes[meteo.RegimeHeatIndex], regimes[meteo.RegimeNominal])
	fmt.Printf("With humidity: %d, with wind: %d\n", withHumidity, withWind)

	sorted := make([]domain.ComfortReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FeelsLikeF < sorted[j].FeelsLikeF })

	fmt.Println("\nFeels-like extremes:")
	for _, r := range []domain.ComfortReport{sorted[0], sorted[len(sorted)-1]} {
		fmt.Printf("  %s %s: %.1f °F (air %.1f °F, %s)\n",
			r.StationID, r.StationName, r.FeelsLikeF, r.Temperature.Fahrenheit, r.Regime)
	}
}
