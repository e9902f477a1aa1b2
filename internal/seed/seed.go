package seed

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hanriver/traffic_hazard_system/internal/config"
	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// hotspotCSVColumns is the expected header of the reference dataset.
const hotspotCSVColumns = 8

// Seeder loads the static reference data on startup. Every step checks row
// counts first, so re-running it is a no-op.
type Seeder struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
	cfg    *config.Config
}

func New(db *pgxpool.Pool, logger *logrus.Logger, cfg *config.Config) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}
}

// Run seeds the safety advice rows and bulk-loads the hotspot dataset.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedSafetyMeasures(ctx); err != nil {
		return err
	}
	return s.loadHotspotCSV(ctx)
}

// seedSafetyMeasures inserts the per-level advice rows when the table is empty.
func (s *Seeder) seedSafetyMeasures(ctx context.Context) error {
	var count int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM safety_measures").Scan(&count); err != nil {
		return fmt.Errorf("failed to count safety_measures rows: %w", err)
	}
	if count > 0 {
		s.logger.Info("safety_measures already seeded, skipping")
		return nil
	}

	measures := []models.SafetyAdvice{
		{
			RiskLevel:          models.RiskLevelDanger,
			RecommendationType: "Intersection redesign and enforcement",
			DetailAdvice:       "Deaths are concentrated here; trigger emergency safety measures and step up enforcement at the main intersections.",
		},
		{
			RiskLevel:          models.RiskLevelCaution,
			RecommendationType: "Targeted safety campaign",
			DetailAdvice:       "Run periodic pedestrian and driver safety campaigns centered on the accident-prone area.",
		},
		{
			RiskLevel:          models.RiskLevelAttention,
			RecommendationType: "Expand traffic safety education",
			DetailAdvice:       "The area is currently stable; schedule mandatory traffic safety education for residents at least twice a year.",
		},
	}

	for _, m := range measures {
		_, err := s.db.Exec(ctx,
			"INSERT INTO safety_measures (risk_level, recommendation_type, detail_advice) VALUES ($1, $2, $3)",
			m.RiskLevel, m.RecommendationType, m.DetailAdvice,
		)
		if err != nil {
			return fmt.Errorf("failed to insert safety_measures row: %w", err)
		}
	}

	s.logger.WithField("count", len(measures)).Info("safety_measures seeded")
	return nil
}

// loadHotspotCSV bulk-loads the hotspot dataset when the table is empty. A
// missing file is a warning, not a failure.
func (s *Seeder) loadHotspotCSV(ctx context.Context) error {
	var count int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM accident_hotspots").Scan(&count); err != nil {
		return fmt.Errorf("failed to count accident_hotspots rows: %w", err)
	}
	if count > 0 {
		s.logger.Info("accident_hotspots already loaded, skipping CSV load")
		return nil
	}

	f, err := os.Open(s.cfg.HotspotCSVPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("path", s.cfg.HotspotCSVPath).Warn("hotspot CSV not found, skipping data load")
			return nil
		}
		return fmt.Errorf("failed to open hotspot CSV: %w", err)
	}
	defer f.Close()

	hotspots, err := ParseHotspotCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse hotspot CSV: %w", err)
	}
	if len(hotspots) == 0 {
		s.logger.Warn("hotspot CSV contained no rows, nothing to load")
		return nil
	}

	rows := make([][]any, len(hotspots))
	for i, h := range hotspots {
		rows[i] = []any{
			h.HotspotID,
			h.GuName,
			h.LocationName,
			h.Latitude,
			h.Longitude,
			h.AccidentCount,
			h.CasualtyCount,
			h.DeathCount,
		}
	}

	copied, err := s.db.CopyFrom(ctx,
		pgx.Identifier{"accident_hotspots"},
		[]string{"hotspot_id", "gu_name", "location_name", "latitude", "longitude", "accident_count", "casualty_count", "death_count"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk-load accident_hotspots: %w", err)
	}

	s.logger.WithField("count", copied).Info("accident_hotspots loaded from CSV")
	return nil
}

// ParseHotspotCSV reads the reference dataset. The first record is a header
// and is skipped; a UTF-8 BOM at the start of the stream is tolerated because
// the upstream export writes one.
func ParseHotspotCSV(r io.Reader) ([]*models.Hotspot, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = hotspotCSVColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	hotspots := make([]*models.Hotspot, 0, len(records)-1)
	for i, record := range records[1:] {
		hotspotID, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid hotspot_id %q: %w", i+2, record[0], err)
		}
		lat, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid latitude %q: %w", i+2, record[3], err)
		}
		lon, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid longitude %q: %w", i+2, record[4], err)
		}
		accidents, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid accident_count %q: %w", i+2, record[5], err)
		}
		casualties, err := strconv.Atoi(record[6])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid casualty_count %q: %w", i+2, record[6], err)
		}
		deaths, err := strconv.Atoi(record[7])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid death_count %q: %w", i+2, record[7], err)
		}

		hotspots = append(hotspots, &models.Hotspot{
			HotspotID:     hotspotID,
			GuName:        record[1],
			LocationName:  record[2],
			Latitude:      lat,
			Longitude:     lon,
			AccidentCount: accidents,
			CasualtyCount: casualties,
			DeathCount:    deaths,
		})
	}
	return hotspots, nil
}
