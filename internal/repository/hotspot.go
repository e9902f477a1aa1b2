package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// adviceCacheTTL bounds how long seeded advice rows live in Redis. Hotspot
// risk itself is never cached; only the static advice text is.
const adviceCacheTTL = time.Hour

type HotspotRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewHotspotRepository(db *pgxpool.Pool, redisClient *redis.Client) service.HotspotRepository {
	return &HotspotRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// TopByRiskIndex returns the hotspots ranked by the weighted risk index,
// descending, tie-broken by hotspot id for a stable ordering. The weights in
// the ORDER BY expression mirror models.RiskIndex.
func (r *HotspotRepository) TopByRiskIndex(ctx context.Context, limit int) ([]*models.Hotspot, error) {
	query := `
		SELECT
			hotspot_id,
			gu_name,
			location_name,
			latitude,
			longitude,
			accident_count,
			casualty_count,
			death_count
		FROM accident_hotspots
		ORDER BY (death_count * 10) + (accident_count * 5) + (casualty_count * 1) DESC, hotspot_id ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top hotspots: %w", err)
	}
	defer rows.Close()

	hotspots := make([]*models.Hotspot, 0, limit)
	for rows.Next() {
		hotspot := &models.Hotspot{}
		err := rows.Scan(
			&hotspot.HotspotID,
			&hotspot.GuName,
			&hotspot.LocationName,
			&hotspot.Latitude,
			&hotspot.Longitude,
			&hotspot.AccidentCount,
			&hotspot.CasualtyCount,
			&hotspot.DeathCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotspot row: %w", err)
		}
		hotspots = append(hotspots, hotspot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top hotspot rows: %w", err)
	}
	return hotspots, nil
}

// FindNearby returns hotspots inside the bounding box [lat-r, lat+r] x
// [lon-r, lon+r], ordered by accident count descending. This is a documented
// approximation, not a geodesic radius.
func (r *HotspotRepository) FindNearby(ctx context.Context, lat, lon, radius float64) ([]*models.Hotspot, error) {
	query := `
		SELECT
			hotspot_id,
			gu_name,
			location_name,
			latitude,
			longitude,
			accident_count,
			casualty_count,
			death_count
		FROM accident_hotspots
		WHERE
			latitude BETWEEN $1 - $3 AND $1 + $3
			AND longitude BETWEEN $2 - $3 AND $2 + $3
		ORDER BY accident_count DESC;
	`
	rows, err := r.db.Query(ctx, query, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby hotspots: %w", err)
	}
	defer rows.Close()

	hotspots := make([]*models.Hotspot, 0)
	for rows.Next() {
		hotspot := &models.Hotspot{}
		err := rows.Scan(
			&hotspot.HotspotID,
			&hotspot.GuName,
			&hotspot.LocationName,
			&hotspot.Latitude,
			&hotspot.Longitude,
			&hotspot.AccidentCount,
			&hotspot.CasualtyCount,
			&hotspot.DeathCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotspot row in FindNearby: %w", err)
		}
		hotspots = append(hotspots, hotspot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nearby hotspot rows: %w", err)
	}
	return hotspots, nil
}

// AdviceForLevels returns the advisory text for each requested risk level,
// checking the Redis cache per level before falling back to the database.
func (r *HotspotRepository) AdviceForLevels(ctx context.Context, levels []string) (map[string]string, error) {
	advice := make(map[string]string, len(levels))

	missing := make([]string, 0, len(levels))
	for _, level := range levels {
		text, err := r.getAdviceFromCache(ctx, level)
		if err != nil {
			return nil, err
		}
		if text != "" {
			advice[level] = text
			continue
		}
		missing = append(missing, level)
	}
	if len(missing) == 0 {
		return advice, nil
	}

	query := `
		SELECT risk_level, detail_advice
		FROM safety_measures
		WHERE risk_level = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to query safety advice: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level, text string
		if err := rows.Scan(&level, &text); err != nil {
			return nil, fmt.Errorf("failed to scan safety advice row: %w", err)
		}
		advice[level] = text
		if err := r.setAdviceCache(ctx, level, text); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating safety advice rows: %w", err)
	}
	return advice, nil
}

// getAdviceFromCache returns the cached advice text or "" on a miss.
func (r *HotspotRepository) getAdviceFromCache(ctx context.Context, level string) (string, error) {
	key := fmt.Sprintf("advice:%s", level)
	val, err := r.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get advice from cache: %w", err)
	}
	return val, nil
}

// setAdviceCache stores the advice text for a risk level.
func (r *HotspotRepository) setAdviceCache(ctx context.Context, level, text string) error {
	key := fmt.Sprintf("advice:%s", level)
	if err := r.redisClient.Set(ctx, key, text, adviceCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set advice in cache: %w", err)
	}
	return nil
}
