package service

import (
	"context"
	"fmt"

	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/sirupsen/logrus"
)

// topHotspotLimit caps the risk ranking. Fixed, not configurable.
const topHotspotLimit = 10

// DefaultSearchRadius is the bounding-box half-width in degrees used when the
// caller does not supply one. This is an approximation, not geodesic distance.
const DefaultSearchRadius = 0.01

// defaultSafetyAdvice is returned when no advice row exists for a risk level.
const defaultSafetyAdvice = "Follow general traffic safety practices."

// HotspotRepository defines the data access contract for accident hotspots
// and safety advice.
type HotspotRepository interface {
	TopByRiskIndex(ctx context.Context, limit int) ([]*models.Hotspot, error)
	FindNearby(ctx context.Context, lat, lon, radius float64) ([]*models.Hotspot, error)
	AdviceForLevels(ctx context.Context, levels []string) (map[string]string, error)
}

// AnalysisService defines the contract for hotspot risk analysis.
type AnalysisService interface {
	TopHotspots(ctx context.Context) ([]*models.RiskAssessment, error)
	NearbyHotspots(ctx context.Context, lat, lon, radius float64) ([]*models.Hotspot, error)
}

type analysisService struct {
	repo   HotspotRepository
	logger *logrus.Logger
}

func NewAnalysisService(repo HotspotRepository, logger *logrus.Logger) AnalysisService {
	return &analysisService{
		repo:   repo,
		logger: logger,
	}
}

// TopHotspots returns the ten highest-risk hotspots, each annotated with its
// risk index, risk level and the advisory text for that level.
func (s *analysisService) TopHotspots(ctx context.Context) ([]*models.RiskAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "TopHotspots",
	})
	log.Info("Computing top hotspot risk ranking")

	hotspots, err := s.repo.TopByRiskIndex(ctx, topHotspotLimit)
	if err != nil {
		log.WithError(err).Error("Failed to query top hotspots from repository")
		return nil, fmt.Errorf("service: could not query top hotspots: %w", err)
	}

	assessments := make([]*models.RiskAssessment, 0, len(hotspots))
	if len(hotspots) == 0 {
		log.Info("No hotspots loaded, skipping advice lookup")
		return assessments, nil
	}

	// Fetch advice only for the levels actually present in the ranking.
	levelSet := make(map[string]struct{})
	levels := make([]string, 0, 3)
	for _, h := range hotspots {
		level := models.RiskLevelFor(models.RiskIndex(h))
		if _, ok := levelSet[level]; !ok {
			levelSet[level] = struct{}{}
			levels = append(levels, level)
		}
	}

	advice, err := s.repo.AdviceForLevels(ctx, levels)
	if err != nil {
		log.WithError(err).Error("Failed to query safety advice from repository")
		return nil, fmt.Errorf("service: could not query safety advice: %w", err)
	}

	for _, h := range hotspots {
		index := models.RiskIndex(h)
		level := models.RiskLevelFor(index)
		text, ok := advice[level]
		if !ok {
			text = defaultSafetyAdvice
		}
		assessments = append(assessments, &models.RiskAssessment{
			Hotspot:        *h,
			TotalRiskIndex: index,
			RiskLevel:      level,
			SafetyAdvice:   text,
		})
	}

	log.WithField("count", len(assessments)).Info("Top hotspot ranking computed")
	return assessments, nil
}

// NearbyHotspots returns hotspots whose latitude and longitude both fall
// within [center +- radius], ordered by accident count descending.
func (s *analysisService) NearbyHotspots(ctx context.Context, lat, lon, radius float64) ([]*models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "NearbyHotspots",
		"lat":     lat,
		"lon":     lon,
		"radius":  radius,
	})
	log.Info("Searching hotspots near location")

	hotspots, err := s.repo.FindNearby(ctx, lat, lon, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby hotspots in repository")
		return nil, fmt.Errorf("service: could not find nearby hotspots: %w", err)
	}

	log.WithField("count", len(hotspots)).Info("Nearby hotspot search completed")
	return hotspots, nil
}
