package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAnalysisService builds the service with a mocked repository.
func newTestAnalysisService(t *testing.T) (*analysisService, *mocks.MockHotspotRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHotspotRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := NewAnalysisService(repoMock, logger)
	return svc.(*analysisService), repoMock
}

func TestTopHotspots_Success(t *testing.T) {
	svc, repoMock := newTestAnalysisService(t)
	ctx := context.Background()

	hotspots := []*models.Hotspot{
		// 50*10 + 40*5 + 50*1 = 750 -> danger
		{HotspotID: 1, GuName: "Gangnam-gu", DeathCount: 50, AccidentCount: 40, CasualtyCount: 50},
		// 20*10 + 15*5 + 25*1 = 300 -> caution
		{HotspotID: 2, GuName: "Mapo-gu", DeathCount: 20, AccidentCount: 15, CasualtyCount: 25},
		// 10*10 + 20*5 + 5*1 = 205 -> attention
		{HotspotID: 3, GuName: "Jongno-gu", DeathCount: 10, AccidentCount: 20, CasualtyCount: 5},
	}
	advice := map[string]string{
		models.RiskLevelDanger:    "danger advice",
		models.RiskLevelCaution:   "caution advice",
		models.RiskLevelAttention: "attention advice",
	}

	repoMock.EXPECT().
		TopByRiskIndex(ctx, 10).
		Return(hotspots, nil).
		Times(1)
	repoMock.EXPECT().
		AdviceForLevels(ctx, []string{models.RiskLevelDanger, models.RiskLevelCaution, models.RiskLevelAttention}).
		Return(advice, nil).
		Times(1)

	assessments, err := svc.TopHotspots(ctx)

	require.NoError(t, err)
	require.Len(t, assessments, 3)

	assert.Equal(t, int64(1), assessments[0].HotspotID)
	assert.Equal(t, 750, assessments[0].TotalRiskIndex)
	assert.Equal(t, models.RiskLevelDanger, assessments[0].RiskLevel)
	assert.Equal(t, "danger advice", assessments[0].SafetyAdvice)

	assert.Equal(t, 300, assessments[1].TotalRiskIndex)
	assert.Equal(t, models.RiskLevelCaution, assessments[1].RiskLevel)

	assert.Equal(t, 205, assessments[2].TotalRiskIndex)
	assert.Equal(t, models.RiskLevelAttention, assessments[2].RiskLevel)
	assert.Equal(t, "attention advice", assessments[2].SafetyAdvice)
}

func TestTopHotspots_FetchesOnlyPresentLevels(t *testing.T) {
	svc, repoMock := newTestAnalysisService(t)
	ctx := context.Background()

	// Both hotspots classify as attention, so only one level is looked up.
	hotspots := []*models.Hotspot{
		{HotspotID: 1, AccidentCount: 10},
		{HotspotID: 2, AccidentCount: 5},
	}

	repoMock.EXPECT().TopByRiskIndex(ctx, 10).Return(hotspots, nil).Times(1)
	repoMock.EXPECT().
		AdviceForLevels(ctx, []string{models.RiskLevelAttention}).
		Return(map[string]string{models.RiskLevelAttention: "attention advice"}, nil).
		Times(1)

	assessments, err := svc.TopHotspots(ctx)

	require.NoError(t, err)
	require.Len(t, assessments, 2)
	assert.Equal(t, "attention advice", assessments[0].SafetyAdvice)
}

func TestTopHotspots_Empty(t *testing.T) {
	svc, repoMock := newTestAnalysisService(t)
	ctx := context.Background()

	repoMock.EXPECT().TopByRiskIndex(ctx, 10).Return([]*models.Hotspot{}, nil).Times(1)
	// No hotspots means no advice lookup at all.
	repoMock.EXPECT().AdviceForLevels(gomock.Any(), gomock.Any()).Times(0)

	assessments, err := svc.TopHotspots(ctx)

	require.NoError(t, err)
	assert.Empty(t, assessments)
}

func TestTopHotspots_AdviceFallback(t *testing.T) {
	svc, repoMock := newTestAnalysisService(t)
	ctx := context.Background()

	hotspots := []*models.Hotspot{
		{HotspotID: 1, AccidentCount: 10},
	}

	repoMock.EXPECT().TopByRiskIndex(ctx, 10).Return(hotspots, nil).Times(1)
	repoMock.EXPECT().
		AdviceForLevels(ctx, []string{models.RiskLevelAttention}).
		Return(map[string]string{}, nil).
		Times(1)

	assessments, err := svc.TopHotspots(ctx)

	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, defaultSafetyAdvice, assessments[0].SafetyAdvice)
}

func TestTopHotspots_RepoError(t *testing.T) {
	svc, repoMock := newTestAnalysisService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("connection refused")

	repoMock.EXPECT().TopByRiskIndex(ctx, 10).Return(nil, dbError).Times(1)

	assessments, err := svc.TopHotspots(ctx)

	require.Error(t, err)
	assert.Nil(t, assessments)
	assert.ErrorContains(t, err, "could not query top hotspots")
}

func TestNearbyHotspots_Success(t *testing.T) {
	svc, repoMock := newTestAnalysisService(t)
	ctx := context.Background()

	expected := []*models.Hotspot{
		{HotspotID: 7, Latitude: 37.5, Longitude: 127.0, AccidentCount: 12},
	}

	repoMock.EXPECT().
		FindNearby(ctx, 37.5, 127.0, 0.01).
		Return(expected, nil).
		Times(1)

	hotspots, err := svc.NearbyHotspots(ctx, 37.5, 127.0, 0.01)

	require.NoError(t, err)
	assert.Equal(t, expected, hotspots)
}

func TestNearbyHotspots_RepoError(t *testing.T) {
	svc, repoMock := newTestAnalysisService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("query failed")

	repoMock.EXPECT().
		FindNearby(ctx, 37.5, 127.0, 0.0).
		Return(nil, dbError).
		Times(1)

	hotspots, err := svc.NearbyHotspots(ctx, 37.5, 127.0, 0.0)

	require.Error(t, err)
	assert.Nil(t, hotspots)
	assert.ErrorContains(t, err, "could not find nearby hotspots")
}
