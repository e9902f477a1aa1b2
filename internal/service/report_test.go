package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/service/mocks"
	"github.com/hanriver/traffic_hazard_system/internal/webhook"
	webhook_mocks "github.com/hanriver/traffic_hazard_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService builds the service with mocked repository and publisher.
func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := NewReportService(repoMock, logger, webhookMock)
	return svc.(*reportService), repoMock, webhookMock
}

func TestCreateReport_Success(t *testing.T) {
	svc, repoMock, webhookMock := newTestReportService(t)
	ctx := context.Background()
	reporterID := uuid.New()
	reportID := uuid.New()

	report := &models.HazardReport{
		ReporterUserID: reporterID,
		Title:          "Broken signal at crossing",
		GuName:         "Gangnam-gu",
		Description:    "The pedestrian signal has been dark for two days.",
	}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.HazardReport) error {
			r.ID = reportID
			r.CreatedAt = time.Now()
			return nil
		}).Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ReportEvent) error {
			assert.Equal(t, reportID, event.ReportID)
			assert.Equal(t, reporterID, event.ReporterUserID)
			assert.Equal(t, "Broken signal at crossing", event.Title)
			assert.Equal(t, "Gangnam-gu", event.GuName)
			return nil
		}).Times(1)

	err := svc.CreateReport(ctx, report)

	require.NoError(t, err)
	assert.Equal(t, reportID, report.ID)
}

func TestCreateReport_PublishFailureDoesNotFail(t *testing.T) {
	svc, repoMock, webhookMock := newTestReportService(t)
	ctx := context.Background()

	report := &models.HazardReport{
		ReporterUserID: uuid.New(),
		Title:          "Pothole",
		GuName:         "Mapo-gu",
		Description:    "Deep pothole in the bus lane.",
	}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.HazardReport) error {
			r.ID = uuid.New()
			return nil
		}).Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis down")).
		Times(1)

	// Webhook delivery is best-effort; the report itself was stored.
	err := svc.CreateReport(ctx, report)
	require.NoError(t, err)
}

func TestCreateReport_RepoError(t *testing.T) {
	svc, repoMock, webhookMock := newTestReportService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("insert failed")

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(dbError).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateReport(ctx, &models.HazardReport{Title: "x"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create report")
}

func TestListReports_Success(t *testing.T) {
	svc, repoMock, _ := newTestReportService(t)
	ctx := context.Background()
	reporterID := uuid.New()

	expected := []*models.HazardReport{
		{ID: uuid.New(), ReporterUserID: reporterID, Title: "Report 1"},
		{ID: uuid.New(), ReporterUserID: reporterID, Title: "Report 2"},
	}

	repoMock.EXPECT().ListByReporter(ctx, reporterID).Return(expected, nil).Times(1)

	reports, err := svc.ListReports(ctx, reporterID)

	require.NoError(t, err)
	assert.Equal(t, expected, reports)
}

func TestUpdateReport_NotOwned(t *testing.T) {
	svc, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	report := &models.HazardReport{
		ID:             uuid.New(),
		ReporterUserID: uuid.New(),
		Title:          "Updated title",
		GuName:         "Gangnam-gu",
		Description:    "Updated description",
	}

	repoMock.EXPECT().Update(ctx, report).Return(ErrReportNotOwned).Times(1)

	err := svc.UpdateReport(ctx, report)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportNotOwned)
}

func TestUpdateReport_Success(t *testing.T) {
	svc, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	report := &models.HazardReport{
		ID:             uuid.New(),
		ReporterUserID: uuid.New(),
		Title:          "Updated title",
		GuName:         "Gangnam-gu",
		Description:    "Updated description",
	}

	repoMock.EXPECT().Update(ctx, report).Return(nil).Times(1)

	err := svc.UpdateReport(ctx, report)
	require.NoError(t, err)
}

func TestDeleteReport_Success(t *testing.T) {
	svc, repoMock, _ := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	reporterID := uuid.New()

	repoMock.EXPECT().Delete(ctx, reportID, reporterID).Return(nil).Times(1)

	err := svc.DeleteReport(ctx, reportID, reporterID)
	require.NoError(t, err)
}

func TestDeleteReport_NotOwned(t *testing.T) {
	svc, repoMock, _ := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	reporterID := uuid.New()

	repoMock.EXPECT().Delete(ctx, reportID, reporterID).Return(ErrReportNotOwned).Times(1)

	err := svc.DeleteReport(ctx, reportID, reporterID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportNotOwned)
}
