package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ReportRepository defines the data access contract for hazard reports. The
// mutation methods match on both report id and reporter id and return
// ErrReportNotOwned when zero rows match.
type ReportRepository interface {
	Create(ctx context.Context, report *models.HazardReport) error
	ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*models.HazardReport, error)
	Update(ctx context.Context, report *models.HazardReport) error
	Delete(ctx context.Context, id, reporterID uuid.UUID) error
}

// ReportService defines the contract for hazard report management.
type ReportService interface {
	CreateReport(ctx context.Context, report *models.HazardReport) error
	ListReports(ctx context.Context, reporterID uuid.UUID) ([]*models.HazardReport, error)
	UpdateReport(ctx context.Context, report *models.HazardReport) error
	DeleteReport(ctx context.Context, id, reporterID uuid.UUID) error
}

type reportService struct {
	repo      ReportRepository
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
}

func NewReportService(repo ReportRepository, logger *logrus.Logger, publisher webhook.WebhookPublisher) ReportService {
	return &reportService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateReport stores a new hazard report and enqueues a webhook event for it.
func (s *reportService) CreateReport(ctx context.Context, report *models.HazardReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "CreateReport",
		"reporter": report.ReporterUserID,
	})
	log.Info("Attempting to create a hazard report")

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	// Delivery is asynchronous; a publish failure must not fail the request.
	event := webhook.ReportEvent{
		ReportID:       report.ID,
		ReporterUserID: report.ReporterUserID,
		Title:          report.Title,
		GuName:         report.GuName,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish report-created webhook event")
	}

	log.WithField("report_id", report.ID).Info("Hazard report created successfully")
	return nil
}

// ListReports returns all reports owned by the given user.
func (s *reportService) ListReports(ctx context.Context, reporterID uuid.UUID) ([]*models.HazardReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "ListReports",
		"reporter": reporterID,
	})
	log.Info("Listing hazard reports")

	reports, err := s.repo.ListByReporter(ctx, reporterID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Hazard reports listed successfully")
	return reports, nil
}

// UpdateReport overwrites the mutable fields of a report. The ownership check
// lives in the repository predicate, so a mismatched reporter surfaces as
// ErrReportNotOwned.
func (s *reportService) UpdateReport(ctx context.Context, report *models.HazardReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "UpdateReport",
		"report_id": report.ID,
		"reporter":  report.ReporterUserID,
	})
	log.Info("Attempting to update a hazard report")

	if err := s.repo.Update(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to update report in repository")
		return fmt.Errorf("service: could not update report: %w", err)
	}

	log.Info("Hazard report updated successfully")
	return nil
}

// DeleteReport removes a report owned by the given user.
func (s *reportService) DeleteReport(ctx context.Context, id, reporterID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "DeleteReport",
		"report_id": id,
		"reporter":  reporterID,
	})
	log.Info("Attempting to delete a hazard report")

	if err := s.repo.Delete(ctx, id, reporterID); err != nil {
		log.WithError(err).Warn("Failed to delete report in repository")
		return fmt.Errorf("service: could not delete report: %w", err)
	}

	log.Info("Hazard report deleted successfully")
	return nil
}
