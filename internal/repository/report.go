package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Create inserts a new hazard report and fills in the generated id and
// creation timestamp.
func (r *ReportRepository) Create(ctx context.Context, report *models.HazardReport) error {
	query := `
		INSERT INTO hazard_reports (reporter_user_id, title, gu_name, description, photo_path)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.ReporterUserID,
		report.Title,
		report.GuName,
		report.Description,
		report.PhotoPath,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hazard report: %w", err)
	}
	return nil
}

// ListByReporter returns all reports owned by the given user, newest first.
func (r *ReportRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*models.HazardReport, error) {
	query := `
		SELECT
			id,
			reporter_user_id,
			title,
			gu_name,
			description,
			COALESCE(photo_path, ''),
			created_at
		FROM hazard_reports
		WHERE reporter_user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazard reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.HazardReport, 0)
	for rows.Next() {
		report := &models.HazardReport{}
		err := rows.Scan(
			&report.ID,
			&report.ReporterUserID,
			&report.Title,
			&report.GuName,
			&report.Description,
			&report.PhotoPath,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hazard report rows: %w", err)
	}
	return reports, nil
}

// Update overwrites the mutable fields of a report. The reporter id is part
// of the predicate, so a report owned by someone else matches zero rows and
// is indistinguishable from a missing one.
func (r *ReportRepository) Update(ctx context.Context, report *models.HazardReport) error {
	query := `
		UPDATE hazard_reports SET
			title = $1,
			description = $2,
			gu_name = $3,
			photo_path = $4
		WHERE id = $5 AND reporter_user_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		report.Title,
		report.Description,
		report.GuName,
		report.PhotoPath,
		report.ID,
		report.ReporterUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hazard report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrReportNotOwned
	}
	return nil
}

// Delete removes a report using the same ownership predicate as Update.
func (r *ReportRepository) Delete(ctx context.Context, id, reporterID uuid.UUID) error {
	query := `
		DELETE FROM hazard_reports
		WHERE id = $1 AND reporter_user_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, reporterID)
	if err != nil {
		return fmt.Errorf("failed to delete hazard report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrReportNotOwned
	}
	return nil
}
