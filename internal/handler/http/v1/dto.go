package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO for user registration
// @Description DTO for user registration
type RegisterRequest struct {
	LoginID  string `json:"login_id" validate:"required,min=3,max=64"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// LoginRequest DTO for user login
// @Description DTO for user login
type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse DTO returned after successful registration
// @Description DTO returned after successful registration
type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
}

// LoginResponse DTO returned after successful login
// @Description DTO returned after successful login
type LoginResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
	Token   string    `json:"token"`
}

// CreateReportRequest DTO for submitting a hazard report
// @Description DTO for submitting a hazard report
type CreateReportRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	GuName      string `json:"gu_name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required"`
	PhotoPath   string `json:"photo_path,omitempty"`
}

// UpdateReportRequest DTO for updating a hazard report
// @Description DTO for updating a hazard report
type UpdateReportRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	GuName      string `json:"gu_name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required"`
	PhotoPath   string `json:"photo_path,omitempty"`
}

// CreateReportResponse DTO returned after a report is created
// @Description DTO returned after a report is created
type CreateReportResponse struct {
	Message  string    `json:"message"`
	ReportID uuid.UUID `json:"report_id"`
}

// ReportResponse DTO for a single hazard report
// @Description DTO for a single hazard report
type ReportResponse struct {
	ID             uuid.UUID `json:"id"`
	ReporterUserID uuid.UUID `json:"reporter_user_id"`
	Title          string    `json:"title"`
	GuName         string    `json:"gu_name"`
	Description    string    `json:"description"`
	PhotoPath      string    `json:"photo_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReportListResponse DTO wrapping a user's reports
// @Description DTO wrapping a user's reports
type ReportListResponse struct {
	Status  string            `json:"status"`
	Reports []*ReportResponse `json:"reports"`
}

// HotspotResponse DTO for an accident hotspot
// @Description DTO for an accident hotspot
type HotspotResponse struct {
	HotspotID     int64   `json:"hotspot_id"`
	GuName        string  `json:"gu_name"`
	LocationName  string  `json:"location_name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	AccidentCount int     `json:"accident_count"`
	CasualtyCount int     `json:"casualty_count"`
	DeathCount    int     `json:"death_count"`
}

// HotspotRiskResponse DTO for a hotspot annotated with risk data
// @Description DTO for a hotspot annotated with risk data
type HotspotRiskResponse struct {
	HotspotResponse
	TotalRiskIndex      int    `json:"total_risk_index"`
	CalculatedRiskLevel string `json:"calculated_risk_level"`
	SafetyAdvice        string `json:"safety_advice"`
}

// TopHotspotsResponse DTO wrapping the risk ranking
// @Description DTO wrapping the risk ranking
type TopHotspotsResponse struct {
	Status   string                 `json:"status"`
	Hotspots []*HotspotRiskResponse `json:"hotspots"`
}

// NearbyHotspotsResponse DTO wrapping a proximity search result
// @Description DTO wrapping a proximity search result
type NearbyHotspotsResponse struct {
	Status         string             `json:"status"`
	NearbyHotspots []*HotspotResponse `json:"nearby_hotspots"`
}
