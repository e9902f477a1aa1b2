package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hanriver/traffic_hazard_system/internal/config"
	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/service"
	"github.com/sirupsen/logrus"
)

const statusSuccess = "success"

type Handler struct {
	analysisService service.AnalysisService
	reportService   service.ReportService
	authService     service.AuthService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(analysisService service.AnalysisService, reportService service.ReportService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		analysisService: analysisService,
		reportService:   reportService,
		authService:     authService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Top hotspots by risk index
// @Description Get the ten highest-risk accident hotspots with risk level and safety advice.
// @Tags Analysis
// @Accept json
// @Produce json
// @Success 200 {object} TopHotspotsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analysis/top_hotspots [get]
func (h *Handler) topHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "topHotspots")

	assessments, err := h.analysisService.TopHotspots(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute top hotspots in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TopHotspotsResponse{
		Status:   statusSuccess,
		Hotspots: AssessmentsToResponses(assessments),
	})
}

// @Summary Hotspots near a location
// @Description Get hotspots within a bounding box of the given coordinate. The radius is in degrees, not meters.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Half-width of the bounding box in degrees" default(0.01)
// @Success 200 {object} NearbyHotspotsResponse
// @Failure 400 {object} map[string]string "Missing or malformed coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analysis/nearby_hotspots [get]
func (h *Handler) nearbyHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyHotspots")

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})
		return
	}

	radius := service.DefaultSearchRadius
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be a number"})
			return
		}
	}

	hotspots, err := h.analysisService.NearbyHotspots(c.Request.Context(), lat, lon, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby hotspots in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, NearbyHotspotsResponse{
		Status:         statusSuccess,
		NearbyHotspots: ModelsToHotspotResponses(hotspots),
	})
}

// @Summary Submit a hazard report
// @Description Create a new hazard report owned by the authenticated user.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} CreateReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	log := h.logger.WithField("method", "createReport")

	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input CreateReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &models.HazardReport{
		ReporterUserID: userID,
		Title:          input.Title,
		GuName:         input.GuName,
		Description:    input.Description,
		PhotoPath:      input.PhotoPath,
	}
	if err := h.reportService.CreateReport(c.Request.Context(), report); err != nil {
		log.WithError(err).Error("Failed to create report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CreateReportResponse{
		Message:  "Report submitted successfully",
		ReportID: report.ID,
	})
}

// @Summary List a user's hazard reports
// @Description Get all reports owned by the given user. The path user id must match the authenticated user.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} ReportListResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{user_id} [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	pathUserID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	if pathUserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot access another user's reports"})
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReportListResponse{
		Status:  statusSuccess,
		Reports: ModelsToReportResponses(reports),
	})
}

// @Summary Update a hazard report
// @Description Overwrite the mutable fields of a report owned by the authenticated user.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report_id path string true "Report ID"
// @Param report body UpdateReportRequest true "Report update request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found or not authorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{report_id} [put]
func (h *Handler) updateReport(c *gin.Context) {
	log := h.logger.WithField("method", "updateReport")

	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	reportID, err := uuid.Parse(c.Param("report_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log = log.WithField("report_id", reportID)

	var input UpdateReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &models.HazardReport{
		ID:             reportID,
		ReporterUserID: userID,
		Title:          input.Title,
		GuName:         input.GuName,
		Description:    input.Description,
		PhotoPath:      input.PhotoPath,
	}
	if err := h.reportService.UpdateReport(c.Request.Context(), report); err != nil {
		if errors.Is(err, service.ErrReportNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found or not authorized"})
			return
		}
		log.WithError(err).Error("Failed to update report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report updated successfully"})
}

// @Summary Delete a hazard report
// @Description Delete a report owned by the authenticated user.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report_id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found or not authorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{report_id} [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	log := h.logger.WithField("method", "deleteReport")

	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	reportID, err := uuid.Parse(c.Param("report_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log = log.WithField("report_id", reportID)

	if err := h.reportService.DeleteReport(c.Request.Context(), reportID, userID); err != nil {
		if errors.Is(err, service.ErrReportNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found or not authorized"})
			return
		}
		log.WithError(err).Error("Failed to delete report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// @Summary Register a new user
// @Description Create a user account. The password is stored as a bcrypt hash.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Login id already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	log := h.logger.WithField("method", "register")

	var input RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input.LoginID, input.Name, input.Password, input.Email)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "login id already taken"})
			return
		}
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "Registration successful",
		UserID:  user.ID,
	})
}

// @Summary Log in
// @Description Check credentials and issue a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid login id or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	log := h.logger.WithField("method", "login")

	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), input.LoginID, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid login id or password"})
			return
		}
		log.WithError(err).Error("Failed to log in user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		UserID:  user.ID,
		Token:   token,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
