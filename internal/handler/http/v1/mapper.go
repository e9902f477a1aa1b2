package v1

import "github.com/hanriver/traffic_hazard_system/internal/models"

// ModelToHotspotResponse converts a domain hotspot into a response DTO.
func ModelToHotspotResponse(model *models.Hotspot) *HotspotResponse {
	return &HotspotResponse{
		HotspotID:     model.HotspotID,
		GuName:        model.GuName,
		LocationName:  model.LocationName,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		AccidentCount: model.AccidentCount,
		CasualtyCount: model.CasualtyCount,
		DeathCount:    model.DeathCount,
	}
}

// ModelsToHotspotResponses converts a slice of hotspots into response DTOs.
func ModelsToHotspotResponses(models []*models.Hotspot) []*HotspotResponse {
	responses := make([]*HotspotResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHotspotResponse(model)
	}
	return responses
}

// AssessmentToResponse converts a risk assessment into a response DTO.
func AssessmentToResponse(model *models.RiskAssessment) *HotspotRiskResponse {
	return &HotspotRiskResponse{
		HotspotResponse:     *ModelToHotspotResponse(&model.Hotspot),
		TotalRiskIndex:      model.TotalRiskIndex,
		CalculatedRiskLevel: model.RiskLevel,
		SafetyAdvice:        model.SafetyAdvice,
	}
}

// AssessmentsToResponses converts a slice of assessments into response DTOs.
func AssessmentsToResponses(models []*models.RiskAssessment) []*HotspotRiskResponse {
	responses := make([]*HotspotRiskResponse, len(models))
	for i, model := range models {
		responses[i] = AssessmentToResponse(model)
	}
	return responses
}

// ModelToReportResponse converts a hazard report into a response DTO.
func ModelToReportResponse(model *models.HazardReport) *ReportResponse {
	return &ReportResponse{
		ID:             model.ID,
		ReporterUserID: model.ReporterUserID,
		Title:          model.Title,
		GuName:         model.GuName,
		Description:    model.Description,
		PhotoPath:      model.PhotoPath,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToReportResponses converts a slice of reports into response DTOs.
func ModelsToReportResponses(models []*models.HazardReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}
