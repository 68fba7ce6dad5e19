package communications

import "time"

// CommunicationResponse is the outward-facing representation of a communication.
type CommunicationResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"applicationId"`
	Type          string    `json:"type"`
	Message       string    `json:"message,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TrackingSummaryResponse is the outward-facing per-application response summary.
type TrackingSummaryResponse struct {
	ApplicationID      string     `json:"applicationId"`
	CompanyName        string     `json:"companyName"`
	RoleTitle          string     `json:"roleTitle"`
	Status             string     `json:"status"`
	TotalResponses     int        `json:"totalResponses"`
	InterviewInvites   int        `json:"interviewInvites"`
	Rejections         int        `json:"rejections"`
	Offers             int        `json:"offers"`
	LatestResponseDate *time.Time `json:"latestResponseDate,omitempty"`
	LatestResponseType string     `json:"latestResponseType,omitempty"`
}

// TrackingStatisticsResponse is the outward-facing pipeline-wide aggregate.
type TrackingStatisticsResponse struct {
	TotalApplications     int     `json:"totalApplications"`
	TotalCommunications   int     `json:"totalCommunications"`
	TotalInterviewInvites int     `json:"totalInterviewInvites"`
	TotalRejections       int     `json:"totalRejections"`
	TotalOffers           int     `json:"totalOffers"`
	ResponseRate          float64 `json:"responseRate"`
	InterviewRate         float64 `json:"interviewRate"`
	OfferRate             float64 `json:"offerRate"`
}

func toResponse(comm Communication) CommunicationResponse {
	return CommunicationResponse{
		ID:            comm.ID,
		ApplicationID: comm.ApplicationID,
		Type:          comm.Type,
		Message:       comm.Message,
		Timestamp:     comm.Timestamp,
		CreatedAt:     comm.CreatedAt,
	}
}

func toTrackingSummaryResponse(summary TrackingSummary) TrackingSummaryResponse {
	return TrackingSummaryResponse{
		ApplicationID:      summary.ApplicationID,
		CompanyName:        summary.CompanyName,
		RoleTitle:          summary.RoleTitle,
		Status:             summary.Status,
		TotalResponses:     summary.TotalResponses,
		InterviewInvites:   summary.InterviewInvites,
		Rejections:         summary.Rejections,
		Offers:             summary.Offers,
		LatestResponseDate: summary.LatestResponseDate,
		LatestResponseType: summary.LatestResponseType,
	}
}

func toTrackingStatisticsResponse(stats TrackingStatistics) TrackingStatisticsResponse {
	return TrackingStatisticsResponse{
		TotalApplications:     stats.TotalApplications,
		TotalCommunications:   stats.TotalCommunications,
		TotalInterviewInvites: stats.TotalInterviewInvites,
		TotalRejections:       stats.TotalRejections,
		TotalOffers:           stats.TotalOffers,
		ResponseRate:          stats.ResponseRate,
		InterviewRate:         stats.InterviewRate,
		OfferRate:             stats.OfferRate,
	}
}
