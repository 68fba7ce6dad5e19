package communications

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"jobtrack-backend/internal/applications"
)

// TrackingSummary aggregates the employer responses logged against one
// application. Applications without responses still appear with zero counts.
type TrackingSummary struct {
	ApplicationID      string
	CompanyName        string
	RoleTitle          string
	Status             string
	TotalResponses     int
	InterviewInvites   int
	Rejections         int
	Offers             int
	LatestResponseDate *time.Time
	LatestResponseType string
}

// TrackingStatistics holds pipeline-wide response counts and rates. Rates
// are percentages of all applications, rounded to two decimals.
type TrackingStatistics struct {
	TotalApplications     int
	TotalCommunications   int
	TotalInterviewInvites int
	TotalRejections       int
	TotalOffers           int
	ResponseRate          float64
	InterviewRate         float64
	OfferRate             float64
}

// TrackingSummaryList returns one summary per application, or for a single
// application when applicationID is set. An unknown applicationID yields an
// empty list rather than an error.
func (s *Service) TrackingSummaryList(ctx context.Context, applicationID string) ([]TrackingSummary, error) {
	var apps []applications.Application
	if id := strings.TrimSpace(applicationID); id != "" {
		app, err := s.Apps.Get(ctx, id)
		if errors.Is(err, applications.ErrNotFound) {
			return []TrackingSummary{}, nil
		}
		if err != nil {
			return nil, err
		}
		apps = []applications.Application{app}
	} else {
		var err error
		apps, err = s.Apps.List(ctx, "")
		if err != nil {
			return nil, err
		}
	}

	comms, err := s.Repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	byApp := make(map[string][]Communication, len(apps))
	for _, comm := range comms {
		byApp[comm.ApplicationID] = append(byApp[comm.ApplicationID], comm)
	}

	summaries := make([]TrackingSummary, 0, len(apps))
	for _, app := range apps {
		summary := TrackingSummary{
			ApplicationID: app.ID,
			CompanyName:   app.CompanyName,
			RoleTitle:     app.RoleTitle,
			Status:        app.Status,
		}
		for _, comm := range byApp[app.ID] {
			summary.TotalResponses++
			switch comm.Type {
			case TypeInterviewInvite:
				summary.InterviewInvites++
			case TypeRejection:
				summary.Rejections++
			case TypeOffer:
				summary.Offers++
			}
			if summary.LatestResponseDate == nil || comm.Timestamp.After(*summary.LatestResponseDate) {
				ts := comm.Timestamp
				summary.LatestResponseDate = &ts
				summary.LatestResponseType = comm.Type
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// TrackingStatistics aggregates responses across the whole pipeline.
func (s *Service) TrackingStatistics(ctx context.Context) (TrackingStatistics, error) {
	apps, err := s.Apps.List(ctx, "")
	if err != nil {
		return TrackingStatistics{}, err
	}
	comms, err := s.Repo.List(ctx, ListFilter{})
	if err != nil {
		return TrackingStatistics{}, err
	}

	stats := TrackingStatistics{
		TotalApplications:   len(apps),
		TotalCommunications: len(comms),
	}
	responded := make(map[string]bool)
	interviewed := make(map[string]bool)
	offered := make(map[string]bool)
	for _, comm := range comms {
		responded[comm.ApplicationID] = true
		switch comm.Type {
		case TypeInterviewInvite:
			stats.TotalInterviewInvites++
			interviewed[comm.ApplicationID] = true
		case TypeRejection:
			stats.TotalRejections++
		case TypeOffer:
			stats.TotalOffers++
			offered[comm.ApplicationID] = true
		}
	}

	stats.ResponseRate = rateOf(len(responded), stats.TotalApplications)
	stats.InterviewRate = rateOf(len(interviewed), stats.TotalApplications)
	stats.OfferRate = rateOf(len(offered), stats.TotalApplications)
	return stats, nil
}

// rateOf converts a count into a percentage of total, rounded to two
// decimals. A zero total yields zero, not NaN.
func rateOf(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
