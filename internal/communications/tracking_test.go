package communications

import (
	"context"
	"testing"
	"time"

	"jobtrack-backend/internal/applications"
)

func logCommunication(t *testing.T, svc *Service, appID, commType string, at time.Time) Communication {
	t.Helper()
	comm, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: appID,
		Type:          commType,
		Timestamp:     at,
	})
	if err != nil {
		t.Fatalf("Create(%s): %v", commType, err)
	}
	return comm
}

func TestTrackingSummaryCountsResponses(t *testing.T) {
	svc, appSvc := newTestService(t)
	busy := seedApplication(t, appSvc, applications.StatusApplied)
	quiet := seedApplication(t, appSvc, applications.StatusApplied)

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	logCommunication(t, svc, busy.ID, TypeInterviewInvite, base)
	logCommunication(t, svc, busy.ID, TypeRejection, base.Add(24*time.Hour))
	logCommunication(t, svc, busy.ID, TypeNote, base.Add(48*time.Hour))

	summaries, err := svc.TrackingSummaryList(context.Background(), "")
	if err != nil {
		t.Fatalf("TrackingSummaryList: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}

	byApp := map[string]TrackingSummary{}
	for _, summary := range summaries {
		byApp[summary.ApplicationID] = summary
	}

	got := byApp[busy.ID]
	if got.TotalResponses != 3 || got.InterviewInvites != 1 || got.Rejections != 1 || got.Offers != 0 {
		t.Fatalf("busy counts = %+v", got)
	}
	if got.LatestResponseType != TypeNote {
		t.Fatalf("latest type = %q, want %q", got.LatestResponseType, TypeNote)
	}
	if got.LatestResponseDate == nil || !got.LatestResponseDate.Equal(base.Add(48*time.Hour)) {
		t.Fatalf("latest date = %v", got.LatestResponseDate)
	}
	if got.Status != applications.StatusRejected {
		t.Fatalf("status = %q, want synced %q", got.Status, applications.StatusRejected)
	}

	idle := byApp[quiet.ID]
	if idle.TotalResponses != 0 || idle.LatestResponseDate != nil || idle.LatestResponseType != "" {
		t.Fatalf("quiet application should have zero counts: %+v", idle)
	}
}

func TestTrackingSummaryFiltersByApplication(t *testing.T) {
	svc, appSvc := newTestService(t)
	first := seedApplication(t, appSvc, applications.StatusApplied)
	second := seedApplication(t, appSvc, applications.StatusApplied)
	logCommunication(t, svc, first.ID, TypeOffer, time.Now().UTC())

	summaries, err := svc.TrackingSummaryList(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("TrackingSummaryList: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ApplicationID != second.ID {
		t.Fatalf("summaries = %+v, want only %s", summaries, second.ID)
	}

	if summaries, err = svc.TrackingSummaryList(context.Background(), "missing"); err != nil {
		t.Fatalf("TrackingSummaryList(missing): %v", err)
	} else if len(summaries) != 0 {
		t.Fatalf("unknown application must yield an empty list, got %+v", summaries)
	}
}

func TestTrackingStatisticsRates(t *testing.T) {
	svc, appSvc := newTestService(t)
	first := seedApplication(t, appSvc, applications.StatusApplied)
	second := seedApplication(t, appSvc, applications.StatusApplied)
	seedApplication(t, appSvc, applications.StatusApplied)
	seedApplication(t, appSvc, applications.StatusApplied)

	now := time.Now().UTC()
	logCommunication(t, svc, first.ID, TypeInterviewInvite, now)
	logCommunication(t, svc, first.ID, TypeOffer, now.Add(time.Hour))
	logCommunication(t, svc, second.ID, TypeRejection, now.Add(2*time.Hour))

	stats, err := svc.TrackingStatistics(context.Background())
	if err != nil {
		t.Fatalf("TrackingStatistics: %v", err)
	}

	if stats.TotalApplications != 4 || stats.TotalCommunications != 3 {
		t.Fatalf("totals = %+v", stats)
	}
	if stats.TotalInterviewInvites != 1 || stats.TotalRejections != 1 || stats.TotalOffers != 1 {
		t.Fatalf("type totals = %+v", stats)
	}
	if stats.ResponseRate != 50.0 {
		t.Fatalf("response rate = %v, want 50", stats.ResponseRate)
	}
	if stats.InterviewRate != 25.0 || stats.OfferRate != 25.0 {
		t.Fatalf("rates = %+v", stats)
	}
}

func TestTrackingStatisticsEmptyPipeline(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.TrackingStatistics(context.Background())
	if err != nil {
		t.Fatalf("TrackingStatistics: %v", err)
	}
	if stats != (TrackingStatistics{}) {
		t.Fatalf("empty pipeline stats = %+v", stats)
	}
}

func TestRateOfRoundsToTwoDecimals(t *testing.T) {
	if got := rateOf(1, 3); got != 33.33 {
		t.Fatalf("rateOf(1, 3) = %v, want 33.33", got)
	}
	if got := rateOf(2, 3); got != 66.67 {
		t.Fatalf("rateOf(2, 3) = %v, want 66.67", got)
	}
	if got := rateOf(0, 0); got != 0 {
		t.Fatalf("rateOf(0, 0) = %v, want 0", got)
	}
}
