package communications

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobtrack-backend/internal/applications"
)

func newTestService(t *testing.T) (*Service, *applications.Service) {
	t.Helper()
	appSvc := &applications.Service{Repo: applications.NewMemoryRepo()}
	return &Service{Repo: NewMemoryRepo(), Apps: appSvc}, appSvc
}

func seedApplication(t *testing.T, appSvc *applications.Service, status string) applications.Application {
	t.Helper()
	app, err := appSvc.Create(context.Background(), applications.CreateInput{
		CompanyName: "Acme",
		RoleTitle:   "Backend Engineer",
		Status:      status,
	})
	if err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return app
}

func TestCreateRequiresExistingApplication(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: "missing",
		Type:          TypeNote,
	})
	if !errors.Is(err, ErrApplicationMissing) {
		t.Fatalf("err = %v, want ErrApplicationMissing", err)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc, appSvc := newTestService(t)
	app := seedApplication(t, appSvc, applications.StatusApplied)

	_, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: app.ID,
		Type:          "Carrier Pigeon",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestInterviewInviteAdvancesStatus(t *testing.T) {
	svc, appSvc := newTestService(t)
	app := seedApplication(t, appSvc, applications.StatusApplied)

	comm, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: app.ID,
		Type:          TypeInterviewInvite,
		Message:       "Phone screen next Tuesday.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if comm.Timestamp.IsZero() {
		t.Fatalf("timestamp should default to now")
	}

	got, err := appSvc.Get(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Get application: %v", err)
	}
	if got.Status != applications.StatusInterview {
		t.Fatalf("status = %q, want Interview", got.Status)
	}
}

func TestInviteNeverMovesStatusBackwards(t *testing.T) {
	svc, appSvc := newTestService(t)
	app := seedApplication(t, appSvc, applications.StatusOffer)

	_, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: app.ID,
		Type:          TypeInterviewInvite,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := appSvc.Get(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Get application: %v", err)
	}
	if got.Status != applications.StatusOffer {
		t.Fatalf("status = %q, want Offer to stand", got.Status)
	}
}

func TestRejectionAlwaysApplies(t *testing.T) {
	svc, appSvc := newTestService(t)
	app := seedApplication(t, appSvc, applications.StatusOffer)

	_, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: app.ID,
		Type:          TypeRejection,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := appSvc.Get(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Get application: %v", err)
	}
	if got.Status != applications.StatusRejected {
		t.Fatalf("status = %q, want Rejected", got.Status)
	}
}

func TestNoteLeavesStatusAlone(t *testing.T) {
	svc, appSvc := newTestService(t)
	app := seedApplication(t, appSvc, applications.StatusApplied)

	_, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: app.ID,
		Type:          TypeNote,
		Message:       "Sent a thank-you email.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := appSvc.Get(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Get application: %v", err)
	}
	if got.Status != applications.StatusApplied {
		t.Fatalf("status = %q, want Applied", got.Status)
	}
}

func TestUpdateTypeResyncsStatus(t *testing.T) {
	svc, appSvc := newTestService(t)
	app := seedApplication(t, appSvc, applications.StatusApplied)

	comm, err := svc.Create(context.Background(), CreateInput{
		ApplicationID: app.ID,
		Type:          TypeNote,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	offer := TypeOffer
	if _, err := svc.Update(context.Background(), comm.ID, UpdateInput{Type: &offer}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := appSvc.Get(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Get application: %v", err)
	}
	if got.Status != applications.StatusOffer {
		t.Fatalf("status = %q, want Offer", got.Status)
	}
}

func TestListFiltersByTypeAndWindow(t *testing.T) {
	svc, appSvc := newTestService(t)
	app := seedApplication(t, appSvc, applications.StatusApplied)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []CreateInput{
		{ApplicationID: app.ID, Type: TypeNote, Timestamp: base},
		{ApplicationID: app.ID, Type: TypeFollowUp, Timestamp: base.Add(24 * time.Hour)},
		{ApplicationID: app.ID, Type: TypeNote, Timestamp: base.Add(72 * time.Hour)},
	}
	for _, in := range seed {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	start := base.Add(-time.Hour)
	end := base.Add(48 * time.Hour)
	comms, err := svc.List(context.Background(), ListFilter{
		ApplicationID: app.ID,
		Type:          TypeNote,
		Start:         &start,
		End:           &end,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(comms) != 1 {
		t.Fatalf("len = %d, want 1", len(comms))
	}
	if !comms[0].Timestamp.Equal(base) {
		t.Fatalf("timestamp = %v, want %v", comms[0].Timestamp, base)
	}
}

func TestListRejectsUnknownTypeFilter(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.List(context.Background(), ListFilter{Type: "Smoke Signal"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
