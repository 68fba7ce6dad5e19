package applications

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateDefaultsStatusAndDate(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	app, err := svc.Create(context.Background(), CreateInput{
		CompanyName: "Acme",
		RoleTitle:   "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if app.Status != StatusApplied {
		t.Fatalf("status = %q, want %q", app.Status, StatusApplied)
	}
	if app.DateApplied.IsZero() {
		t.Fatalf("dateApplied should default to now")
	}
	if app.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Create(context.Background(), CreateInput{
		CompanyName: "Acme",
		RoleTitle:   "Backend Engineer",
		Status:      "Ghosted",
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestCreateRequiresCompanyAndRole(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	cases := []CreateInput{
		{RoleTitle: "Backend Engineer"},
		{CompanyName: "Acme"},
		{CompanyName: "  ", RoleTitle: "Backend Engineer"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Create(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.List(context.Background(), "Pending"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	seed := []CreateInput{
		{CompanyName: "Acme", RoleTitle: "Backend Engineer", Status: StatusApplied},
		{CompanyName: "Globex", RoleTitle: "SRE", Status: StatusInterview},
		{CompanyName: "Initech", RoleTitle: "Platform Engineer", Status: StatusInterview},
	}
	for _, in := range seed {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	apps, err := svc.List(context.Background(), StatusInterview)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("len = %d, want 2", len(apps))
	}
	for _, app := range apps {
		if app.Status != StatusInterview {
			t.Fatalf("status = %q, want Interview", app.Status)
		}
	}
}

func TestUpdateChangesStatus(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	app, err := svc.Create(context.Background(), CreateInput{
		CompanyName: "Acme",
		RoleTitle:   "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := StatusOffer
	notes := "Verbal offer on the phone."
	updated, err := svc.Update(context.Background(), app.ID, UpdateInput{
		Status: &status,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != StatusOffer {
		t.Fatalf("status = %q, want Offer", updated.Status)
	}
	if updated.Notes != notes {
		t.Fatalf("notes = %q", updated.Notes)
	}
	if !updated.UpdatedAt.After(app.UpdatedAt) && !updated.UpdatedAt.Equal(app.UpdatedAt) {
		t.Fatalf("updatedAt went backwards")
	}
}

func TestUpdateMissingApplication(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	status := StatusOffer
	if _, err := svc.Update(context.Background(), "missing", UpdateInput{Status: &status}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesApplication(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	app, err := svc.Create(context.Background(), CreateInput{
		CompanyName: "Acme",
		RoleTitle:   "Backend Engineer",
		DateApplied: time.Now().UTC().Add(-24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), app.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), app.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
