package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

type stubLeadRepo struct {
	*stubRepo[domain.Lead, *domain.Lead]
	statusSet map[string]domain.LeadStatus
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{
		stubRepo:  newStubRepo[domain.Lead, *domain.Lead](),
		statusSet: make(map[string]domain.LeadStatus),
	}
}

func (r *stubLeadRepo) SetStatus(_ context.Context, id string, status domain.LeadStatus, at time.Time) error {
	if r.failAll {
		return errStorageDown
	}
	lead, ok := r.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	lead.Status = status
	lead.UpdatedAt = at
	r.statusSet[id] = status
	return nil
}

type stubMailer struct {
	sent []ports.Message
	fail bool
}

func (m *stubMailer) Send(_ context.Context, msg ports.Message) error {
	if m.fail {
		return errors.New("smtp refused")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newLeadService(repo *stubLeadRepo, mailer ports.Mailer) *LeadService {
	return NewLeadService(repo, mailer, &stubCache{}, "site@studio.test", "hello@studio.test", zerolog.Nop())
}

func TestSubmitContact_CleanPath(t *testing.T) {
	repo := newStubLeadRepo()
	mailer := &stubMailer{}
	svc := newLeadService(repo, mailer)

	warned, err := svc.SubmitContact(context.Background(), &domain.Lead{
		Name: "Marta", Email: "marta@example.com", Message: "loft remodel",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if warned {
		t.Fatal("clean path must not warn")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(mailer.sent))
	}
	if len(repo.docs) != 1 {
		t.Fatalf("expected one stored lead, got %d", len(repo.docs))
	}
	for _, lead := range repo.docs {
		if lead.Status != domain.LeadStatusNew {
			t.Fatalf("new leads must start as %q, got %q", domain.LeadStatusNew, lead.Status)
		}
		if lead.CreatedAt.IsZero() || lead.UpdatedAt.IsZero() {
			t.Fatalf("lifecycle stamps not set: %+v", lead.Stamps)
		}
	}
}

// A storage outage must not cost the studio the inquiry: the notification
// still goes out and the visitor still sees success.
func TestSubmitContact_StorageFaultStillNotifies(t *testing.T) {
	repo := newStubLeadRepo()
	repo.failAll = true
	mailer := &stubMailer{}
	svc := newLeadService(repo, mailer)

	warned, err := svc.SubmitContact(context.Background(), &domain.Lead{Name: "Jo", Email: "jo@example.com"})
	if err != nil {
		t.Fatalf("SubmitContact must not fail on a storage fault: %v", err)
	}
	if !warned {
		t.Fatal("degraded submission must be flagged")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("notification must still be attempted, got %d sends", len(mailer.sent))
	}
}

func TestSubmitContact_MailFaultStillSucceeds(t *testing.T) {
	repo := newStubLeadRepo()
	svc := newLeadService(repo, &stubMailer{fail: true})

	warned, err := svc.SubmitContact(context.Background(), &domain.Lead{Name: "Jo", Email: "jo@example.com"})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if !warned {
		t.Fatal("failed notification must be flagged")
	}
	if len(repo.docs) != 1 {
		t.Fatalf("lead must still be persisted, got %d", len(repo.docs))
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newStubLeadRepo()
	svc := newLeadService(repo, &stubMailer{})

	lead := &domain.Lead{Name: "Jo", Email: "jo@example.com"}
	if _, err := svc.SubmitContact(context.Background(), lead); err != nil {
		t.Fatalf("seed: %v", err)
	}
	id := lead.DocumentID()

	if err := svc.UpdateStatus(context.Background(), domain.RoleAgent, id, domain.LeadStatusContacted); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("agent must not update leads, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), domain.RoleAdmin, id, "archived"); !errors.Is(err, domain.ErrInvalidLeadStatus) {
		t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), domain.RoleAdmin, id, domain.LeadStatusContacted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if repo.statusSet[id] != domain.LeadStatusContacted {
		t.Fatalf("status not persisted: %q", repo.statusSet[id])
	}
	if err := svc.UpdateStatus(context.Background(), domain.RoleAdmin, "missing", domain.LeadStatusNew); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
