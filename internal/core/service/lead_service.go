package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// LeadService layers the public contact flow and staff follow-up on top of
// the generic CRUD service. Gated operations (list, update, delete) require
// admin per the policy table; SubmitContact is the one unauthenticated
// write in the system.
type LeadService struct {
	*ContentService[domain.Lead, *domain.Lead]

	leads    ports.LeadRepository
	mailer   ports.Mailer
	from     string
	notifyTo string
	logger   zerolog.Logger
}

func NewLeadService(
	leads ports.LeadRepository,
	mailer ports.Mailer,
	cache ports.PageCache,
	from, notifyTo string,
	logger zerolog.Logger,
) *LeadService {
	return &LeadService{
		ContentService: NewContentService[domain.Lead](domain.ResourceLeads, leads, cache, logger),
		leads:          leads,
		mailer:         mailer,
		from:           from,
		notifyTo:       notifyTo,
		logger:         logger.With().Str("resource", "leads").Logger(),
	}
}

// SubmitContact persists the submission and emails the studio. Both paths
// are best-effort: a storage fault does not stop the notification, and the
// visitor sees success as long as the email was attempted. warned reports
// that one of the two paths failed so the handler can log it.
func (s *LeadService) SubmitContact(ctx context.Context, lead *domain.Lead) (bool, error) {
	lead.Status = domain.LeadStatusNew
	lead.Lifecycle().Touch(time.Now().UTC())

	warned := false
	if err := s.leads.Insert(ctx, lead); err != nil {
		s.logger.Error().Err(err).Msg("lead persistence failed, still notifying")
		warned = true
	}

	msg := ports.Message{
		From:    s.from,
		To:      s.notifyTo,
		Subject: fmt.Sprintf("New inquiry from %s", lead.Name),
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s", lead.Name, lead.Email, lead.Phone, lead.Message),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error().Err(err).Msg("lead notification failed")
		warned = true
	}

	s.logger.Info().Str("email", lead.Email).Bool("warned", warned).Msg("contact submission handled")
	return warned, nil
}

// UpdateStatus moves a lead through the follow-up states. Admin and above
// only, per the policy table's update tier for leads.
func (s *LeadService) UpdateStatus(ctx context.Context, role domain.Role, id string, status domain.LeadStatus) error {
	if !domain.ValidLeadStatus(status) {
		return fmt.Errorf("%q: %w", status, domain.ErrInvalidLeadStatus)
	}
	if _, err := domain.Require(role, domain.ResourceLeads, domain.ActionUpdate); err != nil {
		return err
	}

	if err := s.leads.SetStatus(ctx, id, status, time.Now().UTC()); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Str("status", string(status)).Msg("lead status updated")
	return nil
}
