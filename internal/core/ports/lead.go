package ports

import (
	"context"
	"time"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// Message is an outbound notification email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers notification emails through an external relay.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LeadRepository extends the generic content contract with the status
// transition staff apply while following up.
type LeadRepository interface {
	ContentRepository[domain.Lead, *domain.Lead]
	SetStatus(ctx context.Context, id string, status domain.LeadStatus, at time.Time) error
}

// LeadService handles the public contact flow and staff follow-up.
type LeadService interface {
	ContentService[domain.Lead, *domain.Lead]
	// SubmitContact persists the lead and notifies the studio. Both paths
	// are best-effort: a storage failure does not stop the email, and the
	// submission succeeds as long as the notification was attempted.
	// warned reports that one of the two paths failed.
	SubmitContact(ctx context.Context, lead *domain.Lead) (warned bool, err error)
	UpdateStatus(ctx context.Context, role domain.Role, id string, status domain.LeadStatus) error
}
