package domain

// LeadStatus tracks staff follow-up on an inbound contact submission.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
)

// ValidLeadStatus reports whether s is a known follow-up state.
func ValidLeadStatus(s LeadStatus) bool {
	return s == LeadStatusNew || s == LeadStatusContacted
}

// Lead is an inbound contact-form submission persisted for staff follow-up.
type Lead struct {
	ID      string     `json:"id" bson:"_id,omitempty"`
	Name    string     `json:"name" bson:"name" validate:"required"`
	Email   string     `json:"email" bson:"email" validate:"required,email"`
	Phone   string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Message string     `json:"message" bson:"message" validate:"required"`
	Status  LeadStatus `json:"status" bson:"status"`
	Stamps  `bson:",inline"`
}

func (l *Lead) DocumentID() string { return l.ID }
func (l *Lead) SetDocumentID(id string) { l.ID = id }
func (l *Lead) Lifecycle() *Stamps { return &l.Stamps }
