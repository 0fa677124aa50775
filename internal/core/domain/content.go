package domain

import "time"

// Stamps carries the lifecycle timestamps shared by every stored document.
// CreatedAt is set once on insert and never changes; UpdatedAt moves on
// every successful mutation.
type Stamps struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Touch advances UpdatedAt, setting CreatedAt too when the document is new.
func (s *Stamps) Touch(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

// Project is a portfolio entry shown on the public projects page.
type Project struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Slug        string   `json:"slug" bson:"slug" validate:"required"`
	Category    string   `json:"category" bson:"category"`
	Location    string   `json:"location" bson:"location"`
	Summary     string   `json:"summary" bson:"summary"`
	Body        string   `json:"body" bson:"body"`
	CoverImage  string   `json:"cover_image" bson:"cover_image"`
	GalleryURLs []string `json:"gallery_urls,omitempty" bson:"gallery_urls,omitempty"`
	Featured    bool     `json:"featured" bson:"featured"`
	Stamps      `bson:",inline"`
}

// StudioService is a design offering (e.g. full-home styling, consultation).
type StudioService struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name" validate:"required"`
	Slug        string  `json:"slug" bson:"slug" validate:"required"`
	Description string  `json:"description" bson:"description"`
	Icon        string  `json:"icon" bson:"icon"`
	PriceFrom   float64 `json:"price_from,omitempty" bson:"price_from,omitempty"`
	Stamps      `bson:",inline"`
}

// BlogPost is an article on the public blog.
type BlogPost struct {
	ID         string   `json:"id" bson:"_id,omitempty"`
	Title      string   `json:"title" bson:"title" validate:"required"`
	Slug       string   `json:"slug" bson:"slug" validate:"required"`
	Author     string   `json:"author" bson:"author"`
	Excerpt    string   `json:"excerpt" bson:"excerpt"`
	Body       string   `json:"body" bson:"body"`
	CoverImage string   `json:"cover_image" bson:"cover_image"`
	Tags       []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Published  bool     `json:"published" bson:"published"`
	Stamps     `bson:",inline"`
}

// TeamMember appears on the public about page. IsFounder is a display
// convention, not a stored invariant; the about page highlights the first
// member flagged as founder.
type TeamMember struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name" validate:"required"`
	Title     string `json:"title" bson:"title"`
	Bio       string `json:"bio" bson:"bio"`
	Photo     string `json:"photo" bson:"photo"`
	IsFounder bool   `json:"is_founder" bson:"is_founder"`
	Stamps    `bson:",inline"`
}

// Note is the studio-wide broadcast note shown in the dashboard header.
// There is exactly one; any authenticated role may rewrite it.
type Note struct {
	Text      string    `json:"text" bson:"text"`
	Author    string    `json:"author" bson:"author"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// DocumentID / SetDocumentID / Lifecycle satisfy ports.Document so the
// generic content service can manage each type uniformly.

func (p *Project) DocumentID() string { return p.ID }
func (p *Project) SetDocumentID(id string) { p.ID = id }
func (p *Project) Lifecycle() *Stamps { return &p.Stamps }

func (s *StudioService) DocumentID() string { return s.ID }
func (s *StudioService) SetDocumentID(id string) { s.ID = id }
func (s *StudioService) Lifecycle() *Stamps { return &s.Stamps }

func (b *BlogPost) DocumentID() string { return b.ID }
func (b *BlogPost) SetDocumentID(id string) { b.ID = id }
func (b *BlogPost) Lifecycle() *Stamps { return &b.Stamps }

func (m *TeamMember) DocumentID() string { return m.ID }
func (m *TeamMember) SetDocumentID(id string) { m.ID = id }
func (m *TeamMember) Lifecycle() *Stamps { return &m.Stamps }
