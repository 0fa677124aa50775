package ports

import (
	"context"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// NoteRepository stores the single studio broadcast note.
type NoteRepository interface {
	Get(ctx context.Context) (*domain.Note, error)
	Put(ctx context.Context, note *domain.Note) error
}

// NoteService exposes the broadcast note: public read, any authenticated
// role may rewrite it.
type NoteService interface {
	Get(ctx context.Context) (*domain.Note, error)
	Put(ctx context.Context, role domain.Role, text, author string) (*domain.Note, error)
}
