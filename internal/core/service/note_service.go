package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// NoteService manages the studio broadcast note: a single document anyone
// can read and any authenticated role may rewrite.
type NoteService struct {
	notes  ports.NoteRepository
	cache  ports.PageCache
	logger zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, cache ports.PageCache, logger zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, cache: cache, logger: logger.With().Str("resource", "note").Logger()}
}

// Get returns the current note. Missing or unreachable storage degrades to
// an empty note so the page always renders.
func (s *NoteService) Get(ctx context.Context) (*domain.Note, error) {
	note, err := s.notes.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error().Err(err).Msg("note read failed, serving empty note")
		}
		return &domain.Note{}, nil
	}
	return note, nil
}

// Put rewrites the note. Agent is the minimum tier, which admits every
// authenticated role.
func (s *NoteService) Put(ctx context.Context, role domain.Role, text, author string) (*domain.Note, error) {
	if _, err := domain.Require(role, domain.ResourceNote, domain.ActionUpdate); err != nil {
		return nil, err
	}

	note := &domain.Note{
		Text:      text,
		Author:    author,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.notes.Put(ctx, note); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, domain.ResourceNote); err != nil {
			s.logger.Warn().Err(err).Msg("cache invalidation failed")
		}
	}

	s.logger.Info().Str("author", author).Msg("broadcast note updated")
	return note, nil
}
