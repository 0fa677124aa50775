package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

type stubNoteRepo struct {
	note *domain.Note
	fail bool
}

func (r *stubNoteRepo) Get(_ context.Context) (*domain.Note, error) {
	if r.fail {
		return nil, errStorageDown
	}
	if r.note == nil {
		return nil, domain.ErrNotFound
	}
	cp := *r.note
	return &cp, nil
}

func (r *stubNoteRepo) Put(_ context.Context, note *domain.Note) error {
	if r.fail {
		return errStorageDown
	}
	cp := *note
	r.note = &cp
	return nil
}

func TestNoteService_GetDegradesToEmpty(t *testing.T) {
	for _, repo := range []*stubNoteRepo{{}, {fail: true}} {
		svc := NewNoteService(repo, &stubCache{}, zerolog.Nop())
		note, err := svc.Get(context.Background())
		if err != nil {
			t.Fatalf("Get must not fail: %v", err)
		}
		if note == nil || note.Text != "" {
			t.Fatalf("expected empty note, got %+v", note)
		}
	}
}

func TestNoteService_PutRoundTrip(t *testing.T) {
	repo := &stubNoteRepo{}
	cache := &stubCache{}
	svc := NewNoteService(repo, cache, zerolog.Nop())

	if _, err := svc.Put(context.Background(), domain.RoleAnonymous, "closed friday", "elena"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous put: expected ErrUnauthorized, got %v", err)
	}

	note, err := svc.Put(context.Background(), domain.RoleAgent, "closed friday", "elena")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if note.UpdatedAt.IsZero() {
		t.Fatal("updated_at not stamped")
	}

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Text != "closed friday" || got.Author != "elena" {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != domain.ResourceNote {
		t.Fatalf("expected note invalidation, got %v", cache.invalidated)
	}
}
