package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// ContentService is the one CRUD implementation shared by every content
// collection. Each instance binds a collection's repository to its row in
// the policy table, so the table cannot drift between resources.
//
// Every mutating method resolves the policy check before any storage call.
type ContentService[T any, D ports.Document[T]] struct {
	resource domain.Resource
	repo     ports.ContentRepository[T, D]
	cache    ports.PageCache
	logger   zerolog.Logger
}

func NewContentService[T any, D ports.Document[T]](
	resource domain.Resource,
	repo ports.ContentRepository[T, D],
	cache ports.PageCache,
	logger zerolog.Logger,
) *ContentService[T, D] {
	return &ContentService[T, D]{
		resource: resource,
		repo:     repo,
		cache:    cache,
		logger:   logger.With().Str("resource", string(resource)).Logger(),
	}
}

// Resource returns the policy-table row this instance is bound to.
func (s *ContentService[T, D]) Resource() domain.Resource {
	return s.resource
}

// List returns all documents, newest first. A storage fault degrades to an
// empty slice so public pages keep rendering; only an authorization failure
// is surfaced.
func (s *ContentService[T, D]) List(ctx context.Context, role domain.Role) ([]D, error) {
	if _, err := domain.Require(role, s.resource, domain.ActionRead); err != nil {
		return nil, err
	}

	docs, err := s.repo.Find(ctx, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("list failed, serving empty result")
		return []D{}, nil
	}
	return docs, nil
}

func (s *ContentService[T, D]) GetByID(ctx context.Context, role domain.Role, id string) (D, error) {
	var zero D
	if _, err := domain.Require(role, s.resource, domain.ActionRead); err != nil {
		return zero, err
	}
	return s.degradeRead(s.repo.FindByID(ctx, id))
}

func (s *ContentService[T, D]) GetBySlug(ctx context.Context, role domain.Role, slug string) (D, error) {
	var zero D
	if _, err := domain.Require(role, s.resource, domain.ActionRead); err != nil {
		return zero, err
	}
	return s.degradeRead(s.repo.FindOne(ctx, ports.Filter{"slug": slug}))
}

// Create inserts the document with fresh lifecycle stamps and republishes
// the affected pages.
func (s *ContentService[T, D]) Create(ctx context.Context, role domain.Role, doc D) (string, error) {
	if _, err := domain.Require(role, s.resource, domain.ActionCreate); err != nil {
		return "", err
	}

	doc.Lifecycle().Touch(time.Now().UTC())
	if err := s.repo.Insert(ctx, doc); err != nil {
		s.logger.Error().Err(err).Msg("create failed")
		return "", err
	}

	s.republish(ctx)
	s.logger.Info().Str("id", doc.DocumentID()).Msg("created")
	return doc.DocumentID(), nil
}

// Update replaces the document, preserving the original created_at and
// stamping updated_at.
func (s *ContentService[T, D]) Update(ctx context.Context, role domain.Role, id string, doc D) error {
	if _, err := domain.Require(role, s.resource, domain.ActionUpdate); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	doc.SetDocumentID(id)
	doc.Lifecycle().CreatedAt = existing.Lifecycle().CreatedAt
	doc.Lifecycle().UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, id, doc); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("update failed")
		return err
	}

	s.republish(ctx)
	s.logger.Info().Str("id", id).Msg("updated")
	return nil
}

// Delete removes the document permanently. The policy tier for delete is
// often stricter than for update; the table decides.
func (s *ContentService[T, D]) Delete(ctx context.Context, role domain.Role, id string) error {
	if _, err := domain.Require(role, s.resource, domain.ActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error().Err(err).Str("id", id).Msg("delete failed")
		}
		return err
	}

	s.republish(ctx)
	s.logger.Info().Str("id", id).Msg("deleted")
	return nil
}

// degradeRead maps unexpected storage faults on the read path to not-found
// so a transient outage never breaks page rendering.
func (s *ContentService[T, D]) degradeRead(doc D, err error) (D, error) {
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error().Err(err).Msg("read failed, degrading to not found")
		var zero D
		return zero, domain.ErrNotFound
	}
	return doc, err
}

// republish drops every cached render of this resource so mutations become
// visible without a redeploy. A cache fault is logged, never fatal.
func (s *ContentService[T, D]) republish(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, s.resource); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}
