package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

const collectionLeads = "leads"

// LeadRepository adds the follow-up status transition on top of the generic
// content adapter.
type LeadRepository struct {
	*ContentRepository[domain.Lead, *domain.Lead]
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		ContentRepository: NewContentRepository[domain.Lead, *domain.Lead](db, collectionLeads),
	}
}

// SetStatus updates only the status and updated_at fields.
func (r *LeadRepository) SetStatus(ctx context.Context, id string, status domain.LeadStatus, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": at}},
	)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
