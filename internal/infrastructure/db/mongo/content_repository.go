package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// ContentRepository is the one MongoDB adapter behind every content
// collection. Document ids are ObjectID hex strings generated on insert.
type ContentRepository[T any, D ports.Document[T]] struct {
	col *mongo.Collection
}

func NewContentRepository[T any, D ports.Document[T]](db *mongo.Database, collection string) *ContentRepository[T, D] {
	return &ContentRepository[T, D]{col: db.Collection(collection)}
}

// Find returns matching documents sorted by created_at descending.
func (r *ContentRepository[T, D]) Find(ctx context.Context, filter ports.Filter) ([]D, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, toBSON(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	defer cur.Close(ctx)

	docs := make([]D, 0)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
		}
		var d D = &doc
		docs = append(docs, d)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor %s: %w", r.col.Name(), err)
	}
	return docs, nil
}

func (r *ContentRepository[T, D]) FindByID(ctx context.Context, id string) (D, error) {
	return r.FindOne(ctx, ports.Filter{"_id": id})
}

func (r *ContentRepository[T, D]) FindOne(ctx context.Context, filter ports.Filter) (D, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	err := r.col.FindOne(ctx, toBSON(filter)).Decode(&doc)
	if err != nil {
		var zero D
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.ErrNotFound
		}
		return zero, fmt.Errorf("find one %s: %w", r.col.Name(), err)
	}
	var d D = &doc
	return d, nil
}

// Insert stores the document, assigning a fresh id when none is set.
func (r *ContentRepository[T, D]) Insert(ctx context.Context, doc D) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if doc.DocumentID() == "" {
		doc.SetDocumentID(primitive.NewObjectID().Hex())
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}
	return nil
}

func (r *ContentRepository[T, D]) Replace(ctx context.Context, id string, doc D) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("replace %s: %w", r.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContentRepository[T, D]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toBSON(filter ports.Filter) bson.M {
	m := bson.M{}
	for k, v := range filter {
		m[k] = v
	}
	return m
}
