package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

const (
	collectionNote = "studio_note"
	noteDocumentID = "broadcast"
)

// NoteRepository stores the single broadcast note under a fixed id.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(collectionNote)}
}

func (r *NoteRepository) Get(ctx context.Context) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var note domain.Note
	if err := r.col.FindOne(ctx, bson.M{"_id": noteDocumentID}).Decode(&note); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) Put(ctx context.Context, note *domain.Note) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": noteDocumentID},
		bson.M{"$set": bson.M{
			"text":       note.Text,
			"author":     note.Author,
			"updated_at": note.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}
