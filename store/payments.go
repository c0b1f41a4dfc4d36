package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventify-backend/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Payments is the append-only ledger of verified gateway transactions. There
// are no update or delete operations.
type Payments interface {
	Insert(ctx context.Context, p *model.Payment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error)
}

type mongoPayments struct {
	coll *mongo.Collection
}

func (s *mongoPayments) Insert(ctx context.Context, p *model.Payment) error {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert: error inserting payment: %w", err)
	}
	return nil
}

func (s *mongoPayments) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error) {
	var p model.Payment
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("findByID: error querying payment: %w", err)
	}
	return &p, nil
}
