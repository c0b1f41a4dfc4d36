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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConcertEvents holds the ticketed events. List returns newest-created first
// without the owner join, which the service layer composes via Users.FindOwners.
type ConcertEvents interface {
	List(ctx context.Context) ([]model.ConcertEvent, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ConcertEvent, error)
	Insert(ctx context.Context, ev *model.ConcertEvent) error
	Update(ctx context.Context, ev *model.ConcertEvent) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PersonalEvents holds the RSVP-able events, same contract as ConcertEvents.
// The RSVP toggle persists through Update.
type PersonalEvents interface {
	List(ctx context.Context) ([]model.PersonalEvent, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.PersonalEvent, error)
	Insert(ctx context.Context, ev *model.PersonalEvent) error
	Update(ctx context.Context, ev *model.PersonalEvent) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

var listNewestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

type mongoConcertEvents struct {
	coll *mongo.Collection
}

func (s *mongoConcertEvents) List(ctx context.Context) ([]model.ConcertEvent, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, listNewestFirst)
	if err != nil {
		return nil, fmt.Errorf("list: error querying concert events: %w", err)
	}
	defer cur.Close(ctx)

	events := []model.ConcertEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("list: error decoding concert events: %w", err)
	}
	return events, nil
}

func (s *mongoConcertEvents) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ConcertEvent, error) {
	var ev model.ConcertEvent
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("findByID: error querying concert event: %w", err)
	}
	return &ev, nil
}

func (s *mongoConcertEvents) Insert(ctx context.Context, ev *model.ConcertEvent) error {
	now := time.Now().UTC()
	ev.ID = primitive.NewObjectID()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("insert: error inserting concert event: %w", err)
	}
	return nil
}

func (s *mongoConcertEvents) Update(ctx context.Context, ev *model.ConcertEvent) error {
	ev.UpdatedAt = time.Now().UTC()

	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": ev.ID}, ev)
	if err != nil {
		return fmt.Errorf("update: error updating concert event: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

func (s *mongoConcertEvents) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete: error deleting concert event: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

type mongoPersonalEvents struct {
	coll *mongo.Collection
}

func (s *mongoPersonalEvents) List(ctx context.Context) ([]model.PersonalEvent, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, listNewestFirst)
	if err != nil {
		return nil, fmt.Errorf("list: error querying personal events: %w", err)
	}
	defer cur.Close(ctx)

	events := []model.PersonalEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("list: error decoding personal events: %w", err)
	}
	return events, nil
}

func (s *mongoPersonalEvents) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PersonalEvent, error) {
	var ev model.PersonalEvent
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("findByID: error querying personal event: %w", err)
	}
	return &ev, nil
}

func (s *mongoPersonalEvents) Insert(ctx context.Context, ev *model.PersonalEvent) error {
	now := time.Now().UTC()
	ev.ID = primitive.NewObjectID()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("insert: error inserting personal event: %w", err)
	}
	return nil
}

func (s *mongoPersonalEvents) Update(ctx context.Context, ev *model.PersonalEvent) error {
	ev.UpdatedAt = time.Now().UTC()

	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": ev.ID}, ev)
	if err != nil {
		return fmt.Errorf("update: error updating personal event: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

func (s *mongoPersonalEvents) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete: error deleting personal event: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}
