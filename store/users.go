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

// Users is the credential store. FindByID excludes the password hash from the
// loaded projection; FindByEmail keeps it for the login comparison.
type Users interface {
	Insert(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindOwners(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Owner, error)
}

type mongoUsers struct {
	coll *mongo.Collection
}

func (s *mongoUsers) Insert(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("insert: error inserting user: %w", err)
	}
	return nil
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("findByEmail: error querying user: %w", err)
	}
	return &u, nil
}

func (s *mongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var u model.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("findByID: error querying user: %w", err)
	}
	return &u, nil
}

// FindOwners is the read side of the owner join: it resolves a batch of user
// ids to their public fields in a single query.
func (s *mongoUsers) FindOwners(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Owner, error) {
	owners := make(map[primitive.ObjectID]model.Owner, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "email": 1})
	cur, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("findOwners: error querying users: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var o model.Owner
		if err := cur.Decode(&o); err != nil {
			return nil, fmt.Errorf("findOwners: error decoding user: %w", err)
		}
		owners[o.ID] = o
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("findOwners: cursor error: %w", err)
	}
	return owners, nil
}
