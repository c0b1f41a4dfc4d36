package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"eventify-backend/config"
	c "eventify-backend/context"
	"eventify-backend/logger"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "eventify"

// ErrNoRecord is returned when a referenced document does not exist.
var ErrNoRecord = errors.New("no record found")

var once sync.Once

// Store owns the process-wide Mongo client and hands out the per-collection
// accessors. A single instance is shared by all handlers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var store *Store

// Connect establishes the shared Mongo connection. Pool events are logged so
// reconnects show up in the server log.
func Connect(ctx context.Context) (*Store, error) {
	var connectErr error
	once.Do(func() {
		monitor := &event.PoolMonitor{
			Event: func(e *event.PoolEvent) {
				switch e.Type {
				case event.PoolCleared:
					logger.Warnf(ctx, "store: connection pool cleared for %s", e.Address)
				case event.ConnectionClosed:
					logger.Debugf(ctx, "store: connection closed for %s: %s", e.Address, e.Reason)
				case event.ConnectionReady:
					logger.Debugf(ctx, "store: connection ready for %s", e.Address)
				}
			},
		}

		opts := options.Client().
			ApplyURI(viper.GetString(config.MongoURI)).
			SetPoolMonitor(monitor)

		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			connectErr = err
			return
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			logger.Warnf(ctx, "store: initial ping failed, continuing: %+v", err)
		} else {
			logger.Info(ctx, "MongoDB connected successfully")
		}

		store = &Store{client: client, db: client.Database(databaseName)}
	})

	if connectErr != nil {
		return nil, connectErr
	}
	return store, nil
}

// Healthy reports whether the store currently answers a ping. Backs the
// /health endpoint's mongoConnected field.
func (s *Store) Healthy(ctx context.Context) bool {
	ctx, cancel := c.NewContextWithTimeOut(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary()) == nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Users() Users {
	return &mongoUsers{coll: s.db.Collection("users")}
}

func (s *Store) ConcertEvents() ConcertEvents {
	return &mongoConcertEvents{coll: s.db.Collection("concertevents")}
}

func (s *Store) PersonalEvents() PersonalEvents {
	return &mongoPersonalEvents{coll: s.db.Collection("personalevents")}
}

func (s *Store) Payments() Payments {
	return &mongoPayments{coll: s.db.Collection("payments")}
}
