package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pricing holds the per-category ticket prices of a concert event.
type Pricing struct {
	Gold     float64 `bson:"gold" json:"gold"`
	Platinum float64 `bson:"platinum" json:"platinum"`
	Diamond  float64 `bson:"diamond" json:"diamond"`
}

type ConcertEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Pricing     Pricing            `bson:"pricing" json:"pricing"`
	UserID      primitive.ObjectID `bson:"user" json:"-"`
	User        *Owner             `bson:"-" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type PersonalEvent struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Location    string               `bson:"location" json:"location"`
	Time        string               `bson:"time" json:"time"`
	Description string               `bson:"description" json:"description"`
	UserID      primitive.ObjectID   `bson:"user" json:"-"`
	User        *Owner               `bson:"-" json:"-"`
	RSVPUsers   []primitive.ObjectID `bson:"rsvpUsers" json:"rsvpUsers"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ConcertEventRequest carries create/update input. On update, empty fields and
// zero prices mean "keep the stored value".
type ConcertEventRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Pricing     *Pricing `json:"pricing"`
}

type PersonalEventRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Time        string `json:"time"`
	Description string `json:"description"`
}
