package event

import (
	"errors"

	"eventify-backend/model"
	"eventify-backend/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound      = errors.New("event not found")
	ErrNotOwner      = errors.New("not authorized")
	ErrMissingFields = errors.New("missing required fields")
)

// Service is the event catalog for both concert and personal events.
type Service struct {
	concerts  store.ConcertEvents
	personals store.PersonalEvents
	users     store.Users
}

func NewService(concerts store.ConcertEvents, personals store.PersonalEvents, users store.Users) *Service {
	return &Service{concerts: concerts, personals: personals, users: users}
}

// IsOwner is the single ownership predicate applied to every event mutation.
func IsOwner(ownerID primitive.ObjectID, u *model.User) bool {
	return u != nil && ownerID == u.ID
}

func ownerOf(u *model.User) *model.Owner {
	return &model.Owner{ID: u.ID, Name: u.Name, Email: u.Email}
}
