package event

import (
	"context"
	"fmt"

	"eventify-backend/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListPersonal returns every personal event, newest first, with the owner's
// name joined in (no email on personal listings).
func (s *Service) ListPersonal(ctx context.Context) ([]model.PersonalEvent, error) {
	events, err := s.personals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listPersonal: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(events))
	for i := range events {
		ids = append(ids, events[i].UserID)
	}

	owners, err := s.users.FindOwners(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listPersonal: error joining owners: %w", err)
	}

	for i := range events {
		if o, ok := owners[events[i].UserID]; ok {
			events[i].User = &model.Owner{ID: o.ID, Name: o.Name}
		}
	}
	return events, nil
}

func (s *Service) CreatePersonal(ctx context.Context, authUser *model.User, req model.PersonalEventRequest) (*model.PersonalEvent, error) {
	if req.Name == "" || req.Location == "" || req.Time == "" || req.Description == "" {
		return nil, ErrMissingFields
	}

	ev := &model.PersonalEvent{
		Name:        req.Name,
		Location:    req.Location,
		Time:        req.Time,
		Description: req.Description,
		UserID:      authUser.ID,
		RSVPUsers:   []primitive.ObjectID{},
	}
	if err := s.personals.Insert(ctx, ev); err != nil {
		return nil, fmt.Errorf("createPersonal: %w", err)
	}
	return ev, nil
}

func (s *Service) UpdatePersonal(ctx context.Context, authUser *model.User, id primitive.ObjectID, req model.PersonalEventRequest) (*model.PersonalEvent, error) {
	ev, err := s.personals.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !IsOwner(ev.UserID, authUser) {
		return nil, ErrNotOwner
	}

	if req.Name != "" {
		ev.Name = req.Name
	}
	if req.Location != "" {
		ev.Location = req.Location
	}
	if req.Time != "" {
		ev.Time = req.Time
	}
	if req.Description != "" {
		ev.Description = req.Description
	}

	if err := s.personals.Update(ctx, ev); err != nil {
		return nil, fmt.Errorf("updatePersonal: %w", err)
	}
	return ev, nil
}

func (s *Service) DeletePersonal(ctx context.Context, authUser *model.User, id primitive.ObjectID) error {
	ev, err := s.personals.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !IsOwner(ev.UserID, authUser) {
		return ErrNotOwner
	}

	if err := s.personals.Delete(ctx, id); err != nil {
		return fmt.Errorf("deletePersonal: %w", err)
	}
	return nil
}

// ToggleRSVP flips the caller's membership in the event's RSVP set. Any
// authenticated user may toggle, owners included.
func (s *Service) ToggleRSVP(ctx context.Context, authUser *model.User, id primitive.ObjectID) (*model.PersonalEvent, error) {
	ev, err := s.personals.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	kept := ev.RSVPUsers[:0:0]
	found := false
	for _, uid := range ev.RSVPUsers {
		if uid == authUser.ID {
			found = true
			continue
		}
		kept = append(kept, uid)
	}
	if !found {
		kept = append(kept, authUser.ID)
	}
	ev.RSVPUsers = kept

	if err := s.personals.Update(ctx, ev); err != nil {
		return nil, fmt.Errorf("toggleRSVP: %w", err)
	}
	return ev, nil
}
