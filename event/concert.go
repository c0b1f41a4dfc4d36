package event

import (
	"context"
	"fmt"

	"eventify-backend/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListConcerts returns every concert event, newest first, with the owner's
// name and email joined in.
func (s *Service) ListConcerts(ctx context.Context) ([]model.ConcertEvent, error) {
	events, err := s.concerts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listConcerts: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(events))
	for i := range events {
		ids = append(ids, events[i].UserID)
	}

	owners, err := s.users.FindOwners(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listConcerts: error joining owners: %w", err)
	}

	for i := range events {
		if o, ok := owners[events[i].UserID]; ok {
			owner := o
			events[i].User = &owner
		}
	}
	return events, nil
}

func (s *Service) CreateConcert(ctx context.Context, authUser *model.User, req model.ConcertEventRequest) (*model.ConcertEvent, error) {
	if req.Name == "" || req.Location == "" || req.Description == "" || req.Pricing == nil {
		return nil, ErrMissingFields
	}

	ev := &model.ConcertEvent{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Pricing:     *req.Pricing,
		UserID:      authUser.ID,
	}
	if err := s.concerts.Insert(ctx, ev); err != nil {
		return nil, fmt.Errorf("createConcert: %w", err)
	}

	ev.User = ownerOf(authUser)
	return ev, nil
}

func (s *Service) UpdateConcert(ctx context.Context, authUser *model.User, id primitive.ObjectID, req model.ConcertEventRequest) (*model.ConcertEvent, error) {
	ev, err := s.concerts.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !IsOwner(ev.UserID, authUser) {
		return nil, ErrNotOwner
	}

	applyConcertUpdate(ev, req)
	if err := s.concerts.Update(ctx, ev); err != nil {
		return nil, fmt.Errorf("updateConcert: %w", err)
	}

	ev.User = ownerOf(authUser)
	return ev, nil
}

func (s *Service) DeleteConcert(ctx context.Context, authUser *model.User, id primitive.ObjectID) error {
	ev, err := s.concerts.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !IsOwner(ev.UserID, authUser) {
		return ErrNotOwner
	}

	if err := s.concerts.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleteConcert: %w", err)
	}
	return nil
}

// applyConcertUpdate overwrites only the supplied fields. Empty strings and
// zero prices keep the stored value, so a price cannot be updated to 0.
func applyConcertUpdate(ev *model.ConcertEvent, req model.ConcertEventRequest) {
	if req.Name != "" {
		ev.Name = req.Name
	}
	if req.Location != "" {
		ev.Location = req.Location
	}
	if req.Description != "" {
		ev.Description = req.Description
	}
	if req.Pricing != nil {
		if req.Pricing.Gold != 0 {
			ev.Pricing.Gold = req.Pricing.Gold
		}
		if req.Pricing.Platinum != 0 {
			ev.Pricing.Platinum = req.Pricing.Platinum
		}
		if req.Pricing.Diamond != 0 {
			ev.Pricing.Diamond = req.Pricing.Diamond
		}
	}
}
