package event

import (
	"context"
	"testing"
	"time"

	"eventify-backend/model"
	"eventify-backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	users []model.User
}

func (f *fakeUsers) Insert(ctx context.Context, u *model.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, store.ErrNoRecord
}

func (f *fakeUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNoRecord
}

func (f *fakeUsers) FindOwners(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Owner, error) {
	owners := make(map[primitive.ObjectID]model.Owner)
	for i := range f.users {
		for _, id := range ids {
			if f.users[i].ID == id {
				owners[id] = model.Owner{ID: id, Name: f.users[i].Name, Email: f.users[i].Email}
			}
		}
	}
	return owners, nil
}

type fakeConcerts struct {
	events []model.ConcertEvent
}

func (f *fakeConcerts) List(ctx context.Context) ([]model.ConcertEvent, error) {
	out := make([]model.ConcertEvent, 0, len(f.events))
	for i := len(f.events) - 1; i >= 0; i-- {
		out = append(out, f.events[i])
	}
	return out, nil
}

func (f *fakeConcerts) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ConcertEvent, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			ev := f.events[i]
			return &ev, nil
		}
	}
	return nil, store.ErrNoRecord
}

func (f *fakeConcerts) Insert(ctx context.Context, ev *model.ConcertEvent) error {
	ev.ID = primitive.NewObjectID()
	ev.CreatedAt = time.Now().UTC()
	ev.UpdatedAt = ev.CreatedAt
	f.events = append(f.events, *ev)
	return nil
}

func (f *fakeConcerts) Update(ctx context.Context, ev *model.ConcertEvent) error {
	for i := range f.events {
		if f.events[i].ID == ev.ID {
			ev.UpdatedAt = time.Now().UTC()
			f.events[i] = *ev
			return nil
		}
	}
	return store.ErrNoRecord
}

func (f *fakeConcerts) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return store.ErrNoRecord
}

type fakePersonals struct {
	events []model.PersonalEvent
}

func (f *fakePersonals) List(ctx context.Context) ([]model.PersonalEvent, error) {
	out := make([]model.PersonalEvent, 0, len(f.events))
	for i := len(f.events) - 1; i >= 0; i-- {
		out = append(out, f.events[i])
	}
	return out, nil
}

func (f *fakePersonals) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PersonalEvent, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			ev := f.events[i]
			return &ev, nil
		}
	}
	return nil, store.ErrNoRecord
}

func (f *fakePersonals) Insert(ctx context.Context, ev *model.PersonalEvent) error {
	ev.ID = primitive.NewObjectID()
	ev.CreatedAt = time.Now().UTC()
	ev.UpdatedAt = ev.CreatedAt
	f.events = append(f.events, *ev)
	return nil
}

func (f *fakePersonals) Update(ctx context.Context, ev *model.PersonalEvent) error {
	for i := range f.events {
		if f.events[i].ID == ev.ID {
			ev.UpdatedAt = time.Now().UTC()
			f.events[i] = *ev
			return nil
		}
	}
	return store.ErrNoRecord
}

func (f *fakePersonals) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return store.ErrNoRecord
}

func newTestService() (*Service, *fakeConcerts, *fakePersonals, *fakeUsers) {
	concerts := &fakeConcerts{}
	personals := &fakePersonals{}
	users := &fakeUsers{}
	return NewService(concerts, personals, users), concerts, personals, users
}

func testUser(name, email string) *model.User {
	return &model.User{ID: primitive.NewObjectID(), Name: name, Email: email}
}

func TestIsOwner(t *testing.T) {
	u := testUser("Ravi", "ravi@example.com")

	assert.True(t, IsOwner(u.ID, u))
	assert.False(t, IsOwner(primitive.NewObjectID(), u))
	assert.False(t, IsOwner(u.ID, nil))
}

func TestCreateConcertRequiresAllFields(t *testing.T) {
	s, concerts, _, _ := newTestService()
	u := testUser("Ravi", "ravi@example.com")

	_, err := s.CreateConcert(context.Background(), u, model.ConcertEventRequest{
		Name:     "Show A",
		Location: "Hall 1",
		Pricing:  &model.Pricing{Gold: 100, Platinum: 200, Diamond: 300},
	})
	require.Equal(t, ErrMissingFields, err)
	assert.Empty(t, concerts.events)
}

func TestCreateConcertSetsOwner(t *testing.T) {
	s, concerts, _, _ := newTestService()
	u := testUser("Ravi", "ravi@example.com")

	ev, err := s.CreateConcert(context.Background(), u, model.ConcertEventRequest{
		Name:        "Show A",
		Location:    "Hall 1",
		Description: "d",
		Pricing:     &model.Pricing{Gold: 100, Platinum: 200, Diamond: 300},
	})
	require.Nil(t, err)
	require.Len(t, concerts.events, 1)

	assert.Equal(t, u.ID, concerts.events[0].UserID)
	require.NotNil(t, ev.User)
	assert.Equal(t, "Ravi", ev.User.Name)
	assert.Equal(t, "ravi@example.com", ev.User.Email)
}

func TestUpdateConcertByNonOwnerLeavesRecordUnchanged(t *testing.T) {
	s, concerts, _, _ := newTestService()
	owner := testUser("Ravi", "ravi@example.com")
	intruder := testUser("Vik", "vik@example.com")

	ev, err := s.CreateConcert(context.Background(), owner, model.ConcertEventRequest{
		Name:        "Show A",
		Location:    "Hall 1",
		Description: "d",
		Pricing:     &model.Pricing{Gold: 100, Platinum: 200, Diamond: 300},
	})
	require.Nil(t, err)

	_, err = s.UpdateConcert(context.Background(), intruder, ev.ID, model.ConcertEventRequest{Name: "Hijacked"})
	require.Equal(t, ErrNotOwner, err)

	stored, err := concerts.FindByID(context.Background(), ev.ID)
	require.Nil(t, err)
	assert.Equal(t, "Show A", stored.Name)
}

func TestUpdateConcertKeepsFalsyFields(t *testing.T) {
	s, concerts, _, _ := newTestService()
	owner := testUser("Ravi", "ravi@example.com")

	ev, err := s.CreateConcert(context.Background(), owner, model.ConcertEventRequest{
		Name:        "Show A",
		Location:    "Hall 1",
		Description: "d",
		Pricing:     &model.Pricing{Gold: 100, Platinum: 200, Diamond: 300},
	})
	require.Nil(t, err)

	// A zero price means "not updated": it cannot reset gold to 0.
	updated, err := s.UpdateConcert(context.Background(), owner, ev.ID, model.ConcertEventRequest{
		Location: "Hall 2",
		Pricing:  &model.Pricing{Gold: 0, Platinum: 250},
	})
	require.Nil(t, err)

	assert.Equal(t, "Show A", updated.Name)
	assert.Equal(t, "Hall 2", updated.Location)
	assert.Equal(t, float64(100), updated.Pricing.Gold)
	assert.Equal(t, float64(250), updated.Pricing.Platinum)
	assert.Equal(t, float64(300), updated.Pricing.Diamond)

	stored, err := concerts.FindByID(context.Background(), ev.ID)
	require.Nil(t, err)
	assert.Equal(t, float64(100), stored.Pricing.Gold)
}

func TestDeleteConcert(t *testing.T) {
	s, concerts, _, _ := newTestService()
	owner := testUser("Ravi", "ravi@example.com")
	intruder := testUser("Vik", "vik@example.com")

	ev, err := s.CreateConcert(context.Background(), owner, model.ConcertEventRequest{
		Name:        "Show A",
		Location:    "Hall 1",
		Description: "d",
		Pricing:     &model.Pricing{Gold: 100, Platinum: 200, Diamond: 300},
	})
	require.Nil(t, err)

	require.Equal(t, ErrNotOwner, s.DeleteConcert(context.Background(), intruder, ev.ID))
	assert.Len(t, concerts.events, 1)

	require.Nil(t, s.DeleteConcert(context.Background(), owner, ev.ID))
	assert.Empty(t, concerts.events)

	assert.Equal(t, ErrNotFound, s.DeleteConcert(context.Background(), owner, ev.ID))
}

func TestListConcertsJoinsOwners(t *testing.T) {
	s, _, _, users := newTestService()
	owner := testUser("Ravi", "ravi@example.com")
	users.users = append(users.users, *owner)

	_, err := s.CreateConcert(context.Background(), owner, model.ConcertEventRequest{
		Name:        "Show A",
		Location:    "Hall 1",
		Description: "d",
		Pricing:     &model.Pricing{Gold: 100, Platinum: 200, Diamond: 300},
	})
	require.Nil(t, err)

	events, err := s.ListConcerts(context.Background())
	require.Nil(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].User)
	assert.Equal(t, "Ravi", events[0].User.Name)
	assert.Equal(t, "ravi@example.com", events[0].User.Email)
}

func TestListPersonalJoinsOwnerNameOnly(t *testing.T) {
	s, _, _, users := newTestService()
	owner := testUser("Ravi", "ravi@example.com")
	users.users = append(users.users, *owner)

	_, err := s.CreatePersonal(context.Background(), owner, model.PersonalEventRequest{
		Name:        "Picnic",
		Location:    "Park",
		Time:        "Saturday 4pm",
		Description: "bring snacks",
	})
	require.Nil(t, err)

	events, err := s.ListPersonal(context.Background())
	require.Nil(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].User)
	assert.Equal(t, "Ravi", events[0].User.Name)
	assert.Empty(t, events[0].User.Email)
}

func TestUpdatePersonalByNonOwner(t *testing.T) {
	s, _, _, _ := newTestService()
	owner := testUser("Ravi", "ravi@example.com")
	intruder := testUser("Vik", "vik@example.com")

	ev, err := s.CreatePersonal(context.Background(), owner, model.PersonalEventRequest{
		Name:        "Picnic",
		Location:    "Park",
		Time:        "Saturday 4pm",
		Description: "bring snacks",
	})
	require.Nil(t, err)

	_, err = s.UpdatePersonal(context.Background(), intruder, ev.ID, model.PersonalEventRequest{Name: "Hijacked"})
	assert.Equal(t, ErrNotOwner, err)
}

func TestToggleRSVPIsAnInvolution(t *testing.T) {
	s, _, personals, _ := newTestService()
	owner := testUser("Ravi", "ravi@example.com")
	guest := testUser("Vik", "vik@example.com")

	ev, err := s.CreatePersonal(context.Background(), owner, model.PersonalEventRequest{
		Name:        "Picnic",
		Location:    "Park",
		Time:        "Saturday 4pm",
		Description: "bring snacks",
	})
	require.Nil(t, err)

	toggled, err := s.ToggleRSVP(context.Background(), guest, ev.ID)
	require.Nil(t, err)
	assert.Equal(t, []primitive.ObjectID{guest.ID}, toggled.RSVPUsers)

	toggled, err = s.ToggleRSVP(context.Background(), guest, ev.ID)
	require.Nil(t, err)
	assert.Empty(t, toggled.RSVPUsers)

	stored, err := personals.FindByID(context.Background(), ev.ID)
	require.Nil(t, err)
	assert.Empty(t, stored.RSVPUsers)
}

func TestToggleRSVPAllowsOwner(t *testing.T) {
	s, _, _, _ := newTestService()
	owner := testUser("Ravi", "ravi@example.com")

	ev, err := s.CreatePersonal(context.Background(), owner, model.PersonalEventRequest{
		Name:        "Picnic",
		Location:    "Park",
		Time:        "Saturday 4pm",
		Description: "bring snacks",
	})
	require.Nil(t, err)

	toggled, err := s.ToggleRSVP(context.Background(), owner, ev.ID)
	require.Nil(t, err)
	assert.Equal(t, []primitive.ObjectID{owner.ID}, toggled.RSVPUsers)
}

func TestToggleRSVPMissingEvent(t *testing.T) {
	s, _, _, _ := newTestService()
	guest := testUser("Vik", "vik@example.com")

	_, err := s.ToggleRSVP(context.Background(), guest, primitive.NewObjectID())
	assert.Equal(t, ErrNotFound, err)
}
