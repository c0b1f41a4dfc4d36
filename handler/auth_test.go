package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventify-backend/config"
	"eventify-backend/model"
	"eventify-backend/store"
	"eventify-backend/token"
	"eventify-backend/user"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	users []model.User
}

func (f *fakeUsers) Insert(ctx context.Context, u *model.User) error {
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNoRecord
}

func (f *fakeUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			u.Password = ""
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

func postJSON(h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	h(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	viper.Set(config.JWTSecret, "test-secret")
	defer viper.Set(config.JWTSecret, "")

	users := &fakeUsers{}
	service := user.NewService(users, token.NewService())

	rec := postJSON(Register(service), "/api/auth/register", model.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var res model.AuthResponse
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Ravi", res.Name)
	assert.NotEmpty(t, res.Token)

	rec = postJSON(Login(service), "/api/auth/login", model.LoginRequest{
		Email:    "ravi@example.com",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	viper.Set(config.JWTSecret, "test-secret")
	defer viper.Set(config.JWTSecret, "")

	users := &fakeUsers{}
	service := user.NewService(users, token.NewService())

	req := model.RegisterRequest{Name: "Ravi", Email: "ravi@example.com", Password: "s3cret"}
	rec := postJSON(Register(service), "/api/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(Register(service), "/api/auth/register", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
	assert.Len(t, users.users, 1)
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	viper.Set(config.JWTSecret, "test-secret")
	defer viper.Set(config.JWTSecret, "")

	users := &fakeUsers{}
	service := user.NewService(users, token.NewService())

	rec := postJSON(Register(service), "/api/auth/register", model.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	badPassword := postJSON(Login(service), "/api/auth/login", model.LoginRequest{
		Email:    "ravi@example.com",
		Password: "wrong",
	})
	unknownEmail := postJSON(Login(service), "/api/auth/login", model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusUnauthorized, badPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, badPassword.Body.String(), unknownEmail.Body.String())
}
