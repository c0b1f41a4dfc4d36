package middleware

import (
	"context"
	"net/http"
	"strings"

	"eventify-backend/model"
	"eventify-backend/response"
	"eventify-backend/store"
	"eventify-backend/token"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userContextKey struct{}

// Auth guards a route with the bearer-token check: it verifies the token,
// loads the referenced user without the password hash and attaches it to the
// request context. Everything short of that is a 401.
func Auth(tokens *token.Service, users store.Users) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Unauthorized("Not authorized, no token").Send(ctx, w)
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				response.Unauthorized("Not authorized, token failed").Send(ctx, w)
				return
			}

			id, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				response.Unauthorized("Not authorized, token failed").Send(ctx, w)
				return
			}

			// The user may have vanished since issuance; a null user must
			// never reach a handler.
			u, err := users.FindByID(ctx, id)
			if err != nil {
				response.Unauthorized("Not authorized, token failed").Send(ctx, w)
				return
			}

			next(w, r.WithContext(SetUser(ctx, u)))
		}
	}
}

func SetUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, u)
}

// UserFrom returns the authenticated user attached by Auth, or nil on
// unguarded routes.
func UserFrom(ctx context.Context) *model.User {
	u, _ := ctx.Value(userContextKey{}).(*model.User)
	return u
}
