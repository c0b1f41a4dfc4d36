package router

import (
	"net/http"

	"eventify-backend/event"
	"eventify-backend/handler"
	"eventify-backend/mail"
	"eventify-backend/middleware"
	"eventify-backend/monitoring"
	"eventify-backend/payment"
	"eventify-backend/response"
	"eventify-backend/store"
	"eventify-backend/token"
	"eventify-backend/user"

	"github.com/gorilla/mux"
)

// Router wires every API route onto the shared store.
func Router(st *store.Store) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.Use(middleware.ResponseTimeLogging)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.Metrics)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.RouteNotFound(req.URL.Path, req.Method).Send(req.Context(), w)
	})

	users := st.Users()
	tokens := token.NewService()

	userService := user.NewService(users, tokens)
	eventService := event.NewService(st.ConcertEvents(), st.PersonalEvents(), users)
	notifier := mail.NewNotifier(st.Payments(), users, st.ConcertEvents())
	paymentService := payment.NewService(payment.NewRazorpayGateway(), st.Payments(), notifier)

	protect := middleware.Auth(tokens, users)

	r.HandleFunc("/", handler.Status()).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.Health(st)).Methods(http.MethodGet)
	r.Handle("/metrics", monitoring.Handler()).Methods(http.MethodGet)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", handler.Register(userService)).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", handler.Login(userService)).Methods(http.MethodPost)

	concertRouter := r.PathPrefix("/api/concert-events").Subrouter()
	concertRouter.HandleFunc("", handler.ListConcerts(eventService)).Methods(http.MethodGet)
	concertRouter.HandleFunc("", protect(handler.CreateConcert(eventService))).Methods(http.MethodPost)
	concertRouter.HandleFunc("/{id}", protect(handler.UpdateConcert(eventService))).Methods(http.MethodPut)
	concertRouter.HandleFunc("/{id}", protect(handler.DeleteConcert(eventService))).Methods(http.MethodDelete)

	personalRouter := r.PathPrefix("/api/personal-events").Subrouter()
	personalRouter.HandleFunc("", handler.ListPersonal(eventService)).Methods(http.MethodGet)
	personalRouter.HandleFunc("", protect(handler.CreatePersonal(eventService))).Methods(http.MethodPost)
	personalRouter.HandleFunc("/{id}", protect(handler.UpdatePersonal(eventService))).Methods(http.MethodPut)
	personalRouter.HandleFunc("/{id}", protect(handler.DeletePersonal(eventService))).Methods(http.MethodDelete)
	personalRouter.HandleFunc("/{id}/rsvp", protect(handler.ToggleRSVP(eventService))).Methods(http.MethodPost)

	paymentRouter := r.PathPrefix("/api/payments").Subrouter()
	paymentRouter.HandleFunc("/order", protect(handler.CreateOrder(paymentService))).Methods(http.MethodPost)
	paymentRouter.HandleFunc("/verify", protect(handler.VerifyPayment(paymentService))).Methods(http.MethodPost)

	return r
}
