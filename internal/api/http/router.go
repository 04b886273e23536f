package http

import (
	"net/http"

	"prospace-backend/internal/security"
	"prospace-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes. Everything except auth sits behind the
// token middleware; admin endpoints additionally require the ADMIN role.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	userSvc service.UserService,
	deskSvc service.DeskService,
	bookingSvc service.BookingService,
	reviewSvc service.ReviewService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	userHandler := NewUserHandler(userSvc)
	deskHandler := NewDeskHandler(deskSvc)
	bookingHandler := NewBookingHandler(bookingSvc)
	reviewHandler := NewReviewHandler(reviewSvc)

	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(h)
	}

	r := mux.NewRouter()

	// Public
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Authenticated
	api := r.PathPrefix("/api").Subrouter()
	api.Use(Authenticate(tokens))

	api.HandleFunc("/users/me", userHandler.MyProfile).Methods("GET")
	api.Handle("/users/admin/{userId}/bookings", admin(bookingHandler.AdminUserHistory)).Methods("GET")

	api.HandleFunc("/desks", deskHandler.List).Methods("GET")
	api.Handle("/desks", admin(deskHandler.Create)).Methods("POST")
	api.HandleFunc("/desks/{id}", deskHandler.Get).Methods("GET")
	api.Handle("/desks/{id}", admin(deskHandler.Update)).Methods("PUT")
	api.Handle("/desks/{id}", admin(deskHandler.Delete)).Methods("DELETE")

	api.HandleFunc("/bookings/create", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/bookings/me/history", bookingHandler.MyHistory).Methods("GET")
	api.HandleFunc("/bookings/me/{id}", bookingHandler.Update).Methods("PATCH")
	api.HandleFunc("/bookings/me/{id}", bookingHandler.Cancel).Methods("DELETE")
	api.Handle("/bookings/admin/create", admin(bookingHandler.AdminCreate)).Methods("POST")
	api.Handle("/bookings/admin/all", admin(bookingHandler.AdminAll)).Methods("GET")
	api.Handle("/bookings/admin/approve/{id}", admin(bookingHandler.Approve)).Methods("PATCH")
	api.Handle("/bookings/admin/reject/{id}", admin(bookingHandler.Reject)).Methods("PATCH")
	api.Handle("/bookings/admin/cancel/{id}", admin(bookingHandler.AdminCancel)).Methods("PATCH")

	api.HandleFunc("/reviews", reviewHandler.List).Methods("GET")
	api.HandleFunc("/reviews", reviewHandler.Create).Methods("POST")
	api.HandleFunc("/reviews/me", reviewHandler.Mine).Methods("GET")
	api.HandleFunc("/reviews/{id}", reviewHandler.Update).Methods("PATCH")
	api.HandleFunc("/reviews/{id}", reviewHandler.Delete).Methods("DELETE")
	api.HandleFunc("/reviews/{id}/like", reviewHandler.ToggleLike).Methods("POST")

	return r
}
