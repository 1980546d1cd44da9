// Package httpapi exposes the Rango Amigo services over a JSON HTTP API.
// It owns the router, the session cookie and the translation from service
// errors to HTTP status codes.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rangoamigo/rangoamigo/internal/logging"
	"github.com/rangoamigo/rangoamigo/internal/server/config"
	"github.com/rangoamigo/rangoamigo/internal/server/models"
	"github.com/rangoamigo/rangoamigo/internal/server/services"
)

// AccountService is the slice of the account service the HTTP layer uses.
type AccountService interface {
	Register(ctx context.Context, email, displayName, password, confirmPassword string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, *models.Account, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*models.Account, error)
}

// ListingService is the slice of the listing service the HTTP layer uses.
type ListingService interface {
	Create(ctx context.Context, owner *models.Account, in services.CreateListingInput) (*models.Listing, error)
	ListActive(ctx context.Context) ([]models.Listing, error)
	ListMine(ctx context.Context, ownerID int64) ([]models.Listing, error)
	Archive(ctx context.Context, ownerID, id int64) error
	Restore(ctx context.Context, ownerID, id int64) error
	Delete(ctx context.Context, ownerID, id int64) error
}

type Server struct {
	logger     logging.Logger
	accounts   AccountService
	listings   ListingService
	store      *sessions.CookieStore
	cookieName string
}

func NewServer(l logging.Logger, accounts AccountService, listings ListingService, cfg *config.Config) *Server {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// MaxAge 0 keeps the cookie for the browser session only; the
		// server-side row still expires on its own.
		MaxAge: 0,
	}

	return &Server{
		logger:     l.With("module", "httpapi"),
		accounts:   accounts,
		listings:   listings,
		store:      store,
		cookieName: cfg.SessionCookie,
	}
}

// Router builds the full route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger, s.cors)

	r.HandleFunc("/", s.health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/accounts", s.register).Methods("POST")
	r.HandleFunc("/sessions", s.login).Methods("POST")
	r.HandleFunc("/sessions", s.logout).Methods("DELETE")

	r.HandleFunc("/listings", s.authenticated(s.listActive)).Methods("GET")
	r.HandleFunc("/listings/mine", s.authenticated(s.listMine)).Methods("GET")
	r.HandleFunc("/listings", s.authenticated(s.createListing)).Methods("POST")
	r.HandleFunc("/listings/{id:[0-9]+}/archive", s.authenticated(s.archiveListing)).Methods("PATCH")
	r.HandleFunc("/listings/{id:[0-9]+}/restore", s.authenticated(s.restoreListing)).Methods("PATCH")
	r.HandleFunc("/listings/{id:[0-9]+}", s.authenticated(s.deleteListing)).Methods("DELETE")

	// Preflight requests for the separate front-end.
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API do Rango Amigo está no ar!"))
}
