// Package server is the HTTP layer: session-authenticated, server-rendered
// pages over the ledger. Handlers only parse input, call the journal
// service, store, or report engine, and render a template or redirect;
// the accounting rules live below this package.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/keepbook-dev/keepbook/internal/config"
	"github.com/keepbook-dev/keepbook/internal/journal"
	"github.com/keepbook-dev/keepbook/internal/reports"
	"github.com/keepbook-dev/keepbook/internal/store"
)

// Server wires the HTTP surface to the ledger.
type Server struct {
	store    *store.Store
	journal  *journal.Service
	reports  *reports.Engine
	sessions *sessions.CookieStore
	cfg      *config.Config
	log      *slog.Logger

	// now is replaceable in tests; the dashboard depends on today's date.
	now func() time.Time
}

// New creates a Server over an opened store.
func New(st *store.Store, cfg *config.Config, log *slog.Logger) *Server {
	cookies := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   7 * 24 * 60 * 60,
	}
	return &Server{
		store:    st,
		journal:  journal.NewService(st),
		reports:  reports.NewEngine(st),
		sessions: cookies,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Router builds the HTTP handler with all routes registered. Every route
// except /login, /logout, and /static requires an authenticated session.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.Handle("GET /static/", staticHandler())

	mux.HandleFunc("GET /{$}", s.requireUser(s.handleDashboard))

	mux.HandleFunc("GET /accounts", s.requireUser(s.handleAccounts))
	mux.HandleFunc("POST /accounts", s.requireUser(s.handleCreateAccount))
	mux.HandleFunc("POST /accounts/{id}/delete", s.requireUser(s.handleDeleteAccount))

	mux.HandleFunc("GET /customers", s.requireUser(s.handleCustomers))
	mux.HandleFunc("POST /customers", s.requireUser(s.handleCreateCustomer))
	mux.HandleFunc("POST /customers/{id}/delete", s.requireUser(s.handleDeleteCustomer))

	mux.HandleFunc("GET /suppliers", s.requireUser(s.handleSuppliers))
	mux.HandleFunc("POST /suppliers", s.requireUser(s.handleCreateSupplier))
	mux.HandleFunc("POST /suppliers/{id}/delete", s.requireUser(s.handleDeleteSupplier))

	mux.HandleFunc("GET /items", s.requireUser(s.handleItems))
	mux.HandleFunc("POST /items", s.requireUser(s.handleCreateItem))
	mux.HandleFunc("POST /items/{id}/delete", s.requireUser(s.handleDeleteItem))

	mux.HandleFunc("GET /entries", s.requireUser(s.handleEntries))
	mux.HandleFunc("POST /entries", s.requireUser(s.handleCreateEntry))
	mux.HandleFunc("POST /entries/{id}/delete", s.requireUser(s.handleDeleteEntry))

	mux.HandleFunc("GET /reports/trial-balance", s.requireUser(s.handleTrialBalance))
	mux.HandleFunc("GET /reports/income-statement", s.requireUser(s.handleIncomeStatement))
	mux.HandleFunc("GET /reports/balance-sheet", s.requireUser(s.handleBalanceSheet))

	return s.logRequests(mux)
}

// Start runs the HTTP server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Server.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
