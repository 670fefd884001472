package gateway

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Forwarder relays gateway return parameters to the backend for
// verification.
type Forwarder interface {
	PaymentReturn(ctx context.Context, params url.Values) error
}

// Result is the outcome of one gateway return: the query parameters the
// gateway redirected with, and the backend's verdict on them.
type Result struct {
	Params url.Values
	Err    error
}

// Server is a short-lived local HTTP listener that catches the payment
// gateway's browser redirect after checkout. The gateway appends its
// signed result to the return URL as query parameters; those are
// forwarded to the backend verbatim, since the backend validates the
// gateway signature over the exact parameter set.
type Server struct {
	forwarder Forwarder
	addr      string
	path      string

	srv     *http.Server
	results chan Result
}

// NewServer creates a return listener on the given address and path.
func NewServer(forwarder Forwarder, addr, path string) *Server {
	return &Server{
		forwarder: forwarder,
		addr:      addr,
		path:      path,
		results:   make(chan Result, 1),
	}
}

// URL returns the address the payment gateway should redirect back to.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s%s", s.addr, s.path)
}

// Start begins listening. It returns once the listener is bound;
// handling proceeds in the background until Shutdown.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Get(s.path, s.handleReturn)

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.srv = &http.Server{Handler: r}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.results <- Result{Err: fmt.Errorf("return listener failed: %w", err)}
		}
	}()
	return nil
}

// Wait blocks until the gateway redirects back or the context expires.
func (s *Server) Wait(ctx context.Context) (Result, error) {
	select {
	case res := <-s.results:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Shutdown stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	err := s.forwarder.PaymentReturn(ctx, params)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html><body><h1>Payment verification failed</h1><p>You can close this window and check your order status.</p></body></html>")
	} else {
		fmt.Fprint(w, "<html><body><h1>Payment received</h1><p>You can close this window.</p></body></html>")
	}

	select {
	case s.results <- Result{Params: params, Err: err}:
	default:
	}
}
