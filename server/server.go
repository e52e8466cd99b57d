package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carloscedeno/cardstore/auth"
	"github.com/carloscedeno/cardstore/handler"
	"github.com/carloscedeno/cardstore/http/middleware"
	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/http/router"
	"github.com/carloscedeno/cardstore/logger"
	"github.com/carloscedeno/cardstore/postgres"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/handlers"
)

// checkoutPath is the one route carrying the Idempotency-Key middleware.
const checkoutPath = "/api/cart/checkout"

// A Server manages and exposes all components of a cardstore app to one another.
type Server struct {
	Responder *resp.Responder
	Router    *router.Router

	cfg    Config
	db     postgres.DatabaseService
	logger logger.Logger
	srv    *http.Server
}

// New composes a Server from the Config: it connects to PostgreSQL,
// runs pending migrations and registers every API route behind
// the standard middleware stack.
func New(cfg Config) (*Server, error) {
	l := logger.New(logger.WithEnv(cfg.Env.String()))

	db, err := postgres.Connect(NewPostgresConfig(cfg.Env), Migrations, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("connecting postgres: %w", err)
	}

	verifier, err := auth.NewService(cfg.ServiceKey)
	if err != nil {
		return nil, err
	}

	responder := resp.NewResponder(resp.WithLogger(l))
	h := handler.New(db, responder, l)

	logReq := middleware.LogRequest(l)
	ro := router.New(cfg.Env, logReq)
	ro.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		logReq,
		middleware.CurrentUser(verifier),
	)
	ro.HandleNotFound(h.NotFound)
	ro.HandleMethodNotAllowed(h.MethodNotAllowed)

	cache := idempotencyCache(cfg.RedisURL, l)
	ro.HandleRoutes(checkoutIdempotency(h.Routes(), cache))

	web := webStack(ro, cfg.FunctionName)

	return &Server{
		Responder: responder,
		Router:    ro,
		cfg:       cfg,
		db:        db,
		logger:    l,
		srv: &http.Server{
			Addr:         cfg.Port,
			Handler:      web,
			IdleTimeout:  cfg.IdleTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}, nil
}

// DB exposes the composed database service.
func (s *Server) DB() postgres.DatabaseService { return s.db }

// Logger exposes the composed logger.
func (s *Server) Logger() logger.Logger { return s.logger }

// Run begins the web server.
//
// These, and (*Server).Shutdown, stop Run:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (s *Server) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		sig := <-ch
		s.logger.Info(fmt.Sprint("received shutdown signal: ", sig), nil)
		cancel()
	}()

	go func() {
		s.logger.Info(fmt.Sprintf("running web server at %s", s.srv.Addr), nil)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error(fmt.Errorf("could not listen: %w", err).Error(), nil)
		}
	}()

	<-ctx.Done()
	return s.Shutdown()
}

// Shutdown stops the web server, allowing in-flight requests to finish.
func (s *Server) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down web server", nil)
	if err := s.srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	s.logger.Info("web server shutdown successfully", nil)
	return nil
}

// checkoutIdempotency attaches replay protection to the checkout route.
// The protection is opt-in per request: only clients sending an
// Idempotency-Key header engage it.
func checkoutIdempotency(routes []router.Route, cache middleware.IdempotencyCacher) []router.Route {
	for i, rt := range routes {
		if rt.Method == http.MethodPost && rt.Path == checkoutPath {
			routes[i].Middlewares = append(routes[i].Middlewares, middleware.Idempotent(cache))
		}
	}

	return routes
}

// webStack wraps the mux in the adapters that must run before route
// matching: proxy header promotion, CORS (so preflight OPTIONS
// short-circuit un-limited and every response, including a 429,
// carries the CORS headers), rate limiting, and prefix stripping.
func webStack(ro http.Handler, functionName string) http.Handler {
	return middleware.Chain(
		ro,
		handlers.ProxyHeaders,
		middleware.CORS(),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.StripFunctionPrefix(functionName),
	)
}

// idempotencyCache backs checkout replay detection with Redis when a
// REDIS_URL is configured, falling back to an in-process map.
func idempotencyCache(redisURL string, l logger.Logger) middleware.IdempotencyCacher {
	if redisURL == "" {
		return middleware.NewIdemResMap()
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		l.Warn(fmt.Sprintf("bad %s, using in-process idempotency cache: %s", redisURLEnvVar, err), nil)
		return middleware.NewIdemResMap()
	}

	return middleware.NewRedisCache(opts)
}
