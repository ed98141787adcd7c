// Package http exposes the authorization middleware and the campaign
// attendee endpoints over gin. Every non-exempt route passes through the
// authorization engine before its handler runs.
package http

import (
	"context"
	"errors"
	"time"

	"insightd/internal/config"
	"insightd/internal/domain"
	"insightd/internal/infra/auth/oidc"
	"insightd/internal/infra/auth/token"
	"insightd/internal/infra/cachemem"
	"insightd/internal/infra/db"
	"insightd/internal/infra/policyopa"
	"insightd/internal/infra/ratelimit"
	"insightd/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	cfg   config.Config
	store *db.Store
	r     *gin.Engine
	log   *logrus.Logger

	engine    *usecase.Engine
	attendees *usecase.AttendeeService

	authInitErr error

	rateLimiter         domain.RateLimiter
	rateLimitRequests   int
	rateLimitWindow     time.Duration
	rateLimitFailClosed bool
}

// NewServer wires the full dependency graph from config. Token verifier,
// policy engine, and rate limiter are all selected here so main stays thin.
func NewServer(cfg config.Config, store *db.Store, log *logrus.Logger) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, store: store, r: r, log: log}
	s.initDeps()
	s.routes()
	return s
}

// ServerDeps lets tests inject fakes in place of the infrastructure wiring.
type ServerDeps struct {
	Engine      *usecase.Engine
	Attendees   *usecase.AttendeeService
	RateLimiter domain.RateLimiter
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:       cfg,
		r:         r,
		log:       logrus.New(),
		engine:    deps.Engine,
		attendees: deps.Attendees,
	}
	s.initRateLimit(deps.RateLimiter)
	s.routes()
	return s
}

func (s *Server) initDeps() {
	verifier, err := s.buildVerifier()
	if err != nil {
		s.authInitErr = err
		return
	}

	var policy domain.AccessPolicy
	if s.cfg.AccessPolicyBundle != "" {
		engine, err := policyopa.NewEngineFromBundlePath(context.Background(), s.cfg.AccessPolicyBundle, "access")
		if err != nil {
			s.authInitErr = err
			return
		}
		s.log.WithFields(logrus.Fields{
			"bundle":      s.cfg.AccessPolicyBundle,
			"bundle_hash": engine.BundleHash(),
		}).Info("access policy loaded")
		policy = engine
	}

	if s.store != nil {
		if verifier != nil {
			s.engine = usecase.NewEngine(usecase.EngineDeps{
				Verifier:     verifier,
				Users:        s.store.Users,
				Bindings:     s.store.Bindings,
				Domains:      s.store.Domains,
				Licenses:     s.store.Licenses,
				Entitlements: s.store.Entitlements,
				Campaigns:    s.store.Campaigns,
				Policy:       policy,
				APIPrefix:    s.cfg.APIPrefix,
			})
		}
		s.attendees = usecase.NewAttendeeService(s.store.Attendees, cachemem.New())
	}

	s.initRateLimit(nil)
}

// buildVerifier returns nil without error for AUTH_MODE=none; a nil engine
// later means authorization is disabled.
func (s *Server) buildVerifier() (domain.TokenVerifier, error) {
	switch s.cfg.AuthMode {
	case "none":
		return nil, nil
	case "insecure":
		return token.NewInsecureDecoder(), nil
	case "oidc":
		return oidc.NewVerifier(s.cfg)
	case "":
		return nil, errors.New("AUTH_MODE is required")
	default:
		return nil, errors.New("unsupported auth mode")
	}
}

func (s *Server) initRateLimit(override domain.RateLimiter) {
	if override != nil {
		s.rateLimiter = override
	}
	if s.rateLimiter == nil && s.cfg.RateLimitRequests > 0 {
		if s.cfg.RedisAddr != "" {
			if limiter, err := ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB, nil); err == nil {
				s.rateLimiter = limiter
			}
		}
		if s.rateLimiter == nil {
			s.rateLimiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{
				MaxKeys: s.cfg.RateLimitMaxKeys,
			})
		}
	}
	s.rateLimitRequests = s.cfg.RateLimitRequests
	if s.cfg.RateLimitWindowSeconds > 0 {
		s.rateLimitWindow = time.Duration(s.cfg.RateLimitWindowSeconds) * time.Second
	}
	s.rateLimitFailClosed = s.cfg.RateLimitFailClosed
}

func (s *Server) routes() {
	s.r.GET("/healthz", s.handleHealth)
	s.r.GET("/health", s.handleHealth)
	s.r.GET("/", s.handleHealth)

	v1 := s.r.Group("/api/v1")
	v1.Use(s.authorize())
	{
		v1.GET("/health", s.handleHealth)
		v1.GET("/campaigns/:campaign_id/attendees", s.handleListAttendees)
		v1.GET("/campaigns/:campaign_id/attendees/search", s.handleSearchAttendee)
		v1.GET("/campaigns/:campaign_id/attendees/summary", s.handleAttendeeSummary)
	}

	s.r.NoRoute(s.handleNoRoute)
}

func (s *Server) Run() error {
	if s.authInitErr != nil {
		return s.authInitErr
	}
	return s.r.Run(s.cfg.HTTPAddr)
}
