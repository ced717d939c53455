package httpreputation

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	reputationrpc "github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/rpc"
	"go.uber.org/zap"
)

// Response bodies.
const (
	BodySignatureAddSuccess = "SignatureAddSuccess"
	BodyLockError           = "LockError"
	BodyInvalidQuery        = "InvalidQuery"
	BodyInvalidRequest      = "InvalidRequest"
)

// Routes.
const (
	RouteScore         = "/score"
	RouteContributions = "/contributions"
	RouteSignature     = "/signature"
)

// Metrics collects request statistics.
type Metrics interface {
	AddRequest(route string, status int, d time.Duration)
}

// Server wraps reputation service server and provides it through HTTP.
type Server struct {
	srv reputationrpc.Server

	opts *options

	router chi.Router
}

// Option sets an optional parameter of Server.
type Option func(*options)

type options struct {
	log *zap.Logger

	metrics Metrics

	maxBodySize int64
}

// DefaultMaxBodySize is the default limit of the request body size.
const DefaultMaxBodySize = 1 << 20

func defaultOpts() *options {
	return &options{
		log:         zap.L(),
		maxBodySize: DefaultMaxBodySize,
	}
}

// WithLogger returns Option to specify logging component.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics returns Option to collect request statistics.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithMaxBodySize returns Option to limit the request body size.
// Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// New creates, initializes and returns Server instance.
func New(srv reputationrpc.Server, opts ...Option) *Server {
	if srv == nil {
		panic("invalid parameter Server (<nil>)")
	}

	o := defaultOpts()

	for i := range opts {
		opts[i](o)
	}

	s := &Server{
		srv:  srv,
		opts: o,
	}

	r := chi.NewRouter()

	if o.metrics != nil {
		r.Use(s.collectMetrics)
	}

	r.Get(RouteScore, s.score)
	r.Get(RouteContributions, s.contributions)
	r.Post(RouteSignature, s.signature)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) collectMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		switch route {
		case RouteScore, RouteContributions, RouteSignature:
		default:
			route = "unknown"
		}

		s.opts.metrics.AddRequest(route, ww.Status(), time.Since(start))
	})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusNotFound, BodyInvalidRequest)
}
