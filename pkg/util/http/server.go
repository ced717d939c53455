package httputil

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// Prm groups the required parameters of the Server's constructor.
type Prm struct {
	// Listener is bound by the caller, so address failures are
	// reported before the server starts.
	//
	// Must not be nil.
	Listener net.Listener

	// Must not be nil.
	Handler http.Handler
}

// Server is an http.Server bound to the listener with its lifetime
// controlled by context (see Run).
type Server struct {
	shutdownTimeout time.Duration

	lis net.Listener

	srv *http.Server
}

func panicOnValue(kind, name string, v any) {
	panic(fmt.Sprintf("invalid %s %s (%T): %v", kind, name, v, v))
}

// New creates Server ready to Run.
//
// Panics if a required parameter is missing or shutdown timeout
// is not positive.
func New(prm Prm, opts ...Option) *Server {
	switch {
	case prm.Listener == nil:
		panicOnValue("parameter", "Listener", prm.Listener)
	case prm.Handler == nil:
		panicOnValue("parameter", "Handler", prm.Handler)
	}

	c := defaultCfg()

	for _, o := range opts {
		o(c)
	}

	if c.shutdownTimeout <= 0 {
		panicOnValue("option", "shutdown timeout", c.shutdownTimeout)
	}

	return &Server{
		shutdownTimeout: c.shutdownTimeout,
		lis:             prm.Listener,
		srv: &http.Server{
			Handler:           prm.Handler,
			ReadHeaderTimeout: c.readHeaderTimeout,
		},
	}
}

// Addr returns local address of the listener.
func (x *Server) Addr() net.Addr {
	return x.lis.Addr()
}
