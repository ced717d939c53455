package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Run accepts connections on the bound listener until ctx is done, then
// stops the server gracefully within the shutdown timeout.
//
// Returns the serving error if the server stops on its own, otherwise
// the result of the shutdown. Server can not be reused after Run.
func (x *Server) Run(ctx context.Context) error {
	served := make(chan error, 1)

	go func() {
		served <- x.srv.Serve(x.lis)
	}()

	select {
	case err := <-served:
		return fmt.Errorf("serve %s: %w", x.lis.Addr(), err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), x.shutdownTimeout)
	defer cancel()

	err := x.srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown %s: %w", x.lis.Addr(), err)
	}

	if err = <-served; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", x.lis.Addr(), err)
	}

	return nil
}
