package httpreputation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/score"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/wire"
	"go.uber.org/zap"
)

const (
	paramPublicKey = "pk"
	paramEpoch     = "epoch"
)

var errQueryParams = errors.New("query must consist of pk and epoch parameters")

// parseQuery parses query of exactly two parameters: base58 compressed
// public key and decimal epoch.
func parseQuery(raw string) (reputation.PublicKey, uint64, error) {
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return reputation.PublicKey{}, 0, fmt.Errorf("parse query: %w", err)
	}

	pk, epoch := vals[paramPublicKey], vals[paramEpoch]
	if len(vals) != 2 || len(pk) != 1 || len(epoch) != 1 {
		return reputation.PublicKey{}, 0, errQueryParams
	}

	key, err := reputation.PublicKeyFromString(pk[0])
	if err != nil {
		return reputation.PublicKey{}, 0, fmt.Errorf("invalid public key: %w", err)
	}

	e, err := strconv.ParseUint(epoch[0], 10, 64)
	if err != nil {
		return reputation.PublicKey{}, 0, fmt.Errorf("invalid epoch: %w", err)
	}

	return key, e, nil
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// respondQueryError writes the response to the failed query. Lookup
// misses share the status with malformed queries.
func (s *Server) respondQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, score.ErrLock) {
		s.opts.log.Error("could not access reputation state",
			zap.String("error", err.Error()),
		)

		respond(w, http.StatusInternalServerError, BodyLockError)

		return
	}

	s.opts.log.Debug("invalid score query",
		zap.String("error", err.Error()),
	)

	respond(w, http.StatusBadRequest, BodyInvalidQuery)
}

func (s *Server) score(w http.ResponseWriter, r *http.Request) {
	pk, epoch, err := parseQuery(r.URL.RawQuery)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	v, err := s.srv.Query(r.Context(), pk, epoch)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	respond(w, http.StatusOK, strconv.FormatFloat(v, 'f', -1, 64))
}

func (s *Server) contributions(w http.ResponseWriter, r *http.Request) {
	pk, epoch, err := parseQuery(r.URL.RawQuery)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	v, err := s.srv.Contributions(r.Context(), pk, epoch)
	if err != nil {
		s.respondQueryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.opts.log.Debug("could not write contributions",
			zap.String("error", err.Error()),
		)
	}
}

func (s *Server) signature(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.maxBodySize))
	if err != nil {
		s.opts.log.Debug("could not read request body",
			zap.String("error", err.Error()),
		)

		respond(w, http.StatusBadRequest, BodyInvalidRequest)

		return
	}

	att, err := wire.Unmarshal(body)
	if err != nil {
		s.opts.log.Debug("could not decode attestation",
			zap.String("error", err.Error()),
		)

		respond(w, http.StatusBadRequest, BodyInvalidRequest)

		return
	}

	err = s.srv.Submit(r.Context(), att)

	switch {
	case err == nil:
		respond(w, http.StatusOK, BodySignatureAddSuccess)
	case errors.Is(err, score.ErrLock):
		s.opts.log.Error("could not access reputation state",
			zap.String("error", err.Error()),
		)

		respond(w, http.StatusInternalServerError, BodyLockError)
	default:
		s.opts.log.Debug("attestation rejected",
			zap.String("error", err.Error()),
		)

		respond(w, http.StatusBadRequest, BodyInvalidRequest)
	}
}
