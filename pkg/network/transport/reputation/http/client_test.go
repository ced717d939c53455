package httpreputation_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpreputation "github.com/nspcc-dev/eigentrust-node/pkg/network/transport/reputation/http"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/reputationtest"
	reputationrpc "github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/rpc"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/score"
	"github.com/stretchr/testify/require"
)

var _ reputationrpc.Server = (*httpreputation.Client)(nil)

func TestClient(t *testing.T) {
	ctx := context.Background()
	e, atts := newEnv(t)

	ts := httptest.NewServer(e.srv)
	t.Cleanup(ts.Close)

	cli := httpreputation.NewClient(ts.URL+"/", ts.Client())

	for i := range atts {
		require.NoError(t, cli.Submit(ctx, atts[i]))
	}

	_, err := cli.Query(ctx, e.keys[0], 123)

	var se httpreputation.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadRequest, se.Code)
	require.Equal(t, httpreputation.BodyInvalidQuery, se.Body)

	e.compute(t, 123, 10)

	v, err := cli.Query(ctx, e.keys[0], 123)
	require.NoError(t, err)
	require.InDelta(t, 0.3750021168859759, v, 1e-12)

	contribs, err := cli.Contributions(ctx, e.keys[0], 123)
	require.NoError(t, err)
	require.Len(t, contribs, 10)
	require.Equal(t, v, contribs[9])

	// signature of another signer
	att := atts[0]
	att.Signature = atts[1].Signature

	err = cli.Submit(ctx, att)
	require.ErrorAs(t, err, &se)
	require.Equal(t, httpreputation.BodyInvalidRequest, se.Body)
}

func TestClient_LockError(t *testing.T) {
	ts := httptest.NewServer(httpreputation.New(lockedServer{}))
	t.Cleanup(ts.Close)

	cli := httpreputation.NewClient(ts.URL, nil)

	_, err := cli.Query(context.Background(), reputationtest.PublicKeys(reputationtest.Keys(t, 1))[0], 1)
	require.True(t, errors.Is(err, score.ErrLock))
}
