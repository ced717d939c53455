package httpreputation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nspcc-dev/eigentrust-node/misc"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/score"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/wire"
)

// StatusError describes unsuccessful response of the node.
type StatusError struct {
	Code int
	Body string
}

func (x StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", x.Code, x.Body)
}

// Unwrap returns score.ErrLock for LockError responses.
func (x StatusError) Unwrap() error {
	if x.Body == BodyLockError {
		return score.ErrLock
	}

	return nil
}

// Client calls the reputation HTTP API of the node. It implements
// reputationrpc.Server.
type Client struct {
	endpoint string

	cli *http.Client
}

// NewClient returns Client of the node served at the URL root.
// Nil http.Client means http.DefaultClient.
func NewClient(endpoint string, cli *http.Client) *Client {
	if cli == nil {
		cli = http.DefaultClient
	}

	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		cli:      cli,
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", misc.UserAgent("eigentrust-client"))

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, DefaultMaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (c *Client) query(ctx context.Context, route string, pk reputation.PublicKey, epoch uint64) ([]byte, error) {
	q := url.Values{
		paramPublicKey: {pk.String()},
		paramEpoch:     {strconv.FormatUint(epoch, 10)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+route+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// Submit sends the attestation to the node.
func (c *Client) Submit(ctx context.Context, att reputation.Attestation) error {
	data, err := wire.Marshal(att)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+RouteSignature, bytes.NewReader(data))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)

	return err
}

// Query requests global trust of the participant in the epoch.
func (c *Client) Query(ctx context.Context, pk reputation.PublicKey, epoch uint64) (float64, error) {
	body, err := c.query(ctx, RouteScore, pk, epoch)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(string(body), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", body, err)
	}

	return v, nil
}

// Contributions requests per-iteration contribution sums of the
// participant in the epoch.
func (c *Client) Contributions(ctx context.Context, pk reputation.PublicKey, epoch uint64) ([]float64, error) {
	body, err := c.query(ctx, RouteContributions, pk, epoch)
	if err != nil {
		return nil, err
	}

	var res []float64

	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("invalid contributions: %w", err)
	}

	return res, nil
}
