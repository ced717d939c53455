package cmd

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-cli/internal/commonflags"
	"github.com/nspcc-dev/eigentrust-node/pkg/network"
	httpreputation "github.com/nspcc-dev/eigentrust-node/pkg/network/transport/reputation/http"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
)

var errMissingSeed = errors.New("participant key seed is not set")

// getKey returns private key derived from the seed provided in flags,
// config or ENV.
func getKey() (*eddsa.PrivateKey, error) {
	return keyFromSeed(viper.GetString(commonflags.Seed))
}

func keyFromSeed(s string) (*eddsa.PrivateKey, error) {
	if s == "" {
		return nil, errMissingSeed
	}

	key, err := reputation.KeyFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	return key, nil
}

// newSeed returns random base58 key seed.
func newSeed() (string, error) {
	seed := make([]byte, reputation.SeedSize)

	if _, err := rand.Read(seed); err != nil {
		return "", err
	}

	return base58.Encode(seed), nil
}

// getClient returns node API client and operation context.
func getClient() (*httpreputation.Client, context.Context, context.CancelFunc, error) {
	var addr network.Address

	if err := addr.FromString(viper.GetString(commonflags.Endpoint)); err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(commonflags.Timeout))

	return httpreputation.NewClient(addr.URL(), nil), ctx, cancel, nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	return tw
}
