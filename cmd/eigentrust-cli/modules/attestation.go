package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-cli/internal/commonflags"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/wire"
	"github.com/spf13/cobra"
)

const (
	neighbourFlag = "neighbour"
	scoreFlag     = "score"
	arityFlag     = "arity"
	arityDefault  = 5
	outFlag       = "out"
	fileFlag      = "file"
)

var attestationCmd = &cobra.Command{
	Use:   "attestation",
	Short: "Operations with local trust attestations",
}

var attestationSignCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign local trust attestation",
	Long: `Sign local trust attestation of the participant toward its neighbours.
Neighbours and scores correspond positionally, slots up to the arity
are left absent.`,
	Example: `eigentrust-cli attestation sign --seed <seed> \
  --neighbour <pk1> --score 10 --neighbour <pk2> --score 20 --arity 3`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, _ []string) {
		commonflags.Bind(cmd)
	},
	RunE: signAttestation,
}

var attestationSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit signed attestation to the node",
	Args:  cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, _ []string) {
		commonflags.Bind(cmd)
	},
	RunE: submitAttestation,
}

func init() {
	ff := attestationSignCmd.Flags()
	ff.String(commonflags.Seed, "", commonflags.SeedUsage)
	ff.StringArray(neighbourFlag, nil, "Base58 public key of the neighbour, repeatable")
	ff.UintSlice(scoreFlag, nil, "Local trust score of the neighbour, repeatable")
	ff.Int(arityFlag, arityDefault, "Number of neighbour slots")
	ff.StringP(outFlag, "o", "", "File to write attestation to (stdout if not set)")

	ff = attestationSubmitCmd.Flags()
	ff.StringP(fileFlag, "f", "-", "File with JSON attestation, '-' for stdin")
	commonflags.InitAPI(attestationSubmitCmd)

	attestationCmd.AddCommand(attestationSignCmd)
	attestationCmd.AddCommand(attestationSubmitCmd)
}

func signAttestation(cmd *cobra.Command, _ []string) error {
	key, err := getKey()
	if err != nil {
		return err
	}

	ff := cmd.Flags()

	strNeighbours, _ := ff.GetStringArray(neighbourFlag)
	scores, _ := ff.GetUintSlice(scoreFlag)
	arity, _ := ff.GetInt(arityFlag)

	if len(strNeighbours) != len(scores) {
		return fmt.Errorf("%d neighbours with %d scores", len(strNeighbours), len(scores))
	}

	if arity <= 0 || len(scores) > arity {
		return fmt.Errorf("%d neighbours do not fit arity %d", len(scores), arity)
	}

	neighbours := make([]reputation.PublicKey, arity)
	values := make([]fr.Element, arity)

	for i := range strNeighbours {
		neighbours[i], err = reputation.PublicKeyFromString(strNeighbours[i])
		if err != nil {
			return fmt.Errorf("neighbour #%d: %w", i, err)
		}

		values[i] = reputation.ScoreFromUint64(uint64(scores[i]))
	}

	att, err := reputation.NewAttestation(key, neighbours, values)
	if err != nil {
		return err
	}

	data, err := wire.Marshal(att)
	if err != nil {
		return err
	}

	out, _ := ff.GetString(outFlag)
	if out == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	return os.WriteFile(out, data, 0o644)
}

func submitAttestation(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(fileFlag)

	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return fmt.Errorf("read attestation: %w", err)
	}

	att, err := wire.Unmarshal(data)
	if err != nil {
		return err
	}

	cli, ctx, cancel, err := getClient()
	if err != nil {
		return err
	}

	defer cancel()

	if err := cli.Submit(ctx, att); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Attestation of", att.Signer, "is accepted")

	return nil
}
