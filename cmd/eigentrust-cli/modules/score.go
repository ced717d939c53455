package cmd

import (
	"strconv"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-cli/internal/commonflags"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/spf13/cobra"
)

const (
	pkFlag            = "pk"
	epochFlag         = "epoch"
	contributionsFlag = "contributions"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Query global trust of the participant",
	Args:  cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, _ []string) {
		commonflags.Bind(cmd)
	},
	RunE: queryScore,
}

func init() {
	ff := scoreCmd.Flags()
	ff.String(pkFlag, "", "Base58 public key of the participant")
	ff.Uint64(epochFlag, 0, "Epoch of the computation")
	ff.Bool(contributionsFlag, false, "Print per-iteration contribution sums")
	commonflags.InitAPI(scoreCmd)

	_ = scoreCmd.MarkFlagRequired(pkFlag)
	_ = scoreCmd.MarkFlagRequired(epochFlag)
}

func queryScore(cmd *cobra.Command, _ []string) error {
	ff := cmd.Flags()

	strPK, _ := ff.GetString(pkFlag)
	epoch, _ := ff.GetUint64(epochFlag)
	withContributions, _ := ff.GetBool(contributionsFlag)

	pk, err := reputation.PublicKeyFromString(strPK)
	if err != nil {
		return err
	}

	cli, ctx, cancel, err := getClient()
	if err != nil {
		return err
	}

	defer cancel()

	v, err := cli.Query(ctx, pk, epoch)
	if err != nil {
		return err
	}

	tw := newTable(cmd.OutOrStdout(), "Public key", "Epoch", "Score")
	tw.Append([]string{pk.String(), strconv.FormatUint(epoch, 10), formatFloat(v)})
	tw.Render()

	if !withContributions {
		return nil
	}

	contribs, err := cli.Contributions(ctx, pk, epoch)
	if err != nil {
		return err
	}

	tw = newTable(cmd.OutOrStdout(), "Iteration", "Contributions")

	for i := range contribs {
		tw.Append([]string{strconv.Itoa(i + 1), formatFloat(contribs[i])})
	}

	tw.Render()

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
