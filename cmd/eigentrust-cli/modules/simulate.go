package cmd

import (
	"fmt"
	"strconv"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/simulation"
	"github.com/nspcc-dev/eigentrust-node/pkg/util/rand"
	"github.com/spf13/cobra"
)

const (
	peersFlag      = "peers"
	randSeedFlag   = "rand-seed"
	deltaFlag      = "delta"
	maxTicksFlag   = "max-ticks"
	densityFlag    = "density"
	peersDefault   = 5
	deltaDefault   = 1e-9
	ticksDefault   = 1000
	densityDefault = 0.5
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate convergence of the trust network",
	Long: `Simulate convergence of the trust network on a random local trust matrix.
Peers update their scores in random order every tick until no score
changes by more than delta.`,
	Args: cobra.NoArgs,
	RunE: simulate,
}

func init() {
	ff := simulateCmd.Flags()
	ff.Int(peersFlag, peersDefault, "Number of peers")
	ff.Int64(randSeedFlag, 0, "Seed of the random generator (random if zero)")
	ff.Float64(deltaFlag, deltaDefault, "Convergence threshold")
	ff.Int(maxTicksFlag, ticksDefault, "Maximum number of ticks")
	ff.Float64(densityFlag, densityDefault, "Probability of the trust edge between two peers")
}

func simulate(cmd *cobra.Command, _ []string) error {
	ff := cmd.Flags()

	peers, _ := ff.GetInt(peersFlag)
	seed, _ := ff.GetInt64(randSeedFlag)
	delta, _ := ff.GetFloat64(deltaFlag)
	maxTicks, _ := ff.GetInt(maxTicksFlag)
	density, _ := ff.GetFloat64(densityFlag)

	switch {
	case peers < 2:
		return fmt.Errorf("at least 2 peers are required, got %d", peers)
	case delta <= 0:
		return fmt.Errorf("delta must be positive, got %v", delta)
	case maxTicks <= 0:
		return fmt.Errorf("max ticks must be positive, got %d", maxTicks)
	}

	if seed == 0 {
		seed = rand.Seed()
	}

	rng := rand.New(seed)

	matrix := make([][]float64, peers)
	for i := range matrix {
		matrix[i] = make([]float64, peers)

		for j := range matrix[i] {
			if i != j && rng.Float64() < density {
				matrix[i][j] = float64(rng.Intn(100) + 1)
			}
		}
	}

	initial := make([]float64, peers)
	for i := range initial {
		initial[i] = 1 / float64(peers)
	}

	n := simulation.New(simulation.Prm{Delta: delta}, initial)

	if err := n.Connect(matrix); err != nil {
		return err
	}

	ticks, converged := n.Run(rng, maxTicks)

	fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d, ticks: %d, converged: %t\n", seed, ticks, converged)

	scores := n.GlobalTrustScores()

	tw := newTable(cmd.OutOrStdout(), "Peer", "Global trust")

	for i := range scores {
		tw.Append([]string{strconv.Itoa(i), formatFloat(scores[i])})
	}

	tw.Render()

	return nil
}
