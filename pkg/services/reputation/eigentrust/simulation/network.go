// Package simulation provides the live EigenTrust computation over
// a network of peers updating asynchronously.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Peer is a participant of the simulated network.
type Peer struct {
	index int

	score float64

	// incoming trust sorted by rater index
	edges []edge

	converged bool
}

type edge struct {
	from   int
	weight float64
}

// Index returns position of the peer in the network.
func (p Peer) Index() int {
	return p.index
}

// Score returns raw global trust of the peer.
func (p Peer) Score() float64 {
	return p.score
}

// Converged checks if the last change of the peer's score was below
// the network's threshold.
func (p Peer) Converged() bool {
	return p.converged
}

// Prm groups the required parameters of the Network's constructor.
type Prm struct {
	// Convergence threshold of the score change per tick.
	//
	// Must be positive.
	Delta float64
}

// Network is an aggregate of peers. It is the only component
// mutating peers' state.
//
// Network is not safe for concurrent use.
type Network struct {
	prm Prm

	log *zap.Logger

	peers []Peer

	converged bool
}

// Option sets an optional parameter of Network.
type Option func(*Network)

// WithLogger returns Option to specify logging component.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

var errDimension = errors.New("local trust matrix dimension mismatch")

// New creates the network of peers with the given initial scores.
//
// Panics if Delta is not positive or there are no peers.
func New(prm Prm, initial []float64, opts ...Option) *Network {
	if prm.Delta <= 0 || math.IsNaN(prm.Delta) {
		panic(fmt.Sprintf("invalid parameter Delta (%T):%v", prm.Delta, prm.Delta))
	}

	if len(initial) == 0 {
		panic("empty network")
	}

	n := &Network{
		prm:   prm,
		log:   zap.L(),
		peers: make([]Peer, len(initial)),
	}

	for i := range opts {
		opts[i](n)
	}

	for i := range initial {
		n.peers[i] = Peer{
			index: i,
			score: initial[i],
		}
	}

	return n
}

// Connect sets local trust between peers: matrix[i][j] is the trust of
// the i-th peer toward the j-th one. Rows are normalized, self-trust is
// ignored. Previous connections are replaced. The network is left
// unchanged on error.
func (n *Network) Connect(matrix [][]float64) error {
	if len(matrix) != len(n.peers) {
		return fmt.Errorf("%w: %d rows for %d peers", errDimension, len(matrix), len(n.peers))
	}

	edges := make([][]edge, len(n.peers))

	for i, row := range matrix {
		if len(row) != len(n.peers) {
			return fmt.Errorf("%w: row #%d has %d columns", errDimension, i, len(row))
		}

		var sum float64

		for j := range row {
			if row[j] < 0 || math.IsNaN(row[j]) {
				return fmt.Errorf("invalid local trust %v of peer #%d toward #%d", row[j], i, j)
			}

			if i != j {
				sum += row[j]
			}
		}

		if sum == 0 {
			continue
		}

		for j := range row {
			if i == j || row[j] == 0 {
				continue
			}

			edges[j] = append(edges[j], edge{
				from:   i,
				weight: row[j] / sum,
			})
		}
	}

	for i := range n.peers {
		n.peers[i].edges = edges[i]
	}

	n.converged = false

	return nil
}

// Tick updates each peer once in random order. Each peer takes the
// current scores of its raters, so peers updated earlier in the tick
// contribute new values. Then convergence flags are recalculated.
func (n *Network) Tick(rng *rand.Rand) {
	deltas := make([]float64, len(n.peers))

	for _, i := range rng.Perm(len(n.peers)) {
		p := &n.peers[i]

		var score float64
		for _, e := range p.edges {
			score += e.weight * n.peers[e.from].score
		}

		deltas[i] = math.Abs(score - p.score)
		p.score = score
	}

	converged := true

	for i := range n.peers {
		n.peers[i].converged = deltas[i] < n.prm.Delta
		converged = converged && n.peers[i].converged
	}

	n.converged = converged
}

// Converged checks if all peers converged at the last tick.
func (n *Network) Converged() bool {
	return n.converged
}

// Run ticks until the network converges or maxTicks ticks are done.
// Returns number of performed ticks and the convergence flag.
func (n *Network) Run(rng *rand.Rand, maxTicks int) (int, bool) {
	var ticks int

	for ticks < maxTicks && !n.converged {
		n.Tick(rng)
		ticks++
	}

	n.log.Debug("simulation finished",
		zap.Int("peers", len(n.peers)),
		zap.Int("ticks", ticks),
		zap.Bool("converged", n.converged),
	)

	return ticks, n.converged
}

// Peers returns copies of the peers in index order.
func (n *Network) Peers() []Peer {
	res := make([]Peer, len(n.peers))

	for i := range n.peers {
		res[i] = n.peers[i]
		res[i].edges = nil
	}

	return res
}

// GlobalTrustScores returns peers' scores normalized to sum up to 1.
// If all scores are zero, trust is distributed uniformly.
func (n *Network) GlobalTrustScores() []float64 {
	var sum float64
	for i := range n.peers {
		sum += n.peers[i].score
	}

	res := make([]float64, len(n.peers))

	for i := range n.peers {
		if sum == 0 {
			res[i] = 1 / float64(len(res))
		} else {
			res[i] = n.peers[i].score / sum
		}
	}

	return res
}
