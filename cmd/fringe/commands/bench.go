package commands

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/fringe"
	"github.com/pdrpinto/fringe/internal/crosscheck"
)

// benchEpsilon is the largest cost difference still counted as a match.
const benchEpsilon = 1e-6

type benchFlags struct {
	graphs    int
	nodes     int
	p         float64
	maxWeight float64
	seed      uint64
	format    string
}

// benchOutput summarizes a bench run.
type benchOutput struct {
	Graphs      int     `json:"graphs" yaml:"graphs"`
	Nodes       int     `json:"nodes" yaml:"nodes"`
	Reachable   int     `json:"reachable" yaml:"reachable"`
	Unreachable int     `json:"unreachable" yaml:"unreachable"`
	Mismatches  int     `json:"mismatches" yaml:"mismatches"`
	MaxDiff     float64 `json:"max_diff" yaml:"max_diff"`
	Elapsed     string  `json:"elapsed" yaml:"elapsed"`
}

func newBenchCommand(global *globalFlags) *cobra.Command {
	flags := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Cross-check fringe search against Dijkstra on random graphs",
		Long: `Generate random Erdos-Renyi digraphs, search from the first to the last
node with fringe search and Dijkstra, and compare the costs.

Exits with an error if any graph disagrees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runBench(cmd.Context(), global.logger(cmd), flags)
			if err != nil {
				return err
			}
			if werr := writeOutput(cmd.OutOrStdout(), flags.format, out); werr != nil {
				return werr
			}
			if out.Mismatches > 0 {
				return fmt.Errorf("%d of %d graphs disagree with dijkstra", out.Mismatches, out.Graphs)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flags.graphs, "graphs", 100, "number of random graphs")
	cmd.Flags().IntVar(&flags.nodes, "nodes", 1000, "nodes per graph")
	cmd.Flags().Float64Var(&flags.p, "p", 0.005, "Erdos-Renyi edge probability")
	cmd.Flags().Float64Var(&flags.maxWeight, "max-weight", 10, "edge weights are uniform in [0, max-weight)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&flags.format, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func runBench(ctx context.Context, logger zerolog.Logger, flags *benchFlags) (benchOutput, error) {
	if flags.nodes < 1 {
		return benchOutput{}, fmt.Errorf("--nodes must be positive, got %d", flags.nodes)
	}
	rng := rand.New(rand.NewPCG(flags.seed, flags.seed^0x9e3779b97f4a7c15))
	out := benchOutput{Graphs: flags.graphs, Nodes: flags.nodes}
	began := time.Now()

	source, target := 0, flags.nodes-1
	for i := 0; i < flags.graphs; i++ {
		digraph := crosscheck.ErdosRenyi(rng, flags.nodes, flags.p, flags.maxWeight)
		want := crosscheck.Dijkstra(digraph, source)[target]

		graph, err := crosscheck.Load(digraph, fringe.Policy[int, struct{}]{})
		if err != nil {
			return out, err
		}
		search, err := fringe.NewSearchFrom(graph, fringe.NodeID(source))
		if err != nil {
			return out, err
		}
		result, err := search.Search(ctx, fringe.NodeID(target))
		if err != nil {
			return out, fmt.Errorf("graph %d: %w", i, err)
		}

		switch {
		case math.IsInf(want, 1) && !result.Found:
			out.Unreachable++
		case math.IsInf(want, 1) || !result.Found:
			out.Mismatches++
			logger.Error().Int("graph", i).Bool("found", result.Found).Float64("dijkstra", want).Msg("reachability mismatch")
		default:
			out.Reachable++
			diff := math.Abs(want - result.Cost)
			out.MaxDiff = math.Max(out.MaxDiff, diff)
			if diff >= benchEpsilon {
				out.Mismatches++
				logger.Error().Int("graph", i).Float64("fringe", result.Cost).Float64("dijkstra", want).Msg("cost mismatch")
			}
		}
		logger.Debug().Int("graph", i).Int("edges", len(digraph.Edges)).Int("passes", result.Passes).Msg("graph checked")
	}
	out.Elapsed = time.Since(began).Round(time.Millisecond).String()
	return out, nil
}
