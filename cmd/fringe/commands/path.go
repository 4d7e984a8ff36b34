package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/fringe"
	"github.com/pdrpinto/fringe/internal/graphfile"
)

// pathOutput is what the path command prints.
type pathOutput struct {
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`
	Found    bool     `json:"found" yaml:"found"`
	Path     []string `json:"path,omitempty" yaml:"path,omitempty"`
	Cost     float64  `json:"cost" yaml:"cost"`
	Passes   int      `json:"passes" yaml:"passes"`
	Expanded int      `json:"expanded" yaml:"expanded"`
	Visited  int      `json:"visited" yaml:"visited"`
}

type pathFlags struct {
	file       string
	from       string
	to         []string
	heuristic  string
	cost       string
	rushPeriod float64
	format     string
}

func newPathCommand(global *globalFlags) *cobra.Command {
	flags := &pathFlags{}
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a lowest-cost path in a YAML graph file",
		Long: `Find a lowest-cost path between nodes of a YAML graph file.

Several --to targets may be given; they are answered in order by one search
bound to --from, which reuses its per-node state between queries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, global, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "graph YAML file (required)")
	cmd.Flags().StringVar(&flags.from, "from", "", "start node name (required)")
	cmd.Flags().StringSliceVar(&flags.to, "to", nil, "target node name, repeatable (required)")
	cmd.Flags().StringVar(&flags.heuristic, "heuristic", "zero", "heuristic: zero or euclid")
	cmd.Flags().StringVar(&flags.cost, "cost", "static", "edge cost policy: static, congestion or rush")
	cmd.Flags().Float64Var(&flags.rushPeriod, "rush-period", 10, "travel cost after which rush congestion applies in full")
	cmd.Flags().StringVarP(&flags.format, "output", "o", "yaml", "output format: yaml or json")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runPath(cmd *cobra.Command, global *globalFlags, flags *pathFlags) error {
	logger := global.logger(cmd)

	file, err := graphfile.Load(flags.file)
	if err != nil {
		return err
	}
	policy, err := graphfile.Policy(flags.heuristic, flags.cost, flags.rushPeriod)
	if err != nil {
		return err
	}
	network, err := file.Build(policy)
	if err != nil {
		return err
	}
	if flags.heuristic == "euclid" && !network.Located() {
		logger.Warn().Msg("not every node has coordinates; euclid falls back to 0 for those")
	}

	start, err := network.Lookup(flags.from)
	if err != nil {
		return err
	}
	search, err := fringe.NewSearchFrom(network.Graph, start, fringe.WithLogger(logger))
	if err != nil {
		return err
	}

	outputs := make([]pathOutput, 0, len(flags.to))
	for _, name := range flags.to {
		target, err := network.Lookup(name)
		if err != nil {
			return err
		}
		result, err := search.Search(cmd.Context(), target)
		if err != nil {
			return fmt.Errorf("search %s -> %s: %w", flags.from, name, err)
		}
		out := pathOutput{
			From:     flags.from,
			To:       name,
			Found:    result.Found,
			Cost:     result.Cost,
			Passes:   result.Passes,
			Expanded: result.Expanded,
			Visited:  result.Visited,
		}
		if result.Found {
			out.Path = network.Names(result.Path)
		}
		logger.Info().Str("from", out.From).Str("to", out.To).Bool("found", out.Found).Float64("cost", out.Cost).Msg("path query")
		outputs = append(outputs, out)
	}

	if len(outputs) == 1 {
		return writeOutput(cmd.OutOrStdout(), flags.format, outputs[0])
	}
	return writeOutput(cmd.OutOrStdout(), flags.format, outputs)
}

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.New("unsupported output format: " + format)
	}
}
