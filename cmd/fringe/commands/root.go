package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/fringe/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logPretty bool
}

func (f *globalFlags) logger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(logging.Config{Level: f.logLevel, Pretty: f.logPretty}, cmd.ErrOrStderr())
}

// NewRootCommand builds the fringe command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "fringe",
		Short: "Fringe search pathfinding tools",
		Long: `fringe - lowest-cost path queries with Fringe Search.

Examples:
  # Shortest path between two nodes of a YAML graph
  fringe path -f roads.yaml --from A --to D

  # Use straight-line distance as heuristic and congestion-aware costs
  fringe path -f roads.yaml --from A --to D --heuristic euclid --cost congestion

  # Compare against Dijkstra on 100 random graphs
  fringe bench --graphs 100 --nodes 500`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flags.logPretty, "log-pretty", false, "human readable log output")

	root.AddCommand(newPathCommand(flags))
	root.AddCommand(newBenchCommand(flags))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
