package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/bp"
	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/gibbs"
	"github.com/katalvlaran/lvbayes/internal/config"
	"github.com/katalvlaran/lvbayes/internal/networks"
	"github.com/katalvlaran/lvbayes/model"
)

const defaultNetwork = "earthquake"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvbayes",
		Short: "Approximate inference over discrete factor graphs",
		Long: `lvbayes computes per-variable marginals of a discrete graphical model,
optionally conditioned on evidence.

The model is either a YAML file (--model) or one of the bundled networks
(--network: ` + strings.Join(networks.Names(), ", ") + `).

Defaults come from LVBAYES_* environment variables (optionally loaded from
the file named by LVBAYES_ENV); flags override them.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("model", "", "YAML model file")
	pf.String("network", "", "Bundled network (default "+defaultNetwork+")")
	pf.StringArray("evidence", nil, "Observation name=value (repeatable)")
	pf.Bool("trace", false, "Print every snapshot, not only the final one")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvbayes v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "networks",
		Short: "List the bundled networks",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range networks.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})

	bpCmd := &cobra.Command{
		Use:   "bp",
		Short: "Run loopy belief propagation (sum-product, log domain)",
		Args:  cobra.NoArgs,
		RunE:  runBP,
	}
	bpCmd.Flags().Int("iterations", config.Iterations(), "Number of message-passing iterations")
	rootCmd.AddCommand(bpCmd)

	gibbsCmd := &cobra.Command{
		Use:   "gibbs",
		Short: "Run single-site Gibbs sampling",
		Args:  cobra.NoArgs,
		RunE:  runGibbs,
	}
	gibbsCmd.Flags().Int("samples", config.Samples(), "Number of recorded steps")
	gibbsCmd.Flags().Int("burnin", config.Burnin(), "Number of discarded steps")
	gibbsCmd.Flags().Uint64("seed", config.Seed(), "Random seed")
	gibbsCmd.Flags().String("estimator", "cumavg", "Marginal estimator: cumavg or mean")
	rootCmd.AddCommand(gibbsCmd)

	return rootCmd
}

func runBP(cmd *cobra.Command, args []string) error {
	iterations, _ := cmd.Flags().GetInt("iterations")

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	g, err := loadGraph(cmd, logger)
	if err != nil {
		return err
	}
	report, err := bp.Run(g, iterations, bp.WithLogger(logger))
	if err != nil {
		return err
	}

	return printReport(cmd, g, report)
}

func runGibbs(cmd *cobra.Command, args []string) error {
	samples, _ := cmd.Flags().GetInt("samples")
	burnin, _ := cmd.Flags().GetInt("burnin")
	seed, _ := cmd.Flags().GetUint64("seed")
	estName, _ := cmd.Flags().GetString("estimator")

	var est gibbs.Estimator
	switch estName {
	case "cumavg":
		est = gibbs.CumulativeAverage
	case "mean":
		est = gibbs.Average
	default:
		return fmt.Errorf("unknown estimator %q (want cumavg or mean)", estName)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	g, err := loadGraph(cmd, logger)
	if err != nil {
		return err
	}
	s, err := gibbs.New(g, gibbs.WithSeed(seed), gibbs.WithLogger(logger))
	if err != nil {
		return err
	}
	report, err := s.Run(samples, burnin, gibbs.WithEstimator(est))
	if err != nil {
		return err
	}

	return printReport(cmd, g, report)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(config.LogLevel())

	return cfg.Build()
}

// loadGraph builds the graph from --model or --network and applies --evidence.
func loadGraph(cmd *cobra.Command, logger *zap.Logger) (*factor.Graph, error) {
	modelPath, _ := cmd.Flags().GetString("model")
	netName, _ := cmd.Flags().GetString("network")
	evidence, _ := cmd.Flags().GetStringArray("evidence")

	obs, err := parseEvidence(evidence)
	if err != nil {
		return nil, err
	}
	opts := []factor.Option{
		factor.WithLogFloor(config.LogFloor()),
		factor.WithLogger(logger),
	}

	var g *factor.Graph
	switch {
	case modelPath != "" && netName != "":
		return nil, errors.New("--model and --network are mutually exclusive")
	case modelPath != "":
		f, err := model.Load(modelPath)
		if err != nil {
			return nil, err
		}
		if g, err = f.Graph(opts...); err != nil {
			return nil, err
		}
	default:
		if netName == "" {
			netName = defaultNetwork
		}
		n, err := networks.ByName(netName)
		if err != nil {
			return nil, err
		}
		if g, err = n.FactorGraph(opts...); err != nil {
			return nil, err
		}
	}
	if err = g.Condition(obs); err != nil {
		return nil, err
	}

	return g, nil
}

func parseEvidence(pairs []string) (map[string]string, error) {
	obs := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid evidence %q (want name=value)", p)
		}
		obs[name] = value
	}

	return obs, nil
}

// printReport writes "name=value<TAB>p" lines in variable declaration order;
// with --trace every snapshot is printed, prefixed by its index.
func printReport(cmd *cobra.Command, g *factor.Graph, r *factor.Report) error {
	trace, _ := cmd.Flags().GetBool("trace")
	out := cmd.OutOrStdout()
	for _, v := range g.Variables() {
		name := v.Name()
		if !trace {
			d, err := r.Final(name)
			if err != nil {
				return err
			}
			writeDistribution(out, "", name, d)
			continue
		}
		for i := 0; i < r.Len(name); i++ {
			d, err := r.At(name, i)
			if err != nil {
				return err
			}
			writeDistribution(out, fmt.Sprintf("%d\t", i), name, d)
		}
	}

	return nil
}

func writeDistribution(w io.Writer, prefix, name string, d factor.Distribution) {
	for i, value := range d.Domain {
		fmt.Fprintf(w, "%s%s=%s\t%.4f\n", prefix, name, value, d.P[i])
	}
}
