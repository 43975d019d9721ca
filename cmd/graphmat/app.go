// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphmat/config"
	"github.com/katalvlaran/graphmat/matroid"
	"github.com/katalvlaran/graphmat/metrics"
)

// app carries the state of one invocation.
type app struct {
	out, errOut io.Writer
	flags       rootFlags

	cfg     config.Config
	runID   string
	logger  *slog.Logger
	metrics *metrics.Registry
	pr      *printer
	model   *matroid.Matroid
}

type rootFlags struct {
	configPath  string
	family      string
	n           int
	seed        int64
	logLevel    string
	logFormat   string
	metricsFile string
	noColor     bool
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, out, errOut io.Writer) int {
	a := &app{
		out:     out,
		errOut:  errOut,
		metrics: metrics.NewRegistry(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err != nil {
		a.logger.Error("command failed", slog.Any("err", err))
		fmt.Fprintln(errOut, "error:", err)
	}
	if ferr := a.flush(); ferr != nil {
		fmt.Fprintln(errOut, "error:", ferr)
		return 1
	}
	if err != nil {
		return 1
	}

	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphmat",
		Short: "Query and edit graphic matroids",
		Long: `graphmat builds the graphic matroid of a multigraph and answers rank,
closure, circuit and cocircuit queries, applies minors, extensions,
coextensions, Whitney twists and one-sums, and tests isomorphism and minors.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "workload YAML file")
	pf.StringVar(&a.flags.family, "family", "", "builder family, overrides the workload graph")
	pf.IntVar(&a.flags.n, "n", 0, "family size parameter")
	pf.Int64Var(&a.flags.seed, "seed", 0, "seed for the random family")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "text or json")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		a.infoCmd(),
		a.setCmd("rank", "Rank of a set of elements", a.rank),
		a.setCmd("corank", "Corank of a set of elements", a.corank),
		a.setCmd("connectivity", "Connectivity λ(X) = r(X) + r(E∖X) − r(E)", a.lambda),
		a.setCmd("closure", "Closure of a set of elements", a.closure),
		a.setCmd("coclosure", "Coclosure of a set of elements", a.coclosure),
		a.setCmd("circuit", "A circuit contained in a set", a.circuit),
		a.setCmd("cocircuit", "A cocircuit contained in a set", a.cocircuit),
		a.setCmd("independent", "Independence and closure tests for a set", a.independent),
		a.setCmd("basis", "Maximal independent and coindependent subsets", a.basis),
		a.minorCmd(),
		a.extendCmd(),
		a.coextendCmd(),
		a.extensionsCmd(),
		a.coextensionsCmd(),
		a.twistCmd(),
		a.oneSumCmd(),
		a.isomorphicCmd(),
		a.hasMinorCmd(),
	)

	return root
}

// setup resolves configuration, logging and the model before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.flags.configPath != "" {
		var err error
		if cfg, err = config.Load(a.flags.configPath); err != nil {
			return err
		}
	}
	f := cmd.Flags()
	switch {
	case f.Changed("family"):
		cfg.Graph = config.GraphConfig{Family: a.flags.family, N: a.flags.n}
	case f.Changed("n"):
		cfg.Graph.N = a.flags.n
	}
	if f.Changed("seed") {
		cfg.Graph.Seed = a.flags.seed
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = a.flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = a.flags.logFormat
	}
	if f.Changed("metrics-file") {
		cfg.Metrics.Textfile = a.flags.metricsFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	a.runID = uuid.New().String()
	a.logger = newLogger(a.errOut, cfg.Logging).With(slog.String("run_id", a.runID))
	a.pr = newPrinter(a.out, a.flags.noColor)

	m, err := a.load(cfg.Graph)
	if err != nil {
		return err
	}
	a.model = m
	a.metrics.SetModel(m.Size(), m.FullRank())
	a.logger.Info("model loaded",
		slog.String("name", cfg.Name),
		slog.String("command", cmd.Name()),
		slog.Int("elements", m.Size()),
		slog.Int("rank", m.FullRank()))

	return nil
}

// load builds a model from a graph section with the app's logger attached.
func (a *app) load(gc config.GraphConfig) (*matroid.Matroid, error) {
	g, err := gc.BuildGraph()
	if err != nil {
		return nil, err
	}
	opts := []matroid.Option{matroid.WithLogger(a.logger)}
	if len(gc.Groundset) > 0 {
		opts = append(opts, matroid.WithGroundset(gc.Groundset))
	}

	return matroid.New(g, opts...)
}

// flush writes the metrics textfile when one is configured.
func (a *app) flush() error {
	path := a.cfg.Metrics.Textfile
	if path == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(path); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	a.logger.Debug("metrics written", slog.String("path", path))

	return nil
}

// timed runs fn under the operation's counter and histogram.
func (a *app) timed(op string, fn func() error) error {
	return a.metrics.Time(strings.ReplaceAll(op, "-", "_"), fn)
}
