package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rangechain/almanac"
	"github.com/katalvlaran/rangechain/chain"
	"github.com/katalvlaran/rangechain/internal/config"
	"github.com/katalvlaran/rangechain/internal/logging"
	"github.com/katalvlaran/rangechain/pipeline"
)

// app carries flag values and per-run state shared by all subcommands.
type app struct {
	cfgPath  string
	verbose  bool
	workers  int
	start    string
	terminal string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "rangechain [file]",
		Short: "Map almanac seeds through every category stage",
		Long: `rangechain reads an almanac (seeds plus "<from>-to-<to> map:" blocks)
and reports the lowest terminal value reachable from the seeds.

Without a subcommand the query mode comes from the config "mode" key
(points or ranges). The input file defaults to the config "input" key;
"-" reads stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Mode == config.ModeRanges {
				return a.runRanges(cmd, args)
			}
			return a.runPoints(cmd, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.workers, "workers", 0, "point-mode goroutines (overrides config)")
	pf.StringVar(&a.start, "start", "", "start category (overrides config)")
	pf.StringVar(&a.terminal, "terminal", "", "terminal category (overrides config)")

	root.AddCommand(
		a.pointsCmd(),
		a.rangesCmd(),
		a.convertCmd(),
		a.partitionCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("start") {
		cfg.Start = a.start
	}
	if flags.Changed("terminal") {
		cfg.Terminal = a.terminal
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))

	return nil
}

// load parses the almanac named by args (or the configured input) and
// builds a Runner over its chain.
func (a *app) load(cmd *cobra.Command, args []string) (*almanac.Almanac, *pipeline.Runner, error) {
	path := a.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}

	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
		path = "<stdin>"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	alm, err := almanac.Parse(r)
	if err != nil {
		return nil, nil, err
	}
	c, err := alm.Chain(chain.WithStart(a.cfg.Start), chain.WithTerminal(a.cfg.Terminal))
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("almanac loaded",
		zap.String("input", path),
		zap.Int("seeds", len(alm.Seeds)),
		zap.Int("maps", len(alm.Maps)),
		zap.Strings("categories", c.Categories()))

	runner, err := pipeline.New(c,
		pipeline.WithLogger(a.logger),
		pipeline.WithWorkers(a.cfg.Workers))
	if err != nil {
		return nil, nil, err
	}

	return alm, runner, nil
}
