package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/logging"
	"github.com/san-kum/rootfind/internal/rootfind"
	"github.com/san-kum/rootfind/internal/tui"
	"github.com/spf13/cobra"
)

type app struct {
	logLevel string
	log      *slog.Logger
}

// problemFlags are the inputs shared by solve, compare and tui.
type problemFlags struct {
	function   string
	decimals   int
	maxIter    int
	a, b       float64
	x0, x1     float64
	configFile string
	preset     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:          "rootfind",
		Short:        "numerical root finding for f(x) = 0",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(config.DefaultConfig())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		a.newSolveCmd(),
		a.newCompareCmd(),
		a.newMethodsCmd(),
		a.newPresetsCmd(),
		a.newPlotCmd(),
		a.newScanCmd(),
		a.newBatchCmd(),
		a.newServeCmd(),
		a.newTUICmd(),
	)
	return rootCmd
}

func (p *problemFlags) register(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVarP(&p.function, "expr", "f", def.Function, "function of x")
	cmd.Flags().IntVarP(&p.decimals, "decimals", "d", def.DecimalPlaces, "decimal places (tolerance is 10^-d)")
	cmd.Flags().IntVar(&p.maxIter, "max-iter", def.MaxIter, "maximum iterations")
	cmd.Flags().Float64Var(&p.a, "a", def.Interval.A, "left end of the bracket")
	cmd.Flags().Float64Var(&p.b, "b", def.Interval.B, "right end of the bracket")
	cmd.Flags().Float64Var(&p.x0, "x0", def.Guess.X0, "initial guess")
	cmd.Flags().Float64Var(&p.x1, "x1", def.Guess.X1, "second initial guess (secant)")
	cmd.Flags().StringVar(&p.configFile, "config", "", "problem file (yaml)")
	cmd.Flags().StringVar(&p.preset, "preset", "", "use a preset problem")
}

// resolve builds the problem from, lowest priority first: defaults or the
// preset, the config file, then flags set on the command line. An explicit
// method argument wins over the file's method.
func (p *problemFlags) resolve(cmd *cobra.Command, methodArg string) (*config.Config, error) {
	var file []byte
	if p.configFile != "" {
		data, err := os.ReadFile(p.configFile)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		file = data
	}

	method := config.DefaultConfig().Method
	switch {
	case methodArg != "":
		m, err := rootfind.ParseMethod(methodArg)
		if err != nil {
			return nil, err
		}
		method = m
	case file != nil:
		probe, err := config.Parse(file, nil)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		m, err := rootfind.ParseMethod(string(probe.Method))
		if err != nil {
			return nil, err
		}
		method = m
	}

	cfg := config.DefaultConfig()
	if p.preset != "" {
		cfg = config.GetPreset(method, p.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available for %s: %v)", p.preset, method, config.ListPresets(method))
		}
	}
	if file != nil {
		var err error
		if cfg, err = config.Parse(file, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.Method = method

	flags := cmd.Flags()
	if flags.Changed("expr") {
		cfg.Function = p.function
	}
	if flags.Changed("decimals") {
		cfg.DecimalPlaces = p.decimals
	}
	if flags.Changed("max-iter") {
		cfg.MaxIter = p.maxIter
	}
	if flags.Changed("a") {
		cfg.Interval.A = p.a
	}
	if flags.Changed("b") {
		cfg.Interval.B = p.b
	}
	if flags.Changed("x0") {
		cfg.Guess.X0 = p.x0
	}
	if flags.Changed("x1") {
		cfg.Guess.X1 = p.x1
	}
	return cfg, nil
}

func methodList() string {
	var names []string
	for _, d := range rootfind.Methods() {
		names = append(names, string(d.Method))
	}
	return strings.Join(names, ", ")
}
