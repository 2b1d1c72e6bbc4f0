package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/expr"
	"github.com/san-kum/rootfind/internal/httpapi"
	"github.com/san-kum/rootfind/internal/metrics"
	"github.com/san-kum/rootfind/internal/plot"
	"github.com/san-kum/rootfind/internal/report"
	"github.com/san-kum/rootfind/internal/rootfind"
	"github.com/san-kum/rootfind/internal/tui"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"

	plotWidth  = 70
	plotHeight = 12
	svgWidth   = 640
	svgHeight  = 480
)

func (a *app) newSolveCmd() *cobra.Command {
	var (
		p       problemFlags
		format  string
		showPlt bool
		svgPath string
	)
	cmd := &cobra.Command{
		Use:   "solve [method]",
		Short: "find a root with one method",
		Long:  "find a root of f(x) with one of: " + methodList(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var methodArg string
			if len(args) > 0 {
				methodArg = args[0]
			}
			cfg, err := p.resolve(cmd, methodArg)
			if err != nil {
				return err
			}

			start := time.Now()
			res, solveErr := rootfind.Solve(cmd.Context(), cfg.ToRequest())
			a.log.Debug("solve",
				"method", res.Method,
				"status", res.Status,
				"iterations", res.Iterations(),
				"duration", time.Since(start),
			)
			if errors.Is(solveErr, rootfind.ErrInvalidRequest) {
				return solveErr
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatTable:
				fmt.Fprint(out, report.Render(res))
				if showPlt && res.HasRoot() {
					if err := writeASCII(out, res.Expression, &res.Root); err != nil {
						return err
					}
				}
			case formatCSV:
				if err := report.WriteCSV(out, res); err != nil {
					return err
				}
			case formatJSON:
				if err := report.WriteJSON(out, res); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (table, csv, json)", format)
			}

			if svgPath != "" && res.HasRoot() {
				if err := writeSVG(svgPath, res.Expression, &res.Root); err != nil {
					return err
				}
				a.log.Info("plot written", "path", svgPath)
			}
			if solveErr != nil {
				a.log.Debug("solve failed", "error", solveErr)
				return fmt.Errorf("%s failed", res.Title)
			}
			return nil
		},
	}
	p.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table, csv, json)")
	cmd.Flags().BoolVar(&showPlt, "plot", false, "draw f(x) below the table")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG plot to this path")
	return cmd
}

func (a *app) newCompareCmd() *cobra.Command {
	var (
		p      problemFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "compare [method1] [method2] ...",
		Short: "run several methods on the same function",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := p.resolve(cmd, "")
			if err != nil {
				return err
			}

			var methods []rootfind.Method
			for _, name := range args {
				m, err := rootfind.ParseMethod(name)
				if err != nil {
					return err
				}
				methods = append(methods, m)
			}
			if len(methods) == 0 {
				for _, d := range rootfind.Methods() {
					methods = append(methods, d.Method)
				}
			}

			reqs := make([]rootfind.Request, len(methods))
			for i, m := range methods {
				req := cfg.ToRequest()
				req.Method = m
				reqs[i] = req
			}
			outcomes := rootfind.Compare(cmd.Context(), reqs)

			out := cmd.OutOrStdout()
			if format == formatJSON {
				data := make([]report.ExportData, len(outcomes))
				for i, o := range outcomes {
					data[i] = report.NewExportData(o.Result)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			fmt.Fprintf(out, "comparing methods for f(x) = %s (decimals=%d, max_iter=%d)\n\n", cfg.Function, cfg.DecimalPlaces, cfg.MaxIter)
			fmt.Fprintf(out, "%-16s  %-10s  %-14s  %-10s  %-10s\n", "method", "status", "root", "iterations", "time_us")
			fmt.Fprintln(out, strings.Repeat("-", 68))
			for _, o := range outcomes {
				res := o.Result
				fmt.Fprintf(out, "%-16s  %-10s  %-14s  %-10d  %-10d\n",
					res.Method, res.Status, report.FormatRoot(res), res.Iterations(), o.Elapsed.Microseconds())
				if o.Err != nil {
					fmt.Fprintf(out, "  %s\n", res.Message)
				}
			}
			return nil
		},
	}
	p.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table, json)")
	return cmd
}

func (a *app) newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "list root-finding methods",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, d := range rootfind.Methods() {
				fmt.Fprintf(out, "%-16s %-24s params: %s\n", d.Method, d.Title, strings.Join(d.Params, ", "))
			}
		},
	}
}

func (a *app) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [method]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var methods []rootfind.Method
			if len(args) > 0 {
				m, err := rootfind.ParseMethod(args[0])
				if err != nil {
					return err
				}
				methods = append(methods, m)
			} else {
				for _, d := range rootfind.Methods() {
					methods = append(methods, d.Method)
				}
			}

			out := cmd.OutOrStdout()
			for _, m := range methods {
				presets := config.ListPresets(m)
				if len(presets) == 0 {
					fmt.Fprintf(out, "no presets for method: %s\n", m)
					continue
				}
				fmt.Fprintf(out, "presets for %s:\n", m)
				for _, name := range presets {
					fmt.Fprintf(out, "  %-8s f(x) = %s\n", name, config.GetPreset(m, name).Function)
				}
			}
			return nil
		},
	}
}

func (a *app) newPlotCmd() *cobra.Command {
	var (
		function string
		root     float64
		svgPath  string
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot f(x) on [-10, 10]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rootPtr *float64
			if cmd.Flags().Changed("root") {
				rootPtr = &root
			}
			if svgPath != "" {
				if err := writeSVG(svgPath, function, rootPtr); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svgPath)
				return nil
			}
			return writeASCII(cmd.OutOrStdout(), function, rootPtr)
		},
	}
	cmd.Flags().StringVarP(&function, "expr", "f", config.DefaultFunction, "function of x")
	cmd.Flags().Float64Var(&root, "root", 0, "mark a root at this x")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG file instead of drawing in the terminal")
	return cmd
}

func (a *app) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := httpapi.NewHandler(&httpapi.Server{
				Solver:  rootfind.NewRegistry(),
				Metrics: metrics.NewSolver(),
				Logger:  a.log,
			})
			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			a.log.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "listen address")
	return cmd
}

func (a *app) newTUICmd() *cobra.Command {
	var p problemFlags
	cmd := &cobra.Command{
		Use:   "tui [method]",
		Short: "interactive terminal form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var methodArg string
			if len(args) > 0 {
				methodArg = args[0]
			}
			cfg, err := p.resolve(cmd, methodArg)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	p.register(cmd)
	return cmd
}

func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":5050"
}

func newFigure(function string, root *float64) (*plot.Figure, error) {
	e, err := expr.Parse(function)
	if err != nil {
		return nil, err
	}
	fig := plot.New(e, plot.DefaultDomain)
	if root != nil {
		fig.MarkRoot(*root)
	}
	return fig, nil
}

func writeASCII(w io.Writer, function string, root *float64) error {
	fig, err := newFigure(function, root)
	if err != nil {
		return err
	}
	chart, err := fig.ASCII(plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s\n", chart)
	return nil
}

func writeSVG(path, function string, root *float64) error {
	fig, err := newFigure(function, root)
	if err != nil {
		return err
	}
	svg, err := fig.SVG(svgWidth, svgHeight)
	if err != nil {
		return err
	}
	return os.WriteFile(path, svg, 0644)
}
