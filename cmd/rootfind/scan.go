package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/expr"
	"github.com/san-kum/rootfind/internal/report"
	"github.com/san-kum/rootfind/internal/rootfind"
	"github.com/san-kum/rootfind/internal/scan"
	"github.com/spf13/cobra"
)

func (a *app) newScanCmd() *cobra.Command {
	var (
		function string
		lo, hi   float64
		steps    int
		method   string
		decimals int
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "find sign-change brackets of f on a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := expr.Parse(function)
			if err != nil {
				return err
			}
			brackets, err := scan.NewGrid(lo, hi, steps).Search(cmd.Context(), e.Eval)
			if err != nil {
				return err
			}
			a.log.Debug("scan", "function", e.String(), "brackets", len(brackets))

			out := cmd.OutOrStdout()
			if len(brackets) == 0 {
				fmt.Fprintf(out, "no sign change of f(x) = %s on [%g, %g]\n", e, lo, hi)
				return nil
			}
			fmt.Fprintf(out, "%-24s  %-14s  %-14s\n", "bracket", "f(a)", "f(b)")
			fmt.Fprintln(out, strings.Repeat("-", 56))
			for _, br := range brackets {
				if br.Exact {
					fmt.Fprintf(out, "%-24s  %-14s  %-14s\n", fmt.Sprintf("x = %g", br.A), "0", "0")
					continue
				}
				fmt.Fprintf(out, "%-24s  %-14s  %-14s\n",
					fmt.Sprintf("[%g, %g]", br.A, br.B), report.FormatValue(br.FA), report.FormatValue(br.FB))
			}

			if method == "" {
				return nil
			}
			m, err := rootfind.ParseMethod(method)
			if err != nil {
				return err
			}
			base := rootfind.Request{Expression: function, DecimalPlaces: decimals, MaxIter: rootfind.DefaultMaxIter}
			fmt.Fprintln(out)
			for _, o := range rootfind.Compare(cmd.Context(), scan.Requests(base, m, brackets)) {
				fmt.Fprintf(out, "[%g, %g]  %s\n", o.Request.A, o.Request.B, report.Summary(o.Result))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&function, "expr", "f", config.DefaultFunction, "function of x")
	cmd.Flags().Float64Var(&lo, "min", -10, "left end of the grid")
	cmd.Flags().Float64Var(&hi, "max", 10, "right end of the grid")
	cmd.Flags().IntVar(&steps, "steps", 40, "number of grid cells")
	cmd.Flags().StringVar(&method, "solve", "", "refine every bracket with this method")
	cmd.Flags().IntVarP(&decimals, "decimals", "d", rootfind.DefaultDecimalPlaces, "decimal places when refining")
	return cmd
}

func (a *app) newBatchCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "batch [file.yaml]",
		Short: "solve every problem in a batch file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.LoadBatch(args[0])
			if err != nil {
				return err
			}
			reqs, err := b.Requests()
			if err != nil {
				return err
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

			if b.Name != "" {
				fmt.Fprint(out, b.Name)
				if b.Description != "" {
					fmt.Fprintf(out, ": %s", b.Description)
				}
				fmt.Fprint(out, "\n\n")
			}
			failed := 0
			for i, o := range outcomes {
				fmt.Fprintf(out, "%d. %-22s f(x) = %s\n   %s\n", i+1, o.Result.Title, o.Result.Expression, report.Summary(o.Result))
				if o.Err != nil {
					failed++
				}
			}
			a.log.Info("batch done", "problems", len(outcomes), "failed", failed)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table, json)")
	return cmd
}
