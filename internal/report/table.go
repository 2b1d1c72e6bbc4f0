package report

import (
	"fmt"
	"strconv"

	"github.com/san-kum/rootfind/internal/rootfind"
)

// Table is a trace laid out for display. A failed solve has no rows and a
// non-empty Error.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Error   string     `json:"error,omitempty"`
}

// Digits is the number of significant digits used for trace values.
const Digits = 10

func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', Digits, 64)
}

// FormatRoot prints the root with exactly decimalPlaces decimals, or its
// exact expansion when more places are requested than a float64 carries.
func FormatRoot(res *rootfind.Result) string {
	if !res.HasRoot() {
		return "none"
	}
	if res.DecimalPlaces >= rootfind.MaxExactPlaces {
		return strconv.FormatFloat(res.Root, 'f', -1, 64)
	}
	return strconv.FormatFloat(res.Root, 'f', res.DecimalPlaces, 64)
}

func FromResult(res *rootfind.Result) Table {
	t := Table{Title: res.Title}
	if d, err := rootfind.Lookup(res.Method); err == nil {
		t.Columns = d.Columns
		if t.Title == "" {
			t.Title = d.Title
		}
	}

	if res.Status == rootfind.StatusFailed {
		t.Error = res.Message
		return t
	}

	t.Rows = make([][]string, 0, len(res.Records))
	for _, rec := range res.Records {
		row := []string{strconv.Itoa(rec.Index())}
		for _, v := range rec.Values() {
			row = append(row, FormatValue(v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Summary is the one-line outcome shown above the table.
func Summary(res *rootfind.Result) string {
	switch res.Status {
	case rootfind.StatusConverged:
		return fmt.Sprintf("root %s (converged in %d iterations)", FormatRoot(res), res.Iterations())
	case rootfind.StatusExhausted:
		return fmt.Sprintf("root %s (not converged after %d iterations)", FormatRoot(res), res.Iterations())
	}
	return res.Message
}
