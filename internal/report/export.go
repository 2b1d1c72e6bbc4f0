package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/rootfind/internal/rootfind"
)

// ExportData is the JSON form of a solve.
type ExportData struct {
	Method        rootfind.Method   `json:"method"`
	Title         string            `json:"title"`
	Function      string            `json:"function"`
	Derivative    string            `json:"derivative,omitempty"`
	Status        rootfind.Status   `json:"status"`
	Converged     bool              `json:"converged"`
	Root          *float64          `json:"root"`
	Tolerance     float64           `json:"tolerance"`
	DecimalPlaces int               `json:"decimal_places"`
	Iterations    int               `json:"iterations"`
	Columns       []string          `json:"columns"`
	Records       []rootfind.Record `json:"records"`
	Error         string            `json:"error,omitempty"`
}

func NewExportData(res *rootfind.Result) ExportData {
	data := ExportData{
		Method:        res.Method,
		Title:         res.Title,
		Function:      res.Expression,
		Derivative:    res.Derivative,
		Status:        res.Status,
		Converged:     res.Converged(),
		Tolerance:     res.Tolerance,
		DecimalPlaces: res.DecimalPlaces,
		Iterations:    res.Iterations(),
		Columns:       FromResult(res).Columns,
		Records:       res.Records,
		Error:         res.Message,
	}
	if res.HasRoot() {
		root := res.Root
		data.Root = &root
	}
	if data.Records == nil {
		data.Records = []rootfind.Record{}
	}
	return data
}

func WriteJSON(w io.Writer, res *rootfind.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(res))
}

// WriteCSV writes the trace with full precision. A failed solve is written
// as a single row holding the error message.
func WriteCSV(w io.Writer, res *rootfind.Result) error {
	cw := csv.NewWriter(w)

	t := FromResult(res)
	if t.Error != "" {
		if err := cw.Write([]string{t.Error}); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, rec := range res.Records {
		row := []string{strconv.Itoa(rec.Index())}
		for _, v := range rec.Values() {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
