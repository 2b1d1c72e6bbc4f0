package rootfind

// Method names a root-finding algorithm.
type Method string

const (
	Bisection     Method = "bisection"
	FalsePosition Method = "false_position"
	NewtonRaphson Method = "newton_raphson"
	Secant        Method = "secant"
)

// Status is the terminal state of a solve.
type Status string

const (
	StatusConverged Status = "converged"
	StatusExhausted Status = "exhausted"
	StatusFailed    Status = "failed"
)

// Func is a real function that may be undefined at some points.
type Func func(x float64) (float64, error)

// Record is one row of an iteration trace.
type Record interface {
	Index() int
	Values() []float64
}

// BracketRecord is a bisection or false position iteration.
type BracketRecord struct {
	Iteration int     `json:"iteration"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	C         float64 `json:"c"`
	FC        float64 `json:"fc"`
}

func (r BracketRecord) Index() int        { return r.Iteration }
func (r BracketRecord) Values() []float64 { return []float64{r.A, r.B, r.C, r.FC} }

// NewtonRecord is a Newton-Raphson iteration.
type NewtonRecord struct {
	Iteration int     `json:"iteration"`
	X0        float64 `json:"x0"`
	FX0       float64 `json:"fx0"`
	DFX0      float64 `json:"dfx0"`
	X1        float64 `json:"x1"`
}

func (r NewtonRecord) Index() int        { return r.Iteration }
func (r NewtonRecord) Values() []float64 { return []float64{r.X0, r.FX0, r.DFX0, r.X1} }

// SecantRecord is a secant iteration.
type SecantRecord struct {
	Iteration int     `json:"iteration"`
	X0        float64 `json:"x0"`
	X1        float64 `json:"x1"`
	FX0       float64 `json:"fx0"`
	FX1       float64 `json:"fx1"`
	X2        float64 `json:"x2"`
}

func (r SecantRecord) Index() int        { return r.Iteration }
func (r SecantRecord) Values() []float64 { return []float64{r.X0, r.X1, r.FX0, r.FX1, r.X2} }

// Request holds the inputs of one solve. A and B are read by the bracket
// methods, X0 by Newton-Raphson, X0 and X1 by secant.
type Request struct {
	Expression    string  `json:"function" yaml:"function"`
	Method        Method  `json:"method" yaml:"method"`
	DecimalPlaces int     `json:"decimal_places" yaml:"decimal_places"`
	MaxIter       int     `json:"max_iter" yaml:"max_iter"`
	A             float64 `json:"a" yaml:"a"`
	B             float64 `json:"b" yaml:"b"`
	X0            float64 `json:"x0" yaml:"x0"`
	X1            float64 `json:"x1" yaml:"x1"`
}

// Result is the outcome of a solve. Root is the estimate rounded to
// DecimalPlaces and is meaningful only when Status is not StatusFailed.
type Result struct {
	Method        Method   `json:"method"`
	Title         string   `json:"title"`
	Expression    string   `json:"function"`
	Derivative    string   `json:"derivative,omitempty"`
	Status        Status   `json:"status"`
	Root          float64  `json:"root"`
	Estimate      float64  `json:"estimate"`
	Tolerance     float64  `json:"tolerance"`
	DecimalPlaces int      `json:"decimal_places"`
	Records       []Record `json:"records"`
	Message       string   `json:"error,omitempty"`
}

// Converged reports whether the tolerance test passed before max_iter.
func (r *Result) Converged() bool { return r.Status == StatusConverged }

// HasRoot reports whether Root holds an estimate.
func (r *Result) HasRoot() bool { return r.Status == StatusConverged || r.Status == StatusExhausted }

// Iterations returns the trace length.
func (r *Result) Iterations() int { return len(r.Records) }
