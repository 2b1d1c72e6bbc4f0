package rootfind

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rootfind/internal/expr"
)

// convergedAt reports whether rec passes the tolerance test of its method.
func convergedAt(rec Record, tol float64) bool {
	switch r := rec.(type) {
	case BracketRecord:
		return math.Abs(r.FC) < tol
	case NewtonRecord:
		return math.Abs(r.X1-r.X0) < tol
	case SecantRecord:
		return math.Abs(r.X2-r.X1) < tol
	}
	Fail("unknown record type")
	return false
}

var _ = Describe("Solve", func() {
	ctx := context.Background()

	DescribeTable("trace shape",
		func(req Request) {
			res, err := Solve(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(len(res.Records)).To(BeNumerically("<=", req.MaxIter))
			Expect(res.Records).NotTo(BeEmpty())

			for i, rec := range res.Records {
				Expect(rec.Index()).To(Equal(i + 1))
				last := i == len(res.Records)-1
				if !last {
					Expect(convergedAt(rec, res.Tolerance)).To(BeFalse(), "record %d passed the tolerance test early", i+1)
				}
			}

			lastRec := res.Records[len(res.Records)-1]
			if res.Converged() {
				Expect(convergedAt(lastRec, res.Tolerance)).To(BeTrue())
			} else {
				Expect(res.Status).To(Equal(StatusExhausted))
				Expect(res.Records).To(HaveLen(req.MaxIter))
			}
		},
		Entry("bisection", Request{Expression: "x^2 - 2", Method: Bisection, DecimalPlaces: 5, MaxIter: 50, A: 0, B: 2}),
		Entry("bisection exhausted", Request{Expression: "x^2 - 2", Method: Bisection, DecimalPlaces: 8, MaxIter: 10, A: 0, B: 2}),
		Entry("false position", Request{Expression: "exp(x) - 3", Method: FalsePosition, DecimalPlaces: 6, MaxIter: 100, A: 0, B: 2}),
		Entry("newton", Request{Expression: "x^3 - x - 2", Method: NewtonRaphson, DecimalPlaces: 5, MaxIter: 20, X0: 1.5}),
		Entry("newton trig", Request{Expression: "cos(x) - x", Method: NewtonRaphson, DecimalPlaces: 10, MaxIter: 20, X0: 1}),
		Entry("secant", Request{Expression: "x^3 - x - 2", Method: Secant, DecimalPlaces: 5, MaxIter: 20, X0: 1, X1: 2}),
		Entry("secant exhausted", Request{Expression: "x^2 - 612", Method: Secant, DecimalPlaces: 12, MaxIter: 3, X0: 10, X1: 30}),
	)

	DescribeTable("bracket invariant",
		func(method Method, src string, a, b float64) {
			res, err := Solve(ctx, Request{Expression: src, Method: method, DecimalPlaces: 9, MaxIter: 200, A: a, B: b})
			Expect(err).NotTo(HaveOccurred())

			f := expr.MustParse(src)
			for _, rec := range res.Records {
				r := rec.(BracketRecord)
				fa, err := f.Eval(r.A)
				Expect(err).NotTo(HaveOccurred())
				fb, err := f.Eval(r.B)
				Expect(err).NotTo(HaveOccurred())
				Expect(fa*fb).To(BeNumerically("<", 0), "bracket [%v, %v] lost its sign change at iteration %d", r.A, r.B, r.Iteration)
				Expect(r.C).To(BeNumerically(">=", math.Min(r.A, r.B)))
				Expect(r.C).To(BeNumerically("<=", math.Max(r.A, r.B)))
			}
		},
		Entry("bisection on a cubic", Bisection, "x^3 - x - 2", 1.0, 2.0),
		Entry("bisection on a reversed bracket", Bisection, "x^2 - 2", 2.0, 0.0),
		Entry("bisection on cosine", Bisection, "cos(x) - x", 0.0, 1.0),
		Entry("false position on a cubic", FalsePosition, "x^3 - x - 2", 1.0, 2.0),
		Entry("false position on exp", FalsePosition, "exp(x) - 3", 0.0, 2.0),
		Entry("false position on a steep function", FalsePosition, "x^10 - 1", 0.0, 1.3),
	)

	It("is idempotent", func() {
		for _, d := range Methods() {
			req := Request{Expression: "x^3 - 2*x - 5", Method: d.Method, DecimalPlaces: 7, MaxIter: 60, A: 2, B: 3, X0: 2, X1: 3}
			first, err1 := Solve(ctx, req)
			second, err2 := Solve(ctx, req)
			Expect(err1).NotTo(HaveOccurred())
			Expect(err2).NotTo(HaveOccurred())
			Expect(second).To(Equal(first), "method %s", d.Method)
		}
	})

	It("rounds to zero decimals with tolerance one", func() {
		res, err := Solve(ctx, Request{Expression: "x^2 - 2", Method: Bisection, DecimalPlaces: 0, MaxIter: 50, A: 0, B: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Tolerance).To(Equal(1.0))
		Expect(res.Root).To(Equal(math.Round(res.Root)))
	})

	Context("when a precondition fails", func() {
		It("reports an invalid interval without iterating", func() {
			res, err := Solve(ctx, Request{Expression: "x^2 + 1", Method: Bisection, DecimalPlaces: 5, MaxIter: 50, A: -1, B: 1})
			Expect(err).To(MatchError(ErrInvalidInterval))
			Expect(res.HasRoot()).To(BeFalse())
			Expect(res.Records).To(BeEmpty())
		})

		It("reports division by zero for identical secant guesses", func() {
			res, err := Solve(ctx, Request{Expression: "x^2 - 5", Method: Secant, DecimalPlaces: 5, MaxIter: 20, X0: 1, X1: 1})
			Expect(err).To(MatchError(ErrDivisionByZero))
			Expect(res.Message).To(Equal("Division by zero."))
		})
	})
})
