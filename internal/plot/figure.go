package plot

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rootfind/internal/expr"
)

const (
	Title       = "Function Plot"
	curveColor  = "#1f77b4"
	rootColor   = "#d62728"
	axisColor   = "#444444"
	marginLeft  = 60
	marginRight = 20
	marginTop   = 40
	marginBot   = 40
)

// Figure is a sampled function with an optional root marker.
type Figure struct {
	Function string
	Series   Series
	Root     float64
	HasRoot  bool
	domain   Domain
}

func New(e *expr.Expression, d Domain) *Figure {
	return &Figure{
		Function: e.String(),
		Series:   Sample(e.Eval, d),
		domain:   d,
	}
}

// MarkRoot sets the x position of the vertical root line.
func (f *Figure) MarkRoot(x float64) *Figure {
	f.Root, f.HasRoot = x, true
	return f
}

// Legend is the root label shown on both renderings.
func (f *Figure) Legend() string {
	if !f.HasRoot {
		return "f(x) = " + f.Function
	}
	return fmt.Sprintf("Root at x = %.5f", f.Root)
}

// ASCII renders the series with asciigraph. Gaps are left blank.
func (f *Figure) ASCII(width, height int) (string, error) {
	if _, _, err := f.Series.Bounds(); err != nil {
		return "", err
	}
	return asciigraph.Plot(f.Series.Y,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(f.Legend()),
	), nil
}

// SVG renders the figure into an in-memory document.
func (f *Figure) SVG(width, height int) ([]byte, error) {
	minY, maxY, err := f.Series.Bounds()
	if err != nil {
		return nil, err
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	minX, maxX := f.domain.Min, f.domain.Max
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}

	plotW := float64(width - marginLeft - marginRight)
	plotH := float64(height - marginTop - marginBot)
	px := func(x float64) float64 { return marginLeft + (x-minX)/rangeX*plotW }
	py := func(y float64) float64 { return marginTop + plotH - (y-minY)/rangeY*plotH }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height)
	fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>
`, width/2, marginTop/2+6, Title)
	fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%.1f" height="%.1f" fill="none" stroke="%s"/>
`, marginLeft, marginTop, plotW, plotH, axisColor)

	if minY <= 0 && maxY >= 0 {
		fmt.Fprintf(&buf, `<line class="axis" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 3"/>
`, px(minX), py(0), px(maxX), py(0), axisColor)
	}

	buf.WriteString(`<path class="curve" fill="none" stroke="` + curveColor + `" stroke-width="1.5" d="`)
	pen := false
	for i, y := range f.Series.Y {
		if math.IsNaN(y) {
			pen = false
			continue
		}
		cmd := " L"
		if !pen {
			cmd = " M"
		}
		fmt.Fprintf(&buf, "%s%.1f,%.1f", cmd, px(f.Series.X[i]), py(y))
		pen = true
	}
	buf.WriteString("\"/>\n")

	if f.HasRoot && f.Root >= minX && f.Root <= maxX {
		fmt.Fprintf(&buf, `<line class="root" x1="%.1f" y1="%d" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="6 4"/>
`, px(f.Root), marginTop, px(f.Root), marginTop+plotH, rootColor)
	}

	fmt.Fprintf(&buf, `<text class="legend" x="%d" y="%d" font-family="sans-serif" font-size="12" fill="%s">%s</text>
`, marginLeft+8, marginTop+16, legendColor(f.HasRoot), html.EscapeString(f.Legend()))
	fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12">x</text>
`, width/2, height-10)
	fmt.Fprintf(&buf, `<text x="16" y="%d" font-family="sans-serif" font-size="12">f(x)</text>
`, height/2)
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func legendColor(root bool) string {
	if root {
		return rootColor
	}
	return curveColor
}
