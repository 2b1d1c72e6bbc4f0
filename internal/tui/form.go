package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/expr"
	"github.com/san-kum/rootfind/internal/plot"
	"github.com/san-kum/rootfind/internal/report"
	"github.com/san-kum/rootfind/internal/rootfind"
)

var (
	heading = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	pointer = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	active  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	value   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Bold(true)
	idle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	key     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	bad     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

const (
	fieldFunction = "function"
	fieldMethod   = "method"
	fieldDecimals = "decimal_places"
	fieldMaxIter  = "max_iter"
)

// SolveFunc runs a request. rootfind.Solve is the default.
type SolveFunc func(ctx context.Context, req rootfind.Request) (*rootfind.Result, error)

type solvedMsg struct {
	res *rootfind.Result
	err error
}

// Model is the bubbletea form for one problem.
type Model struct {
	cfg      *config.Config
	methods  []rootfind.Method
	cursor   int
	editing  bool
	editBuf  string
	status   string
	showPlot bool
	result   *rootfind.Result
	solve    SolveFunc
	width    int
}

func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var methods []rootfind.Method
	for _, d := range rootfind.Methods() {
		methods = append(methods, d.Method)
	}
	return Model{cfg: cfg.Clone(), methods: methods, solve: rootfind.Solve, width: 80}
}

// WithSolver replaces the solve function.
func (m Model) WithSolver(fn SolveFunc) Model {
	m.solve = fn
	return m
}

func (m Model) Config() *config.Config   { return m.cfg.Clone() }
func (m Model) Result() *rootfind.Result { return m.result }
func (m Model) Editing() bool            { return m.editing }
func (m Model) Status() string           { return m.status }
func (m Model) Init() tea.Cmd            { return nil }

// Fields lists the editable fields for the selected method.
func (m Model) Fields() []string {
	fields := []string{fieldFunction, fieldMethod, fieldDecimals, fieldMaxIter}
	if d, err := rootfind.Lookup(m.cfg.Method); err == nil {
		fields = append(fields, d.Params...)
	}
	return fields
}

// Selected is the field under the cursor.
func (m Model) Selected() string {
	fields := m.Fields()
	if m.cursor >= len(fields) {
		return fields[len(fields)-1]
	}
	return fields[m.cursor]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg), nil
		}
		return m.formKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case solvedMsg:
		m.result = msg.res
		m.status = ""
		if msg.err != nil {
			m.status = msg.res.Message
		}
	}
	return m, nil
}

func (m Model) formKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.Fields())-1 {
			m.cursor++
		}
	case "left", "h":
		if m.Selected() == fieldMethod {
			m.cycleMethod(-1)
		}
	case "right", "l":
		if m.Selected() == fieldMethod {
			m.cycleMethod(1)
		}
	case "enter", " ":
		if m.Selected() == fieldMethod {
			m.cycleMethod(1)
			break
		}
		m.editing, m.editBuf = true, m.display(m.Selected())
	case "p":
		m.showPlot = !m.showPlot
	case "s":
		m.status = "solving..."
		return m, m.solveCmd()
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		if err := m.commit(m.Selected(), m.editBuf); err != nil {
			m.status = err.Error()
			return m
		}
		m.editing, m.editBuf, m.status = false, "", ""
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeySpace:
		if m.Selected() == fieldFunction {
			m.editBuf += " "
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if m.Selected() == fieldFunction || strings.ContainsRune("0123456789.-+eE", r) {
				m.editBuf += string(r)
			}
		}
	}
	return m
}

func (m *Model) cycleMethod(step int) {
	if len(m.methods) == 0 {
		return
	}
	idx := 0
	for i, meth := range m.methods {
		if meth == m.cfg.Method {
			idx = i
		}
	}
	idx = (idx + step + len(m.methods)) % len(m.methods)
	m.cfg.Method = m.methods[idx]
	if n := len(m.Fields()); m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m Model) display(field string) string {
	switch field {
	case fieldFunction:
		return m.cfg.Function
	case fieldMethod:
		return string(m.cfg.Method)
	case fieldDecimals:
		return strconv.Itoa(m.cfg.DecimalPlaces)
	case fieldMaxIter:
		return strconv.Itoa(m.cfg.MaxIter)
	}
	return strconv.FormatFloat(*m.number(field), 'g', -1, 64)
}

func (m *Model) number(field string) *float64 {
	switch field {
	case "a":
		return &m.cfg.Interval.A
	case "b":
		return &m.cfg.Interval.B
	case "x0":
		return &m.cfg.Guess.X0
	}
	return &m.cfg.Guess.X1
}

func (m *Model) commit(field, text string) error {
	text = strings.TrimSpace(text)
	switch field {
	case fieldFunction:
		if _, err := expr.Parse(text); err != nil {
			return err
		}
		m.cfg.Function = text
	case fieldDecimals, fieldMaxIter:
		n, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%s must be an integer", field)
		}
		if field == fieldDecimals {
			m.cfg.DecimalPlaces = n
		} else {
			m.cfg.MaxIter = n
		}
	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		*m.number(field) = v
	}
	return nil
}

func (m Model) solveCmd() tea.Cmd {
	req, solve := m.cfg.ToRequest(), m.solve
	return func() tea.Msg {
		res, err := solve(context.Background(), req)
		return solvedMsg{res: res, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + heading.Render("ROOTFIND") + "\n  " + sub.Render("root finding for f(x) = 0") + "\n  " + sub.Render("─────────────────────────") + "\n\n")

	for i, name := range m.Fields() {
		val := m.display(name)
		if m.editing && i == m.cursor {
			val = m.editBuf + "_"
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", pointer.Render("▸"), active.Render(fmt.Sprintf("%-16s", name)), value.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", idle.Render(fmt.Sprintf("%-16s", name)), idle.Render(val)))
		}
	}

	if m.status != "" {
		b.WriteString("\n  " + bad.Render(m.status) + "\n")
	}

	b.WriteString("\n  " + key.Render("j/k") + idle.Render(" select  ") + key.Render("enter") + idle.Render(" edit  ") + key.Render("h/l") + idle.Render(" method  ") + key.Render("s") + idle.Render(" solve  ") + key.Render("p") + idle.Render(" plot  ") + key.Render("q") + idle.Render(" quit") + "\n\n")

	if m.result != nil {
		b.WriteString(report.Render(m.result))
		if m.showPlot && m.result.HasRoot() {
			b.WriteString("\n")
			b.WriteString(m.plot())
		}
	}
	return b.String()
}

func (m Model) plot() string {
	e, err := expr.Parse(m.result.Expression)
	if err != nil {
		return bad.Render(err.Error())
	}
	w := m.width - 12
	if w < 20 {
		w = 20
	}
	chart, err := plot.New(e, plot.DefaultDomain).MarkRoot(m.result.Root).ASCII(w, 10)
	if err != nil {
		return bad.Render(err.Error())
	}
	return chart + "\n"
}

// Run starts the form on the alternate screen.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
