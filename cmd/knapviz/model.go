package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/knapviz/knapsack"
	"github.com/katalvlaran/knapviz/reveal"
)

// model is the bubbletea model for the walkthrough. All knapsack state
// lives in the immutable reveal.State; the model only adds presentation
// concerns (path overlay toggle, progress bar, terminal size).
type model struct {
	problem  knapsack.Problem
	session  reveal.State
	showPath bool

	bar      progress.Model
	width    int
	quitting bool
}

func newModel(p knapsack.Problem) model {
	return model{
		problem: p,
		session: reveal.Start(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "n", " ", "enter", "right":
			m.session = m.session.Step(m.problem)

		case "s", "S":
			m.session = m.session.Solve(m.problem)

		case "r", "R":
			m.session = m.session.Restart()

		case "b", "B":
			m.showPath = !m.showPath

		case "q", "Q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Knapsack_DP"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("0/1 · Dynamic Programming Visualizer"))
	b.WriteString("\n\n")

	b.WriteString(cardStyle.Render(m.renderFormula()))
	b.WriteString("\n\n")

	if m.session.Phase() == reveal.NotStarted {
		b.WriteString(subtitleStyle.Render("Press n to step through the table, or s to solve it outright."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTable())
		b.WriteString("\n")
		b.WriteString(m.renderProgress())
		b.WriteString("\n\n")
		b.WriteString(cardStyle.Render(m.renderLegend()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderTable draws the header row, the always-visible baseline row, and
// one row per item, each cell styled by its classification.
func (m model) renderTable() string {
	var path reveal.PathSet
	if m.showPath {
		path = m.session.Path()
	}
	grid := m.session.Grid(path)

	var b strings.Builder

	// header: item \ w over budgets 0..m
	b.WriteString(itemLabelStyle.Render("item \\ w"))
	for w := 0; w <= m.problem.Capacity; w++ {
		b.WriteString(headerCellStyle.Render(fmt.Sprintf("%d", w)))
	}
	b.WriteString("\n")

	for i, row := range grid {
		b.WriteString(itemLabelStyle.Render(m.rowLabel(i)))
		for _, view := range row {
			text := "·"
			if view.Visible {
				text = fmt.Sprintf("%d", view.Value)
			}
			b.WriteString(cellStyle(view.Class).Render(text))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// rowLabel names row 0 as the baseline and data rows by item stats.
func (m model) rowLabel(i int) string {
	if i == 0 {
		return "— base"
	}
	it := m.problem.Items[i-1]

	return fmt.Sprintf("%d w=%d b=%d", i, it.Weight, it.Benefit)
}

func (m model) renderProgress() string {
	p := m.session.Progress()
	if p.Total == 0 {
		return ""
	}

	return m.bar.ViewAs(float64(p.Done)/float64(p.Total)) +
		"  " + progressLabelStyle.Render(p.Label)
}

// renderFormula is the plain-text rendition of the recurrence card. The
// fancy typesetting of the web original is a rendering concern the core
// never depends on.
func (m model) renderFormula() string {
	lines := []string{
		"dp[i][w] = 0                                        i = 0",
		"dp[i][w] = dp[i-1][w]                               wt(i) > w",
		"dp[i][w] = max(dp[i-1][w], dp[i-1][w-wt(i)] + b(i)) otherwise",
		"",
		subtitleStyle.Render("i — item · w — budget · wt(i), b(i) — weight/benefit of item i"),
	}

	return strings.Join(lines, "\n")
}

func (m model) renderLegend() string {
	rows := []struct {
		style lipgloss.Style
		text  string
	}{
		{tookCellStyle, "item was taken (strictly better with it)"},
		{normalCellStyle, "item was skipped (value inherited from above)"},
		{activeCellStyle, "current step"},
		{pathCellStyle, "backtrack path of the optimal solution"},
	}

	var b strings.Builder
	b.WriteString("Legend\n")
	for _, r := range rows {
		b.WriteString(r.style.Render("4"))
		b.WriteString(" ")
		b.WriteString(helpDescStyle.Render(r.text))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m model) renderFooter() string {
	stepHint := "next step"
	if m.session.Phase() == reveal.Revealed {
		stepHint = "restart steps"
	}
	pathHint := "show path"
	if m.showPath {
		pathHint = "hide path"
	}

	hints := []struct{ key, desc string }{
		{"n", stepHint},
		{"s", "solve"},
		{"b", pathHint},
		{"q", "quit"},
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = helpKeyStyle.Render(h.key) + " " + helpDescStyle.Render(h.desc)
	}

	return strings.Join(parts, "  ·  ")
}
