package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/salesman/game"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	winColor     = lipgloss.Color("#10B981") // Green
	loseColor    = lipgloss.Color("#EF4444") // Red
	dimColor     = lipgloss.Color("#6B7280") // Gray
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	optimalStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(winColor)
	borderStyle  = lipgloss.NewStyle().Foreground(dimColor)
	noteStyle    = lipgloss.NewStyle().Foreground(dimColor).Italic(true)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(winColor)
	loseStyle  = lipgloss.NewStyle().Bold(true).Foreground(loseColor)
)

// RouteString joins a label route with arrows: "A → B → A".
func RouteString(route []string) string {
	return strings.Join(route, " → ")
}

// Table renders the comparison as a bordered table, one row per algorithm
// in canonical order. Rows whose distance equals the optimum are
// highlighted.
func Table(cmp *game.Comparison) string {
	rows := make([][]string, 0, len(cmp.Results))
	optimal := make(map[int]bool, len(cmp.Results))
	for i, r := range cmp.Ordered() {
		rows = append(rows, []string{
			r.Algorithm.String(),
			RouteString(r.Route),
			fmt.Sprintf("%.2f", r.Distance),
			fmt.Sprintf("%.6f", r.Seconds()),
			r.Complexity,
		})
		optimal[i] = r.Distance-cmp.Optimal < game.WinTolerance
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Algorithm", "Route", "Distance", "Time (s)", "Complexity").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case optimal[row]:
				return optimalStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Home %s, targets %s", cmp.Home, strings.Join(cmp.Targets, ", "))))
	b.WriteByte('\n')
	b.WriteString(t.String())
	for _, line := range skippedLines(cmp) {
		b.WriteByte('\n')
		b.WriteString(line)
	}

	return b.String()
}

// Verdict renders a one-line grade summary.
func Verdict(g game.Grade) string {
	style := loseStyle
	if g.Verdict == game.Win {
		style = winStyle
	}

	return fmt.Sprintf("%s  %s = %.2f (optimal %.2f, gap %.2f)",
		style.Render(strings.ToUpper(g.Verdict.String())), RouteString(g.Route), g.Distance, g.Optimal, g.Gap)
}

// skippedLines lists budget refusals in canonical order.
func skippedLines(cmp *game.Comparison) []string {
	var out []string
	for _, algo := range tsp.Algorithms() {
		if err, ok := cmp.Skipped[algo]; ok {
			out = append(out, noteStyle.Render("skipped: "+err.Error()))
		}
	}

	return out
}

// Board renders the distance table with labels on both axes; the home
// row and column headers are marked with "*".
func Board(labels game.Labels, dist matrix.Matrix, home string) (string, error) {
	rows, err := matrix.ToRows(dist)
	if err != nil {
		return "", fmt.Errorf("Board: %w", err)
	}
	if len(rows) != labels.Len() {
		return "", fmt.Errorf("Board: %d labels for %d rows: %w", labels.Len(), len(rows), tsp.ErrInvalidInput)
	}

	mark := func(name string) string {
		if name == home {
			return name + "*"
		}

		return name
	}
	headers := make([]string, 0, labels.Len()+1)
	headers = append(headers, "")
	for _, name := range labels.Names() {
		headers = append(headers, mark(name))
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, 0, len(row)+1)
		cells[i] = append(cells[i], mark(labels.Label(i)))
		for _, v := range row {
			cells[i] = append(cells[i], fmt.Sprintf("%g", v))
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}

			return cellStyle
		})

	return t.String(), nil
}

// Estimates renders tsp.EstimateOps for every algorithm at k targets and
// whether each fits budget (0 means unlimited).
func Estimates(k int, budget float64) string {
	rows := make([][]string, 0, len(tsp.Algorithms()))
	for _, algo := range tsp.Algorithms() {
		fits := "yes"
		if err := tsp.CheckBudget(algo, k, budget); err != nil {
			fits = "no"
		}
		rows = append(rows, []string{
			algo.String(),
			algo.Complexity(),
			fmt.Sprintf("%.3g", tsp.EstimateOps(algo, k)),
			fits,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Algorithm", "Complexity", fmt.Sprintf("Ops (k=%d)", k), "Within budget").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		String()
}
