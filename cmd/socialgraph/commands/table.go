package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dd0wney/cluso-socialgraph/pkg/analytics"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable renders the ranking table followed by the community summary.
func renderTable(report *analytics.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NODE", "DEGREE", "BETWEENNESS", "CLOSENESS", "CLUSTERING", "COMMUNITY").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range report.Ranking() {
		t.Row(
			row.Label,
			strconv.Itoa(row.Degree),
			strconv.FormatFloat(row.Betweenness, 'f', 3, 64),
			strconv.FormatFloat(row.Closeness, 'f', 3, 64),
			strconv.FormatFloat(row.Clustering, 'f', 3, 64),
			strconv.Itoa(row.Community),
		)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Node metrics"))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n\n")

	if label, ok := report.MostInfluential(); ok {
		fmt.Fprintf(&b, "Most influential: %s\n", label)
	}
	fmt.Fprintf(&b, "Modularity: %.4f\n", report.Modularity())
	for i, members := range report.Communities() {
		fmt.Fprintf(&b, "Community %d: %s\n", i, strings.Join(members, ", "))
	}
	return b.String()
}
