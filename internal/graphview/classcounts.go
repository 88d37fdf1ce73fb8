package graphview

import (
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/mabhi256/jserial/internal/javaserial"
)

// classLabel returns the bucket a decoded top-level value counts against in
// the class-count bar chart.
func classLabel(v any) string {
	switch t := v.(type) {
	case *javaserial.Object:
		return t.Class.Name
	case *javaserial.Array:
		return t.Class.Name
	case *javaserial.Enum:
		return t.Class.Name
	case string:
		return "String"
	case nil:
		return "null"
	default:
		return "primitive"
	}
}

// buildClassCounts tallies how many top-level decoded values fall under
// each class name and renders it as ntcharts bar-chart data, sorted by
// descending count so the heaviest classes read first.
func buildClassCounts(items []any) []barchart.BarData {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range items {
		label := classLabel(v)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.Slice(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	style := lipgloss.NewStyle().Foreground(infoColor)
	data := make([]barchart.BarData, 0, len(order))
	for _, label := range order {
		data = append(data, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: label, Value: float64(counts[label]), Style: style},
			},
		})
	}
	return data
}
