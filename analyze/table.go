package analyze

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteSummaryTable renders a report's summary statistics as an ASCII
// table, for terminal-friendly output alongside the plain-text report
// format WriteReport produces.
func WriteSummaryTable(w io.Writer, report Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"frames compared", strconv.Itoa(len(report.IoUs))})
	table.Append([]string{"minimum", formatFloat(report.Minimum)})
	table.Append([]string{"maximum", formatFloat(report.Maximum)})
	table.Append([]string{"average", formatFloat(report.Average)})
	table.Render()
}
