package printer

import (
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/rodaine/table"

	"github.com/pfactor/PFactor-core/factor"
)

// Cells holding thousand-digit candidates would destroy the layout, so the
// numeric columns are clipped to this width.
const maxCellWidth = 32

type rowData struct {
	Num      string
	Divisor  string
	Cofactor string
	Method   string
	Attempts int
	Elapsed  string
}

func New() table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Num", "Divisor", "Cofactor", "Method", "Attempts", "Elapsed")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	return tbl
}

// BatchTablePrinter renders one row per factored candidate.
func BatchTablePrinter(results []*factor.Result) {
	tbl := New()
	for _, res := range results {
		data := tableDataGenerator(res)
		tbl.AddRow(data.Num, data.Divisor, data.Cofactor, data.Method, data.Attempts, data.Elapsed)
	}
	tbl.Print()
}

func tableDataGenerator(res *factor.Result) *rowData {
	row := &rowData{
		Num:      clip(res.Num.String()),
		Method:   string(res.Method),
		Attempts: res.AttemptsUsed,
		Elapsed:  res.Elapsed.Round(time.Microsecond).String(),
	}
	if !res.Found() {
		row.Divisor = "*"
		row.Cofactor = "*"
		return row
	}
	row.Divisor = clip(res.Divisor.String())
	row.Cofactor = clip(res.Cofactor.String())
	return row
}

func clip(s string) string {
	return runewidth.Truncate(s, maxCellWidth, "…")
}
